// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Running-day flag values as they appear in the upstream bitstring
const (
	RunsYes = 'Y'
	RunsNo  = 'N'
)

// DaysInWeek is the expected length of a running-days bitstring
const DaysInWeek = 7

// Domain types

// TrainSummary is one train from a between-stations listing.
type TrainSummary struct {
	TrainNo       string `json:"train_no"`
	TrainName     string `json:"train_name"`
	SourceStnName string `json:"source_stn_name"`
	SourceStnCode string `json:"source_stn_code"`
	DstnStnName   string `json:"dstn_stn_name"`
	DstnStnCode   string `json:"dstn_stn_code"`
	FromStnName   string `json:"from_stn_name"`
	FromStnCode   string `json:"from_stn_code"`
	ToStnName     string `json:"to_stn_name"`
	ToStnCode     string `json:"to_stn_code"`
	FromTime      string `json:"from_time"`
	ToTime        string `json:"to_time"`
	TravelTime    string `json:"travel_time"`

	// RunningDaysStr keeps the raw upstream value even when it is malformed.
	RunningDaysStr string `json:"running_days_str"`
	// RunningDays is empty unless RunningDaysStr has exactly 7 characters.
	RunningDays []int `json:"running_days"`
}

// TrainListEntry wraps a summary under the "train_base" key that
// getTrainOn filtering and existing clients look for.
type TrainListEntry struct {
	TrainBase TrainSummary `json:"train_base"`
}

// TrainDetail is the single-train lookup result. TrainID is the key
// used to fetch the route in a follow-up request.
type TrainDetail struct {
	TrainNo        string `json:"train_no"`
	TrainName      string `json:"train_name"`
	FromStnName    string `json:"from_stn_name"`
	FromStnCode    string `json:"from_stn_code"`
	ToStnName      string `json:"to_stn_name"`
	ToStnCode      string `json:"to_stn_code"`
	FromTime       string `json:"from_time"`
	ToTime         string `json:"to_time"`
	TravelTime     string `json:"travel_time"`
	RunningDaysStr string `json:"running_days_str"`
	RunningDays    []int  `json:"running_days"`

	Type           string `json:"type"`
	TrainID        string `json:"train_id"`
	DistanceFromTo string `json:"distance_from_to"`
	AverageSpeed   string `json:"average_speed"`
}

// RouteStop is one stop of a train route, in upstream order.
type RouteStop struct {
	SourceStnName string `json:"source_stn_name"`
	SourceStnCode string `json:"source_stn_code"`
	Arrive        string `json:"arrive"`
	Depart        string `json:"depart"`
	Distance      string `json:"distance"`
	Day           string `json:"day"`
	Zone          string `json:"zone"`
}

// LiveStationEntry is one row of a station live-departures page
type LiveStationEntry struct {
	TrainNo       string `json:"train_no"`
	TrainName     string `json:"train_name"`
	SourceStnName string `json:"source_stn_name"`
	DstnStnName   string `json:"dstn_stn_name"`
	TimeAt        string `json:"time_at"`
	Detail        string `json:"detail"`
}

// PnrRecord is passed through verbatim from the embedded page data.
type PnrRecord = any
