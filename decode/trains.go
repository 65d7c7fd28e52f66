// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package decode

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/danielhkuo/railapi/models"
)

// DecodeTrainList decodes a between-stations listing into an envelope.
// It never panics; see ParseTrainList for the failure modes.
func DecodeTrainList(raw string) (env models.Envelope) {
	defer recoverInto("train list", &env)
	entries, err := ParseTrainList(raw)
	return models.Result(entries, err)
}

// ParseTrainList decodes the tilde-delimited between-stations format.
//
// Records are separated by "~~~~~~~~". A usable record holds exactly one "~^"
// marker followed by at least 14 non-empty "~" fields. Known error sentinels
// come back as *UpstreamError, and a payload yielding no records is an error
// rather than an empty list.
func ParseTrainList(raw string) ([]models.TrainListEntry, error) {
	if err := matchSentinel(raw, sentinelTryAgain, sentinelFromNotFound, sentinelToNotFound); err != nil {
		return nil, err
	}

	head, _, _ := strings.Cut(raw, recordSep)
	if notice := strings.Split(head, fieldSep); len(notice) > noDirectTrainsField {
		msg, _, _ := strings.Cut(notice[noDirectTrainsField], "<")
		if msg == noDirectTrains {
			return nil, &UpstreamError{Message: noDirectTrains}
		}
	}

	segments := splitNonEmpty(raw, recordSep)
	if len(segments) == 0 {
		return nil, ErrEmptyResponse
	}

	entries := make([]models.TrainListEntry, 0, len(segments))
	for i, segment := range segments {
		parts := strings.Split(segment, markerSep)
		if len(parts) != 2 {
			continue
		}
		fields := splitNonEmpty(parts[1], fieldSep)
		if len(fields) < listMinFields {
			slog.Debug("skipping short train record", "segment", i, "fields", len(fields))
			continue
		}
		entries = append(entries, models.TrainListEntry{TrainBase: trainSummary(fields)})
	}

	if len(entries) == 0 {
		return nil, ErrNoTrains
	}
	return entries, nil
}

func trainSummary(f []string) models.TrainSummary {
	return models.TrainSummary{
		TrainNo:        f[listTrainNo],
		TrainName:      f[listTrainName],
		SourceStnName:  f[listSourceStnName],
		SourceStnCode:  f[listSourceStnCode],
		DstnStnName:    f[listDstnStnName],
		DstnStnCode:    f[listDstnStnCode],
		FromStnName:    f[listFromStnName],
		FromStnCode:    f[listFromStnCode],
		ToStnName:      f[listToStnName],
		ToStnCode:      f[listToStnCode],
		FromTime:       f[listFromTime],
		ToTime:         f[listToTime],
		TravelTime:     f[listTravelTime],
		RunningDaysStr: f[listRunningDays],
		RunningDays:    parseRunningDays(f[listRunningDays]),
	}
}

// DecodeTrainDetail decodes a single-train lookup into an envelope
func DecodeTrainDetail(raw string) (env models.Envelope) {
	defer recoverInto("train detail", &env)
	detail, err := ParseTrainDetail(raw)
	return models.Result(detail, err)
}

// ParseTrainDetail decodes the two-segment single-train format. The first
// segment carries names, stations and times; the second carries the type,
// the train_id used for route lookups, distance and average speed.
func ParseTrainDetail(raw string) (models.TrainDetail, error) {
	if err := matchSentinel(raw, sentinelTryAgain, sentinelTrainNotFound); err != nil {
		return models.TrainDetail{}, err
	}

	segments := strings.Split(raw, recordSep)
	if len(segments) < 2 {
		return models.TrainDetail{}, &MalformedError{Stage: "train details", Want: 2, Got: len(segments)}
	}

	head := dropStrayLeader(splitNonEmpty(segments[0], fieldSep))
	if len(head) < detailMinFields {
		return models.TrainDetail{}, &MalformedError{Stage: "first part of train details", Want: detailMinFields, Got: len(head)}
	}

	extra := splitNonEmpty(segments[1], fieldSep)
	if len(extra) < extraMinFields {
		return models.TrainDetail{}, &MalformedError{Stage: "second part of train details", Want: extraMinFields, Got: len(extra)}
	}

	return models.TrainDetail{
		TrainNo:        strings.TrimLeft(head[detailTrainNo], "^"),
		TrainName:      head[detailTrainName],
		FromStnName:    head[detailFromStnName],
		FromStnCode:    head[detailFromStnCode],
		ToStnName:      head[detailToStnName],
		ToStnCode:      head[detailToStnCode],
		FromTime:       head[detailFromTime],
		ToTime:         head[detailToTime],
		TravelTime:     head[detailTravelTime],
		RunningDaysStr: head[detailRunningDays],
		RunningDays:    parseRunningDays(head[detailRunningDays]),

		Type:           extra[extraType],
		TrainID:        extra[extraTrainID],
		DistanceFromTo: extra[extraDistanceFromTo],
		AverageSpeed:   extra[extraAverageSpeed],
	}, nil
}

// dropStrayLeader removes a token the upstream sometimes emits ahead of the
// train number. It only fires when the second field is longer than a train
// number (so it is probably the name): the first field is dropped if it is a
// bare "^", or if it is itself too long and not numeric.
//
// This was reconstructed from observed payloads, not a documented format.
func dropStrayLeader(fields []string) []string {
	if len(fields) < 2 || utf8.RuneCountInString(fields[1]) <= strayLeaderLen {
		return fields
	}
	lead := fields[0]
	if lead == "^" || (utf8.RuneCountInString(lead) > strayLeaderLen && !isNumeric(lead)) {
		return fields[1:]
	}
	return fields
}
