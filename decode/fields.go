// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package decode

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/danielhkuo/railapi/models"
)

// Delimiters of the erail text format
const (
	recordSep = "~~~~~~~~"
	fieldSep  = "~"
	markerSep = "~^"
)

// Error sentinels the upstream returns as the first record segment
const (
	sentinelTryAgain      = "~~~~~Please try again after some time."
	sentinelFromNotFound  = "~~~~~From station not found"
	sentinelToNotFound    = "~~~~~To station not found"
	sentinelTrainNotFound = "~~~~~Train not found"

	noDirectTrains = "No direct trains found"
	// field of the first segment that carries the no-direct-trains notice
	noDirectTrainsField = 5
)

// Between-stations record, fields after the "~^" marker
const (
	listTrainNo = iota
	listTrainName
	listSourceStnName
	listSourceStnCode
	listDstnStnName
	listDstnStnCode
	listFromStnName
	listFromStnCode
	listToStnName
	listToStnCode
	listFromTime
	listToTime
	listTravelTime
	listRunningDays

	listMinFields
)

// Train detail, first segment (after the stray-leader repair)
const (
	detailTrainNo     = 0
	detailTrainName   = 1
	detailFromStnName = 2
	detailFromStnCode = 3
	detailToStnName   = 4
	detailToStnCode   = 5
	detailFromTime    = 10
	detailToTime      = 11
	detailTravelTime  = 12
	detailRunningDays = 13

	detailMinFields = 15
)

// Train detail, second segment
const (
	extraType           = 11
	extraTrainID        = 12
	extraDistanceFromTo = 18
	extraAverageSpeed   = 19

	extraMinFields = 20
)

// Route stop, one "~^" segment
const (
	routeSourceStnCode = 1
	routeSourceStnName = 2
	routeArrive        = 3
	routeDepart        = 4
	routeDistance      = 6
	routeDay           = 7
	routeZone          = 9

	routeMinFields = 10
)

// strayLeaderLen is the length above which a leading token is not a train number
const strayLeaderLen = 6

// splitNonEmpty splits s on sep and drops empty parts
func splitNonEmpty(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// matchSentinel reports the first segment of raw as an UpstreamError when it
// is exactly one of the given sentinels.
func matchSentinel(raw string, sentinels ...string) error {
	head, _, _ := strings.Cut(raw, recordSep)
	for _, s := range sentinels {
		if head == s {
			return &UpstreamError{Message: strings.ReplaceAll(head, fieldSep, "")}
		}
	}
	return nil
}

// parseRunningDays maps "YNNYYNY" to [1 0 0 1 1 0 1]. Anything that is not
// exactly seven characters yields an empty slice.
func parseRunningDays(raw string) []int {
	if utf8.RuneCountInString(raw) != models.DaysInWeek {
		return []int{}
	}
	days := make([]int, 0, models.DaysInWeek)
	for _, c := range raw {
		if c == models.RunsYes {
			days = append(days, 1)
		} else {
			days = append(days, 0)
		}
	}
	return days
}

// splitRunes cuts s after n characters, trimming the remainder
func splitRunes(s string, n int) (head, tail string) {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos], strings.TrimSpace(s[pos:])
		}
		i++
	}
	return s, ""
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !unicode.IsDigit(c) {
			return false
		}
	}
	return true
}
