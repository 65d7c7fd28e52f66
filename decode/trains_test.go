// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package decode

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/danielhkuo/railapi/models"
)

func listRecord(trainNo, days string) string {
	return "~^" + strings.Join([]string{
		trainNo, "MUMBAI RAJDHANI", "MUMBAI CENTRAL", "MMCT", "NEW DELHI", "NDLS",
		"BORIVALI", "BVI", "KOTA JN", "KOTA", "17.23", "03.05", "09.42", days,
	}, "~")
}

func detailPayload(head []string) string {
	extra := make([]string, extraMinFields)
	for i := range extra {
		extra[i] = "x" + strconv.Itoa(i)
	}
	extra[extraType] = "RAJ"
	extra[extraTrainID] = "4567"
	extra[extraDistanceFromTo] = "1386"
	extra[extraAverageSpeed] = "90"
	return strings.Join(head, "~") + recordSep + strings.Join(extra, "~")
}

func detailHead() []string {
	return []string{
		"^12951", "MUMBAI RAJDHANI", "MUMBAI CENTRAL", "MMCT", "NEW DELHI", "NDLS",
		"f6", "f7", "f8", "f9", "17.00", "08.32", "15.32", "YYYYYYY", "f14",
	}
}

func TestParseTrainList(t *testing.T) {
	raw := "header" + recordSep + listRecord("12951", "YNNYYNY") + recordSep + listRecord("12953", "YYYYYYY") + recordSep

	entries, err := ParseTrainList(raw)
	if err != nil {
		t.Fatalf("ParseTrainList failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 trains, got %d", len(entries))
	}

	first := entries[0].TrainBase
	expected := models.TrainSummary{
		TrainNo:        "12951",
		TrainName:      "MUMBAI RAJDHANI",
		SourceStnName:  "MUMBAI CENTRAL",
		SourceStnCode:  "MMCT",
		DstnStnName:    "NEW DELHI",
		DstnStnCode:    "NDLS",
		FromStnName:    "BORIVALI",
		FromStnCode:    "BVI",
		ToStnName:      "KOTA JN",
		ToStnCode:      "KOTA",
		FromTime:       "17.23",
		ToTime:         "03.05",
		TravelTime:     "09.42",
		RunningDaysStr: "YNNYYNY",
		RunningDays:    []int{1, 0, 0, 1, 1, 0, 1},
	}
	if !reflect.DeepEqual(first, expected) {
		t.Errorf("Unexpected first record:\n got %+v\nwant %+v", first, expected)
	}
	if entries[1].TrainBase.TrainNo != "12953" {
		t.Errorf("Expected second train 12953, got %s", entries[1].TrainBase.TrainNo)
	}
}

func TestParseTrainList_RunningDaysLength(t *testing.T) {
	testCases := []struct {
		name     string
		days     string
		expected []int
	}{
		{"seven days", "NNNNNNY", []int{0, 0, 0, 0, 0, 0, 1}},
		{"too short", "YN", []int{}},
		{"too long", "YYYYYYYY", []int{}},
		{"lowercase is not Y", "yYyYyYy", []int{0, 1, 0, 1, 0, 1, 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entries, err := ParseTrainList(listRecord("12951", tc.days))
			if err != nil {
				t.Fatalf("ParseTrainList failed: %v", err)
			}
			got := entries[0].TrainBase
			if got.RunningDaysStr != tc.days {
				t.Errorf("Expected running_days_str %q, got %q", tc.days, got.RunningDaysStr)
			}
			if !reflect.DeepEqual(got.RunningDays, tc.expected) {
				t.Errorf("Expected running_days %v, got %v", tc.expected, got.RunningDays)
			}
		})
	}
}

func TestParseTrainList_Failures(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		message string
		target  error
	}{
		{"try again", sentinelTryAgain, "Please try again after some time.", nil},
		{"try again with trailer", sentinelTryAgain + recordSep + "junk", "Please try again after some time.", nil},
		{"from station", sentinelFromNotFound, "From station not found", nil},
		{"to station", sentinelToNotFound, "To station not found", nil},
		{"no direct trains", "a~b~c~d~e~No direct trains found<br>Try other options" + recordSep, "No direct trains found", nil},
		{"empty string", "", ErrEmptyResponse.Error(), ErrEmptyResponse},
		{"only separators", recordSep + recordSep, ErrEmptyResponse.Error(), ErrEmptyResponse},
		{"no marker", "abc~def" + recordSep + "ghi", ErrNoTrains.Error(), ErrNoTrains},
		{"two markers", "~^a~^b", ErrNoTrains.Error(), ErrNoTrains},
		{"too few fields", "~^1~2~3~4~5~6~7~8~9~10~11~12~13", ErrNoTrains.Error(), ErrNoTrains},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseTrainList(tc.raw)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if err.Error() != tc.message {
				t.Errorf("Expected message %q, got %q", tc.message, err.Error())
			}
			if tc.target != nil && !errors.Is(err, tc.target) {
				t.Errorf("Expected errors.Is(%v), got %v", tc.target, err)
			}

			env := DecodeTrainList(tc.raw)
			if env.Success {
				t.Error("Expected envelope success=false")
			}
			if env.Data != tc.message {
				t.Errorf("Expected envelope data %q, got %v", tc.message, env.Data)
			}
		})
	}
}

func TestParseTrainList_UpstreamErrorType(t *testing.T) {
	_, err := ParseTrainList(sentinelFromNotFound)
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("Expected *UpstreamError, got %T", err)
	}
}

func TestDecodeTrainList_FeedsOwnDiagnostics(t *testing.T) {
	inputs := []string{"", sentinelTryAgain, "~^1~2"}
	for _, raw := range inputs {
		first := DecodeTrainList(raw)
		second := DecodeTrainList(first.Message())
		if second.Success {
			t.Errorf("Expected failure when decoding diagnostic %q", first.Message())
		}
		if second.Message() == "" {
			t.Errorf("Expected a diagnostic for %q", first.Message())
		}
	}
}

func TestDecodeTrainList_Success(t *testing.T) {
	env := DecodeTrainList(listRecord("12951", "YNNYYNY"))
	if !env.Success {
		t.Fatalf("Expected success, got %v", env.Data)
	}
	entries, ok := env.Data.([]models.TrainListEntry)
	if !ok {
		t.Fatalf("Expected []models.TrainListEntry, got %T", env.Data)
	}
	if len(entries) != 1 || entries[0].TrainBase.TrainNo != "12951" {
		t.Errorf("Unexpected entries: %+v", entries)
	}
	if env.TimeStamp <= 0 {
		t.Errorf("Expected a time stamp, got %d", env.TimeStamp)
	}
}

func TestParseTrainDetail(t *testing.T) {
	detail, err := ParseTrainDetail(detailPayload(detailHead()))
	if err != nil {
		t.Fatalf("ParseTrainDetail failed: %v", err)
	}

	expected := models.TrainDetail{
		TrainNo:        "12951",
		TrainName:      "MUMBAI RAJDHANI",
		FromStnName:    "MUMBAI CENTRAL",
		FromStnCode:    "MMCT",
		ToStnName:      "NEW DELHI",
		ToStnCode:      "NDLS",
		FromTime:       "17.00",
		ToTime:         "08.32",
		TravelTime:     "15.32",
		RunningDaysStr: "YYYYYYY",
		RunningDays:    []int{1, 1, 1, 1, 1, 1, 1},
		Type:           "RAJ",
		TrainID:        "4567",
		DistanceFromTo: "1386",
		AverageSpeed:   "90",
	}
	if !reflect.DeepEqual(detail, expected) {
		t.Errorf("Unexpected detail:\n got %+v\nwant %+v", detail, expected)
	}
}

func TestParseTrainDetail_Failures(t *testing.T) {
	short := detailHead()[:detailMinFields-1]

	testCases := []struct {
		name      string
		raw       string
		upstream  string
		malformed string
	}{
		{"try again", sentinelTryAgain, "Please try again after some time.", ""},
		{"train not found", sentinelTrainNotFound + recordSep, "Train not found", ""},
		{"single segment", strings.Join(detailHead(), "~"), "", "train details"},
		{"empty", "", "", "train details"},
		{"short first part", detailPayload(short), "", "first part of train details"},
		{"short second part", strings.Join(detailHead(), "~") + recordSep + "a~b~c", "", "second part of train details"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseTrainDetail(tc.raw)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}

			if tc.upstream != "" {
				var upstream *UpstreamError
				if !errors.As(err, &upstream) {
					t.Fatalf("Expected *UpstreamError, got %T: %v", err, err)
				}
				if upstream.Message != tc.upstream {
					t.Errorf("Expected %q, got %q", tc.upstream, upstream.Message)
				}
			}
			if tc.malformed != "" {
				var malformed *MalformedError
				if !errors.As(err, &malformed) {
					t.Fatalf("Expected *MalformedError, got %T: %v", err, err)
				}
				if malformed.Stage != tc.malformed {
					t.Errorf("Expected stage %q, got %q", tc.malformed, malformed.Stage)
				}
			}

			env := DecodeTrainDetail(tc.raw)
			if env.Success {
				t.Error("Expected envelope success=false")
			}
			if env.Message() != err.Error() {
				t.Errorf("Expected envelope data %q, got %q", err.Error(), env.Message())
			}
		})
	}
}

// The stray-leader repair is a heuristic inferred from observed payloads.
// These cases pin its current behavior; change them only with new samples
// of the upstream format.
func TestDropStrayLeader_KnownHeuristic(t *testing.T) {
	testCases := []struct {
		name     string
		fields   []string
		expected []string
	}{
		{"bare caret before long field", []string{"^", "MUMBAI RAJDHANI", "x"}, []string{"MUMBAI RAJDHANI", "x"}},
		{"long non-numeric leader", []string{"GARBAGE1", "MUMBAI RAJDHANI"}, []string{"MUMBAI RAJDHANI"}},
		{"long numeric leader kept", []string{"1234567", "MUMBAI RAJDHANI"}, []string{"1234567", "MUMBAI RAJDHANI"}},
		{"train number leader kept", []string{"^12951", "MUMBAI RAJDHANI"}, []string{"^12951", "MUMBAI RAJDHANI"}},
		{"short second field", []string{"^", "12951"}, []string{"^", "12951"}},
		{"exactly six chars second field", []string{"^", "RAJDHN"}, []string{"^", "RAJDHN"}},
		{"single field", []string{"^"}, []string{"^"}},
		{"no fields", []string{}, []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := dropStrayLeader(tc.fields)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestParseTrainDetail_StrayLeaderDropped(t *testing.T) {
	head := append([]string{"^"}, detailHead()...)
	head[1] = "1295100" // seven characters, so the leading "^" is treated as stray

	detail, err := ParseTrainDetail(detailPayload(head))
	if err != nil {
		t.Fatalf("ParseTrainDetail failed: %v", err)
	}
	if detail.TrainNo != "1295100" {
		t.Errorf("Expected train_no 1295100, got %s", detail.TrainNo)
	}
	if detail.TrainName != "MUMBAI RAJDHANI" {
		t.Errorf("Expected train_name MUMBAI RAJDHANI, got %s", detail.TrainName)
	}
}

func TestParseTrainDetail_BadRunningDays(t *testing.T) {
	head := detailHead()
	head[detailRunningDays] = "YNY"

	detail, err := ParseTrainDetail(detailPayload(head))
	if err != nil {
		t.Fatalf("ParseTrainDetail failed: %v", err)
	}
	if detail.RunningDaysStr != "YNY" {
		t.Errorf("Expected running_days_str YNY, got %s", detail.RunningDaysStr)
	}
	if len(detail.RunningDays) != 0 || detail.RunningDays == nil {
		t.Errorf("Expected empty non-nil running_days, got %v", detail.RunningDays)
	}
}

func TestRecoverInto(t *testing.T) {
	env := func() (env models.Envelope) {
		defer recoverInto("test", &env)
		var fields []string
		_ = fields[3]
		return models.Success("unreachable")
	}()

	if env.Success {
		t.Fatal("Expected failure envelope after panic")
	}
	if !strings.HasPrefix(env.Message(), "an error occurred during data processing") {
		t.Errorf("Unexpected diagnostic: %s", env.Message())
	}
}
