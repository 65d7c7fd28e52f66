// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// now is swapped out in tests
var now = time.Now

// Envelope is the {success, time_stamp, data} wrapper every endpoint returns.
// When Success is false, Data holds a human-readable diagnostic string.
type Envelope struct {
	Success   bool  `json:"success"`
	TimeStamp int64 `json:"time_stamp"`
	Data      any   `json:"data"`
}

// Success wraps data in a successful envelope stamped with the current time
func Success(data any) Envelope {
	return Envelope{
		Success:   true,
		TimeStamp: now().UnixMilli(),
		Data:      data,
	}
}

// Failure builds a failed envelope carrying message as its data
func Failure(message string) Envelope {
	return Envelope{
		Success:   false,
		TimeStamp: now().UnixMilli(),
		Data:      message,
	}
}

// Result converts a (value, error) pair into an envelope.
func Result(data any, err error) Envelope {
	if err != nil {
		return Failure(err.Error())
	}
	return Success(data)
}

// Message returns the diagnostic of a failed envelope, or "" on success
func (e Envelope) Message() string {
	if e.Success {
		return ""
	}
	s, _ := e.Data.(string)
	return s
}
