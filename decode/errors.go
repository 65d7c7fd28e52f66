// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package decode

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/railapi/models"
)

var (
	// ErrEmptyResponse means the payload had no record segments at all
	ErrEmptyResponse = errors.New("unknown error or empty response from upstream")
	// ErrNoTrains means segments were present but none decoded into a train
	ErrNoTrains = errors.New("no direct trains found or data format issue")

	ErrNoRouteData  = errors.New("no route data found in response")
	ErrNoRouteStops = errors.New("could not parse route details from segments")

	ErrEmbeddedNotFound = errors.New("could not find data in the page")
	ErrEmbeddedInvalid  = errors.New("failed to parse data from page")

	ErrNoDocument = errors.New("no document to scrape")
	ErrBadDate    = errors.New("invalid date format, use DD-MM-YYYY")
)

// UpstreamError is a known error sentinel carried inside the payload itself,
// e.g. "Train not found". Message has the delimiter characters stripped.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// MalformedError reports a payload part with fewer segments or fields than
// its layout requires.
type MalformedError struct {
	Stage string
	Want  int
	Got   int
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("invalid data format for %s: need %d, got %d", e.Stage, e.Want, e.Got)
}

// recoverInto turns a panic raised below a decoder boundary into a failure envelope
func recoverInto(decoder string, env *models.Envelope) {
	if r := recover(); r != nil {
		slog.Error("decoder panicked", "decoder", decoder, "panic", r)
		*env = models.Failure(fmt.Sprintf("an error occurred during data processing: %v", r))
	}
}
