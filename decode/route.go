// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package decode

import (
	"log/slog"

	"github.com/danielhkuo/railapi/models"
)

// DecodeRoute decodes a TRAINROUTE payload into an envelope
func DecodeRoute(raw string) (env models.Envelope) {
	defer recoverInto("route", &env)
	stops, err := ParseRoute(raw)
	return models.Result(stops, err)
}

// ParseRoute splits the payload on "~^" into stops. Segments with fewer than
// ten fields are skipped; stop order follows the payload.
func ParseRoute(raw string) ([]models.RouteStop, error) {
	segments := splitNonEmpty(raw, markerSep)
	if len(segments) == 0 {
		return nil, ErrNoRouteData
	}

	stops := make([]models.RouteStop, 0, len(segments))
	for i, segment := range segments {
		f := splitNonEmpty(segment, fieldSep)
		if len(f) < routeMinFields {
			slog.Debug("skipping short route segment", "segment", i, "fields", len(f))
			continue
		}
		stops = append(stops, models.RouteStop{
			SourceStnName: f[routeSourceStnName],
			SourceStnCode: f[routeSourceStnCode],
			Arrive:        f[routeArrive],
			Depart:        f[routeDepart],
			Distance:      f[routeDistance],
			Day:           f[routeDay],
			Zone:          f[routeZone],
		})
	}

	if len(stops) == 0 {
		return nil, ErrNoRouteStops
	}
	return stops, nil
}
