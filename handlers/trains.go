// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/railapi/decode"
	"github.com/danielhkuo/railapi/middleware"
	"github.com/danielhkuo/railapi/models"
	"github.com/danielhkuo/railapi/upstream"
)

// Upstream fetches raw pages. *upstream.Client implements it.
type Upstream interface {
	TrainsBetween(ctx context.Context, from, to string) (string, error)
	Train(ctx context.Context, trainNo string) (string, error)
	Route(ctx context.Context, trainID string) (string, error)
	StationLive(ctx context.Context, code string) (string, error)
	PNRStatus(ctx context.Context, pnr string) (string, error)
}

// TrainHandler serves the rail lookups. It is safe for concurrent use.
type TrainHandler struct {
	up Upstream
}

// NewTrainHandler returns a handler fetching through up
func NewTrainHandler(up Upstream) *TrainHandler {
	return &TrainHandler{up: up}
}

// GetTrain handles GET /getTrain?trainNo=
func (h *TrainHandler) GetTrain(w http.ResponseWriter, r *http.Request) {
	trainNo, ok := requireQuery(w, r, "trainNo")
	if !ok {
		return
	}

	raw, err := h.up.Train(r.Context(), trainNo)
	if err != nil {
		upstreamFailed(w, r, err)
		return
	}

	middleware.EnvelopeResponse(w, decode.DecodeTrainDetail(raw))
}

// BetweenStations handles GET /betweenStations?from=&to=
func (h *TrainHandler) BetweenStations(w http.ResponseWriter, r *http.Request) {
	from, ok := requireQuery(w, r, "from")
	if !ok {
		return
	}
	to, ok := requireQuery(w, r, "to")
	if !ok {
		return
	}

	raw, err := h.up.TrainsBetween(r.Context(), from, to)
	if err != nil {
		upstreamFailed(w, r, err)
		return
	}

	middleware.EnvelopeResponse(w, decode.DecodeTrainList(raw))
}

// GetTrainOn handles GET /getTrainOn?from=&to=&date=DD-MM-YYYY
// Returns the between-stations list narrowed to trains running on date
func (h *TrainHandler) GetTrainOn(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to, date := q.Get("from"), q.Get("to"), q.Get("date")
	if from == "" || to == "" || date == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Parameters 'from', 'to', and 'date' are required.")
		return
	}

	day, month, year, err := decode.ParseDate(date)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid date format. Please use DD-MM-YYYY.")
		return
	}
	dayIndex := decode.DayIndex(day, month, year)
	if dayIndex == decode.InvalidDay {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid date provided for processing.")
		return
	}

	raw, err := h.up.TrainsBetween(r.Context(), from, to)
	if err != nil {
		upstreamFailed(w, r, err)
		return
	}

	entries, err := decode.ParseTrainList(raw)
	if err != nil {
		middleware.EnvelopeResponse(w, models.Failure(err.Error()))
		return
	}

	middleware.EnvelopeResponse(w, models.Success(decode.FilterRunningOn(entries, dayIndex)))
}

// GetRoute handles GET /getRoute?trainNo=
// Looks the train up first to learn its train_id, then fetches the route
func (h *TrainHandler) GetRoute(w http.ResponseWriter, r *http.Request) {
	trainNo, ok := requireQuery(w, r, "trainNo")
	if !ok {
		return
	}

	raw, err := h.up.Train(r.Context(), trainNo)
	if err != nil {
		upstreamFailed(w, r, err)
		return
	}

	detail, err := decode.ParseTrainDetail(raw)
	if err != nil {
		middleware.EnvelopeResponse(w, models.Failure(err.Error()))
		return
	}
	if strings.TrimSpace(detail.TrainID) == "" {
		slog.Error("train lookup returned no train_id",
			"request_id", middleware.RequestID(r.Context()),
			"train_no", trainNo,
		)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Could not extract train_id from initial train data.")
		return
	}

	routeRaw, err := h.up.Route(r.Context(), detail.TrainID)
	if err != nil {
		upstreamFailed(w, r, err)
		return
	}

	middleware.EnvelopeResponse(w, decode.DecodeRoute(routeRaw))
}

// StationLive handles GET /stationLive?code=
func (h *TrainHandler) StationLive(w http.ResponseWriter, r *http.Request) {
	code, ok := requireQuery(w, r, "code")
	if !ok {
		return
	}

	page, err := h.up.StationLive(r.Context(), code)
	if err != nil {
		upstreamFailed(w, r, err)
		return
	}

	middleware.EnvelopeResponse(w, decode.ScrapeLiveStationHTML(strings.NewReader(page)))
}

// PNRStatus handles GET /pnrstatus?pnr=
func (h *TrainHandler) PNRStatus(w http.ResponseWriter, r *http.Request) {
	pnr, ok := requireQuery(w, r, "pnr")
	if !ok {
		return
	}

	page, err := h.up.PNRStatus(r.Context(), pnr)
	if err != nil {
		upstreamFailed(w, r, err)
		return
	}

	middleware.EnvelopeResponse(w, decode.ExtractEmbeddedJSON(page))
}

// requireQuery writes a 400 when the query parameter is missing
func requireQuery(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, name+" parameter is required")
		return "", false
	}
	return v, true
}

// upstreamFailed maps a fetch error to a response. A 4xx/5xx upstream status
// is passed through; anything else is a 502.
func upstreamFailed(w http.ResponseWriter, r *http.Request, err error) {
	id := middleware.RequestID(r.Context())

	var statusErr *upstream.StatusError
	if errors.As(err, &statusErr) && statusErr.Code >= http.StatusBadRequest {
		slog.Warn("upstream returned error status", "request_id", id, "error", err)
		middleware.ErrorResponse(w, statusErr.Code, fmt.Sprintf("HTTP error: %d", statusErr.Code))
		return
	}

	slog.Error("upstream request failed", "request_id", id, "error", err)
	middleware.ErrorResponse(w, http.StatusBadGateway, "Request failed: "+err.Error())
}
