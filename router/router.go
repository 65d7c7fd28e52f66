// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/railapi/handlers"
	"github.com/danielhkuo/railapi/middleware"
)

// Banner is served at the root path
const Banner = "railapi v1"

func NewRouter(up handlers.Upstream) *http.ServeMux {
	mux := http.NewServeMux()

	trainHandler := handlers.NewTrainHandler(up)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Train lookups
	mux.HandleFunc("GET /getTrain", middleware.WithLogging(trainHandler.GetTrain))
	mux.HandleFunc("GET /betweenStations", middleware.WithLogging(trainHandler.BetweenStations))
	mux.HandleFunc("GET /getTrainOn", middleware.WithLogging(trainHandler.GetTrainOn))
	mux.HandleFunc("GET /getRoute", middleware.WithLogging(trainHandler.GetRoute))

	// Scraped pages
	mux.HandleFunc("GET /stationLive", middleware.WithLogging(trainHandler.StationLive))
	mux.HandleFunc("GET /pnrstatus", middleware.WithLogging(trainHandler.PNRStatus))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(Banner))
	})

	return mux
}
