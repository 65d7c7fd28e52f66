// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the rail API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	client := upstream.NewClient(cfg)
	mux := router.NewRouter(client)

# Endpoints

Health:

	GET /health

Train lookups (erail text format):

	GET /getTrain?trainNo=           - Single train details
	GET /betweenStations?from=&to=   - Trains between two stations
	GET /getTrainOn?from=&to=&date=  - Same, narrowed to a DD-MM-YYYY date
	GET /getRoute?trainNo=           - Stop list, via the train's train_id

Scraped pages:

	GET /stationLive?code= - Live arrivals at a station
	GET /pnrstatus?pnr=    - PNR status from the embedded page data

Every lookup answers with the {success, time_stamp, data} envelope and is
wrapped in middleware.WithLogging. Only GET is registered, so other methods
get a 405.
*/
package router
