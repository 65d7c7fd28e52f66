// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the train API.

# Handler Types

TrainHandler serves every endpoint. It depends only on an Upstream, which
fetches raw pages:

	trainHandler := handlers.NewTrainHandler(upstream.NewClient(cfg))

# Endpoints

	GET /getTrain?trainNo=            → GetTrain (decode.DecodeTrainDetail)
	GET /betweenStations?from=&to=    → BetweenStations (decode.DecodeTrainList)
	GET /getTrainOn?from=&to=&date=   → GetTrainOn (list filtered by running day)
	GET /getRoute?trainNo=            → GetRoute (train lookup, then route by train_id)
	GET /stationLive?code=            → StationLive (decode.ScrapeLiveStationHTML)
	GET /pnrstatus?pnr=               → PNRStatus (decode.ExtractEmbeddedJSON)

# Responses

Decoder results are written as-is with status 200, including failures such
as "Train not found". Handler-level problems use the same envelope shape
with an error status:

  - 400: missing query parameter, malformed or impossible date
  - upstream status: the upstream site answered 4xx or 5xx
  - 502: transport failure, or a train lookup without a train_id
*/
package handlers
