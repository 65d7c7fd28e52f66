// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the JSON contract of the API.

# Envelope

Every endpoint answers with the same wrapper:

	{"success": true, "time_stamp": 1718000000000, "data": ...}

On failure, data is a human-readable string:

	models.Failure("Train not found")
	models.Result(stops, err) // Failure(err.Error()) when err != nil

# Domain Types

  - TrainSummary: one train of a between-stations listing
  - TrainListEntry: TrainSummary under the "train_base" key
  - TrainDetail: single-train lookup, carries train_id for route lookups
  - RouteStop: one stop of a route, upstream order preserved
  - LiveStationEntry: one row of a station live page
  - PnrRecord: opaque JSON passed through from the PNR page

# Running Days

RunningDaysStr is a 7-character string over Y/N. RunningDays holds the
same flags as 1/0 and is empty when the string is not 7 characters long.
*/
package models
