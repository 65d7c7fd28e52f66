// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package decode turns raw upstream payloads into normalized records.

Nothing here performs I/O. Every function takes the raw text (or a parsed
document) and returns either a typed value and an error, or the same result
wrapped in a models.Envelope.

# Decoders

	DecodeTrainList(raw)       // between-stations listing, "~~~~~~~~" records
	DecodeTrainDetail(raw)     // single train, two "~~~~~~~~" segments
	DecodeRoute(raw)           // TRAINROUTE, "~^" segments
	ScrapeLiveStation(doc)     // station-live HTML via goquery
	ExtractEmbeddedJSON(html)  // `data = {...};` inside a page script

Each Decode/Scrape/Extract function has a Parse counterpart returning
(value, error). The envelope forms never panic: a panic below them is
recovered into a failure envelope.

# Errors

  - *UpstreamError: the payload is a known error sentinel ("Train not found")
  - *MalformedError: too few segments or fields for the layout
  - ErrEmptyResponse, ErrNoTrains, ErrNoRouteData, ErrNoRouteStops: nothing decoded
  - ErrEmbeddedNotFound, ErrEmbeddedInvalid: PNR page data missing or not JSON

The delimited decoders treat zero records as a failure. The live station
scraper treats zero rows as an empty success.

# Running Days

Running-days bitstrings start on Wednesday. DayIndex maps a date to its bit:

	idx := decode.DayIndex(3, 1, 2024) // Wednesday -> 0
	trains := decode.FilterRunningOn(entries, idx)

DayIndex returns InvalidDay (-1) for dates that do not exist.
*/
package decode
