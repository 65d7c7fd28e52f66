// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the railapi server.

railapi is a read-only proxy in front of erail.in. It fetches the site's
tilde-delimited text responses and HTML pages and answers with JSON wrapped
in a {success, time_stamp, data} envelope.

# Starting the Server

Nothing is required; the defaults point at the public sites:

	go run .

Or with flags:

	go run . -p 3318 -timeout 5s -ua "Mozilla/5.0 ..."

# Configuration

Settings are read from defaults, a YAML file (-c or CONFIG_FILE), the
environment (a .env file in the working directory is loaded first) and
flags, later sources winning:

  - PORT (-p): Server port (default: 3318)
  - ERAIL_BASE_URL (-erail): erail site (default: https://erail.in)
  - PNR_BASE_URL (-pnr): PNR status site (default: https://www.confirmtkt.com)
  - UPSTREAM_TIMEOUT (-timeout): erail request timeout (default: 10s)
  - PNR_TIMEOUT (-pnr-timeout): PNR request timeout (default: 15s)
  - USER_AGENT (-ua): fixed User-Agent; rotated when empty
  - ALLOWED_ORIGIN (-origin): CORS origin; echoed from the request when empty

# Architecture

  - handlers: HTTP request handlers, one per lookup
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, request IDs, JSON helpers
  - upstream: resty client for erail and the PNR site
  - decode: text decoders, HTML scraper, embedded JSON, day index
  - models: Response types and the envelope
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
