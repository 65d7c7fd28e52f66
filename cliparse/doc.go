// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a validated Config:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - ErailBaseURL: train data site (default: https://erail.in)
  - PNRBaseURL: PNR status site (default: https://www.confirmtkt.com)
  - UpstreamTimeout: per-request timeout (default: 10s)
  - PNRTimeout: PNR request timeout (default: 15s)
  - UserAgent: fixed User-Agent; empty rotates a built-in pool
  - AllowedOrigin: CORS origin; empty echoes the request Origin

# Sources

Later sources win:

	defaults < YAML file (-c / CONFIG_FILE) < environment < CLI flags

# CLI Flags and Environment Variables

	-c            CONFIG_FILE
	-p            PORT
	-erail        ERAIL_BASE_URL
	-pnr          PNR_BASE_URL
	-timeout      UPSTREAM_TIMEOUT
	-pnr-timeout  PNR_TIMEOUT
	-ua           USER_AGENT
	-origin       ALLOWED_ORIGIN

LoadEnvFile reads a .env file into the environment first; main calls it
with ".env" before ParseFlags.

# YAML File

	port: 8080
	erail_base_url: https://erail.in
	upstream_timeout: 5s

# Validation

The final Config is checked with go-playground/validator: port in 1-65535,
base URLs must be URLs, timeouts must be positive.
*/
package cliparse
