// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /getTrain", middleware.WithLogging(handler))

Every request gets an ID (X-Request-ID, or a fresh UUID), echoed in the
response and available to handlers through RequestID(r.Context()).
Logs request start (method, path, remote) and completion (status, size,
duration_ms).

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigin, mux),
	}

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.EnvelopeResponse(w, decode.DecodeRoute(raw))
	middleware.ErrorResponse(w, http.StatusBadRequest, "trainNo parameter is required")

ErrorResponse writes the same {success, time_stamp, data} envelope as the
decoders, with success=false.

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Handles X-Forwarded-For and X-Real-IP before falling back to RemoteAddr.
*/
package middleware
