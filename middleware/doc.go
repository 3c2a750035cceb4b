// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /categories", middleware.WithLogging(handler))

Each request gets an ID (taken from X-Request-ID or a fresh UUID) that is
echoed in the response header and attached to the start and completion
log lines along with method, path, remote, status and duration_ms.

# Rate Limiting

	limiter := middleware.NewLimiter(cfg.RateLimit)
	mux.HandleFunc("POST /simulate", middleware.WithRateLimit(limiter, h.Simulate))

Each client, as reported by GetClientIP, gets its own token bucket.
Requests over a client's budget get 429. Buckets idle for ClientIdleTTL are
dropped. A nil limiter passes everything through.

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

ParseJSONBody rejects unknown fields and bodies over MaxBodyBytes.

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.SimulateRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)
*/
package middleware
