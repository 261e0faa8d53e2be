package api

import (
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/descope/go-sdk/descope/client"
	"github.com/mindhaven-org/backend/config"
	"github.com/mindhaven-org/backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authMiddleware struct {
	responder  Responder
	descope    *client.DescopeClient
	adminToken string
}

// newAuthMiddleware builds the admin auth guard. With DESCOPE_PROJECT_ID
// set, bearer tokens are validated as Descope session tokens; otherwise
// ADMIN_TOKEN acts as a shared secret for local development.
func newAuthMiddleware(cfg map[string]string) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()

	m := authMiddleware{
		responder:  NewResponder(logger),
		adminToken: config.GetString(cfg, "ADMIN_TOKEN", ""),
	}

	projectID := config.GetString(cfg, "DESCOPE_PROJECT_ID", "")
	if projectID != "" {
		descopeClient, err := client.NewWithConfig(&client.Config{ProjectID: projectID})
		if err != nil {
			logger.Error().Err(err).Msg("Failed to initialize Descope client, falling back to ADMIN_TOKEN auth")
		} else {
			m.descope = descopeClient
		}
	}

	return m
}

func (m authMiddleware) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			m.responder.WriteError(w, errs.Unauthorized)
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			m.responder.WriteError(w, errs.Unauthorized)
			return
		}

		if m.descope != nil {
			valid, sessionToken, err := m.descope.Auth.ValidateSessionWithToken(r.Context(), token)
			if err != nil || !valid {
				m.responder.WriteError(w, errs.Unauthorized)
				return
			}
			updatedReq := r.WithContext(ctxWithUserID(r.Context(), sessionToken.ID))
			next.ServeHTTP(w, updatedReq)
			return
		}

		if m.adminToken == "" || token != m.adminToken {
			m.responder.WriteError(w, errs.Unauthorized)
			return
		}

		updatedReq := r.WithContext(ctxWithUserID(r.Context(), "admin"))
		next.ServeHTTP(w, updatedReq)
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

func LogInternalServerErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", err).
					Str("stack", string(debug.Stack())).
					Msg("Recovered from panic")

				// Write 500 if nothing written yet
				if !srw.wroteHeader {
					srw.WriteHeader(http.StatusInternalServerError)
				}
			}
		}()

		next.ServeHTTP(srw, r)

		// Log 500s that weren't panics (e.g. manually set by handlers)
		if srw.status == http.StatusInternalServerError {
			log.Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("500 error response")
		}
	})
}

// ColoredHTTPLoggingMiddleware logs HTTP requests with colored output based on status codes
func ColoredHTTPLoggingMiddleware(next http.Handler) http.Handler {
	colorLogger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		next.ServeHTTP(srw, r)

		duration := time.Since(start)

		var logEvent *zerolog.Event
		switch {
		case srw.status >= 500:
			logEvent = colorLogger.Error()
		case srw.status >= 400:
			logEvent = colorLogger.Warn()
		default:
			logEvent = colorLogger.Info()
		}

		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", srw.status).
			Dur("duration", duration).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP Request")
	})
}
