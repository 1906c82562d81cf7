package api

import (
	"context"
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"

	"DriverDesk/internal/constants"
)

// AdminPasswordHeader carries the administrator password.
const AdminPasswordHeader = "X-Admin-Password"

// DepsContextKey - ключ для сохранения зависимостей в контексте запроса.
var DepsContextKey = &contextKey{"Deps"}

type contextKey struct {
	name string
}

// DepsMiddleware добавляет зависимости в контекст запроса.
func DepsMiddleware(deps ApiDependencies) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), DepsContextKey, deps)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func depsFrom(r *http.Request) ApiDependencies {
	deps, _ := r.Context().Value(DepsContextKey).(ApiDependencies)
	return deps
}

// AdminMiddleware сравнивает заголовок с паролем администратора.
// This is a kiosk-level gate, not an authentication system.
func AdminMiddleware(password string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			given := r.Header.Get(AdminPasswordHeader)
			if given == "" || subtle.ConstantTimeCompare([]byte(given), []byte(password)) != 1 {
				log.Warnf("AdminMiddleware: отказ в доступе: %s %s", r.Method, r.URL.Path)
				writeJSONError(w, http.StatusUnauthorized, constants.CodeUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogger пишет одну строку logrus на каждый запрос.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			entry := log.WithFields(log.Fields{
				"request_id": middleware.GetReqID(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     ww.Status(),
				"bytes":      ww.BytesWritten(),
				"duration":   time.Since(start).String(),
				"remote":     r.RemoteAddr,
			})
			switch {
			case ww.Status() >= http.StatusInternalServerError:
				entry.Error("request")
			case ww.Status() >= http.StatusBadRequest:
				entry.Warn("request")
			default:
				entry.Info("request")
			}
		}()
		next.ServeHTTP(ww, r)
	})
}
