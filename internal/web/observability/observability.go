// Package observability provides HTTP middleware for request logging.
package observability

import (
	"log"
	"net/http"
	"time"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

// RequestLogger logs one line per request with method, path, status,
// response size, latency and the X-Request-ID header when present.
func RequestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)
			if rec.status == 0 {
				rec.status = http.StatusOK
			}
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				logger.Printf("method=%s path=%s status=%d bytes=%d latency=%s",
					r.Method, r.URL.Path, rec.status, rec.bytes, time.Since(start))
				return
			}
			logger.Printf("method=%s path=%s status=%d bytes=%d latency=%s request_id=%s",
				r.Method, r.URL.Path, rec.status, rec.bytes, time.Since(start), requestID)
		})
	}
}
