package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
)

// CompressHandler gzips responses for clients that accept it. The ward list
// payload is the main beneficiary; everything else is small.
func CompressHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Add("Vary", "Accept-Encoding")

		gz := gzip.NewWriter(w)
		defer gz.Close()

		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, writer: gz}, r)
	})
}

type gzipResponseWriter struct {
	http.ResponseWriter
	writer io.Writer
}

func (gw *gzipResponseWriter) Write(b []byte) (int, error) {
	// Content-Length would be wrong after compression.
	gw.Header().Del("Content-Length")
	return gw.writer.Write(b)
}
