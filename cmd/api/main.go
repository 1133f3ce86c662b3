package main

import (
	"compress/flate"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gamedb/gamescout/pkg/config"
	"github.com/gamedb/gamescout/pkg/log"
	"github.com/gamedb/gamescout/pkg/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {

	log.InitZap(log.LogNameAPI)
	defer log.Flush()

	r := chi.NewRouter()
	r.Use(chiMiddleware.RedirectSlashes)
	r.Use(chiMiddleware.NewCompressor(flate.DefaultCompression, "text/html", "application/json").Handler)
	r.Use(middleware.MiddlewareRealIP)
	r.Use(middleware.RateLimiterBlock(middleware.NewLimiters(time.Second/2, 1), rateLimitedHandler))

	r.Get("/", lookupHandler)
	r.Get("/health-check", healthCheckHandler)

	r.NotFound(errorHandler)

	s := &http.Server{
		Addr:              config.Config.ListenOn(),
		Handler:           r,
		ReadTimeout:       2 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	if config.IsLocal() {
		s.Addr = "localhost:" + config.Config.WebServerPort.Get()
	}

	log.Info("Starting API on http://" + s.Addr)

	err := s.ListenAndServe()
	if err != nil {
		log.ErrS(err)
	}
}

func lookupHandler(w http.ResponseWriter, r *http.Request) {

	name := r.URL.Query().Get("name")
	if name == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// todo, serve the assembled record once the pipeline is wired to the web layer
	returnJSON(w, map[string]string{"key": "value"})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {

	w.Header().Set("Content-Type", "text/plain")
	_, err := w.Write([]byte("OK"))
	if err != nil {
		log.ErrS(err)
	}
}

func errorHandler(w http.ResponseWriter, _ *http.Request) {

	w.WriteHeader(http.StatusNotFound)
	returnJSON(w, map[string]string{"message": "Invalid endpoint"})
}

func rateLimitedHandler(w http.ResponseWriter, _ *http.Request) {

	w.WriteHeader(http.StatusTooManyRequests)
	returnJSON(w, map[string]string{"message": "Too many requests"})
}

func returnJSON(w http.ResponseWriter, i interface{}) {

	w.Header().Set("Content-Type", "application/json")

	b, err := json.Marshal(i)
	if err != nil {
		log.ErrS(err)
	}

	_, err = w.Write(b)
	if err != nil {
		log.ErrS(err)
	}
}
