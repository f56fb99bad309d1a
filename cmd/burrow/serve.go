package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cuemby/burrow/pkg/log"
	"github.com/cuemby/burrow/pkg/metrics"
	"github.com/cuemby/burrow/pkg/resolver"
	"github.com/cuemby/burrow/pkg/types"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the lookup HTTP endpoint",
	Long: `Run a small HTTP endpoint exposing lookups, a health check, and
Prometheus metrics:

  GET /lookup?name=NAME&type=TYPE&backend=B&server=S&secure=1&walk=1
  GET /healthz
  GET /metrics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, disp, err := setup()
		if err != nil {
			return err
		}
		metrics.Init()
		for name, ok := range disp.Prober().Available() {
			metrics.SetBackendAvailable(name, ok)
		}

		mux := http.NewServeMux()
		mux.HandleFunc("/lookup", lookupHandler(disp))
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			fmt.Fprintln(w, "ok")
		})
		mux.Handle("/metrics", metrics.Handler())

		srv := &http.Server{
			Addr:         serveAddr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("HTTP server error: %v", err)
			}
		}()

		logger := log.WithComponent("api")
		logger.Info().Str("addr", serveAddr).Msg("lookup endpoint listening")

		// Wait for interrupt signal or server error
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		select {
		case <-sigCh:
			logger.Info().Msg("shutting down")
		case err := <-errCh:
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "listen", "127.0.0.1:8053", "Address to listen on")
}

type lookupResponse struct {
	Name    string         `json:"name"`
	Type    string         `json:"type"`
	Records []types.Record `json:"records"`
}

type errorResponse struct {
	Error string `json:"error"`
	Class string `json:"class"`
}

func lookupHandler(disp *resolver.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		reqLog := log.WithComponent("api").With().
			Str("request_id", uuid.NewString()).
			Str("name", q.Get("name")).
			Logger()

		typeName := q.Get("type")
		if typeName == "" {
			typeName = "A"
		}
		rtype, err := types.ParseRecordType(typeName)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		opts := resolver.Options{
			Backend: q.Get("backend"),
			Servers: q["server"],
			Secure:  isSet(q.Get("secure")),
			Walk:    isSet(q.Get("walk")),
		}
		records, err := disp.Lookup(r.Context(), q.Get("name"), rtype, opts)
		if err != nil {
			reqLog.Warn().Err(err).Msg("lookup failed")
			writeError(w, statusFor(err), err)
			return
		}

		reqLog.Debug().Int("records", len(records)).Msg("lookup served")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(lookupResponse{
			Name:    q.Get("name"),
			Type:    string(rtype),
			Records: records,
		})
	}
}

func isSet(v string) bool {
	return v == "1" || v == "true" || v == "yes"
}

// statusFor maps the outcome classes onto HTTP: caller mistakes are
// 400s, resolver trouble is a 502.
func statusFor(err error) int {
	switch {
	case errors.Is(err, types.ErrBadInput), errors.Is(err, types.ErrUnsupportedType):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{
		Error: err.Error(),
		Class: outcomeClass(err),
	})
}
