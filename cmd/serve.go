package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/cleanse-cli/internal/config"
	"github.com/sells-group/cleanse-cli/internal/model"
	"github.com/sells-group/cleanse-cli/internal/pipeline"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an HTTP endpoint that cleans posted records",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}
		cfg.Server.Port = port
		if err := cfg.Validate("serve"); err != nil {
			return err
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(cfg.Clean),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// cleanRequest is the POST /clean body. Corrections override the
// configured table for this request only.
type cleanRequest struct {
	Records     []model.Customer `json:"records"`
	Corrections map[string]string `json:"corrections,omitempty"`
}

// newRouter builds the HTTP API: a health probe and a synchronous
// cleaning endpoint.
func newRouter(cleanCfg config.CleanConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/clean", func(w http.ResponseWriter, req *http.Request) {
		var body cleanRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		if len(body.Records) == 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "records are required"})
			return
		}

		cleaner := pipeline.New(cleanCfg, pipeline.CorrectionTable(body.Corrections))
		result, err := cleaner.Run(model.NewDataset(body.Records))
		if err != nil {
			status := http.StatusInternalServerError
			if pipeline.IsInsufficientData(err) || pipeline.IsPrecondition(err) {
				status = http.StatusUnprocessableEntity
			}
			zap.L().Warn("clean request failed", zap.Error(err))
			writeJSON(w, status, map[string]string{"error": err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, cleanOutputDoc{
			Records: result.Dataset.Records(),
			Summary: result.Summary,
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
