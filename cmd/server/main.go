// Command server exposes the grac syllabifier as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/syllabify?word=<word>[&mode=lookup|never|every]
//	POST /api/syllabify/text   body: {"text":"..."}
//	GET  /api/mono?text=<text>[&diaeresis=load-bearing|preserve|strip]
//	GET  /api/accent?word=<word>&position=<n>
//	GET  /healthz
//	GET  /metrics
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/greek-text/grac"
	"github.com/greek-text/grac/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	envFile := flag.String("env", ".env", "dotenv file with GRAC_* overrides")
	addr := flag.String("addr", "", "listen address (default :8080)")
	synizesis := flag.String("synizesis", "", "extra synizesis YAML merged over the built-in list")
	logFile := flag.String("log-file", "", "rotating log file")
	flag.Parse()

	cfg := defaultConfig()
	if err := loadConfigFile(&cfg, *configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := loadEnv(&cfg, *envFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Addr = *addr
		case "synizesis":
			cfg.Synizesis = *synizesis
		case "log-file":
			cfg.LogFile = *logFile
		}
	})

	logger, closer, err := logging.Setup(os.Stdout, logging.Options{File: cfg.LogFile})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()

	table, err := loadTable(cfg.Synizesis)
	if err != nil {
		logger.Error("failed to load synizesis data", slog.String("err", err.Error()))
		os.Exit(1)
	}
	logger.Info("synizesis table loaded", slog.Int("words", table.Len()))

	m := newMetrics()
	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(newMux(grac.New(table), m))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", slog.String("err", err.Error()))
		}
	}()

	logger.Info("listening", slog.String("addr", cfg.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// loadTable returns the built-in synizesis table, extended with the
// entries of path when it is set.
func loadTable(path string) (*grac.SynizesisTable, error) {
	table := grac.DefaultSynizesisTable()
	if path == "" {
		return table, nil
	}
	extra, err := grac.LoadSynizesisFile(path)
	if err != nil {
		return nil, err
	}
	return table.With(extra), nil
}
