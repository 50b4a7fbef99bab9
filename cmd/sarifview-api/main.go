// Command sarifview-api serves one viewer session over HTTP
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sarifview/internal/adapters/seed"
	"sarifview/internal/core/invalidate"
	"sarifview/internal/platform/config"
	"sarifview/internal/platform/logger"
	phttp "sarifview/internal/platform/net/http"
	"sarifview/internal/platform/net/middleware"
	"sarifview/internal/platform/version"
	"sarifview/internal/services/viewer/module"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	_ = godotenv.Load()

	showVersion := flag.Bool("version", false, "print build info and exit")
	flag.Parse()

	info := version.Info("sarifview-api")
	if *showVersion {
		fmt.Printf("%s %s (%s, %s)\n", info.Service, info.Version, info.Commit, info.Date)
		return
	}

	// service-scoped config (CORE_VIEWER_*)
	cfg := config.New().Prefix("CORE_VIEWER_")
	l := logger.Get()
	l.Info().Str("version", info.Version).Str("commit", info.Commit).Msg("starting sarifview-api")

	var sf *seed.File
	if path := cfg.MayFile("SEED"); path != "" {
		f, err := seed.Load(path)
		if err != nil {
			l.Fatal().Err(err).Str("path", path).Msg("seed load failed")
		}
		sf = f
	}

	var review invalidate.Review
	if cfg.MayBool("REVIEW", true) {
		review = invalidate.NewPipeline()
	}

	var reg *prometheus.Registry
	if cfg.MayBool("METRICS", true) {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	m, err := module.New(module.Options{
		Prefix:   cfg.MayString("PREFIX", "/v1"),
		Review:   review,
		Seed:     sf,
		Registry: reg,
		Swagger:  cfg.MayBool("SWAGGER", true),
	})
	if err != nil {
		l.Fatal().Err(err).Msg("viewer module failed")
	}
	defer m.Close()

	// http server (reads CORE_VIEWER_PORT)
	srv := phttp.NewServer(cfg)
	r := srv.Router()
	r.Use(middleware.Stack(middleware.StackOptions{
		SessionID:   m.SessionID(),
		CORSOrigins: cfg.MayCSV("CORS_ORIGINS", nil),
		Slow:        cfg.MayDuration("SLOW", 500*time.Millisecond),
		Timeout:     cfg.MayDuration("TIMEOUT", 30*time.Second),
	})...)
	phttp.GetJSON(r, "/version", func(*http.Request) (any, error) { return info, nil })
	m.MountRoutes(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l.Info().Str("addr", srv.Addr()).Str("prefix", m.Prefix()).Msg("listening")
	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
		os.Exit(1)
	}
}
