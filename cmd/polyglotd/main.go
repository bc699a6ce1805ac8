// Polyglotd is a multilingual chatbot daemon that answers telephony
// webhook events with replies in the caller's language.
//
// Usage:
//
//	polyglotd [flags]
//	polyglotd --config /path/to/polyglot.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	healthgrpc "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/polyglotbot/polyglot/internal/catalog"
	"github.com/polyglotbot/polyglot/internal/config"
	"github.com/polyglotbot/polyglot/internal/detect"
	"github.com/polyglotbot/polyglot/internal/engine"
	"github.com/polyglotbot/polyglot/internal/health"
	"github.com/polyglotbot/polyglot/internal/speech"
	"github.com/polyglotbot/polyglot/internal/translate"
	"github.com/polyglotbot/polyglot/internal/webhook"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configFile := flag.String("config", "", "path to config file (e.g. configs/polyglot.yaml)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("polyglotd %s\n", version)
		os.Exit(0)
	}

	// Load .env if present so credentials like LIBRE_API_KEY resolve.
	_ = godotenv.Load()

	// Load configuration.
	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging.
	config.SetupLogging(cfg.Logging)
	slog.Info("polyglotd starting", "version", version)

	// Create root context with signal handling for graceful shutdown.
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	responses := catalog.Load(cfg.Responses.File, slog.Default())
	detector := detect.NewChain(slog.Default())

	var speaker speech.Speaker = speech.NewNoOp(slog.Default())
	if cfg.Voice.Enabled {
		speaker = speech.NewHTGo(cfg.Voice.AudioDir)
		slog.Info("voice output enabled", "audio_dir", cfg.Voice.AudioDir)
	}

	// Each call gets its own engine with its own provider chain; the
	// dispatcher tracks per-conversation state and is not shared.
	newEngine := func() *engine.Engine {
		dispatcher := translate.NewDispatcher(slog.Default(),
			translate.NewMyMemory(cfg.Translation.MyMemory.BaseURL),
			translate.NewLibreTranslate(cfg.Translation.LibreTranslate.BaseURL, cfg.Translation.LibreTranslate.APIKey),
			translate.NewLingva(cfg.Translation.Lingva.BaseURL),
		)
		return engine.New(detector, dispatcher, responses, speaker, slog.Default())
	}

	webhookServer := webhook.New(cfg.Server.WebhookPort, newEngine, slog.Default())

	// Start health check server.
	healthServer := health.New(cfg.Server.HealthPort)
	go func() {
		if err := healthServer.ListenAndServe(ctx); err != nil {
			slog.Error("health server failed", "error", err)
		}
	}()

	// Start the gRPC health service for load balancers that probe
	// over gRPC instead of HTTP.
	grpcServer := grpc.NewServer()
	grpcHealth := healthgrpc.NewServer()
	healthpb.RegisterHealthServer(grpcServer, grpcHealth)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.GRPCPort))
	if err != nil {
		slog.Error("failed to listen for gRPC", "port", cfg.Server.GRPCPort, "error", err)
		os.Exit(1)
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		slog.Info("grpc health service listening", "port", cfg.Server.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("grpc server failed", "error", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		slog.Info("webhook server starting", "port", cfg.Server.WebhookPort)
		if err := webhookServer.Listen(ctx); err != nil {
			slog.Error("webhook server failed", "error", err)
		}
	}()

	// Mark as ready once all listeners are started.
	healthServer.SetReady(true)
	grpcHealth.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	slog.Info("polyglotd ready",
		"webhook_port", cfg.Server.WebhookPort,
		"health_port", cfg.Server.HealthPort,
		"grpc_port", cfg.Server.GRPCPort)

	// Block until shutdown signal.
	<-ctx.Done()
	slog.Info("shutdown signal received, draining...")

	grpcHealth.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	grpcServer.GracefulStop()
	if err := webhookServer.Close(); err != nil {
		slog.Error("webhook server close error", "error", err)
	}

	wg.Wait()
	slog.Info("polyglotd stopped")
}
