package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/tbeaudouin05/stripe-relay/api/bootstrap"
	"github.com/tbeaudouin05/stripe-relay/api/config"
	"github.com/tbeaudouin05/stripe-relay/api/router"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// define flags; each overrides the environment variable it is bound to
	flag.StringP("port", "p", "", "HTTP listen port (PORT)")
	flag.String("grpc-port", "", "gRPC listen port (GRPC_PORT)")
	flag.String("log-level", "", "debug, info, warn or error (LOG_LEVEL)")
	flag.String("stripe-api-url", "", "Stripe API base URL override (STRIPE_API_URL)")
	flag.Parse()

	for key, name := range map[string]string{
		"PORT":           "port",
		"GRPC_PORT":      "grpc-port",
		"LOG_LEVEL":      "log-level",
		"STRIPE_API_URL": "stripe-api-url",
	} {
		if err := viper.BindPFlag(key, flag.Lookup(name)); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	config.AppConfig = cfg
	if err := bootstrap.Ensure(); err != nil {
		return err
	}
	defer bootstrap.Close()
	logger := bootstrap.Logger()

	httpSrv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router.NewRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	grpcSrv, health := router.NewGRPCServer(logger.Named("grpc"))
	grpcLis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		return fmt.Errorf("listening on gRPC port %s: %w", cfg.GRPCPort, err)
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("http server started", zap.String("addr", httpSrv.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()
	go func() {
		logger.Info("grpc server started", zap.String("addr", grpcLis.Addr().String()))
		if err := grpcSrv.Serve(grpcLis); err != nil {
			errCh <- fmt.Errorf("grpc server: %w", err)
		}
	}()
	router.MarkServing(health)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err = <-errCh:
		logger.Error("server failed", zap.Error(err))
	}

	health.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if serr := httpSrv.Shutdown(shutdownCtx); serr != nil {
		logger.Warn("http shutdown", zap.Error(serr))
	}
	stopped := make(chan struct{})
	go func() {
		grpcSrv.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		grpcSrv.Stop()
	}
	return err
}
