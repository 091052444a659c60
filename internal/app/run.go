package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	httpapi "order-up/internal/api/http"
	"order-up/internal/app/core"
	"order-up/internal/config"
	"order-up/pkg/logger"
)

type params struct {
	serverParams *core.ServerParams
	configPath   string
	cfg          *config.Config
}

// Execute starts the ordering service and blocks until it exits or a
// shutdown signal arrives.
func Execute(ctx context.Context, mylog logger.Logger, args []string) error {
	newCtx, stop := signal.NotifyContext(ctx, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	params, err := parseParams(args)
	if err != nil {
		if !errors.Is(err, core.ErrHelp) {
			mylog.Action("command_parse_failed").Error("Invalid command received", err)
		}
		return err
	}
	if err = validateParams(params); err != nil {
		mylog.Action("command_validation_failed").Error("Invalid command received", err)
		return err
	}
	mylog.Action("command_validation_completed").Info("Successfully validated params")

	if mylog, err = mylog.Leveled(params.cfg.Log.Level); err != nil {
		return err
	}

	server := httpapi.NewServer(newCtx, context.Background(), params.cfg, params.serverParams, mylog)

	g, gctx := errgroup.WithContext(newCtx)
	g.Go(func() error {
		if err := server.Run(); err != nil && !errors.Is(err, httpapi.ErrServerClosed) {
			mylog.Action("order_service_failed").Error("Server failed unexpectedly", err)
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		mylog.Action("shutdown_signal_received").Info("Shutting down")
		return server.Stop(context.Background())
	})
	return g.Wait()
}

// parseParams parses command line flags.
func parseParams(args []string) (*params, error) {
	fs := flag.NewFlagSet("order-up", flag.ContinueOnError)
	showHelp := fs.Bool("help", false, "Show help")
	configPath := fs.String("config-path", "config.yaml", "path to the YAML config")
	port := fs.Int("port", 0, "port to listen on (overrides the config)")

	if err := fs.Parse(args); err != nil {
		return nil, core.ErrParseCmd
	}

	if *showHelp {
		fs.Usage()
		return nil, core.ErrHelp
	}

	return &params{
		serverParams: &core.ServerParams{Port: *port},
		configPath:   *configPath,
	}, nil
}

// validateParams loads the config and checks the effective settings.
func validateParams(params *params) error {
	cfg, err := config.Load(params.configPath)
	if err != nil {
		return err
	}
	params.cfg = cfg

	if params.serverParams.Port == 0 {
		params.serverParams.Port = cfg.Server.Port
	}
	if params.serverParams.Port <= 0 || params.serverParams.Port >= 65536 {
		return fmt.Errorf("port must be in [1, 65535]: %d", params.serverParams.Port)
	}
	return nil
}
