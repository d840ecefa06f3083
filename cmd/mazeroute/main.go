// Package main is the entry point for mazeroute.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-logr/stdr"
	"github.com/joho/godotenv"

	"github.com/samdwyer/mazeroute/internal/config"
	"github.com/samdwyer/mazeroute/internal/engine"
	"github.com/samdwyer/mazeroute/internal/telemetry"
)

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout))
}

// realMain runs the command and returns its exit code. Deferred cleanup,
// including the span flush, has run by the time it returns.
func realMain(args []string, stdout io.Writer) int {
	flags := flag.NewFlagSet("mazeroute", flag.ContinueOnError)
	configPath := flags.String("config", "mazeroute.yaml", "path to the YAML config file")
	width := flags.Int("width", 0, "maze width in cells (overrides config)")
	height := flags.Int("height", 0, "maze height in cells (overrides config)")
	seed := flags.Int64("seed", 0, "random seed (overrides config)")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	stdr.SetVerbosity(cfg.Verbosity)
	logger := stdr.New(log.New(os.Stderr, "", log.LstdFlags)).WithName("mazeroute")

	ctx := context.Background()

	tracer := telemetry.NoopTracer()
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
		if err != nil {
			logger.Error(err, "telemetry setup failed, running without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Error(err, "telemetry shutdown failed")
				}
			}()
			tracer = telemetry.Tracer("engine")
		}
	}

	if err := run(ctx, cfg, stdout, engine.WithLogger(logger), engine.WithTracer(tracer)); err != nil {
		logger.Error(err, "maze run failed")
		return 1
	}
	return 0
}

// run builds the maze described by cfg and writes it, with the requested route, to out.
func run(ctx context.Context, cfg config.Config, out io.Writer, opts ...engine.Option) error {
	opts = append(opts, engine.WithSeed(cfg.Seed))
	eng, err := engine.Configure(cfg.Width, cfg.Height, opts...)
	if err != nil {
		return err
	}

	for _, gw := range cfg.Gateways {
		eng.RegisterGateway(gw.X, gw.Y)
	}

	tiles, err := eng.GenerateTiles(ctx)
	if err != nil {
		return err
	}

	if cfg.Route == nil {
		_, err = io.WriteString(out, tiles.String())
		return err
	}

	route, err := eng.FindRoute(ctx, tiles,
		cfg.Route.From.X, cfg.Route.From.Y, cfg.Route.To.X, cfg.Route.To.Y)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "%sroute: %d tiles\n", tiles.Render(route), route.Len())
	return err
}
