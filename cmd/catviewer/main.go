package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"syscall"

	"github.com/MikhailRaia/cat-viewer/internal/app"
	"github.com/MikhailRaia/cat-viewer/internal/config"
	"github.com/MikhailRaia/cat-viewer/internal/logger"
	"github.com/rs/zerolog/log"
)

var memprofile = flag.String("memprofile", "", "write memory profile to `file`")

func writeHeapProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating heap profile: %w", err)
	}
	defer f.Close()

	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("error writing heap profile: %w", err)
	}
	return nil
}

func main() {
	cfg := config.NewConfig()

	logger.InitLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.NewApp(cfg)
	err := application.Run(ctx)

	if *memprofile != "" {
		if err := writeHeapProfile(*memprofile); err != nil {
			log.Error().Err(err).Str("path", *memprofile).Msg("Failed to write heap profile")
		}
	}

	if err != nil {
		log.Fatal().Err(err).Msg("Error running application")
	}
}
