package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MikhailRaia/cat-viewer/internal/catapi"
	"github.com/MikhailRaia/cat-viewer/internal/config"
	"github.com/MikhailRaia/cat-viewer/internal/handler"
	"github.com/MikhailRaia/cat-viewer/internal/middleware"
	"github.com/MikhailRaia/cat-viewer/internal/proto"
	"github.com/MikhailRaia/cat-viewer/internal/service"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config     *config.Config
	handler    http.Handler
	grpcServer *grpc.Server
}

func NewApp(cfg *config.Config) *App {
	catClient := catapi.NewClient(cfg.CatAPIURL, cfg.RequestTimeout)

	imageService := service.NewImageService(catClient)

	httpHandler := handler.NewHandler(imageService, cfg.EnableGzip)

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(middleware.UnaryLogger))
	proto.RegisterImageServiceServer(grpcServer, handler.NewImageGRPCServer(imageService))

	return &App{
		config:     cfg,
		handler:    httpHandler.RegisterRoutes(),
		grpcServer: grpcServer,
	}
}

// Run serves HTTP, and gRPC when an address is configured, until ctx is
// cancelled or one of the servers fails. Both are then shut down gracefully.
func (a *App) Run(ctx context.Context) error {
	var grpcListener net.Listener
	if a.config.GRPCAddress != "" {
		lis, err := net.Listen("tcp", a.config.GRPCAddress)
		if err != nil {
			return fmt.Errorf("error listening for gRPC: %w", err)
		}
		grpcListener = lis
	}

	server := &http.Server{
		Addr:              a.config.ServerAddress,
		Handler:           a.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().
			Str("address", a.config.ServerAddress).
			Str("upstream", a.config.CatAPIURL).
			Msg("Starting HTTP server")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error running HTTP server: %w", err)
		}
		return nil
	})

	if grpcListener != nil {
		g.Go(func() error {
			log.Info().Str("address", grpcListener.Addr().String()).Msg("Starting gRPC server")

			if err := a.grpcServer.Serve(grpcListener); err != nil {
				return fmt.Errorf("error running gRPC server: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()

		log.Info().Msg("Shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		a.grpcServer.GracefulStop()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
