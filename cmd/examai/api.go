package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/spf13/cobra"

	"github.com/saulo-duarte/examai/internal/config"
	"github.com/saulo-duarte/examai/internal/container"
	"github.com/saulo-duarte/examai/internal/router"
)

func newAPICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "api",
		Short: "Run the exam relay API",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}

			c := container.New(settings)
			defer c.Close()

			handler := router.New(router.RouterConfig{
				ExamHandler:    c.ExamContainer.Handler,
				AllowedOrigins: settings.CORS.AllowedOrigins,
			})

			if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
				config.Logger.Info("Starting relay API as a Lambda function")
				lambda.Start(httpadapter.New(handler).ProxyWithContext)
				return nil
			}

			return serve(cmd.Context(), fmt.Sprintf(":%d", settings.Server.Port), handler)
		},
	}
}

// serve runs handler on addr until the process is interrupted.
func serve(ctx context.Context, addr string, handler http.Handler) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		config.Logger.Infof("Listening on %s", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		config.Logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
