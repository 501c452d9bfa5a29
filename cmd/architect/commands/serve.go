package commands

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/pranavyk10/guided-component-architect/internal/api"
)

// serve: run the HTTP API until interrupted.
func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the component generation API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if os.Getenv("APP_ENV") == "production" {
				gin.SetMode(gin.ReleaseMode)
			} else {
				gin.SetMode(gin.DebugMode)
				log.Println("Running in Gin Debug Mode")
			}

			router := gin.New()
			router.Use(gin.Logger())
			router.Use(gin.Recovery())
			api.RegisterRoutes(router, api.NewAPIHandler(pipe, set))

			server := &http.Server{
				Addr:        cfg.ServerAddress,
				Handler:     router,
				ReadTimeout: 15 * time.Second,
				// A request may legitimately hold the connection for two
				// LLM calls; leave slack beyond that.
				WriteTimeout: 2*cfg.LLMTimeout() + 30*time.Second,
				IdleTimeout:  60 * time.Second,
			}

			go func() {
				log.Printf("Starting API server on %s", cfg.ServerAddress)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("API server listen error: %s", err)
				}
				log.Println("API server has stopped listening.")
			}()

			// Block until SIGINT or SIGTERM.
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			sig := <-quit
			log.Printf("Received signal: %s. Shutting down server...", sig)

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				log.Printf("API server forced shutdown error: %v", err)
				return err
			}
			log.Println("API server gracefully stopped.")
			return nil
		},
	}
}
