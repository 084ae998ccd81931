package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/lex/internal/cli"
	httpAdapter "github.com/aretw0/lex/pkg/adapters/http"
	"github.com/aretw0/lex/pkg/adapters/memory"
	redisAdapter "github.com/aretw0/lex/pkg/adapters/redis"
	"github.com/aretw0/lex/pkg/ports"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP session server",
	Long:  `Starts the lex engine in server mode, exposing parsing and step-wise session playback as a JSON API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		addr, _ := cmd.Flags().GetString("addr")

		cfg, err := cli.LoadServeConfig(configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if cmd.Flags().Changed("addr") {
			cfg.Addr = addr
		}

		logger := newLogger(cmd)

		var store ports.SessionStore
		switch cfg.Store {
		case "memory":
			store = memory.NewStore()
		case "redis":
			redisStore := redisAdapter.New(
				cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
				redisAdapter.WithPrefix(cfg.Redis.Prefix),
				redisAdapter.WithTTL(cfg.Redis.TTL),
			)
			defer redisStore.Close()
			store = redisStore
		default:
			fmt.Printf("Unknown store %q (supported: memory, redis)\n", cfg.Store)
			os.Exit(1)
		}

		handler := httpAdapter.NewHandler(store, httpAdapter.WithLogger(logger))

		srv := &http.Server{
			Addr:    cfg.Addr,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Lex Server on %s (store: %s)\n", srv.Addr, cfg.Store)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Lex Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
	serveCmd.Flags().StringP("config", "c", "", "Path to a YAML server config")
}
