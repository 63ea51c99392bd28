package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/Kornerupin/blur-text/internal/adapters/http"
	redisadapter "github.com/Kornerupin/blur-text/pkg/adapters/redis"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the decoration HTTP server",
	Long: `Starts a stateless JSON API: POST /v1/decorate takes an HTML document, a
CSS selector and optional category overrides, and returns the decorated
document. Prometheus metrics are exposed on /metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		redisAddr, _ := cmd.Flags().GetString("redis")
		redisTTL, _ := cmd.Flags().GetDuration("redis-ttl")
		logger := newLogger(cmd)

		opts := []httpadapter.Option{httpadapter.WithLogger(logger)}
		if redisAddr != "" {
			cache := redisadapter.New(redisAddr, "", 0, redisadapter.WithTTL(redisTTL))
			defer cache.Close()
			opts = append(opts, httpadapter.WithCache(cache))
		}

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: httpadapter.NewHandler(prometheus.NewRegistry(), opts...),
		}

		serverErrors := make(chan error, 1)
		go func() {
			fmt.Printf("Starting blurtext server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Blurtext server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address enabling the decorated-document cache (e.g. localhost:6379)")
	serveCmd.Flags().Duration("redis-ttl", time.Hour, "TTL for cached documents")
}
