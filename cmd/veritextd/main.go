// Command veritextd is the veritext detection service.
// It serves the detection endpoint, a capability descriptor, and a health
// check.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/veritext/veritext/internal/api"
	"github.com/veritext/veritext/pkg/config"
	"github.com/veritext/veritext/pkg/detect"
)

func main() {
	cfgPath := flag.String("config", envOrDefault("VERITEXT_CONFIG", ""), "path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}

	handler := api.NewHandler(detect.New())
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	chain := api.CORS(cfg.Server.AllowedOrigin)(
		api.APIKeyAuth(cfg.Server.APIKey)(
			api.RequestLog(
				api.MaxBytes(cfg.Limits.MaxBodyBytes)(mux))))

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: chain,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("starting veritextd on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
