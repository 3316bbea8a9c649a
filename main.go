package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const defaultConfigFile = "config.json"

// loadConfig reads the config file (falling back to defaults when it is missing),
// applies LIFE_* overrides and validates the result
func loadConfig(path string) (utils.Config, error) {
	config, err := utils.LoadConfig(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		log.Printf("using default configuration (%s not found)", path)
		config = utils.DefaultConfig()
	}

	if err = utils.ApplyEnv(&config); err != nil {
		return config, err
	}
	return config, config.Validate()
}

// serveMetrics exposes reg over HTTP until the returned server is closed
func serveMetrics(addr string, reg *prometheus.Registry) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("metrics server stopped: %v", err)
		}
	}()
	log.Printf("serving metrics on %s", addr)
	return srv
}

func main() {
	log.SetPrefix("[life] ")

	path := defaultConfigFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	config, err := loadConfig(path)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	sim := config.Simulation
	log.Printf("grid %dx%d | max generations: %d | frame rate: %v | patterns: %v",
		sim.Size, sim.Size, sim.MaxGenerations, sim.FrameRate, model.Names())

	grid, err := buildGrid(config)
	if err != nil {
		log.Fatalf("failed to seed grid: %v", err)
	}
	log.Printf("initial living cells: %d", grid.Population())

	reg := prometheus.NewRegistry()
	stats := utils.NewStats(reg)
	if sim.MetricsAddr != "" {
		srv := serveMetrics(sim.MetricsAddr, reg)
		defer srv.Close()
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer := model.NewTerminalRenderer(os.Stdout, sim.ClearScreen)
	reason, err := runGame(ctx, sim, grid, renderer, stats)
	if err != nil {
		log.Fatalf("game failed: %v", err)
	}

	log.Printf("stopped: %s | %d generations in %.1fs | avg population %.1f | %.1f gen/sec",
		reason, stats.TotalGenerations, time.Since(stats.StartTime).Seconds(),
		stats.AveragePopulation, stats.GenerationsPerSecond)
}
