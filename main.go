package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"weather-server/config"
	"weather-server/di"
	services "weather-server/service"
	"weather-server/telemetry"
	"weather-server/util"
)

// resolveOnce prints the weather for a single city and exits.
func resolveOnce(ctx context.Context, container *di.Container, city string) int {
	outcome, err := container.WeatherService.ResolveWeatherForCity(ctx, city)
	if errors.Is(err, services.ErrInvalidCity) {
		fmt.Fprintln(os.Stderr, "Please enter a valid city name (letters and spaces only).")
		return 2
	}
	if err != nil {
		log.Printf("[MAIN] resolution of %q aborted: %v", city, err)
		return 1
	}
	if !outcome.IsSuccess() {
		fmt.Fprintln(os.Stderr, outcome.Kind.Message())
		return 1
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "City:\t%s\n", services.NormalizeCity(city))
	fmt.Fprintf(w, "Temperature:\t%.1f °C\n", outcome.Weather.Temperature)
	fmt.Fprintf(w, "Wind speed:\t%.1f m/s\n", outcome.Weather.WindSpeed)
	fmt.Fprintf(w, "Summary:\t%s\n", outcome.Weather.Summary)
	w.Flush()
	return 0
}

// plotCandidates renders every geocoding candidate for city into an HTML map.
func plotCandidates(ctx context.Context, container *di.Container, city, path string) int {
	res, err := container.GeocodingAPI.Search(ctx, services.NormalizeCity(city))
	if err != nil {
		log.Printf("[MAIN] search for %q aborted: %v", city, err)
		return 1
	}
	if !res.IsSuccess() {
		fmt.Fprintln(os.Stderr, services.MapNetworkError(res.Error()).Message())
		return 1
	}

	f, err := os.Create(path)
	if err != nil {
		log.Printf("[MAIN] failed to create %s: %v", path, err)
		return 1
	}
	defer f.Close()

	if err := util.PlotCandidates(city, res.Data(), f); err != nil {
		log.Printf("[MAIN] failed to plot candidates: %v", err)
		return 1
	}
	log.Printf("[MAIN] wrote %d candidates to %s", len(res.Data()), path)
	return 0
}

func run() int {
	city := flag.String("city", "", "resolve the weather for one city and exit")
	mapFile := flag.String("map", "", "with -city, write the geocoding candidates to this HTML file instead")
	flag.Parse()

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.InitProvider(ctx, cfg.OtelServiceName, cfg.OtelEndpoint)
	if err != nil {
		log.Printf("[MAIN] failed to initialize tracing: %v", err)
		return 1
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("[MAIN] failed to shutdown tracer provider: %v", err)
		}
	}()

	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		log.Printf("[MAIN] %v", err)
		return 1
	}
	defer container.Close()

	switch {
	case *city != "" && *mapFile != "":
		return plotCandidates(ctx, container, *city, *mapFile)
	case *city != "":
		return resolveOnce(ctx, container, *city)
	case *mapFile != "":
		fmt.Fprintln(os.Stderr, "-map requires -city")
		return 2
	}

	// the server installs its own signal handling
	stop()
	fmt.Println("starting server!")
	container.WeatherHttpServer.Start()
	return 0
}

func main() {
	os.Exit(run())
}
