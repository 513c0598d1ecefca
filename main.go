package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ca-srg/azusage/infrastructure/di"
)

func main() {
	// Parse command line flags
	var (
		debugMode = flag.Bool("debug", false, "Enable debug logging to stderr")
	)
	flag.Parse()

	// Create DI container with options
	opts := []di.ContainerOption{}
	if *debugMode {
		opts = append(opts, di.WithDebugMode(true))
	}

	container, err := di.NewContainer(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := container.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to clean up: %v\n", err)
		}
	}()

	// Cancel the run on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Only an unusable Azure session ends the run with a non-zero exit code
	if err := container.GetCLIController().Run(ctx); err != nil {
		os.Exit(1)
	}
}
