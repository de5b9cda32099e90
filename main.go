package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/runner"
	"github.com/sheikhrachel/go-life/utils"
	"github.com/sheikhrachel/go-life/view"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(utils.DefaultConfigFile)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			log.Fatalf("loading configuration: %+v", err)
		}
		config = utils.DefaultConfig()
	}
	if err = utils.ParseFlags(&config, os.Args[1:]); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if config.Interactive {
		runInteractive(config)
		return
	}
	runTerminal(config)
}

func runInteractive(config utils.Config) {
	ui, err := view.NewInteractive(config, sourceFactory(config))
	if err != nil {
		log.Fatalf("starting interactive viewer: %+v", err)
	}
	if err = ui.Start(context.Background()); err != nil {
		log.Fatalf("%+v", err)
	}
}

func runTerminal(config utils.Config) {
	r, err := runner.New(config, model.NewTerminalRenderer(os.Stdout, config.Color), sourceFactory(config))
	if err != nil {
		log.Fatalf("%+v", err)
	}
	displayGameInfo(config)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer cancel()
		return r.Run(ctx)
	})
	eg.Go(func() error {
		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			cancel()
		case <-ctx.Done():
		}
		return nil
	})

	if err = eg.Wait(); err != nil {
		log.Fatalf("%+v", err)
	}
	displayFinalStats(r)
}
