package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"restaurant-menu/bot"
	"restaurant-menu/config"
	"restaurant-menu/logger"
	"restaurant-menu/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, err := logger.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}

	menu, err := services.SampleMenu()
	if err != nil {
		log.Fatal().Err(err).Msg("build menu")
	}

	// Check for bot subcommand
	if len(os.Args) > 1 && os.Args[1] == "bot" {
		if cfg.Telegram.Token == "" {
			fmt.Fprintln(os.Stderr, "TOKEN not set")
			os.Exit(1)
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		b, err := bot.New(cfg, menu, logger.Component(log, "bot"))
		if err != nil {
			fmt.Fprintln(os.Stderr, "bot:", err)
			os.Exit(1)
		}
		log.Info().Msg("bot started")
		b.Start(ctx)
		log.Info().Msg("bot stopped")
		return
	}

	if err := services.PrintMenu(os.Stdout, menu, logger.Component(log, "printer")); err != nil {
		os.Exit(1)
	}
}
