package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/spoofgg/rust-scmm-bot/internal/bot"
	"github.com/spoofgg/rust-scmm-bot/internal/config"
	"github.com/spoofgg/rust-scmm-bot/internal/logger"
	"github.com/spoofgg/rust-scmm-bot/internal/scmm"
)

var configPath = flag.String("config", "configs/config.yaml", "Path to configuration file")

func main() {
	flag.Parse()

	// .env is optional; the token usually lives there as SCMM_BOT_DISCORD_TOKEN.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	logger.Info("Configuration loaded from %s", *configPath)

	scmmClient := scmm.NewClient(cfg.SCMM.BaseURL, cfg.SCMM.Timeout)

	b, err := bot.New(cfg.Discord, scmmClient)
	if err != nil {
		logger.Fatal("Failed to create bot: %v", err)
	}

	if err := b.Start(); err != nil {
		logger.Fatal("Failed to start bot: %v", err)
	}
	logger.Info("Bot is running (guild %s). Press Ctrl+C to exit.", cfg.Discord.GuildID)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutdown signal received, cleaning up...")
	if err := b.Shutdown(); err != nil {
		logger.Error("Failed to close Discord session: %v", err)
	}
	logger.Info("Service stopped")
}
