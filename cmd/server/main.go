package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"spectral-server/internal/engine"
	"spectral-server/internal/server"
	"spectral-server/internal/version"
	"spectral-server/pkg/logger"
)

func init() {
	// .env до инициализации логгера: LOG_LEVEL/LOG_FORMAT читаются там
	_ = godotenv.Load()
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var hunters int
	var configPath string
	var replayPath string
	var headless bool
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for random)")
	flag.IntVar(&hunters, "hunters", 0, "Hunter count override (0 to keep config)")
	flag.StringVar(&configPath, "config", "", "Path to simulation config (TOML)")
	flag.StringVar(&replayPath, "replay", "", "Path to .hhjl journal to replay")
	flag.BoolVar(&headless, "headless", false, "Run without the spectator HTTP server")
	flag.Parse()

	logger.Log.Info("Starting Spectral Server...")
	logger.Log.Info(version.String())

	// Формируем конфиг
	cfg := engine.NewConfig()
	if configPath != "" {
		if err := cfg.ApplyFile(configPath); err != nil {
			logger.Log.Fatal("Failed to load config:", err)
		}
	}
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", cfg.Seed)
	} else {
		logger.Log.Infof("🎲 Using random Master Seed: %d", cfg.Seed)
	}
	if hunters != 0 {
		cfg.HunterCount = hunters
	}
	if err := cfg.Validate(); err != nil {
		logger.Log.Fatal("Invalid configuration:", err)
	}

	// 2. Инициализация ядра
	gameService := engine.NewService(cfg)

	// РЕЖИМ РЕПЛЕЯ
	if replayPath != "" {
		logger.Log.Info("💿 Mode: Journal Replay")
		if err := gameService.ReplayJournal(replayPath); err != nil {
			logger.Log.Fatal("Failed to replay journal:", err)
		}
		return
	}

	// 3. Запуск сервера зрителей
	if !headless {
		port := os.Getenv("HH_PORT")
		if port == "" {
			port = "8080"
		}
		srv := server.New(gameService, port)
		go func() {
			if err := srv.Run(); err != nil {
				logger.Log.Fatal("Server start error:", err)
			}
		}()
	}

	// Graceful Shutdown: сигнал переводится в кооперативную отмену,
	// акторы дорабатывают текущий тик.
	ctx, cancel := context.WithCancel(context.Background())
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		logger.Log.Info("Shutting down...")
		cancel()
	}()

	// 4. Прогон охоты
	verdict, err := gameService.RunSimulation(ctx)
	if err != nil {
		logger.Log.Fatal("Simulation failed:", err)
	}

	// 5. Итоговый отчет
	logger.Log.Info("=================================")
	logger.Log.Info("All done! Let's tally the results...")
	logger.Log.Info("=================================")
	for _, h := range verdict.Hunters {
		logger.Log.WithFields(logrus.Fields{
			"fear":    h.Fear,
			"boredom": h.Boredom,
			"exit":    h.Exit.String(),
		}).Infof("Hunter %s", h.Name)
	}
	logger.Log.WithField("boredom", verdict.GhostBoredom).Infof("Ghost was a %s", verdict.GhostClass)
	logger.Log.Info("Verdict: ", verdict.Summary())

	logger.Log.Info("Done.")
}
