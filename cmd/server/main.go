package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/bbagher/tibiaclone/internal/engine"
	"github.com/bbagher/tibiaclone/internal/server"
	"github.com/bbagher/tibiaclone/internal/version"
	"github.com/bbagher/tibiaclone/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var port string
	var staticDir string
	// Читаем флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "World seed (0 for random)")
	flag.StringVar(&port, "port", "", "HTTP port (overrides TC_PORT)")
	flag.StringVar(&staticDir, "static", "", "Directory with the web client to serve at /")
	flag.Parse()

	logger.Log.Info("Starting Tibia Clone...")
	logger.Log.Info(version.String())

	// Формируем конфиг
	cfg := engine.NewConfig()
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit world seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random world seed: %d", cfg.Seed)
	}

	if port == "" {
		port = os.Getenv("TC_PORT")
	}
	if port == "" {
		port = "8080"
	}

	// 2. Инициализация ядра с конфигом
	gameService := engine.NewService(cfg)
	gameService.Start()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(gameService, port)
	srv.StaticDir = staticDir

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
	gameService.Stop()
	logger.Log.Info("Done.")
}
