package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/bbagher/tibiaclone/internal/agent"
	"github.com/bbagher/tibiaclone/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var serverURL string
	var name string
	var count int
	flag.StringVar(&serverURL, "url", "ws://localhost:8080/ws", "WebSocket endpoint of the game server")
	flag.StringVar(&name, "name", "Hunter", "Bot player name")
	flag.IntVar(&count, "bots", 1, "How many bots to run")
	flag.Parse()

	if count < 1 {
		logger.Log.Fatal("bots must be >= 1")
	}

	logger.Log.Infof("🤖 Starting %d bot(s) -> %s", count, serverURL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		logger.Log.Info("Shutting down...")
		cancel()
	}()

	// 2. Подключение и запуск
	var wg sync.WaitGroup
	for i := 0; i < count; i++ {
		botName := name
		if count > 1 {
			botName = fmt.Sprintf("%s-%d", name, i+1)
		}

		bot, err := agent.Dial(ctx, serverURL, botName)
		if err != nil {
			logger.Log.Fatal("Failed to join:", err)
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Log.Error("Bot stopped:", err)
			}
		}()
	}

	wg.Wait()
	logger.Log.Info("Done.")
}
