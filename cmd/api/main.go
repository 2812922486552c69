// Command api runs the task tracker HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aidar/task-tracker/internal/app"
	"github.com/aidar/task-tracker/internal/config"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	application, err := app.New(cfg)
	if err != nil {
		return err
	}
	logger := application.Logger()

	// Контекст отменяется по Ctrl+C или SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Initialize(ctx); err != nil {
		return err
	}

	logger.Info("Сервер запущен", "port", cfg.Server.Port, "driver", cfg.Database.Driver)

	return serve(ctx, logger, application.Run, application.Shutdown)
}

// serve ждет сигнала или падения сервера и всегда вызывает shutdown.
// Ошибка сервера (кроме http.ErrServerClosed) возвращается вызывающему,
// чтобы процесс завершился с ненулевым кодом.
func serve(ctx context.Context, logger *slog.Logger, start func() error, shutdown func(context.Context) error) error {
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- start()
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Получен сигнал остановки")
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Ошибка сервера", "error", err)
			runErr = err
		}
	}

	// Отдельный контекст: ctx уже отменен
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := shutdown(shutdownCtx); err != nil {
		return errors.Join(runErr, err)
	}
	return runErr
}
