package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/blueteamlabs/argus/internal/config"
	"github.com/blueteamlabs/argus/internal/database"
	"github.com/blueteamlabs/argus/internal/logger"
	"github.com/blueteamlabs/argus/internal/server"
	"github.com/blueteamlabs/argus/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init(true, os.Stdout)
		logger.Log().Fatalf("load config: %v", err)
	}

	// Setup logging with rotation
	if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
		cfg.LogDir = filepath.Join("data", "logs")
		_ = os.MkdirAll(cfg.LogDir, 0o755)
	}

	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogDir, "argus.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	// Log to both stdout and file
	logger.Init(cfg.IsDevelopment(), io.MultiWriter(os.Stdout, rotator))

	logger.Log().Infof("starting %s backend version %s", version.Name, version.Full())

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Log().Fatalf("connect database: %v", err)
	}

	srv, err := server.New(db, cfg)
	if err != nil {
		logger.Log().Fatalf("setup server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Log().Infof("listening on :%s", cfg.HTTPPort)
	if err := srv.Run(ctx); err != nil {
		logger.Log().Fatalf("server error: %v", err)
	}
}
