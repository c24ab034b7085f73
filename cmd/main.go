package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/flirtshaala/flirtshaala/internal/auth"
	"github.com/flirtshaala/flirtshaala/internal/config"
	"github.com/flirtshaala/flirtshaala/internal/llm"
	"github.com/flirtshaala/flirtshaala/internal/logger"
	"github.com/flirtshaala/flirtshaala/internal/model"
	"github.com/flirtshaala/flirtshaala/internal/repository/sqlite"
	"github.com/flirtshaala/flirtshaala/internal/sim"
	localstorage "github.com/flirtshaala/flirtshaala/internal/storage/local"
	storage "github.com/flirtshaala/flirtshaala/internal/storage/minio"
	"github.com/flirtshaala/flirtshaala/internal/store"
	"github.com/flirtshaala/flirtshaala/internal/tui"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	// Optional .env for local development; environment wins.
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)
	logger.Info("starting flirtshaala",
		"version", buildVersion,
		"date", buildDate,
		"commit", buildCommit)

	db, err := sqlite.NewConnection(ctx, cfg.Database.Path)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	kvRepo := sqlite.NewKVRepository(db)

	delays := sim.Delays{
		Login:    cfg.Sim.LoginDelay,
		Signup:   cfg.Sim.SignupDelay,
		OCR:      cfg.Sim.OCRDelay,
		Reply:    cfg.Sim.ReplyDelay,
		Purchase: cfg.Sim.PurchaseDelay,
	}

	var authenticator model.Authenticator
	switch cfg.Auth.Provider {
	case "local":
		authenticator = auth.NewLocal(sqlite.NewAccountRepository(db), logger)
	default:
		authenticator = sim.NewAuth(delays, logger)
	}

	var replies model.ReplyGenerator
	if cfg.Reply.Provider == "gemini" && cfg.Gemini.APIKey != "" {
		gemini, err := llm.NewGemini(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, logger)
		if err != nil {
			logger.Fatal("failed to create gemini client", "error", err)
		}
		defer gemini.Close()
		replies = gemini
	} else {
		replies = sim.NewReplies(delays, logger)
	}

	var images model.ImageStore
	if cfg.Storage.Endpoint != "" {
		minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
			Secure: cfg.Storage.UseSSL,
		})
		if err != nil {
			logger.Fatal("failed to create minio client", "error", err)
		}
		images, err = storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
		if err != nil {
			logger.Fatal("failed to initialize storage client", "error", err)
		}
	} else {
		images, err = localstorage.NewStore(cfg.Images.Dir)
		if err != nil {
			logger.Fatal("failed to initialize image directory", "error", err)
		}
	}

	st := store.New(
		authenticator,
		sim.NewOCR(delays, logger),
		replies,
		sim.NewBilling(delays, logger),
		kvRepo,
		logger,
	)
	st.Hydrate(ctx)

	program := tea.NewProgram(tui.New(st, images, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		logger.Fatal("program failed", "error", err)
	}
}
