package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/okonkwoa/ataraxia/internal/cli"
	"github.com/okonkwoa/ataraxia/internal/db"
	"github.com/okonkwoa/ataraxia/internal/intelligence"
	"github.com/okonkwoa/ataraxia/internal/llm"
	"github.com/okonkwoa/ataraxia/internal/repository"
	"github.com/okonkwoa/ataraxia/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.ataraxia/ataraxia.db
	dbPath := os.Getenv("ATARAXIA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".ataraxia", "ataraxia.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	habitRepo := repository.NewSQLiteHabitRepo(database)
	stressRepo := repository.NewSQLiteStressRepo(database)
	messageRepo := repository.NewSQLiteMessageRepo(database)
	notificationRepo := repository.NewSQLiteNotificationRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	habitSvc := service.NewHabitService(habitRepo, uow)
	stressSvc := service.NewStressService(stressRepo)
	notificationSvc := service.NewNotificationService(notificationRepo)

	transcript := service.NewTranscriptSaver(messageRepo, service.DefaultTranscriptDebounce, slog.Default())
	defer transcript.Close()

	llmCfg := llm.LoadConfig()
	var llmObserver llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		llmObserver = llm.NewLogObserver(os.Stderr)
	}
	llmClient := llm.NewOllamaClient(llmCfg, llmObserver)

	intentSvc := intelligence.NewIntentService(llmClient, llmObserver)
	classifySvc := intelligence.NewClassifyService(llmClient, llmObserver)
	replySvc := intelligence.NewReplyService(llmClient, llmObserver)

	var useCaseObserver service.UseCaseObserver = service.NoopUseCaseObserver{}
	if llmCfg.LogCalls {
		useCaseObserver = service.NewLogUseCaseObserver(os.Stderr)
	}

	chatSvc := service.NewChatService(
		intentSvc, classifySvc, replySvc,
		habitSvc, stressSvc, notificationSvc,
		transcript, messageRepo,
		useCaseObserver,
	)

	app := &cli.App{
		Chat:          chatSvc,
		Habits:        habitSvc,
		Stress:        stressSvc,
		Notifications: notificationSvc,
		Import:        service.NewImportService(habitRepo, stressRepo, uow),
		ModelEnabled:  llmCfg.Enabled,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
