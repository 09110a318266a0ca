package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/studybuddy-app/studybuddy/internal/cli"
	"github.com/studybuddy-app/studybuddy/internal/db"
	"github.com/studybuddy-app/studybuddy/internal/intelligence"
	"github.com/studybuddy-app/studybuddy/internal/llm"
	"github.com/studybuddy-app/studybuddy/internal/repository"
	"github.com/studybuddy-app/studybuddy/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.studybuddy/studybuddy.db
	dbPath := os.Getenv("STUDYBUDDY_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".studybuddy", "studybuddy.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	profileRepo := repository.NewSQLiteUserProfileRepo(database)
	classRepo := repository.NewSQLiteClassRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	noteRepo := repository.NewSQLiteNoteRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)
	chatRepo := repository.NewSQLiteChatRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire the chat collaborator (only when enabled)
	var llmClient llm.Client
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient = llm.NewChatClient(llmCfg, observer)
	}

	// Wire services
	profileSvc := service.NewProfileService(profileRepo)
	classSvc := service.NewClassService(classRepo)
	taskSvc := service.NewTaskService(taskRepo)
	noteSvc := service.NewNoteService(noteRepo)
	sessionSvc := service.NewSessionService(sessionRepo)
	scheduleSvc := service.NewScheduleService(scheduleRepo)
	planSvc := service.NewPlanService(planRepo, uow)

	summarizeSvc := intelligence.NewSummarizeService(llmClient)
	chatSvc := intelligence.NewChatService(
		taskSvc, classSvc, noteSvc, sessionSvc, scheduleSvc, planSvc, profileSvc,
		chatRepo, summarizeSvc, llmClient,
	)

	app := &cli.App{
		Profile:   profileSvc,
		Classes:   classSvc,
		Tasks:     taskSvc,
		Notes:     noteSvc,
		Sessions:  sessionSvc,
		Schedule:  scheduleSvc,
		Plans:     planSvc,
		Chat:      chatSvc,
		Summarize: summarizeSvc,
	}

	// Detect interactive terminal for the chat REPL and plan wizard.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
