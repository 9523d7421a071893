package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/coffeepair/coffee-chat-bot/internal/config"
	"github.com/coffeepair/coffee-chat-bot/internal/database"
	"github.com/coffeepair/coffee-chat-bot/internal/domain/service"
	"github.com/coffeepair/coffee-chat-bot/internal/handlers"
	"github.com/coffeepair/coffee-chat-bot/internal/logger"
	"github.com/coffeepair/coffee-chat-bot/internal/scheduler"
	"github.com/coffeepair/coffee-chat-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		_, _ = os.Stderr.WriteString("warning: .env file not found\n")
	}

	cfg, err := config.Load()
	if err != nil {
		_, _ = os.Stderr.WriteString("config error: " + err.Error() + "\n")
		os.Exit(2)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		_, _ = os.Stderr.WriteString("logger init error: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatal("invalid timezone", zap.String("timezone", cfg.Timezone), zap.Error(err))
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	log.Info("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}
	log.Info("migrations completed")

	slackClient := slack.New(cfg.SlackBotToken)

	dm := database.NewInstance(db)
	coffeeChatService := service.New(dm, slackClient, log, service.Options{
		Location:             loc,
		LookbackWeeks:        cfg.LookbackWeeks,
		DefaultFrequencyDays: cfg.DefaultFrequency,
	})

	sched := scheduler.New(coffeeChatService, log, loc, cfg.RoundHour, cfg.ReminderHour)
	sched.Start()
	defer sched.Stop()

	handler := handlers.New(slackClient, coffeeChatService, cfg.SlackSigningSecret, log)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.HandleFunc("/slack/interactions", handler.HandleInteraction)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	log.Info("server starting", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
