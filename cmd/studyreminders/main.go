package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"study-reminders/internal/bot"
	"study-reminders/internal/config"
	"study-reminders/internal/repository"
	"study-reminders/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load returns usable defaults even when the token is missing, and
	// the import mode does not need one.
	cfg, err := config.Load()
	if err != nil && os.Getenv("IMPORT_FILE") == "" {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	reminderRepo := repository.NewReminderRepository(db)
	usageRepo := repository.NewUsageRepository(db)

	reminderSvc := service.NewReminderService(reminderRepo)
	activitySvc := service.NewActivityService(reminderRepo, usageRepo)

	// One-shot migration mode: load a store export and exit.
	if path := os.Getenv("IMPORT_FILE"); path != "" {
		runImport(ctx, path, userRepo, reminderRepo)
		return
	}

	telegramBot, err := bot.New(cfg.TelegramToken, userRepo, reminderSvc, activitySvc, &cfg)
	if err != nil {
		log.Fatalf("bot: %v", err)
	}

	scheduler := service.NewSchedulerService(time.Local)
	if _, err := scheduler.ScheduleDaily(cfg.SummaryTime, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := telegramBot.SendDailySummaries(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("daily summary: %v", err)
		}
	}); err != nil {
		log.Fatalf("schedule daily summary: %v", err)
	}
	if cfg.ReportInterval > 0 {
		if _, err := scheduler.ScheduleInterval(cfg.ReportInterval, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := telegramBot.SendDailySummaries(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("interval summary: %v", err)
			}
		}); err != nil {
			log.Fatalf("schedule interval summary: %v", err)
		}
	}
	scheduler.Start()
	defer scheduler.Stop()

	log.Println("Study reminders bot started.")
	if err := telegramBot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("bot stopped with error: %v", err)
	}
	log.Println("Shutdown complete.")
}

// runImport loads a JSON export of reminders for the user named by
// IMPORT_TELEGRAM_ID, creating the user if needed.
func runImport(ctx context.Context, path string, userRepo *repository.UserRepository, reminderRepo *repository.ReminderRepository) {
	rawID := os.Getenv("IMPORT_TELEGRAM_ID")
	telegramID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		log.Fatalf("IMPORT_TELEGRAM_ID must be a number, got %q", rawID)
	}

	user, err := userRepo.UpsertFromTelegram(ctx, telegramID, "", "", "")
	if err != nil {
		log.Fatalf("import user: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		log.Fatalf("open export: %v", err)
	}
	defer file.Close()

	importSvc := service.NewImportService(reminderRepo)
	count, err := importSvc.ImportJSON(ctx, user, file)
	if err != nil {
		log.Fatalf("import: %v", err)
	}
	log.Printf("Imported %d reminders for telegram id %d.", count, telegramID)
}
