package cli

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/awardpool/awardpool/internal/config"
	"github.com/awardpool/awardpool/internal/database"
	"github.com/awardpool/awardpool/internal/database/catalog"
	"github.com/awardpool/awardpool/internal/scheduler"
	"github.com/awardpool/awardpool/internal/wikipedia"
)

type ScheduleCommand struct {
	DatabasePath string
	Schedule     string
}

func NewScheduleCommand() *ScheduleCommand {
	return &ScheduleCommand{}
}

func (cmd *ScheduleCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("schedule", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the catalog database file")
	fs.StringVar(&cmd.Schedule, "cron", "", "Cron schedule for the image backfill (default from config)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s schedule [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Run the periodic image backfill until interrupted.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ScheduleCommand) Run() error {
	cfg := config.NewConfig()
	if cmd.Schedule == "" {
		cmd.Schedule = cfg.ImageRefresh.Schedule
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	client := wikipedia.NewClient(cfg.Wikipedia.BaseURL, cfg.Wikipedia.UserAgent)
	repo := catalog.NewRepository(db.DB)

	refresher := scheduler.NewImageRefreshScheduler(repo, client, cmd.Schedule)
	if err := refresher.Start(context.Background()); err != nil {
		return err
	}
	defer refresher.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Printf("Shutting down")
	return nil
}
