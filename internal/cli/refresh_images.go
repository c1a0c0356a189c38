package cli

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/awardpool/awardpool/internal/config"
	"github.com/awardpool/awardpool/internal/database"
	"github.com/awardpool/awardpool/internal/database/catalog"
	"github.com/awardpool/awardpool/internal/scheduler"
	"github.com/awardpool/awardpool/internal/wikipedia"
)

type RefreshImagesCommand struct {
	DatabasePath string
}

func NewRefreshImagesCommand() *RefreshImagesCommand {
	return &RefreshImagesCommand{}
}

func (cmd *RefreshImagesCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("refresh-images", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the catalog database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s refresh-images [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Retry image lookups for people and works missing one.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *RefreshImagesCommand) Run() error {
	cfg := config.NewConfig()

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

	refresher := scheduler.NewImageRefreshScheduler(repo, client, cfg.ImageRefresh.Schedule)
	updated, err := refresher.RunOnce(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Backfilled %d images\n", updated)
	return nil
}
