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
	"github.com/awardpool/awardpool/internal/metadata"
	"github.com/awardpool/awardpool/internal/parsers"
	"github.com/awardpool/awardpool/internal/services"
	"github.com/awardpool/awardpool/internal/wikipedia"
)

type CommitCommand struct {
	URL          string
	DatabasePath string
}

func NewCommitCommand() *CommitCommand {
	return &CommitCommand{}
}

func (cmd *CommitCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("commit", flag.ExitOnError)

	fs.StringVar(&cmd.URL, "url", "", "Wikipedia article URL of the awards ceremony (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the catalog database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s commit [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Parse an awards article and persist the catalog in one transaction.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s commit -url https://en.wikipedia.org/wiki/96th_Academy_Awards\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.URL == "" {
		fs.Usage()
		return fmt.Errorf("url is required")
	}
	return nil
}

func (cmd *CommitCommand) Run() error {
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
	parser := parsers.NewAwardsParser(config.DefaultCompactLayout(), cfg.Importer.DefaultPointValue)
	enricher := metadata.NewEnricher(client)
	store := catalog.NewRepository(db.DB)

	service := services.NewImportService(client, enricher, store, parser)

	event, err := service.Commit(context.Background(), cmd.URL)
	if err != nil {
		return err
	}

	nominations := 0
	for _, cat := range event.Categories {
		nominations += len(cat.Nominations)
	}

	fmt.Printf("\n=== Import Complete ===\n")
	fmt.Printf("Event: %s (id %d)\n", event.Name, event.ID)
	fmt.Printf("Categories created: %d\n", len(event.Categories))
	fmt.Printf("Nominations created: %d\n", nominations)
	return nil
}
