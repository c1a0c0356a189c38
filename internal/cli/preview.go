package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/awardpool/awardpool/internal/config"
	"github.com/awardpool/awardpool/internal/metadata"
	"github.com/awardpool/awardpool/internal/parsers"
	"github.com/awardpool/awardpool/internal/services"
	"github.com/awardpool/awardpool/internal/wikipedia"
)

type PreviewCommand struct {
	URL        string
	SkipImages bool
}

func NewPreviewCommand() *PreviewCommand {
	return &PreviewCommand{}
}

func (cmd *PreviewCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)

	fs.StringVar(&cmd.URL, "url", "", "Wikipedia article URL of the awards ceremony (required)")
	fs.BoolVar(&cmd.SkipImages, "skip-images", false, "Skip image enrichment for a faster preview")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s preview [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Parse an awards article and print a summary without writing anything.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s preview -url https://en.wikipedia.org/wiki/96th_Academy_Awards\n", os.Args[0])
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

func (cmd *PreviewCommand) Run() error {
	cfg := config.NewConfig()

	client := wikipedia.NewClient(cfg.Wikipedia.BaseURL, cfg.Wikipedia.UserAgent)
	parser := parsers.NewAwardsParser(config.DefaultCompactLayout(), cfg.Importer.DefaultPointValue)

	var enricher *metadata.Enricher
	if !cmd.SkipImages {
		enricher = metadata.NewEnricher(client)
	}

	// Preview never touches storage, so no store is wired here.
	service := services.NewImportService(client, enricher, nil, parser)

	preview, err := service.Preview(context.Background(), cmd.URL)
	if err != nil {
		return err
	}

	fmt.Printf("\n=== %s ===\n", preview.EventName)
	if preview.EventDate != nil {
		fmt.Printf("Date: %s\n", preview.EventDate.Format("January 2, 2006"))
	}
	if preview.Description != "" {
		fmt.Printf("%s\n", preview.Description)
	}
	fmt.Printf("\nCategories: %d, Nominations: %d\n", preview.CategoryCount, preview.NominationCount)

	for _, cat := range preview.Categories {
		fmt.Printf("\n%s (%d nominations, %d pts)\n", cat.Name, cat.NominationCount, cat.PointValue)
		for _, nom := range cat.Sample {
			marker := " "
			if nom.IsWinner {
				marker = "*"
			}
			fmt.Printf("  %s %s\n", marker, nom.Text)
		}
		if cat.NominationCount > len(cat.Sample) {
			fmt.Printf("    ... and %d more\n", cat.NominationCount-len(cat.Sample))
		}
	}
	return nil
}
