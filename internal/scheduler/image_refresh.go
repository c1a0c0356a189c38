package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/awardpool/awardpool/internal/database/catalog"
	"github.com/awardpool/awardpool/internal/metadata"
)

// ImageRefreshScheduler periodically retries image lookups for people and
// works that were imported without one. It never re-parses articles; only
// the missing-image backfill runs on the schedule.
type ImageRefreshScheduler struct {
	repo     *catalog.Repository
	provider metadata.ImageProvider
	schedule string

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.Mutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewImageRefreshScheduler creates a new scheduler instance.
func NewImageRefreshScheduler(repo *catalog.Repository, provider metadata.ImageProvider, schedule string) *ImageRefreshScheduler {
	return &ImageRefreshScheduler{
		repo:     repo,
		provider: provider,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler.
func (s *ImageRefreshScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.cancelFunc = cancel

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		if _, err := s.RunOnce(runCtx); err != nil {
			log.Printf("image refresh run failed: %v", err)
		}
	})
	if err != nil {
		cancel()
		return fmt.Errorf("failed to schedule image refresh: %w", err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true
	log.Printf("Image refresh scheduler started with schedule %q", s.schedule)
	return nil
}

// Stop halts the scheduler and cancels any in-flight run.
func (s *ImageRefreshScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	s.cron.Remove(s.entryID)
	s.cron.Stop()
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.isRunning = false
	log.Printf("Image refresh scheduler stopped")
}

// RunOnce backfills images for every person and work currently missing
// one. A failed lookup leaves the row untouched for the next run.
func (s *ImageRefreshScheduler) RunOnce(ctx context.Context) (int, error) {
	updated := 0

	people, err := s.repo.PeopleMissingImage()
	if err != nil {
		return 0, fmt.Errorf("list people missing images: %w", err)
	}
	for _, person := range people {
		if ctx.Err() != nil {
			return updated, ctx.Err()
		}
		imageURL := s.lookup(ctx, person.Slug)
		if imageURL == "" {
			continue
		}
		if err := s.repo.UpdatePersonImage(person.ID, imageURL); err != nil {
			return updated, fmt.Errorf("update person %d image: %w", person.ID, err)
		}
		updated++
	}

	works, err := s.repo.WorksMissingImage()
	if err != nil {
		return updated, fmt.Errorf("list works missing images: %w", err)
	}
	for _, work := range works {
		if ctx.Err() != nil {
			return updated, ctx.Err()
		}
		imageURL := s.lookup(ctx, work.Slug)
		if imageURL == "" {
			continue
		}
		if err := s.repo.UpdateWorkImage(work.ID, imageURL); err != nil {
			return updated, fmt.Errorf("update work %d image: %w", work.ID, err)
		}
		updated++
	}

	log.Printf("Image refresh run complete: %d images backfilled", updated)
	return updated, nil
}

func (s *ImageRefreshScheduler) lookup(ctx context.Context, slug string) string {
	title := strings.ReplaceAll(slug, "_", " ")
	imageURL, err := s.provider.GetImageURL(ctx, title)
	if err != nil {
		log.Printf("image lookup failed for %q: %v", slug, err)
		return ""
	}
	return imageURL
}
