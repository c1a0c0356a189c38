package metadata

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/awardpool/awardpool/internal/parsers"
)

// ImageProvider looks up a representative image URL for an article title.
// Implemented by wikipedia.Client.
type ImageProvider interface {
	GetImageURL(ctx context.Context, title string) (string, error)
}

// Enricher attaches representative images to every person and work
// referenced by a parsed event. Lookups run best effort: a failure for one
// slug leaves only that slug without an image and never fails the import.
type Enricher struct {
	provider ImageProvider
}

func NewEnricher(provider ImageProvider) *Enricher {
	return &Enricher{provider: provider}
}

// EnrichEvent fetches one image per unique slug and writes the results
// back onto every nomination sharing that slug.
func (e *Enricher) EnrichEvent(ctx context.Context, event *parsers.ParsedEvent) {
	slugs := collectSlugs(event)
	if len(slugs) == 0 {
		return
	}

	images := e.fetchImages(ctx, slugs)

	for ci := range event.Categories {
		noms := event.Categories[ci].Nominations
		for ni := range noms {
			if noms[ni].PersonSlug != "" && noms[ni].PersonImageURL == "" {
				noms[ni].PersonImageURL = images[noms[ni].PersonSlug]
			}
			if noms[ni].WorkSlug != "" && noms[ni].WorkImageURL == "" {
				noms[ni].WorkImageURL = images[noms[ni].WorkSlug]
			}
		}
	}
}

// fetchImages issues one lookup per slug. Lookups are independent, so they
// run concurrently and merge by slug key; arrival order is irrelevant.
func (e *Enricher) fetchImages(ctx context.Context, slugs []string) map[string]string {
	images := make(map[string]string, len(slugs))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, slug := range slugs {
		wg.Add(1)
		go func(slug string) {
			defer wg.Done()
			title := strings.ReplaceAll(slug, "_", " ")
			imageURL, err := e.provider.GetImageURL(ctx, title)
			if err != nil {
				log.Printf("image lookup failed for %q: %v", slug, err)
				return
			}
			if imageURL == "" {
				return
			}
			mu.Lock()
			images[slug] = imageURL
			mu.Unlock()
		}(slug)
	}
	wg.Wait()
	return images
}

func collectSlugs(event *parsers.ParsedEvent) []string {
	seen := make(map[string]bool)
	var slugs []string
	for _, cat := range event.Categories {
		for _, nom := range cat.Nominations {
			for _, slug := range []string{nom.PersonSlug, nom.WorkSlug} {
				if slug != "" && !seen[slug] {
					seen[slug] = true
					slugs = append(slugs, slug)
				}
			}
		}
	}
	return slugs
}
