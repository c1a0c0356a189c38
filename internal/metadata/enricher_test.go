package metadata

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/awardpool/awardpool/internal/parsers"
)

type stubImageProvider struct {
	mu     sync.Mutex
	images map[string]string
	errs   map[string]error
	calls  map[string]int
}

func (s *stubImageProvider) GetImageURL(ctx context.Context, title string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = make(map[string]int)
	}
	s.calls[title]++
	if err := s.errs[title]; err != nil {
		return "", err
	}
	return s.images[title], nil
}

func TestEnrichEvent(t *testing.T) {
	provider := &stubImageProvider{
		images: map[string]string{
			"Person X": "https://img/person-x.jpg",
			"Work A":   "https://img/work-a.jpg",
		},
		errs: map[string]error{
			"Person Y": errors.New("lookup failed"),
		},
	}
	enricher := NewEnricher(provider)

	event := &parsers.ParsedEvent{
		Categories: []parsers.ParsedCategory{
			{
				Name: "Best Actor",
				Nominations: []parsers.ParsedNomination{
					{PersonName: "Person X", PersonSlug: "Person_X", WorkTitle: "Work A", WorkSlug: "Work_A"},
					{PersonName: "Person Y", PersonSlug: "Person_Y"},
				},
			},
			{
				Name: "Best Director",
				Nominations: []parsers.ParsedNomination{
					{PersonName: "Person X", PersonSlug: "Person_X"},
					{WorkTitle: "Work B", WorkSlug: "Work_B"},
				},
			},
		},
	}

	enricher.EnrichEvent(context.Background(), event)

	first := event.Categories[0].Nominations
	if first[0].PersonImageURL != "https://img/person-x.jpg" {
		t.Errorf("person image = %q", first[0].PersonImageURL)
	}
	if first[0].WorkImageURL != "https://img/work-a.jpg" {
		t.Errorf("work image = %q", first[0].WorkImageURL)
	}
	if first[1].PersonImageURL != "" {
		t.Errorf("failed lookup should leave the image empty, got %q", first[1].PersonImageURL)
	}

	second := event.Categories[1].Nominations
	if second[0].PersonImageURL != "https://img/person-x.jpg" {
		t.Error("every nomination sharing a slug gets the fetched image")
	}
	if second[1].WorkImageURL != "" {
		t.Errorf("work without an image stays empty, got %q", second[1].WorkImageURL)
	}

	for title, count := range provider.calls {
		if count != 1 {
			t.Errorf("title %q looked up %d times, expected 1", title, count)
		}
	}
	if len(provider.calls) != 4 {
		t.Errorf("expected 4 unique lookups, got %d: %v", len(provider.calls), provider.calls)
	}
}

func TestEnrichEventKeepsExistingImages(t *testing.T) {
	provider := &stubImageProvider{
		images: map[string]string{"Person X": "https://img/fresh.jpg"},
	}
	enricher := NewEnricher(provider)

	event := &parsers.ParsedEvent{
		Categories: []parsers.ParsedCategory{{
			Nominations: []parsers.ParsedNomination{
				{PersonName: "Person X", PersonSlug: "Person_X", PersonImageURL: "https://img/original.jpg"},
			},
		}},
	}

	enricher.EnrichEvent(context.Background(), event)

	if got := event.Categories[0].Nominations[0].PersonImageURL; got != "https://img/original.jpg" {
		t.Errorf("pre-set image should not be overwritten, got %q", got)
	}
}

func TestEnrichEventNoSlugs(t *testing.T) {
	enricher := NewEnricher(&stubImageProvider{})
	event := &parsers.ParsedEvent{
		Categories: []parsers.ParsedCategory{{
			Nominations: []parsers.ParsedNomination{{PersonName: "Unlinked"}},
		}},
	}

	enricher.EnrichEvent(context.Background(), event)
	// nothing to look up and nothing to panic over
}
