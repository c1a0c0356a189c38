package services

import (
	"context"

	"github.com/awardpool/awardpool/internal/entities"
	"github.com/awardpool/awardpool/internal/metadata"
	"github.com/awardpool/awardpool/internal/parsers"
	"github.com/awardpool/awardpool/internal/wikipedia"
)

// ImportService turns a Wikipedia awards article into the typed award
// catalog. Preview is a dry run with no side effects; Commit persists the
// parsed event graph inside a single transaction.
//
// Both entry points fetch and parse independently, so an article edited
// between a Preview and the following Commit may persist differently than
// previewed.
type ImportService struct {
	pages    PageSource
	enricher *metadata.Enricher
	store    CatalogStore
	parser   *parsers.AwardsParser
}

func NewImportService(pages PageSource, enricher *metadata.Enricher, store CatalogStore, parser *parsers.AwardsParser) *ImportService {
	return &ImportService{
		pages:    pages,
		enricher: enricher,
		store:    store,
		parser:   parser,
	}
}

// fetchAndParse runs the shared front half of the pipeline:
// validate → fetch → parse. No transaction is open during any of it.
func (s *ImportService) fetchAndParse(ctx context.Context, rawURL string) (*parsers.ParsedEvent, error) {
	result := wikipedia.ValidateArticleURL(rawURL)
	if !result.IsValid {
		return nil, &parsers.ParseError{Message: "not a valid Wikipedia article URL"}
	}

	page, err := s.pages.GetPage(ctx, result.PageTitle)
	if err != nil {
		return nil, err
	}

	return s.parser.ParsePage(page)
}

// Preview parses the article and returns the summary projection. Safe to
// call repeatedly and concurrently; nothing is written anywhere.
func (s *ImportService) Preview(ctx context.Context, rawURL string) (*Preview, error) {
	event, err := s.fetchAndParse(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if s.enricher != nil {
		s.enricher.EnrichEvent(ctx, event)
	}

	return BuildPreview(event), nil
}

// Commit parses the article and persists the full event graph. People and
// works are resolved first, one find-or-create per unique slug, then the
// event with its categories and nominations is created referencing them.
// The returned event carries the resolved person and work rows on every
// nomination. Everything inside the transaction rolls back on any failure;
// parse and API errors from the stages before it propagate unchanged.
func (s *ImportService) Commit(ctx context.Context, rawURL string) (*entities.Event, error) {
	event, err := s.fetchAndParse(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if s.enricher != nil {
		s.enricher.EnrichEvent(ctx, event)
	}

	people := ExtractUniquePeople(event)
	works := ExtractUniqueWorks(event)

	var created *entities.Event
	err = s.store.WithTransaction(ctx, func(tx CatalogTx) error {
		personRows := make(map[string]*entities.Person, len(people))
		for _, p := range people {
			row, err := tx.FindOrCreatePerson(p.Slug, p.Name, p.ImageURL)
			if err != nil {
				return err
			}
			personRows[p.Slug] = row
		}

		workRows := make(map[string]*entities.Work, len(works))
		for _, w := range works {
			row, err := tx.FindOrCreateWork(w.Slug, w.Title, w.Type, w.Year, w.ImageURL)
			if err != nil {
				return err
			}
			workRows[w.Slug] = row
		}

		graph := buildEventGraph(event, personRows, workRows)
		if err := tx.CreateEvent(graph); err != nil {
			return err
		}
		attachResolvedRows(graph, event, personRows, workRows)
		created = graph
		return nil
	})
	if err != nil {
		return nil, &ImportServiceError{Message: "commit failed", Err: err}
	}

	return created, nil
}

// attachResolvedRows sets the resolved person and work rows on every created
// nomination. It runs after CreateEvent so the insert carries only foreign
// keys and the associations are not saved a second time.
func attachResolvedRows(graph *entities.Event, event *parsers.ParsedEvent, personRows map[string]*entities.Person, workRows map[string]*entities.Work) {
	for ci := range graph.Categories {
		noms := graph.Categories[ci].Nominations
		for ni := range noms {
			src := event.Categories[ci].Nominations[ni]
			if src.PersonSlug != "" {
				noms[ni].Person = personRows[src.PersonSlug]
			}
			if src.WorkSlug != "" {
				noms[ni].Work = workRows[src.WorkSlug]
			}
		}
	}
}

// buildEventGraph assembles the create-input for the event with nested
// categories (in scan order) and nominations resolving person/work IDs
// from the rows found or created during slug resolution.
func buildEventGraph(event *parsers.ParsedEvent, personRows map[string]*entities.Person, workRows map[string]*entities.Work) *entities.Event {
	graph := &entities.Event{
		Name:        event.Name,
		Slug:        event.Slug,
		Description: event.Description,
		Date:        event.Date,
		Categories:  make([]entities.Category, 0, len(event.Categories)),
	}

	for _, cat := range event.Categories {
		category := entities.Category{
			Name:       cat.Name,
			PointValue: cat.PointValue,
			SortOrder:  cat.Order,
		}
		for _, nom := range cat.Nominations {
			nomination := entities.Nomination{
				DisplayText: BuildNominationText(nom.PersonName, nom.WorkTitle),
				IsWinner:    nom.IsWinner,
			}
			if nom.PersonSlug != "" {
				if row, ok := personRows[nom.PersonSlug]; ok {
					personID := row.ID
					nomination.PersonID = &personID
				}
			}
			if nom.WorkSlug != "" {
				if row, ok := workRows[nom.WorkSlug]; ok {
					workID := row.ID
					nomination.WorkID = &workID
				}
			}
			category.Nominations = append(category.Nominations, nomination)
		}
		graph.Categories = append(graph.Categories, category)
	}
	return graph
}
