package services

import (
	"strings"
	"time"

	"github.com/awardpool/awardpool/internal/entities"
	"github.com/awardpool/awardpool/internal/parsers"
)

// UniquePerson is the first-seen record for one person slug.
type UniquePerson struct {
	Slug     string
	Name     string
	ImageURL string
}

// UniqueWork is the first-seen record for one work slug. Type is inferred
// from the name of the category the work first appeared under.
type UniqueWork struct {
	Slug     string
	Title    string
	Type     entities.WorkType
	Year     int
	ImageURL string
}

// ExtractUniquePeople walks every nomination once and returns the unique
// people in first-seen order. Later occurrences of a slug never overwrite
// the record already captured for it.
func ExtractUniquePeople(event *parsers.ParsedEvent) []UniquePerson {
	seen := make(map[string]bool)
	var people []UniquePerson
	for _, cat := range event.Categories {
		for _, nom := range cat.Nominations {
			if nom.PersonSlug == "" || nom.PersonName == "" || seen[nom.PersonSlug] {
				continue
			}
			seen[nom.PersonSlug] = true
			people = append(people, UniquePerson{
				Slug:     nom.PersonSlug,
				Name:     nom.PersonName,
				ImageURL: nom.PersonImageURL,
			})
		}
	}
	return people
}

// ExtractUniqueWorks is the work-side counterpart of ExtractUniquePeople.
func ExtractUniqueWorks(event *parsers.ParsedEvent) []UniqueWork {
	seen := make(map[string]bool)
	var works []UniqueWork
	for _, cat := range event.Categories {
		workType := InferWorkType(cat.Name)
		for _, nom := range cat.Nominations {
			if nom.WorkSlug == "" || nom.WorkTitle == "" || seen[nom.WorkSlug] {
				continue
			}
			seen[nom.WorkSlug] = true
			works = append(works, UniqueWork{
				Slug:     nom.WorkSlug,
				Title:    nom.WorkTitle,
				Type:     workType,
				Year:     nom.WorkYear,
				ImageURL: nom.WorkImageURL,
			})
		}
	}
	return works
}

// InferWorkType guesses a category's dominant content type from keywords in
// its name. Film is the default.
func InferWorkType(categoryName string) entities.WorkType {
	name := strings.ToLower(categoryName)
	switch {
	case strings.Contains(name, "song"):
		return entities.WorkTypeSong
	case strings.Contains(name, "album"), strings.Contains(name, "score"), strings.Contains(name, "soundtrack"):
		return entities.WorkTypeAlbum
	case strings.Contains(name, "series"), strings.Contains(name, "television"), strings.Contains(name, "tv "):
		return entities.WorkTypeTVShow
	case strings.Contains(name, "play"), strings.Contains(name, "musical"), strings.Contains(name, "theatre"), strings.Contains(name, "theater"):
		return entities.WorkTypePlay
	case strings.Contains(name, "book"), strings.Contains(name, "novel"), strings.Contains(name, "literature"):
		return entities.WorkTypeBook
	default:
		return entities.WorkTypeFilm
	}
}

// BuildNominationText produces the human-readable label for a nomination.
func BuildNominationText(personName, workTitle string) string {
	switch {
	case personName != "" && workTitle != "":
		return personName + " for " + workTitle
	case personName != "":
		return personName
	case workTitle != "":
		return workTitle
	default:
		return "Unknown Nomination"
	}
}

const previewSampleSize = 3

// Preview is the read-only projection shown to an operator before a
// commit. It carries no persisted identifiers.
type Preview struct {
	EventName       string            `json:"event_name"`
	EventSlug       string            `json:"event_slug"`
	EventDate       *time.Time        `json:"event_date,omitempty"`
	Description     string            `json:"description,omitempty"`
	CategoryCount   int               `json:"category_count"`
	NominationCount int               `json:"nomination_count"`
	Categories      []PreviewCategory `json:"categories"`
}

type PreviewCategory struct {
	Name            string              `json:"name"`
	PointValue      int                 `json:"point_value"`
	NominationCount int                 `json:"nomination_count"`
	Sample          []PreviewNomination `json:"sample"`
}

type PreviewNomination struct {
	Text     string `json:"text"`
	IsWinner bool   `json:"is_winner"`
}

// BuildPreview projects a parsed event into the preview DTO, sampling at
// most three nominations per category.
func BuildPreview(event *parsers.ParsedEvent) *Preview {
	preview := &Preview{
		EventName:     event.Name,
		EventSlug:     event.Slug,
		EventDate:     event.Date,
		Description:   event.Description,
		CategoryCount: len(event.Categories),
		Categories:    make([]PreviewCategory, 0, len(event.Categories)),
	}

	for _, cat := range event.Categories {
		pc := PreviewCategory{
			Name:            cat.Name,
			PointValue:      cat.PointValue,
			NominationCount: len(cat.Nominations),
		}
		for i, nom := range cat.Nominations {
			if i >= previewSampleSize {
				break
			}
			pc.Sample = append(pc.Sample, PreviewNomination{
				Text:     BuildNominationText(nom.PersonName, nom.WorkTitle),
				IsWinner: nom.IsWinner,
			})
		}
		preview.NominationCount += len(cat.Nominations)
		preview.Categories = append(preview.Categories, pc)
	}
	return preview
}
