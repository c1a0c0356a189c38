package parsers

import (
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/awardpool/awardpool/internal/wikipedia"
)

// CompactLayout maps row indexes of a compact dual-column results table to
// the category names carried by its two columns. The mapping is ceremony
// specific, so callers inject it rather than relying on a built-in table.
type CompactLayout map[int][]string

// AwardsParser turns a structured awards article into a ParsedEvent. Per
// table it first attempts the compact dual-column reading and falls back to
// the generic header-keyed reading when that yields nothing.
type AwardsParser struct {
	layout     CompactLayout
	pointValue int
}

func NewAwardsParser(layout CompactLayout, defaultPointValue int) *AwardsParser {
	if defaultPointValue <= 0 {
		defaultPointValue = 1
	}
	return &AwardsParser{layout: layout, pointValue: defaultPointValue}
}

var skippedSectionWords = []string{"reference", "external", "see also"}

func skipSection(title string) bool {
	lower := strings.ToLower(title)
	for _, word := range skippedSectionWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// ParsePage walks every section of the page and assembles the parsed event.
// Individual tables that fail to parse are skipped with a warning; only a
// document yielding zero categories overall is a parse failure.
func (p *AwardsParser) ParsePage(page *wikipedia.Page) (*ParsedEvent, error) {
	event := &ParsedEvent{
		Name:        page.Title,
		Slug:        strings.ReplaceAll(page.Title, " ", "_"),
		Description: page.FirstSentence,
		Date:        parseEventDate(page.Infobox),
	}

	order := 0
	for si := range page.Sections {
		section := &page.Sections[si]
		if skipSection(section.Title) {
			continue
		}
		for ti := range section.Tables {
			for _, cat := range p.parseTable(section.Title, &section.Tables[ti]) {
				cat.Order = order
				order++
				event.Categories = append(event.Categories, cat)
			}
		}
	}

	if len(event.Categories) == 0 {
		return nil, &ParseError{Message: "no award categories found"}
	}
	return event, nil
}

// parseTable tries the dual-column strategy first; when it produces at
// least one category the tabular fallback is skipped for that table.
func (p *AwardsParser) parseTable(sectionTitle string, table *wikipedia.Table) (cats []ParsedCategory) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("skipping unparseable table in section %q: %v", sectionTitle, r)
			cats = nil
		}
	}()

	cats = p.parseDualColumn(table)
	if len(cats) > 0 {
		return cats
	}
	return p.parseTabular(sectionTitle, table)
}

var yearSuffixPattern = regexp.MustCompile(`^(.*?)\s*\((\d{4})\)\s*$`)

// extractWorkYear pulls a 4-digit parenthetical year off a work title.
func extractWorkYear(title string) (string, int) {
	if m := yearSuffixPattern.FindStringSubmatch(title); m != nil {
		year := 0
		for _, c := range m[2] {
			year = year*10 + int(c-'0')
		}
		return strings.TrimSpace(m[1]), year
	}
	return title, 0
}

var startDatePattern = regexp.MustCompile(`(?i)start date\s*\|\s*(\d{4})\s*\|\s*(\d{1,2})\s*\|\s*(\d{1,2})`)

var eventDateFormats = []string{
	"January 2, 2006",
	"2 January 2006",
	"2006-01-02",
	"January 2 2006",
}

func parseEventDate(infobox map[string]string) *time.Time {
	raw, ok := infobox["date"]
	if !ok {
		return nil
	}

	if m := startDatePattern.FindStringSubmatch(raw); m != nil {
		if t, err := time.Parse("2006-1-2", m[1]+"-"+m[2]+"-"+m[3]); err == nil {
			return &t
		}
	}

	plain := wikipedia.PlainText(raw)
	for _, format := range eventDateFormats {
		if t, err := time.Parse(format, plain); err == nil {
			return &t
		}
	}
	return nil
}
