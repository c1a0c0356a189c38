package parsers

import (
	"strings"

	"github.com/awardpool/awardpool/internal/wikipedia"
)

var (
	winnerHeaderWords = []string{"winner", "result", "outcome"}
	personHeaderWords = []string{"nominee", "actor", "actress", "director"}
	workHeaderWords   = []string{"film", "work", "title"}
	affirmativeTokens = []string{"won", "winner", "yes", "✓"}
)

// parseTabular reads a table as header-keyed row objects. Semantic fields
// are resolved by case-insensitive substring matching over the headers,
// never by positional index. The enclosing section's title names the
// category.
func (p *AwardsParser) parseTabular(sectionTitle string, table *wikipedia.Table) []ParsedCategory {
	if sectionTitle == "" {
		return nil
	}

	var noms []ParsedNomination
	for _, row := range table.RowMaps() {
		nom := parseTabularRow(row)
		if nom != nil {
			noms = append(noms, *nom)
		}
	}
	if len(noms) == 0 {
		return nil
	}

	return []ParsedCategory{{
		Name:        sectionTitle,
		PointValue:  p.pointValue,
		Nominations: noms,
	}}
}

// parseTabularRow maps one row to a nomination. Rows naming neither a
// person nor a work are discarded.
func parseTabularRow(row map[string]string) *ParsedNomination {
	var nom ParsedNomination
	for header, raw := range row {
		key := strings.ToLower(header)
		value := wikipedia.PlainText(raw)
		switch {
		case containsAny(key, winnerHeaderWords):
			if isAffirmative(value) {
				nom.IsWinner = true
			}
		case containsAny(key, personHeaderWords):
			if value != "" {
				nom.PersonName = value
				nom.PersonSlug = ExtractSlug(raw)
			}
		case containsAny(key, workHeaderWords):
			if value != "" {
				title, year := extractWorkYear(value)
				nom.WorkTitle = title
				nom.WorkYear = year
				nom.WorkSlug = ExtractSlug(raw)
			}
		}
	}
	if !nom.HasSubject() {
		return nil
	}
	return &nom
}

func containsAny(s string, words []string) bool {
	for _, word := range words {
		if strings.Contains(s, word) {
			return true
		}
	}
	return false
}

func isAffirmative(value string) bool {
	return containsAny(strings.ToLower(value), affirmativeTokens)
}
