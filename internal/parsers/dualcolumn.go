package parsers

import (
	"regexp"
	"strings"

	"github.com/awardpool/awardpool/internal/wikipedia"
)

const (
	winnerMarker  = "*"
	nomineeMarker = "**"
)

var (
	// Two to four capitalized words with nothing else reads as a person
	// name; anything richer is treated as a work title.
	personNamePattern = regexp.MustCompile(`^[A-Z][A-Za-z'’.\-]*(?: [A-Z][A-Za-z'’.\-]*){1,3}$`)
	asClausePattern   = regexp.MustCompile(`(?i)(?:^|\s)as\s+(.+)$`)
	creditsPattern    = regexp.MustCompile(`(?i)^(.+),\s*(?:producers?|directors?)\b`)
)

// parseDualColumn reads a compact two-column results table. The injected
// layout names the categories each row carries; rows outside the layout are
// ignored. Within a cell the winner comes first, prefixed by a single
// marker, followed by nominees separated by the double marker.
func (p *AwardsParser) parseDualColumn(table *wikipedia.Table) []ParsedCategory {
	if len(p.layout) == 0 {
		return nil
	}

	var cats []ParsedCategory
	for rowIdx, row := range table.Rows {
		names, ok := p.layout[rowIdx]
		if !ok || len(row) < 2 {
			continue
		}
		for col := 0; col < 2 && col < len(names); col++ {
			if names[col] == "" {
				continue
			}
			noms := parseCompactCell(row[col])
			if len(noms) == 0 {
				continue
			}
			cats = append(cats, ParsedCategory{
				Name:        names[col],
				PointValue:  p.pointValue,
				Nominations: noms,
			})
		}
	}
	return cats
}

func parseCompactCell(cell string) []ParsedNomination {
	// only cells carrying the marker structure are compact columns
	if !strings.HasPrefix(strings.TrimSpace(cell), winnerMarker) {
		return nil
	}
	text := strings.ReplaceAll(cell, "\n", " ")

	var noms []ParsedNomination
	for i, segment := range strings.Split(text, nomineeMarker) {
		segment = strings.TrimSpace(segment)
		segment = strings.TrimPrefix(segment, winnerMarker)
		if i == 0 {
			// the winner's dagger annotation carries no data
			segment = strings.TrimRight(segment, " ‡†")
		}
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		nom := parseCompactSegment(segment, i == 0)
		if nom.HasSubject() {
			noms = append(noms, nom)
		}
	}
	return noms
}

// parseCompactSegment splits one nominee segment into its main part and
// details, then decides whether the main part is a person or a work.
func parseCompactSegment(segment string, isWinner bool) ParsedNomination {
	mainRaw, detailsRaw := splitDetails(segment)
	main := wikipedia.PlainText(mainRaw)
	main, year := extractWorkYear(main)

	nom := ParsedNomination{IsWinner: isWinner}
	if personNamePattern.MatchString(main) {
		nom.PersonName = main
		nom.PersonSlug = ExtractSlug(mainRaw)
		if m := asClausePattern.FindStringSubmatch(detailsRaw); m != nil {
			workRaw := m[1]
			title, workYear := extractWorkYear(wikipedia.PlainText(workRaw))
			nom.WorkTitle = title
			nom.WorkYear = workYear
			nom.WorkSlug = ExtractSlug(workRaw)
		}
	} else {
		nom.WorkTitle = main
		nom.WorkYear = year
		nom.WorkSlug = ExtractSlug(mainRaw)
		if m := creditsPattern.FindStringSubmatch(wikipedia.PlainText(detailsRaw)); m != nil {
			name := strings.TrimSpace(m[1])
			// keep the display name on the same credit the slug identifies
			if i := strings.Index(name, ","); i >= 0 {
				name = strings.TrimSpace(name[:i])
			}
			nom.PersonName = name
			nom.PersonSlug = ExtractSlug(firstCreditRaw(detailsRaw))
		}
	}
	return nom
}

// splitDetails separates a segment on its dash separator.
func splitDetails(segment string) (string, string) {
	for _, sep := range []string{" – ", "–", " — ", "—", " - "} {
		if i := strings.Index(segment, sep); i >= 0 {
			return strings.TrimSpace(segment[:i]), strings.TrimSpace(segment[i+len(sep):])
		}
	}
	return strings.TrimSpace(segment), ""
}

// firstCreditRaw isolates the raw markup of the first credited name so the
// slug can come from its link target.
func firstCreditRaw(detailsRaw string) string {
	if m := creditsPattern.FindStringSubmatch(detailsRaw); m != nil {
		detailsRaw = m[1]
	}
	if i := strings.Index(detailsRaw, ","); i >= 0 {
		return detailsRaw[:i]
	}
	return detailsRaw
}
