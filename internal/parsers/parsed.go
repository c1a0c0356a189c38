package parsers

import "time"

// ParsedEvent is the transient result of parsing one awards article. It
// exists only for the duration of a single import attempt and carries no
// persisted identifiers.
type ParsedEvent struct {
	Name        string
	Slug        string
	Description string
	Date        *time.Time
	Categories  []ParsedCategory
}

// ParsedCategory groups the nominations extracted from one table column or
// one section table. Order records first-encountered scan position.
type ParsedCategory struct {
	Name        string
	PointValue  int
	Order       int
	Nominations []ParsedNomination
}

// ParsedNomination references a person and/or a work. Slugs are the
// deduplication identity; image URLs are filled in by enrichment.
type ParsedNomination struct {
	PersonName     string
	PersonSlug     string
	PersonImageURL string
	WorkTitle      string
	WorkSlug       string
	WorkImageURL   string
	WorkYear       int
	IsWinner       bool
}

// HasSubject reports whether the nomination names a person or a work.
// Nominations with neither are discarded before category assembly.
func (n *ParsedNomination) HasSubject() bool {
	return n.PersonName != "" || n.WorkTitle != ""
}

// ParseError indicates an article was fetched but no usable award data
// could be extracted from it, as opposed to a transport failure.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}
