package wikipedia

import (
	"regexp"
	"strings"
)

// Page is the structured view of one article that the import pipeline
// consumes: infobox fields, the first sentence of the lead, and every
// section with its tables and images.
type Page struct {
	Title         string
	Infobox       map[string]string
	FirstSentence string
	Sections      []Section
}

// Section is one article section. The lead paragraph is represented as a
// section with an empty title.
type Section struct {
	Title  string
	Tables []Table
	Images []string
}

// Table holds raw cell text, markup included, so downstream parsing can
// still reach embedded link targets. Headers are stripped to plain text.
type Table struct {
	Headers []string
	Rows    [][]string
}

// RowMaps projects the table into header-keyed row objects. Rows without a
// header row to key against yield nil.
func (t *Table) RowMaps() []map[string]string {
	if len(t.Headers) == 0 {
		return nil
	}
	maps := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		m := make(map[string]string, len(t.Headers))
		for i, header := range t.Headers {
			if i < len(row) {
				m[header] = row[i]
			}
		}
		maps = append(maps, m)
	}
	return maps
}

var (
	headingPattern  = regexp.MustCompile(`^(={2,6})\s*(.*?)\s*=+\s*$`)
	imagePattern    = regexp.MustCompile(`\[\[(?:File|Image):([^\]|]+)`)
	infoboxPattern  = regexp.MustCompile(`(?i)\{\{\s*Infobox`)
	refPattern      = regexp.MustCompile(`(?s)<ref[^>]*?/>|<ref[^>]*?>.*?</ref>`)
	templatePattern = regexp.MustCompile(`\{\{[^{}]*\}\}`)
	pipedLink       = regexp.MustCompile(`\[\[[^\]|]*\|([^\]]*)\]\]`)
	plainLink       = regexp.MustCompile(`\[\[([^\]]*)\]\]`)
	htmlTagPattern  = regexp.MustCompile(`<[^>]+>`)
	spacePattern    = regexp.MustCompile(`\s+`)
)

// PlainText strips wiki markup (refs, templates, links, quotes, HTML tags)
// down to display text.
func PlainText(s string) string {
	s = refPattern.ReplaceAllString(s, "")
	for strings.Contains(s, "{{") {
		next := templatePattern.ReplaceAllString(s, "")
		if next == s {
			break
		}
		s = next
	}
	s = pipedLink.ReplaceAllString(s, "$1")
	s = plainLink.ReplaceAllString(s, "$1")
	s = strings.ReplaceAll(s, "'''", "")
	s = strings.ReplaceAll(s, "''", "")
	s = htmlTagPattern.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	s = spacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ParseWikitext converts raw article wikitext into the Page model.
func ParseWikitext(title, text string) *Page {
	page := &Page{Title: title, Infobox: map[string]string{}}

	if infobox, start, end := extractInfobox(text); infobox != nil {
		page.Infobox = infobox
		text = text[:start] + text[end:]
	}

	sections := []Section{{}}
	cur := 0
	var leadLines []string

	lines := strings.Split(text, "\n")
	i := 0
	for i < len(lines) {
		line := lines[i]

		if m := headingPattern.FindStringSubmatch(line); m != nil {
			sections = append(sections, Section{Title: PlainText(m[2])})
			cur = len(sections) - 1
			i++
			continue
		}

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "{|") {
			block, next := collectTable(lines, i)
			sections[cur].Tables = append(sections[cur].Tables, parseTable(block))
			i = next
			continue
		}

		if m := imagePattern.FindStringSubmatch(line); m != nil {
			sections[cur].Images = append(sections[cur].Images, strings.TrimSpace(m[1]))
		} else if cur == 0 {
			leadLines = append(leadLines, line)
		}
		i++
	}

	page.FirstSentence = firstSentence(leadLines)
	page.Sections = sections
	return page
}

// collectTable gathers the lines of one table, tolerating nested tables,
// and returns the index of the first line after it.
func collectTable(lines []string, start int) ([]string, int) {
	block := []string{lines[start]}
	depth := 1
	i := start + 1
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		block = append(block, lines[i])
		if strings.HasPrefix(trimmed, "{|") {
			depth++
		} else if strings.HasPrefix(trimmed, "|}") {
			depth--
			if depth == 0 {
				return block, i + 1
			}
		}
		i++
	}
	return block, i
}

func parseTable(lines []string) Table {
	var tbl Table
	var cur []string
	inRow := false

	flush := func() {
		if inRow {
			tbl.Rows = append(tbl.Rows, cur)
			cur = nil
			inRow = false
		}
	}

	for idx, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case idx == 0, strings.HasPrefix(trimmed, "|+"):
			// table opener / caption
		case strings.HasPrefix(trimmed, "|}"):
			flush()
			return tbl
		case strings.HasPrefix(trimmed, "|-"):
			flush()
		case strings.HasPrefix(trimmed, "!"):
			cells := splitCells(trimmed[1:], "!!")
			if len(tbl.Rows) == 0 && !inRow {
				for _, cell := range cells {
					tbl.Headers = append(tbl.Headers, PlainText(cell))
				}
			} else {
				cur = append(cur, cells...)
				inRow = true
			}
		case strings.HasPrefix(trimmed, "|"):
			cur = append(cur, splitCells(trimmed[1:], "||")...)
			inRow = true
		default:
			// continuation of a multi-line cell
			if inRow && len(cur) > 0 && trimmed != "" {
				cur[len(cur)-1] += "\n" + trimmed
			}
		}
	}
	flush()
	return tbl
}

// splitCells splits a cell line on its separator and drops per-cell
// formatting attributes ahead of the content pipe.
func splitCells(content, separator string) []string {
	parts := strings.Split(content, separator)
	cells := make([]string, 0, len(parts))
	for _, part := range parts {
		cells = append(cells, stripCellAttrs(strings.TrimSpace(part)))
	}
	return cells
}

func stripCellAttrs(cell string) string {
	if i := strings.Index(cell, "|"); i >= 0 {
		prefix := cell[:i]
		if strings.Contains(prefix, "=") && !strings.Contains(prefix, "[[") {
			return strings.TrimSpace(cell[i+1:])
		}
	}
	return cell
}

// extractInfobox locates the first infobox template and parses its
// parameters. Returns nil when the article carries none.
func extractInfobox(text string) (map[string]string, int, int) {
	loc := infoboxPattern.FindStringIndex(text)
	if loc == nil {
		return nil, 0, 0
	}

	depth := 0
	end := -1
	for i := loc[0]; i < len(text)-1; i++ {
		switch text[i : i+2] {
		case "{{":
			depth++
		case "}}":
			depth--
			if depth == 0 {
				end = i + 2
			}
		}
		if end >= 0 {
			break
		}
	}
	if end < 0 {
		return nil, 0, 0
	}

	body := text[loc[0]+2 : end-2]
	fields := map[string]string{}
	for _, param := range splitTemplateParams(body)[1:] {
		kv := strings.SplitN(param, "=", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(kv[0]))
		value := strings.TrimSpace(kv[1])
		if key != "" && value != "" {
			fields[key] = value
		}
	}
	return fields, loc[0], end
}

// splitTemplateParams splits a template body on top-level pipes, keeping
// pipes inside nested templates and links intact.
func splitTemplateParams(body string) []string {
	var params []string
	var sb strings.Builder
	braceDepth, bracketDepth := 0, 0
	i := 0
	for i < len(body) {
		if i < len(body)-1 {
			switch body[i : i+2] {
			case "{{":
				braceDepth++
				sb.WriteString("{{")
				i += 2
				continue
			case "}}":
				braceDepth--
				sb.WriteString("}}")
				i += 2
				continue
			case "[[":
				bracketDepth++
				sb.WriteString("[[")
				i += 2
				continue
			case "]]":
				bracketDepth--
				sb.WriteString("]]")
				i += 2
				continue
			}
		}
		if body[i] == '|' && braceDepth == 0 && bracketDepth == 0 {
			params = append(params, sb.String())
			sb.Reset()
		} else {
			sb.WriteByte(body[i])
		}
		i++
	}
	params = append(params, sb.String())
	return params
}

func firstSentence(leadLines []string) string {
	for _, line := range leadLines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" ||
			strings.HasPrefix(trimmed, "{{") ||
			strings.HasPrefix(trimmed, "}}") ||
			strings.HasPrefix(trimmed, "|") ||
			strings.HasPrefix(trimmed, "<") ||
			strings.HasPrefix(trimmed, "=") {
			continue
		}
		plain := PlainText(trimmed)
		if plain == "" {
			continue
		}
		if i := strings.Index(plain, ". "); i >= 0 {
			return plain[:i+1]
		}
		return plain
	}
	return ""
}
