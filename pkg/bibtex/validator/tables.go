package validator

import "strings"

// venueFields lists the required fields per known venue, keyed by the
// @string macro name used for the journal. Lookups are case sensitive, so
// "ral" and "RAL" are different venues.
var venueFields = map[string][]string{
	"arxiv": {"author", "title", "journal", "volume", "year"},
	"ral":   {"author", "title", "journal", "volume", "number", "pages", "year"},
	"pami":  {"author", "title", "journal", "volume", "number", "pages", "year"},
	"ijrr":  {"author", "title", "journal", "volume", "number", "pages", "year"},
	"tro":   {"author", "title", "journal", "volume", "number", "pages", "year"},
	"ar":    {"author", "title", "journal", "volume", "pages", "year"},
	"tmlr":  {"author", "title", "journal", "year"},
}

// mandatoryFields lists the required fields per entry type. Some journals
// have no pages or issue numbers, so the article baseline stays loose and
// venueFields tightens it per venue.
var mandatoryFields = map[string][]string{
	"article":       {"author", "title", "journal", "volume", "year"},
	"inproceedings": {"author", "title", "booktitle", "year"},
	"phdthesis":     {"author", "title", "school", "year"},
	"book":          {"author", "title", "publisher", "year"},
}

// optionalFields lists fields tolerated per entry type. Anything outside
// the required and optional sets is flagged as irrelevant.
var optionalFields = map[string][]string{
	"article":       {"url", "codeurl", "videourl", "pages", "number", "abstract", "keywords"},
	"inproceedings": {"url", "codeurl", "videourl", "abstract", "keywords"},
	"phdthesis":     {"url", "keywords", "abstract"},
	"book":          {"volume", "edition", "url", "keywords", "abstract"},
}

// mergeVenues combines the built-in venue table with user-declared venues.
// User entries win on name collisions.
func mergeVenues(extra map[string][]string) map[string][]string {
	merged := make(map[string][]string, len(venueFields)+len(extra))
	for name, fields := range venueFields {
		merged[name] = fields
	}
	for name, fields := range extra {
		merged[name] = fields
	}
	return merged
}

// formatRequired renders a required-fields list for diagnostics, e.g.
// ['author', 'title', 'year'].
func formatRequired(fields []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, field := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		b.WriteString(field)
		b.WriteByte('\'')
	}
	b.WriteByte(']')
	return b.String()
}

func contains(fields []string, name string) bool {
	for _, field := range fields {
		if field == name {
			return true
		}
	}
	return false
}
