package scrape

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// venueKey marks the home-venue detail row, whose value carries an
// access-route description after a "/" separator.
const venueKey = "本拠地"

// ParseTeamsPage extracts both leagues' team metadata from the rendered
// teams page. The page only renders through JavaScript, so callers obtain
// the HTML via browser.Session.RenderHTML first; parsing itself is pure.
//
// Each league section is located by its heading text; within it, every
// team table is read. A table whose preceding heading yields no bilingual
// name is skipped whole — partial team records are not emitted.
func ParseTeamsPage(doc *goquery.Document) *TeamsSnapshot {
	return &TeamsSnapshot{
		Central: parseLeagueSection(doc, "CENTRAL LEAGUE"),
		Pacific: parseLeagueSection(doc, "PACIFIC LEAGUE"),
	}
}

// parseLeagueSection finds the h3 heading containing the league label and
// reads every team table in the first following block.
func parseLeagueSection(doc *goquery.Document, heading string) []TeamRecord {
	var records []TeamRecord

	doc.Find("h3").Each(func(_ int, h *goquery.Selection) {
		if !strings.Contains(h.Text(), heading) {
			return
		}
		h.NextAllFiltered("div").First().Find("table").Each(func(_ int, table *goquery.Selection) {
			if rec, ok := parseTeamTable(table); ok {
				records = append(records, rec)
			}
		})
	})
	return records
}

// parseTeamTable reads one team's table: bilingual name from the preceding
// h4 heading, two-cell detail rows, and the nearest enclosing block's logo
// image. Returns ok=false when no name can be derived.
func parseTeamTable(table *goquery.Selection) (TeamRecord, bool) {
	prev := table.Prev()
	if !prev.Is("h4") {
		return TeamRecord{}, false
	}
	ja, en, ok := splitBilingualName(textOf(prev))
	if !ok {
		return TeamRecord{}, false
	}

	rec := TeamRecord{
		Name:    TeamName{Ja: ja, En: en},
		Details: make(map[string]string),
	}

	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() != 2 {
			return
		}
		key := textOf(cells.Eq(0))
		value := textOf(cells.Eq(1))
		if strings.Contains(key, venueKey) {
			// Keep the venue name only, dropping the access route.
			value = strings.TrimSpace(strings.SplitN(value, "/", 2)[0])
		}
		rec.Details[key] = value
	})

	if src, ok := table.Closest("div").Find("img").First().Attr("src"); ok {
		rec.LogoURL = src
	}

	return rec, true
}

// splitBilingualName divides a delimiter-less heading like
// "読売ジャイアンツYomiuri Giants" into its local-script and romanized
// parts. The romanized part is the longest ASCII suffix starting at an
// uppercase letter; both parts must be non-empty for the split to hold.
// This is a heuristic over the source's actual text shape, not a contract.
func splitBilingualName(s string) (ja, en string, ok bool) {
	s = strings.TrimSpace(s)
	runes := []rune(s)

	// Walk back over the trailing ASCII run.
	start := len(runes)
	for start > 0 && isASCIINamePart(runes[start-1]) {
		start--
	}
	// Advance to the first uppercase letter of that run.
	for start < len(runes) && !unicode.IsUpper(runes[start]) {
		start++
	}

	if start == 0 || start == len(runes) {
		return "", "", false
	}

	ja = strings.TrimSpace(string(runes[:start]))
	en = strings.TrimSpace(string(runes[start:]))
	if ja == "" || en == "" {
		return "", "", false
	}
	return ja, en, true
}

func isASCIINamePart(r rune) bool {
	if r > unicode.MaxASCII {
		return false
	}
	return unicode.IsLetter(r) || r == ' ' || r == '.' || r == '-' || r == '&'
}
