package scrape

import "github.com/PuerkitoBio/goquery"

// ParseProfile reads a player detail page: the labeled two-column profile
// table as a flat label→value mapping, plus every embedded statistics
// table concatenated into one flat row sequence. A page without a profile
// table yields an empty mapping; without stats tables, an empty sequence.
// Neither case is an error.
func ParseProfile(doc *goquery.Document) (map[string]string, []StatRow) {
	details := make(map[string]string)

	doc.Find("table.profile").First().Find("tr").Each(func(_ int, tr *goquery.Selection) {
		label := textOf(tr.Find("th").First())
		value := textOf(tr.Find("td").First())
		details[label] = value
	})

	var stats []StatRow
	doc.Find("table.stats").Each(func(_ int, table *goquery.Selection) {
		stats = append(stats, ExtractTable(table)...)
	})

	return details, stats
}
