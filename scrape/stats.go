package scrape

import "github.com/PuerkitoBio/goquery"

// Metric is one of the three statistic metrics.
type Metric string

const (
	Batting  Metric = "batting"
	Pitching Metric = "pitching"
	Fielding Metric = "fielding"
)

// Metrics returns the three metrics in fixed order.
func Metrics() []Metric {
	return []Metric{Batting, Pitching, Fielding}
}

// ValidMetric reports whether s names a known metric.
func ValidMetric(s string) bool {
	switch Metric(s) {
	case Batting, Pitching, Fielding:
		return true
	}
	return false
}

// statsPages maps category → metric → page name under the stats base URL.
// Nine fixed endpoints; each is fetched and parsed independently.
var statsPages = map[string]map[Metric]string{
	"team": {
		Batting:  "idb1t1.html",
		Pitching: "idp1t1.html",
		Fielding: "idf1t1.html",
	},
	"individual": {
		Batting:  "idb1i1.html",
		Pitching: "idp1i1.html",
		Fielding: "idf1i1.html",
	},
	"leaders": {
		Batting:  "idb1l1.html",
		Pitching: "idp1l1.html",
		Fielding: "idf1l1.html",
	},
}

// ParseStatsTable extracts the page's primary sortable table. A page
// without one yields an empty sequence.
func ParseStatsTable(doc *goquery.Document) []StatRow {
	table := doc.Find("table.tablesorter").First()
	if table.Length() == 0 {
		return nil
	}
	return ExtractTable(table)
}

// ParseLeaders extracts every named leader section: the section's own
// heading becomes the category label and only that section's local table is
// read, not the document's first. Rows keep the source's rank order.
func ParseLeaders(doc *goquery.Document) []LeaderEntry {
	var leaders []LeaderEntry
	doc.Find("div.leader_section").Each(func(_ int, section *goquery.Selection) {
		category := textOf(section.Find("h3").First())
		table := section.Find("table").First()
		if table.Length() == 0 {
			return
		}
		rows := ExtractTable(table)
		if rows == nil {
			rows = []StatRow{}
		}
		leaders = append(leaders, LeaderEntry{Category: category, Rankings: rows})
	})
	return leaders
}
