package scrape

import "github.com/PuerkitoBio/goquery"

// ExtractTable reads one logical table: header cell texts in document
// order, then one StatRow per data row whose cell count matches the header
// count. Rows with a different cell count are dropped silently — that is
// the documented tolerance policy for malformed markup, not an error.
// An empty or header-less table yields an empty sequence.
func ExtractTable(table *goquery.Selection) []StatRow {
	return ExtractTableWith(table, headerTexts(table))
}

// ExtractTableWith is ExtractTable with caller-supplied headers, for
// tables whose header row lives outside the table element.
func ExtractTableWith(table *goquery.Selection, headers []string) []StatRow {
	if table == nil || len(headers) == 0 {
		return nil
	}

	var rows []StatRow
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		values := cellTexts(tr)
		// The header row carries th cells only, so it zips to nothing
		// here along with any malformed data row.
		if len(values) != len(headers) {
			return
		}
		rows = append(rows, zipRow(headers, values))
	})
	return rows
}

// headerTexts returns the trimmed text of the header cells in document
// order. When the table has a thead, only its th cells count as headers;
// a th inside a body row (a rank cell, say) must not inflate the list.
func headerTexts(table *goquery.Selection) []string {
	if table == nil {
		return nil
	}
	scope := table.Find("thead th")
	if scope.Length() == 0 {
		scope = table.Find("th")
	}
	var headers []string
	scope.Each(func(_ int, th *goquery.Selection) {
		headers = append(headers, textOf(th))
	})
	return headers
}

// cellTexts returns the trimmed text of every td cell in a row.
func cellTexts(tr *goquery.Selection) []string {
	var values []string
	tr.Find("td").Each(func(_ int, td *goquery.Selection) {
		values = append(values, textOf(td))
	})
	return values
}
