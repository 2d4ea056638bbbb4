package scrape

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func mustDoc(t *testing.T, src string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func TestExtractTable_CardinalityMatch(t *testing.T) {
	doc := mustDoc(t, `<table>
<tr><th>Team</th><th>AVG</th><th>HR</th></tr>
<tr><td>Giants</td><td>0.280</td><td>120</td></tr>
<tr><td>Tigers</td><td>0.265</td></tr>
<tr><td>Carp</td><td>0.270</td><td>98</td></tr>
</table>`)

	rows := ExtractTable(doc.Find("table"))
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (short row must be dropped)", len(rows))
	}
	if rows[0].Get("Team") != "Giants" || rows[1].Get("Team") != "Carp" {
		t.Errorf("unexpected teams: %q, %q", rows[0].Get("Team"), rows[1].Get("Team"))
	}
}

func TestExtractTable_DocumentOrderPreserved(t *testing.T) {
	doc := mustDoc(t, `<table>
<tr><th>Rank</th><th>Name</th></tr>
<tr><td>1</td><td>A</td></tr>
<tr><td>2</td><td>B</td></tr>
<tr><td>3</td><td>C</td></tr>
</table>`)

	rows := ExtractTable(doc.Find("table"))
	for i, want := range []string{"1", "2", "3"} {
		if rows[i].Get("Rank") != want {
			t.Errorf("row %d rank = %q, want %q", i, rows[i].Get("Rank"), want)
		}
	}
}

func TestExtractTable_BodyHeaderCellsAreNotHeaders(t *testing.T) {
	doc := mustDoc(t, `<table>
<thead><tr><th>Rank</th><th>Player</th><th>AVG</th></tr></thead>
<tbody>
<tr><th>1</th><td>近藤 健介</td><td>.345</td></tr>
<tr><td>2</td><td>牧 秀悟</td><td>.314</td></tr>
</tbody>
</table>`)

	rows := ExtractTable(doc.Find("table"))
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1 (row with a th rank cell zips short)", len(rows))
	}
	if rows[0].Get("Rank") != "2" || rows[0].Get("Player") != "牧 秀悟" {
		t.Errorf("unexpected row: %v", rows[0])
	}
}

func TestExtractTable_Idempotent(t *testing.T) {
	src := `<table>
<thead><tr><th>打率</th><th>本塁打</th></tr></thead>
<tbody><tr><td>.312</td><td>44</td></tr></tbody>
</table>`

	first, err := json.Marshal(ExtractTable(mustDoc(t, src).Find("table")))
	if err != nil {
		t.Fatal(err)
	}
	second, err := json.Marshal(ExtractTable(mustDoc(t, src).Find("table")))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("extraction not byte-identical:\n%s\n%s", first, second)
	}
}

func TestExtractTable_EmptyTable(t *testing.T) {
	doc := mustDoc(t, `<table></table>`)
	if rows := ExtractTable(doc.Find("table")); len(rows) != 0 {
		t.Errorf("got %d rows from empty table, want 0", len(rows))
	}
}

func TestExtractTable_TableNotFound(t *testing.T) {
	doc := mustDoc(t, `<div>no table here</div>`)
	if rows := ExtractTable(doc.Find("table")); len(rows) != 0 {
		t.Errorf("got %d rows from missing table, want 0", len(rows))
	}
}

func TestExtractTable_HeaderOnly(t *testing.T) {
	doc := mustDoc(t, `<table><tr><th>A</th><th>B</th></tr></table>`)
	if rows := ExtractTable(doc.Find("table")); len(rows) != 0 {
		t.Errorf("got %d rows from header-only table, want 0", len(rows))
	}
}

func TestExtractTableWith_CallerHeaders(t *testing.T) {
	doc := mustDoc(t, `<table>
<tr><td>Giants</td><td>77</td></tr>
<tr><td>Tigers</td><td>74</td></tr>
</table>`)

	rows := ExtractTableWith(doc.Find("table"), []string{"Team", "Wins"})
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[1].Get("Wins") != "74" {
		t.Errorf("Wins = %q, want 74", rows[1].Get("Wins"))
	}
}

func TestExtractTable_WhitespaceCollapsed(t *testing.T) {
	doc := mustDoc(t, `<table>
<tr><th>  Name </th></tr>
<tr><td>
  山田
  <span>太郎</span>
</td></tr>
</table>`)

	rows := ExtractTable(doc.Find("table"))
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if got := rows[0].Get("Name"); got != "山田 太郎" {
		t.Errorf("cell = %q, want %q", got, "山田 太郎")
	}
}
