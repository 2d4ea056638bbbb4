package scrape

import "testing"

func TestParseStatsTable_TablesorterWithMismatch(t *testing.T) {
	doc := mustDoc(t, `<html><body>
<table class="tablesorter">
<thead><tr><th>Team</th><th>AVG</th><th>HR</th></tr></thead>
<tbody>
<tr><td>Giants</td><td>0.280</td></tr>
<tr><td>Tigers</td><td>0.265</td><td>98</td></tr>
<tr><td>Carp</td><td>0.270</td><td>87</td></tr>
</tbody>
</table>
</body></html>`)

	rows := ParseStatsTable(doc)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (two-cell row discarded)", len(rows))
	}
	if rows[0].Get("Team") != "Tigers" {
		t.Errorf("first kept row = %q, want Tigers", rows[0].Get("Team"))
	}
}

func TestParseStatsTable_NoTable(t *testing.T) {
	if rows := ParseStatsTable(mustDoc(t, `<html><body><p>maintenance</p></body></html>`)); len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}

func TestParseStatsTable_FirstTableOnly(t *testing.T) {
	doc := mustDoc(t, `<table class="tablesorter">
<tr><th>A</th></tr><tr><td>primary</td></tr>
</table>
<table class="tablesorter">
<tr><th>A</th></tr><tr><td>secondary</td></tr>
</table>`)

	rows := ParseStatsTable(doc)
	if len(rows) != 1 || rows[0].Get("A") != "primary" {
		t.Errorf("expected only the primary table, got %v", rows)
	}
}

func TestParseLeaders_TwoSections(t *testing.T) {
	doc := mustDoc(t, `<html><body>
<div class="leader_section">
  <h3>Batting Average</h3>
  <table>
    <tr><th>Rank</th><th>Player</th><th>AVG</th></tr>
    <tr><td>1</td><td>A</td><td>.345</td></tr>
    <tr><td>2</td><td>B</td><td>.331</td></tr>
    <tr><td>3</td><td>C</td><td>.329</td></tr>
  </table>
</div>
<div class="leader_section">
  <h3>Home Runs</h3>
  <table>
    <tr><th>Rank</th><th>Player</th><th>HR</th></tr>
    <tr><td>1</td><td>D</td><td>44</td></tr>
    <tr><td>2</td><td>E</td><td>41</td></tr>
    <tr><td>3</td><td>F</td><td>38</td></tr>
  </table>
</div>
</body></html>`)

	leaders := ParseLeaders(doc)
	if len(leaders) != 2 {
		t.Fatalf("got %d sections, want 2", len(leaders))
	}
	if leaders[0].Category != "Batting Average" || leaders[1].Category != "Home Runs" {
		t.Errorf("section order wrong: %q, %q", leaders[0].Category, leaders[1].Category)
	}
	for i, l := range leaders {
		if len(l.Rankings) != 3 {
			t.Errorf("section %d rankings = %d, want 3", i, len(l.Rankings))
		}
	}
	// Each section reads its own local table: the Home Runs section must
	// not see the document's first table.
	if leaders[1].Rankings[0].Get("HR") != "44" {
		t.Errorf("second section read the wrong table: %v", leaders[1].Rankings[0])
	}
}

func TestParseLeaders_RankOrderPositional(t *testing.T) {
	doc := mustDoc(t, `<div class="leader_section">
<h3>ERA</h3>
<table>
<tr><th>Rank</th><th>ERA</th></tr>
<tr><td>1</td><td>1.95</td></tr>
<tr><td>2</td><td>2.10</td></tr>
</table>
</div>`)

	leaders := ParseLeaders(doc)
	if len(leaders) != 1 {
		t.Fatal("expected one section")
	}
	if leaders[0].Rankings[0].Get("Rank") != "1" || leaders[0].Rankings[1].Get("Rank") != "2" {
		t.Error("rank order must match document order")
	}
}

func TestParseLeaders_SectionWithoutTable(t *testing.T) {
	doc := mustDoc(t, `<div class="leader_section"><h3>Empty</h3></div>`)
	if leaders := ParseLeaders(doc); len(leaders) != 0 {
		t.Errorf("got %d sections, want 0", len(leaders))
	}
}

func TestValidMetric(t *testing.T) {
	for _, m := range []string{"batting", "pitching", "fielding"} {
		if !ValidMetric(m) {
			t.Errorf("%s should be valid", m)
		}
	}
	if ValidMetric("running") {
		t.Error("running should be invalid")
	}
}
