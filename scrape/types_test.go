package scrape

import (
	"encoding/json"
	"testing"
)

func TestStatRow_MarshalPreservesColumnOrder(t *testing.T) {
	row := zipRow([]string{"Z", "A", "M"}, []string{"1", "2", "3"})

	data, err := json.Marshal(row)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"Z":"1","A":"2","M":"3"}`
	if string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}
}

func TestStatRow_RoundTrip(t *testing.T) {
	src := `{"順位":"1","選手":"山田 太郎","本塁打":"44"}`

	var row StatRow
	if err := json.Unmarshal([]byte(src), &row); err != nil {
		t.Fatal(err)
	}
	if row.Len() != 3 {
		t.Fatalf("len = %d, want 3", row.Len())
	}
	if row.Get("選手") != "山田 太郎" {
		t.Errorf("選手 = %q", row.Get("選手"))
	}

	out, err := json.Marshal(row)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != src {
		t.Errorf("round trip = %s, want %s", out, src)
	}
}

func TestStatRow_UnmarshalRejectsNonString(t *testing.T) {
	var row StatRow
	if err := json.Unmarshal([]byte(`{"HR":44}`), &row); err == nil {
		t.Error("expected error for numeric value")
	}
}

func TestStatRow_NoHTMLEscaping(t *testing.T) {
	row := zipRow([]string{"url"}, []string{"https://npb.jp/bis/players/?team=giants&x=1"})

	data, err := json.Marshal(row)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"url":"https://npb.jp/bis/players/?team=giants&x=1"}`
	if string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}
}

func TestStatRow_GetMissingColumn(t *testing.T) {
	row := zipRow([]string{"A"}, []string{"1"})
	if got := row.Get("B"); got != "" {
		t.Errorf("missing column = %q, want empty", got)
	}
}
