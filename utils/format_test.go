package utils

import "testing"

func TestFormatRowsEmpty(t *testing.T) {
	if got := FormatRows(nil); got != NoResults {
		t.Errorf("FormatRows(nil) = %q, want %q", got, NoResults)
	}
	if got := FormatRows([]Row{}); got != NoResults {
		t.Errorf("FormatRows([]) = %q, want %q", got, NoResults)
	}
}

func TestRowMarshalPreservesOrder(t *testing.T) {
	row := NewRow([]string{"zeta", "alpha", "mid"}, []any{1, "x", nil})

	out, err := row.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}

	want := `{"zeta":1,"alpha":"x","mid":null}`
	if string(out) != want {
		t.Errorf("MarshalJSON() = %s, want %s", out, want)
	}
}

func TestRowGet(t *testing.T) {
	row := NewRow([]string{"id", "name"}, []any{int64(7), "Arc Furnace #1"})

	if got := row.Get("id"); got != int64(7) {
		t.Errorf("Get(id) = %v, want 7", got)
	}
	if got := row.Get("name"); got != "Arc Furnace #1" {
		t.Errorf("Get(name) = %v, want Arc Furnace #1", got)
	}
	if got := row.Get("missing"); got != nil {
		t.Errorf("Get(missing) = %v, want nil", got)
	}
}

func TestFormatRowsDeterministic(t *testing.T) {
	rows := []Row{
		NewRow([]string{"b", "a"}, []any{int64(1), "one"}),
		NewRow([]string{"b", "a"}, []any{int64(2), "two"}),
	}

	first := FormatRows(rows)
	second := FormatRows(rows)
	if first != second {
		t.Errorf("FormatRows not deterministic:\n%s\nvs\n%s", first, second)
	}
	if first == NoResults {
		t.Error("FormatRows returned the empty sentinel for non-empty rows")
	}
}
