package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// NoResults is the fixed sentinel returned for an empty result set. It is
// never used for errors, so callers can tell the two apart.
const NoResults = "No results found."

// Row is an ordered field -> value mapping. Column order is preserved from
// the statement that produced it.
type Row struct {
	columns []string
	values  []any
}

func NewRow(columns []string, values []any) Row {
	return Row{columns: columns, values: values}
}

// Get returns the value of the named column, or nil when absent.
func (r Row) Get(name string) any {
	for i, c := range r.columns {
		if c == name {
			return r.values[i]
		}
	}
	return nil
}

// Columns returns the column names in statement order.
func (r Row) Columns() []string {
	return r.columns
}

// MarshalJSON renders the row as an object with keys in column order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.values[i])
		if err != nil {
			// Fall back to the string form for anything the encoder
			// does not understand.
			val, _ = json.Marshal(fmt.Sprint(r.values[i]))
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// FormatRows renders rows as indented JSON, or the NoResults sentinel when
// the set is empty. Identical input always yields identical output.
func FormatRows(rows []Row) string {
	if len(rows) == 0 {
		return NoResults
	}
	out, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "Query error: " + err.Error()
	}
	return string(out)
}
