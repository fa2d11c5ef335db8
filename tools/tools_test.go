package tools

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"manufacturing-mcp/database"
	"manufacturing-mcp/migration"
	"manufacturing-mcp/utils"

	"github.com/felixgeelhaar/agent-go/domain/tool"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testRegistry(t *testing.T) tool.Registry {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.RunSeeders(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return BuildRegistry(db)
}

func call(t *testing.T, registry tool.Registry, name, input string) string {
	t.Helper()

	tl, ok := registry.Get(name)
	if !ok {
		t.Fatalf("tool %q not registered", name)
	}
	result, err := tl.Execute(context.Background(), json.RawMessage(input))
	if err != nil {
		t.Fatalf("%s returned error: %v", name, err)
	}
	return string(result.Output)
}

func TestRegistryToolSet(t *testing.T) {
	registry := testRegistry(t)

	want := []string{
		"manufacturing_run_query",
		"manufacturing_get_schema",
		"manufacturing_list_factories",
		"manufacturing_get_machines",
		"manufacturing_get_work_orders",
		"manufacturing_quality_summary",
		"manufacturing_maintenance_report",
		"manufacturing_inventory_status",
		"manufacturing_supplier_performance",
		"manufacturing_operator_performance",
	}
	for _, name := range want {
		if !registry.Has(name) {
			t.Errorf("registry missing tool %q", name)
		}
	}
	if got := len(registry.List()); got != len(want) {
		t.Errorf("registry has %d tools, want %d", got, len(want))
	}
}

func TestRunQuerySelect(t *testing.T) {
	registry := testRegistry(t)

	out := call(t, registry, "manufacturing_run_query",
		`{"sql":"SELECT id, name FROM factories ORDER BY id"}`)

	var rows []map[string]any
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(rows) != 5 {
		t.Errorf("query returned %d rows, want 5", len(rows))
	}
}

func TestRunQueryTrailingSemicolon(t *testing.T) {
	registry := testRegistry(t)

	out := call(t, registry, "manufacturing_run_query",
		`{"sql":"SELECT COUNT(*) AS n FROM machines;"}`)
	if !strings.Contains(out, `"n": 16`) {
		t.Errorf("output = %s, want machine count 16", out)
	}
}

func TestRunQueryRejectsNonSelect(t *testing.T) {
	tests := []struct {
		name string
		sql  string
	}{
		{"drop", "DROP TABLE factories"},
		{"update", "UPDATE machines SET status = 'offline'"},
		{"delete", "delete FROM parts"},
		{"insert", "INSERT INTO suppliers (name) VALUES ('x')"},
		{"pragma", "PRAGMA table_info(factories)"},
		{"chained", "SELECT 1; DROP TABLE factories;"},
		{"select prefix", "selectx * FROM parts"},
	}

	registry := testRegistry(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, _ := json.Marshal(map[string]string{"sql": tt.sql})
			out := call(t, registry, "manufacturing_run_query", string(in))
			if out != selectOnlyError {
				t.Errorf("output = %q, want %q", out, selectOnlyError)
			}
		})
	}
}

func TestRunQueryEmptyResult(t *testing.T) {
	registry := testRegistry(t)

	out := call(t, registry, "manufacturing_run_query",
		`{"sql":"SELECT * FROM factories WHERE id = 9999"}`)
	if out != utils.NoResults {
		t.Errorf("output = %q, want %q", out, utils.NoResults)
	}
}

func TestRunQueryErrorPrefix(t *testing.T) {
	registry := testRegistry(t)

	out := call(t, registry, "manufacturing_run_query",
		`{"sql":"SELECT * FROM no_such_table"}`)
	if !strings.HasPrefix(out, "Query error: ") {
		t.Errorf("output = %q, want Query error prefix", out)
	}
}

func TestRunQueryValidation(t *testing.T) {
	registry := testRegistry(t)

	for _, input := range []string{`{}`, `{"sql":""}`, `{"sql":"SELECT 1","extra":true}`} {
		out := call(t, registry, "manufacturing_run_query", input)
		if !strings.HasPrefix(out, "Validation error: ") {
			t.Errorf("input %s: output = %q, want Validation error prefix", input, out)
		}
	}
}

func TestGetSchemaTool(t *testing.T) {
	registry := testRegistry(t)

	out := call(t, registry, "manufacturing_get_schema", `{}`)

	var schema map[string]database.TableSchema
	if err := json.Unmarshal([]byte(out), &schema); err != nil {
		t.Fatalf("schema output is not JSON: %v", err)
	}
	if len(schema) != 11 {
		t.Errorf("schema has %d tables, want 11", len(schema))
	}
	if _, ok := schema["work_orders"]; !ok {
		t.Error("schema missing work_orders table")
	}
}

func TestGetWorkOrdersTool(t *testing.T) {
	registry := testRegistry(t)

	out := call(t, registry, "manufacturing_get_work_orders", `{"status":"completed","limit":10}`)

	var rows []map[string]any
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(rows) == 0 || len(rows) > 10 {
		t.Fatalf("returned %d rows, want between 1 and 10", len(rows))
	}
	for _, row := range rows {
		if row["status"] != "completed" {
			t.Errorf("status = %v, want completed", row["status"])
		}
		if row["completion_pct"] != float64(100) {
			t.Errorf("completion_pct = %v, want 100", row["completion_pct"])
		}
	}
}

func TestFilterToolsRejectUnknownFields(t *testing.T) {
	registry := testRegistry(t)

	for _, name := range []string{
		"manufacturing_list_factories",
		"manufacturing_get_machines",
		"manufacturing_inventory_status",
		"manufacturing_supplier_performance",
	} {
		out := call(t, registry, name, `{"bogus":1}`)
		if !strings.HasPrefix(out, "Validation error: ") {
			t.Errorf("%s: output = %q, want Validation error prefix", name, out)
		}
	}
}

func TestFilterToolsEmptyInput(t *testing.T) {
	registry := testRegistry(t)

	for _, input := range []string{"", "null", "{}"} {
		out := call(t, registry, "manufacturing_list_factories", input)
		if strings.HasPrefix(out, "Validation error:") || strings.HasPrefix(out, "Query error:") {
			t.Errorf("input %q: unexpected failure %q", input, out)
		}
	}
}

func TestInventoryStatusTool(t *testing.T) {
	registry := testRegistry(t)

	out := call(t, registry, "manufacturing_inventory_status", `{}`)

	var rows []map[string]any
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(rows) != 12 {
		t.Errorf("returned %d rows, want 12", len(rows))
	}
}
