package database

import "testing"

var expectedTables = []string{
	"factories", "production_lines", "machines", "employees",
	"suppliers", "parts", "purchase_orders", "work_orders",
	"work_order_parts", "quality_inspections", "maintenance_logs",
}

func TestInspectSchemaTables(t *testing.T) {
	db := openTestDB(t)

	schema, err := InspectSchema(db)
	if err != nil {
		t.Fatalf("InspectSchema() error = %v", err)
	}

	if len(schema) != len(expectedTables) {
		t.Errorf("InspectSchema() returned %d tables, want %d", len(schema), len(expectedTables))
	}
	for _, table := range expectedTables {
		if _, ok := schema[table]; !ok {
			t.Errorf("InspectSchema() missing table %q", table)
		}
	}
}

func TestInspectSchemaColumns(t *testing.T) {
	db := openTestDB(t)

	schema, err := InspectSchema(db)
	if err != nil {
		t.Fatalf("InspectSchema() error = %v", err)
	}

	factories := schema["factories"]
	byName := make(map[string]ColumnInfo, len(factories.Columns))
	for _, c := range factories.Columns {
		byName[c.Name] = c
	}

	id, ok := byName["id"]
	if !ok {
		t.Fatal("factories has no id column")
	}
	if !id.PK {
		t.Error("factories.id is not marked as primary key")
	}
	if _, ok := byName["established_year"]; !ok {
		t.Error("factories has no established_year column")
	}
}

func TestInspectSchemaForeignKeys(t *testing.T) {
	db := openTestDB(t)

	schema, err := InspectSchema(db)
	if err != nil {
		t.Fatalf("InspectSchema() error = %v", err)
	}

	hasFK := func(table, from, toTable string) bool {
		for _, fk := range schema[table].ForeignKeys {
			if fk.From == from && fk.ToTable == toTable {
				return true
			}
		}
		return false
	}

	tests := []struct {
		table, from, toTable string
	}{
		{"machines", "production_line_id", "production_lines"},
		{"production_lines", "factory_id", "factories"},
		{"work_orders", "production_line_id", "production_lines"},
		{"work_orders", "operator_id", "employees"},
		{"parts", "supplier_id", "suppliers"},
		{"quality_inspections", "work_order_id", "work_orders"},
		{"maintenance_logs", "machine_id", "machines"},
	}
	for _, tt := range tests {
		if !hasFK(tt.table, tt.from, tt.toTable) {
			t.Errorf("missing foreign key %s.%s -> %s", tt.table, tt.from, tt.toTable)
		}
	}
}
