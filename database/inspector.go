// database/inspector.go
package database

import (
	"fmt"

	"gorm.io/gorm"
)

type ColumnInfo struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	NotNull bool   `json:"not_null"`
	PK      bool   `json:"pk"`
}

type ForeignKeyInfo struct {
	From    string  `json:"from"`
	ToTable string  `json:"to_table"`
	ToCol   *string `json:"to_col"`
}

type TableSchema struct {
	Columns     []ColumnInfo     `json:"columns"`
	ForeignKeys []ForeignKeyInfo `json:"foreign_keys"`
}

// InspectSchema reads the live catalog of the connected engine and returns a
// uniform description per table: columns plus foreign-key edges. Each engine
// stores its metadata differently, so the lookup is implemented per dialect.
func InspectSchema(db *gorm.DB) (map[string]TableSchema, error) {
	switch db.Dialector.Name() {
	case "sqlite":
		return inspectSQLite(db)
	case "postgres":
		return inspectInformationSchema(db, postgresCatalog)
	case "mysql":
		return inspectMySQL(db)
	case "sqlserver":
		return inspectInformationSchema(db, sqlserverCatalog)
	default:
		return nil, fmt.Errorf("schema introspection not supported for driver %s", db.Dialector.Name())
	}
}

func inspectSQLite(db *gorm.DB) (map[string]TableSchema, error) {
	var tables []string
	err := db.Raw(`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`).
		Scan(&tables).Error
	if err != nil {
		return nil, err
	}

	schema := make(map[string]TableSchema, len(tables))
	for _, table := range tables {
		// Table names come from the catalog itself, never from a caller.
		var cols []struct {
			Name    string
			Type    string
			NotNull int `gorm:"column:notnull"`
			PK      int `gorm:"column:pk"`
		}
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info(%q)", table)).Scan(&cols).Error; err != nil {
			return nil, err
		}

		var fks []struct {
			Table string  `gorm:"column:table"`
			From  string  `gorm:"column:from"`
			To    *string `gorm:"column:to"`
		}
		if err := db.Raw(fmt.Sprintf("PRAGMA foreign_key_list(%q)", table)).Scan(&fks).Error; err != nil {
			return nil, err
		}

		ts := TableSchema{Columns: []ColumnInfo{}, ForeignKeys: []ForeignKeyInfo{}}
		for _, c := range cols {
			ts.Columns = append(ts.Columns, ColumnInfo{Name: c.Name, Type: c.Type, NotNull: c.NotNull != 0, PK: c.PK != 0})
		}
		for _, fk := range fks {
			ts.ForeignKeys = append(ts.ForeignKeys, ForeignKeyInfo{From: fk.From, ToTable: fk.Table, ToCol: fk.To})
		}
		schema[table] = ts
	}
	return schema, nil
}

func inspectMySQL(db *gorm.DB) (map[string]TableSchema, error) {
	var tables []string
	err := db.Raw(`SELECT table_name FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_type = 'BASE TABLE' ORDER BY table_name`).
		Scan(&tables).Error
	if err != nil {
		return nil, err
	}

	schema := make(map[string]TableSchema, len(tables))
	for _, table := range tables {
		var cols []struct {
			ColumnName string
			ColumnType string
			IsNullable string
			ColumnKey  string
		}
		err := db.Raw(`SELECT column_name, column_type, is_nullable, column_key
			FROM information_schema.columns
			WHERE table_schema = DATABASE() AND table_name = ? ORDER BY ordinal_position`, table).
			Scan(&cols).Error
		if err != nil {
			return nil, err
		}

		var fks []struct {
			ColumnName           string
			ReferencedTableName  string
			ReferencedColumnName *string
		}
		err = db.Raw(`SELECT column_name, referenced_table_name, referenced_column_name
			FROM information_schema.key_column_usage
			WHERE table_schema = DATABASE() AND table_name = ? AND referenced_table_name IS NOT NULL`, table).
			Scan(&fks).Error
		if err != nil {
			return nil, err
		}

		ts := TableSchema{Columns: []ColumnInfo{}, ForeignKeys: []ForeignKeyInfo{}}
		for _, c := range cols {
			ts.Columns = append(ts.Columns, ColumnInfo{
				Name:    c.ColumnName,
				Type:    c.ColumnType,
				NotNull: c.IsNullable == "NO",
				PK:      c.ColumnKey == "PRI",
			})
		}
		for _, fk := range fks {
			ts.ForeignKeys = append(ts.ForeignKeys, ForeignKeyInfo{From: fk.ColumnName, ToTable: fk.ReferencedTableName, ToCol: fk.ReferencedColumnName})
		}
		schema[table] = ts
	}
	return schema, nil
}

// catalogQueries covers the engines whose metadata lives in a standard
// information_schema plus constraint_column_usage.
type catalogQueries struct {
	tables  string
	columns string
	pks     string
	fks     string
}

var postgresCatalog = catalogQueries{
	tables: `SELECT table_name FROM information_schema.tables
		WHERE table_schema = 'public' AND table_type = 'BASE TABLE' ORDER BY table_name`,
	columns: `SELECT column_name, data_type, is_nullable FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = ? ORDER BY ordinal_position`,
	pks: `SELECT kcu.column_name FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu ON kcu.constraint_name = tc.constraint_name
		WHERE tc.table_schema = 'public' AND tc.table_name = ? AND tc.constraint_type = 'PRIMARY KEY'`,
	fks: `SELECT kcu.column_name, ccu.table_name AS ref_table, ccu.column_name AS ref_column
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu ON kcu.constraint_name = tc.constraint_name
		JOIN information_schema.constraint_column_usage ccu ON ccu.constraint_name = tc.constraint_name
		WHERE tc.table_schema = 'public' AND tc.table_name = ? AND tc.constraint_type = 'FOREIGN KEY'`,
}

var sqlserverCatalog = catalogQueries{
	tables: `SELECT table_name FROM information_schema.tables
		WHERE table_type = 'BASE TABLE' ORDER BY table_name`,
	columns: `SELECT column_name, data_type, is_nullable FROM information_schema.columns
		WHERE table_name = ? ORDER BY ordinal_position`,
	pks: `SELECT kcu.column_name FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu ON kcu.constraint_name = tc.constraint_name
		WHERE tc.table_name = ? AND tc.constraint_type = 'PRIMARY KEY'`,
	fks: `SELECT kcu.column_name, ccu.table_name AS ref_table, ccu.column_name AS ref_column
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu ON kcu.constraint_name = tc.constraint_name
		JOIN information_schema.constraint_column_usage ccu ON ccu.constraint_name = tc.constraint_name
		WHERE tc.table_name = ? AND tc.constraint_type = 'FOREIGN KEY'`,
}

func inspectInformationSchema(db *gorm.DB, q catalogQueries) (map[string]TableSchema, error) {
	var tables []string
	if err := db.Raw(q.tables).Scan(&tables).Error; err != nil {
		return nil, err
	}

	schema := make(map[string]TableSchema, len(tables))
	for _, table := range tables {
		var cols []struct {
			ColumnName string
			DataType   string
			IsNullable string
		}
		if err := db.Raw(q.columns, table).Scan(&cols).Error; err != nil {
			return nil, err
		}

		var pkCols []string
		if err := db.Raw(q.pks, table).Scan(&pkCols).Error; err != nil {
			return nil, err
		}
		pk := make(map[string]bool, len(pkCols))
		for _, c := range pkCols {
			pk[c] = true
		}

		var fks []struct {
			ColumnName string
			RefTable   string
			RefColumn  *string
		}
		if err := db.Raw(q.fks, table).Scan(&fks).Error; err != nil {
			return nil, err
		}

		ts := TableSchema{Columns: []ColumnInfo{}, ForeignKeys: []ForeignKeyInfo{}}
		for _, c := range cols {
			ts.Columns = append(ts.Columns, ColumnInfo{
				Name:    c.ColumnName,
				Type:    c.DataType,
				NotNull: c.IsNullable == "NO",
				PK:      pk[c.ColumnName],
			})
		}
		for _, fk := range fks {
			ts.ForeignKeys = append(ts.ForeignKeys, ForeignKeyInfo{From: fk.ColumnName, ToTable: fk.RefTable, ToCol: fk.RefColumn})
		}
		schema[table] = ts
	}
	return schema, nil
}
