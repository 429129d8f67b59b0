package sqlitemigrate

import (
	"context"
	"database/sql"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func TestApplyMigrations_RecordsOnce(t *testing.T) {
	db := openInMemoryDB(t)
	ctx := context.Background()
	migrations := fstest.MapFS{
		"001_create.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREATE TABLE items(id TEXT PRIMARY KEY);\n-- +migrate Down\nDROP TABLE items;")},
	}

	applied, err := ApplyMigrations(ctx, db, migrations, "")
	if err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if len(applied) != 1 || applied[0] != "001_create.sql" {
		t.Fatalf("unexpected applied list: %v", applied)
	}
	again, err := ApplyMigrations(ctx, db, migrations, "")
	if err != nil {
		t.Fatalf("re-apply migrations: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("expected nothing applied twice, got %v", again)
	}
	if n := queryInt64(t, db, "SELECT COUNT(*) FROM schema_migrations"); n != 1 {
		t.Fatalf("expected 1 migration row, got %d", n)
	}
	if n := queryInt64(t, db, "SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='items'"); n != 1 {
		t.Fatalf("expected items table")
	}
}

func TestApplyMigrations_FailedFileStaysUnrecorded(t *testing.T) {
	db := openInMemoryDB(t)
	ctx := context.Background()
	bad := fstest.MapFS{"001_bad.sql": &fstest.MapFile{Data: []byte("CREAT TABLE things(id INT);")}}
	if _, err := ApplyMigrations(ctx, db, bad, ""); err == nil {
		t.Fatalf("expected bad migration to fail")
	}
	if n := queryInt64(t, db, "SELECT COUNT(*) FROM schema_migrations"); n != 0 {
		t.Fatalf("expected failed migration to stay unrecorded, got %d rows", n)
	}
}

func TestApplyMigrations_UsesRootInKey(t *testing.T) {
	db := openInMemoryDB(t)
	migrations := fstest.MapFS{
		"sqlite/001_rows.sql": &fstest.MapFile{Data: []byte("CREATE TABLE rows_a(id TEXT PRIMARY KEY);")},
	}
	applied, err := ApplyMigrations(context.Background(), db, migrations, "sqlite")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(applied) != 1 || applied[0] != "sqlite/001_rows.sql" {
		t.Fatalf("unexpected key: %v", applied)
	}
}

func TestExtractUpMigration(t *testing.T) {
	cases := map[string]string{
		"SELECT 1;":                 "SELECT 1;",
		"-- +migrate Up\nSELECT 1;": "\nSELECT 1;",
		"-- +migrate Up\nSELECT 1;\n-- +migrate Down\nSELECT 2;": "\nSELECT 1;\n",
	}
	for in, want := range cases {
		if got := ExtractUpMigration(in); got != want {
			t.Fatalf("ExtractUpMigration(%q)=%q want %q", in, got, want)
		}
	}
}

func openInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func queryInt64(t *testing.T, db *sql.DB, query string) int64 {
	t.Helper()
	var value int64
	if err := db.QueryRow(query).Scan(&value); err != nil {
		t.Fatalf("query int value: %v", err)
	}
	return value
}
