package migration

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestMigrations(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for filename, content := range files {
		if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write test migration %s: %v", filename, err)
		}
	}
	return dir
}

func TestCurrentVersionFreshDatabase(t *testing.T) {
	db := setupTestDB(t)
	dir := setupTestMigrations(t, map[string]string{
		"001_test.sql": "CREATE TABLE test (id INTEGER);",
	})

	runner := NewRunner(db, os.DirFS(dir))

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0, got %d", version)
	}
}

func TestReadMigrationFiles(t *testing.T) {
	db := setupTestDB(t)
	dir := setupTestMigrations(t, map[string]string{
		"002_update.sql":  "ALTER TABLE test1 ADD COLUMN name TEXT;",
		"001_init.sql":    "CREATE TABLE test1 (id INTEGER);",
		"003_another.sql": "CREATE TABLE test2 (id INTEGER);",
	})

	runner := NewRunner(db, os.DirFS(dir))

	migrations, err := runner.ReadMigrationFiles()
	if err != nil {
		t.Fatalf("ReadMigrationFiles failed: %v", err)
	}

	if len(migrations) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(migrations))
	}

	// Sorted by version regardless of directory order
	for i, want := range []struct {
		version int
		name    string
	}{{1, "init"}, {2, "update"}, {3, "another"}} {
		if migrations[i].Version != want.version || migrations[i].Name != want.name {
			t.Errorf("migration %d: expected version %d name %q, got version %d name %q",
				i, want.version, want.name, migrations[i].Version, migrations[i].Name)
		}
	}
}

func TestReadMigrationFilesRejectsBadNames(t *testing.T) {
	db := setupTestDB(t)

	dir := setupTestMigrations(t, map[string]string{
		"init.sql": "CREATE TABLE test (id INTEGER);",
	})
	runner := NewRunner(db, os.DirFS(dir))
	if _, err := runner.ReadMigrationFiles(); err == nil {
		t.Error("expected error for filename without version prefix")
	}

	dir = setupTestMigrations(t, map[string]string{
		"001_a.sql": "CREATE TABLE a (id INTEGER);",
		"001_b.sql": "CREATE TABLE b (id INTEGER);",
	})
	runner = NewRunner(db, os.DirFS(dir))
	if _, err := runner.ReadMigrationFiles(); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("expected duplicate version error, got %v", err)
	}
}

func TestApplyFromScratch(t *testing.T) {
	db := setupTestDB(t)
	dir := setupTestMigrations(t, map[string]string{
		"001_init.sql":  "CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT);",
		"002_posts.sql": "CREATE TABLE posts (id INTEGER PRIMARY KEY, user_id INTEGER);",
	})

	runner := NewRunner(db, os.DirFS(dir))

	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("expected 2 migrations applied, got %d", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 2 {
		t.Errorf("expected version 2, got %d", version)
	}

	var n int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name IN ('users', 'posts')").Scan(&n)
	if err != nil || n != 2 {
		t.Error("migration tables were not created")
	}
}

func TestApplyIncremental(t *testing.T) {
	db := setupTestDB(t)
	dir := setupTestMigrations(t, map[string]string{
		"001_init.sql": "CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT);",
	})

	runner := NewRunner(db, os.DirFS(dir))

	if applied, err := runner.Apply(nil); err != nil || applied != 1 {
		t.Fatalf("first Apply: applied=%d err=%v", applied, err)
	}

	next := "CREATE TABLE posts (id INTEGER PRIMARY KEY, user_id INTEGER);"
	if err := os.WriteFile(filepath.Join(dir, "002_posts.sql"), []byte(next), 0644); err != nil {
		t.Fatalf("failed to write new migration: %v", err)
	}

	if applied, err := runner.Apply(nil); err != nil || applied != 1 {
		t.Fatalf("second Apply: applied=%d err=%v", applied, err)
	}

	// A third run is a no-op
	if applied, err := runner.Apply(nil); err != nil || applied != 0 {
		t.Fatalf("third Apply: applied=%d err=%v", applied, err)
	}

	version, _ := runner.CurrentVersion()
	if version != 2 {
		t.Errorf("expected version 2, got %d", version)
	}
}

func TestApplyRollsBackFailedMigration(t *testing.T) {
	db := setupTestDB(t)
	dir := setupTestMigrations(t, map[string]string{
		"001_init.sql": "CREATE TABLE users (id INTEGER PRIMARY KEY);",
		"002_bad.sql":  "THIS IS NOT SQL;",
	})

	runner := NewRunner(db, os.DirFS(dir))

	applied, err := runner.Apply(nil)
	if err == nil {
		t.Fatal("expected error from bad migration")
	}
	if applied != 1 {
		t.Errorf("expected 1 migration applied before failure, got %d", applied)
	}

	// The failed migration must not bump the version
	version, _ := runner.CurrentVersion()
	if version != 1 {
		t.Errorf("expected version 1 after failed migration, got %d", version)
	}
}

func TestValidateVersionRejectsNewerSchema(t *testing.T) {
	db := setupTestDB(t)
	dir := setupTestMigrations(t, map[string]string{
		"001_init.sql": "CREATE TABLE users (id INTEGER PRIMARY KEY);",
	})

	runner := NewRunner(db, os.DirFS(dir))
	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	// Simulate a database written by a newer build
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("failed to bump version: %v", err)
	}

	if err := runner.ValidateVersion(); err == nil {
		t.Error("expected error for schema newer than supported")
	}
}
