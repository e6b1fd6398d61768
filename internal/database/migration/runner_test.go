package migration

import (
	"testing"
	"testing/fstest"
)

func TestLoad_OrdersAndChecksums(t *testing.T) {
	fsys := fstest.MapFS{
		"m/V2__second.sql": {Data: []byte("SELECT 2;")},
		"m/V1__first.sql":  {Data: []byte("  SELECT 1;\n")},
		"m/README.md":      {Data: []byte("ignored")},
	}
	migs, err := Load(fsys, "m")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migs))
	}
	if migs[0].Version != 1 || migs[0].Name != "first" || migs[0].SQL != "SELECT 1;" {
		t.Fatalf("unexpected first migration: %+v", migs[0])
	}
	if migs[0].Checksum == migs[1].Checksum || len(migs[0].Checksum) != 64 {
		t.Fatalf("unexpected checksums: %q %q", migs[0].Checksum, migs[1].Checksum)
	}
}

func TestLoad_DuplicateVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"V1__a.sql": {Data: []byte("SELECT 1;")},
		"V1__b.sql": {Data: []byte("SELECT 2;")},
	}
	if _, err := Load(fsys, "."); err == nil {
		t.Fatalf("expected duplicate version error")
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	fsys := fstest.MapFS{"V1__a.sql": {Data: []byte("  \n")}}
	if _, err := Load(fsys, "."); err == nil {
		t.Fatalf("expected empty file error")
	}
}

func TestLoad_MissingDir(t *testing.T) {
	migs, err := Load(fstest.MapFS{}, "nope")
	if err != nil || migs != nil {
		t.Fatalf("expected nil migrations for missing dir, got %v %v", migs, err)
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	migs, err := Load(embedded, "sql")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) == 0 || migs[0].Version != 1 {
		t.Fatalf("expected embedded V1 migration, got %v", migs)
	}
}
