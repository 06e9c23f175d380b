package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bbernstein/lacylights-umbrella/internal/database/models"
)

func TestConnect_InMemory(t *testing.T) {
	db, err := Connect(Config{URL: ":memory:"})
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer func() { _ = Close(db) }()

	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		t.Errorf("Failed to query database: %v", err)
	}
	if result != 1 {
		t.Errorf("Expected 1, got %d", result)
	}

	if !db.Migrator().HasTable(&models.Setting{}) {
		t.Error("Expected settings table to be migrated")
	}
}

func TestConnect_WithFilePrefix(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "umbrella.db")

	db, err := Connect(Config{URL: "file:" + dbPath})
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer func() { _ = Close(db) }()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Expected database file to be created")
	}
}

func TestClose_Nil(t *testing.T) {
	if err := Close(nil); err != nil {
		t.Errorf("Close(nil) = %v, want nil", err)
	}
}
