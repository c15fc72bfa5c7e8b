package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/radar/internal/model"
	"github.com/theirongolddev/radar/internal/tracker"
)

func TestWriteBackup(t *testing.T) {
	b := tracker.Backup{Habits: []model.Habit{{ID: "h", Name: "Read", CompletedDates: []string{"2024-01-01"}}}}
	path := filepath.Join(t.TempDir(), "radar.yaml")

	if err := writeBackup(path, b, tracker.FormatYAML); err != nil {
		t.Fatalf("writeBackup: %v", err)
	}
	in, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()
	got, err := tracker.DecodeBackup(in, tracker.FormatYAML)
	if err != nil {
		t.Fatalf("DecodeBackup: %v", err)
	}
	if len(got.Habits) != 1 || got.Habits[0].Name != "Read" {
		t.Errorf("habits = %+v, want Read", got.Habits)
	}
}

func TestWriteBackupReportsFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "radar.json")
	if err := writeBackup(path, tracker.Backup{}, tracker.FormatJSON); err == nil {
		t.Fatal("writeBackup into a missing directory returned nil")
	}
}
