package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/starfall/parameter"
)

func TestFileStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "save.yaml")

	s := OpenFile(path, nil)
	if _, ok := s.Get("missing"); ok {
		t.Fatal("Expected empty store for missing file")
	}
	if err := s.Set(parameter.KeyBestScore, "42"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set(parameter.KeyStageProgress, "3"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	reopened := OpenFile(path, nil)
	if v, ok := reopened.Get(parameter.KeyBestScore); !ok || v != "42" {
		t.Errorf("Expected persisted best score 42, got %q (ok=%v)", v, ok)
	}
	if keys := reopened.Keys(); len(keys) != 2 {
		t.Errorf("Expected 2 keys, got %v", keys)
	}
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected temp file cleaned up, stat returned %v", err)
	}
}

func TestFileStoreCorruptFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.yaml")
	if err := os.WriteFile(path, []byte("::: not yaml [\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := OpenFile(path, nil)
	if got := Int(s, parameter.KeyStageProgress, 1); got != 1 {
		t.Errorf("Expected default 1 for corrupt file, got %d", got)
	}
	if err := s.Set("k", "v"); err != nil {
		t.Errorf("Expected corrupt file to be overwritten, got %v", err)
	}
}

func TestIntFallback(t *testing.T) {
	kv := NewMemoryStore()
	if got := Int(kv, "n", 7); got != 7 {
		t.Errorf("Expected default for absent key, got %d", got)
	}
	_ = kv.Set("n", "NaN")
	if got := Int(kv, "n", 7); got != 7 {
		t.Errorf("Expected default for non-numeric value, got %d", got)
	}
	_ = SetInt(kv, "n", 12)
	if got := Int(kv, "n", 7); got != 12 {
		t.Errorf("Expected 12, got %d", got)
	}
}

func TestRaiseInt(t *testing.T) {
	kv := NewMemoryStore()
	raised, _ := RaiseInt(kv, "best", 10, 0)
	if !raised {
		t.Error("Expected first record to raise")
	}
	raised, _ = RaiseInt(kv, "best", 5, 0)
	if raised || Int(kv, "best", 0) != 10 {
		t.Errorf("Expected lower score ignored, best is %d", Int(kv, "best", 0))
	}
}

func TestProgress(t *testing.T) {
	p := NewProgress(NewMemoryStore())
	if p.Stage() != 1 {
		t.Fatalf("Expected initial stage 1, got %d", p.Stage())
	}
	if p.Unlocked(2) {
		t.Error("Expected stage 2 locked initially")
	}
	if !p.Unlocked(parameter.TetherInfinityStage) {
		t.Error("Expected infinity always unlocked")
	}

	_ = p.Complete(1)
	if !p.Unlocked(2) {
		t.Error("Expected stage 2 unlocked after clearing stage 1")
	}

	// Replaying an earlier stage never lowers progress
	_ = p.Complete(5)
	_ = p.Complete(2)
	if p.Stage() != 6 {
		t.Errorf("Expected progress 6, got %d", p.Stage())
	}

	_ = p.Complete(parameter.TetherFinalStage)
	if p.Stage() != parameter.StageProgressComplete {
		t.Errorf("Expected completion marker %d, got %d", parameter.StageProgressComplete, p.Stage())
	}

	if rec, _ := p.RecordBest(30); !rec || p.Best() != 30 {
		t.Errorf("Expected best 30, got %d", p.Best())
	}
}

func TestProfileRoundTrip(t *testing.T) {
	kv := NewMemoryStore()
	if _, ok := LoadProfile(kv); ok {
		t.Fatal("Expected no profile initially")
	}

	saved, err := SaveProfile(kv, Profile{Name: "  luke ", Difficulty: "hard"})
	if err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}
	if saved.Name != "LUKE" {
		t.Errorf("Expected normalized name LUKE, got %q", saved.Name)
	}

	loaded, ok := LoadProfile(kv)
	if !ok {
		t.Fatal("Expected stored profile")
	}
	if loaded.Name != "LUKE" || loaded.Difficulty != "hard" {
		t.Errorf("Expected LUKE/hard, got %q/%q", loaded.Name, loaded.Difficulty)
	}
	if !loaded.Timestamp.Equal(saved.Timestamp) {
		t.Errorf("Expected timestamp %v, got %v", saved.Timestamp, loaded.Timestamp)
	}
}

func TestProfileRejectsShortName(t *testing.T) {
	kv := NewMemoryStore()
	if _, err := SaveProfile(kv, Profile{Name: " r2 "}); !errors.Is(err, ErrInvalidProfile) {
		t.Errorf("Expected ErrInvalidProfile, got %v", err)
	}
	if _, ok := kv.Get(parameter.KeyPilotProfile); ok {
		t.Error("Expected nothing stored for rejected profile")
	}
}

func TestLoadProfileCorrupt(t *testing.T) {
	kv := NewMemoryStore()
	_ = kv.Set(parameter.KeyPilotProfile, "{{{")
	if _, ok := LoadProfile(kv); ok {
		t.Error("Expected corrupt profile to be ignored")
	}
}
