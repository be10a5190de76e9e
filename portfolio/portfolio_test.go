package portfolio

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/storage"
)

func TestCatalogGroups(t *testing.T) {
	tests := []struct {
		group Group
		count int
	}{
		{GroupGames, 3},
		{GroupScenes, 2},
		{GroupExperiments, 2},
	}
	for _, tt := range tests {
		if got := len(Projects(tt.group)); got != tt.count {
			t.Errorf("%s: expected %d projects, got %d", tt.group, tt.count, got)
		}
	}
	if got := len(All()); got != 7 {
		t.Errorf("Expected 7 projects, got %d", got)
	}
}

func TestFindLinksGames(t *testing.T) {
	for _, id := range []string{"dogfight", "tether", "shooter"} {
		p, ok := Find(id)
		if !ok {
			t.Errorf("Expected project for %s", id)
			continue
		}
		if err := Open(p); err != nil {
			t.Errorf("%s: expected playable, got %v", id, err)
		}
	}
	if _, ok := Find(""); ok {
		t.Error("Expected no project for empty game id")
	}
}

func TestScenesUnavailable(t *testing.T) {
	for _, p := range Projects(GroupScenes) {
		if err := Open(p); !errors.Is(err, ErrUnavailable) {
			t.Errorf("%s: expected ErrUnavailable, got %v", p.Title, err)
		}
	}
}

func newTestLauncher(t *testing.T, kv storage.KV) *Launcher {
	t.Helper()
	if kv == nil {
		kv = storage.NewMemoryStore()
	}
	return NewLauncher(kv, nil)
}

func indexOf(t *testing.T, l *Launcher, gameID string) int {
	t.Helper()
	for i, p := range l.projects {
		if p.GameID == gameID {
			return i
		}
	}
	t.Fatalf("Expected %s in launcher", gameID)
	return -1
}

func TestDetailPane(t *testing.T) {
	l := newTestLauncher(t, nil)
	i := indexOf(t, l, "tether")
	l.showProject(i)
	text := l.detail.GetText(true)
	if !strings.Contains(text, "TETHROUGH") || !strings.Contains(text, "Press Enter to play") {
		t.Errorf("Expected tether detail, got %q", text)
	}

	l.showProject(len(l.projects) - 1)
	if text := l.detail.GetText(true); !strings.Contains(text, ErrUnavailable.Error()) {
		t.Errorf("Expected unavailable note, got %q", text)
	}
}

func TestOpenRoutesToSetupPage(t *testing.T) {
	l := newTestLauncher(t, nil)
	for _, id := range []string{"dogfight", "shooter", "tether"} {
		l.open(indexOf(t, l, id))
		if front, _ := l.pages.GetFrontPage(); front != id {
			t.Errorf("Expected page %s, got %s", id, front)
		}
		l.back()
	}

	l.open(len(l.projects) - 1)
	if !l.pages.HasPage(pageUnavailable) {
		t.Error("Expected unavailable modal")
	}
}

func TestLaunchDogfightSavesProfile(t *testing.T) {
	kv := storage.NewMemoryStore()
	l := newTestLauncher(t, kv)
	l.pilotName = "  luke "
	l.difficulty = core.DifficultyHard

	if err := l.launchDogfight(); err != nil {
		t.Fatalf("Expected launch, got %v", err)
	}
	if !l.chosen || l.selection.GameID != "dogfight" || l.selection.Pilot != "LUKE" {
		t.Errorf("Expected dogfight for LUKE, got %+v", l.selection)
	}
	p, ok := storage.LoadProfile(kv)
	if !ok || p.Name != "LUKE" || p.Difficulty != "hard" {
		t.Errorf("Expected saved profile, got %+v", p)
	}
}

func TestLaunchDogfightRejectsShortName(t *testing.T) {
	l := newTestLauncher(t, nil)
	l.pilotName = "ab"
	if err := l.launchDogfight(); !errors.Is(err, storage.ErrInvalidProfile) {
		t.Errorf("Expected ErrInvalidProfile, got %v", err)
	}
	if l.chosen {
		t.Error("Expected no selection")
	}
}

func TestLauncherLoadsProfile(t *testing.T) {
	kv := storage.NewMemoryStore()
	if _, err := storage.SaveProfile(kv, storage.Profile{Name: "wedge", Difficulty: "easy"}); err != nil {
		t.Fatal(err)
	}
	l := newTestLauncher(t, kv)
	if l.pilotName != "WEDGE" || l.difficulty != core.DifficultyEasy {
		t.Errorf("Expected WEDGE/easy, got %s/%s", l.pilotName, l.difficulty)
	}
}

func TestLaunchTetherHonorsProgress(t *testing.T) {
	kv := storage.NewMemoryStore()
	if err := storage.SetInt(kv, parameter.KeyStageProgress, 3); err != nil {
		t.Fatal(err)
	}
	l := newTestLauncher(t, kv)

	if err := l.launchTether(4); err == nil {
		t.Error("Expected stage 4 locked")
	}
	if err := l.launchTether(42); err == nil {
		t.Error("Expected unknown stage rejected")
	}
	if err := l.launchTether(3); err != nil {
		t.Fatalf("Expected stage 3 open, got %v", err)
	}
	if l.selection.Stage != 3 || l.selection.GameID != "tether" {
		t.Errorf("Expected tether stage 3, got %+v", l.selection)
	}
}

func TestStageListMarksLocks(t *testing.T) {
	l := newTestLauncher(t, nil)
	stages := stageNumbers()
	if stages[len(stages)-1] != parameter.TetherInfinityStage {
		t.Errorf("Expected infinity last, got %v", stages)
	}
	if l.stages.GetItemCount() != len(stages) {
		t.Fatalf("Expected %d stages, got %d", len(stages), l.stages.GetItemCount())
	}
	first, _ := l.stages.GetItemText(0)
	second, _ := l.stages.GetItemText(1)
	last, _ := l.stages.GetItemText(len(stages) - 1)
	if strings.Contains(first, "locked") {
		t.Errorf("Expected stage 1 open, got %q", first)
	}
	if !strings.Contains(second, "locked") {
		t.Errorf("Expected stage 2 locked, got %q", second)
	}
	if strings.Contains(last, "locked") || !strings.Contains(last, "Infinity") {
		t.Errorf("Expected open infinity, got %q", last)
	}
}

func TestQuitKeyOnlyOnProjectList(t *testing.T) {
	l := newTestLauncher(t, nil)
	q := tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)
	if l.capture(q) != nil {
		t.Error("Expected q consumed on project list")
	}

	l.open(indexOf(t, l, "dogfight"))
	if l.capture(q) == nil {
		t.Error("Expected q passed to pilot form")
	}
	if l.capture(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) != nil {
		t.Error("Expected Esc consumed on setup page")
	}
	if front, _ := l.pages.GetFrontPage(); front != pageProjects {
		t.Errorf("Expected back on project list, got %s", front)
	}
}

func TestLauncherDraws(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(100, 30)

	l := newTestLauncher(t, nil)
	l.pages.SetRect(0, 0, 100, 30)
	l.pages.Draw(screen)
	screen.Show()

	cells, width, _ := screen.GetContents()
	var row strings.Builder
	for _, c := range cells[:width] {
		if len(c.Runes) > 0 {
			row.WriteRune(c.Runes[0])
		}
	}
	if !strings.Contains(row.String(), "STARFALL") {
		t.Errorf("Expected title on first row, got %q", row.String())
	}
}
