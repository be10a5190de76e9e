package portfolio

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/storage"
)

// ErrQuit is returned by Run when the player leaves without picking a game
var ErrQuit = errors.New("launcher closed")

const helpText = "[gold]↑/↓[-] browse  [gold]Enter[-] open  [gold]Esc[-] back  [gold]q[-] quit"

// Setup pages are named by the game ID they launch
const (
	pageProjects    = "projects"
	pageDogfight    = "dogfight"
	pageShooter     = "shooter"
	pageTether      = "tether"
	pageUnavailable = "unavailable"
)

var difficultyOptions = []string{"easy", "medium", "hard"}

// Selection is the game and setup chosen in the launcher
type Selection struct {
	GameID     string
	Difficulty core.Difficulty
	Stage      int
	Pilot      string
}

// Launcher is the tview landing page
// It is single-use: build a new one for every visit
type Launcher struct {
	app      *tview.Application
	pages    *tview.Pages
	list     *tview.List
	detail   *tview.TextView
	status   *tview.TextView
	stages   *tview.List
	pilot    *tview.Form
	shooter  *tview.Form
	store    storage.KV
	progress *storage.Progress
	logger   *slog.Logger
	projects []Project

	pilotName  string
	difficulty core.Difficulty // Dogfight and tether
	shooterAt  core.Difficulty
	selection  Selection
	chosen     bool
}

// NewLauncher builds the launcher over store, which supplies the pilot profile and tether progress
func NewLauncher(store storage.KV, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	applyStyles()

	l := &Launcher{
		app:        tview.NewApplication(),
		pages:      tview.NewPages(),
		store:      store,
		progress:   storage.NewProgress(store),
		logger:     logger,
		projects:   All(),
		difficulty: core.DifficultyMedium,
	}
	if p, ok := storage.LoadProfile(store); ok {
		l.pilotName = p.Name
		l.difficulty = core.ParseDifficulty(p.Difficulty)
	}
	l.shooterAt = l.difficulty

	l.buildProjects()
	l.buildDogfight()
	l.buildShooter()
	l.buildTether()
	l.pages.SwitchToPage(pageProjects)

	l.app.SetInputCapture(l.capture)
	return l
}

func applyStyles() {
	tview.Styles.PrimitiveBackgroundColor = tcell.ColorBlack
	tview.Styles.ContrastBackgroundColor = tcell.ColorDarkSlateGray
	tview.Styles.MoreContrastBackgroundColor = tcell.ColorBlack
	tview.Styles.BorderColor = tcell.ColorAqua
	tview.Styles.TitleColor = tcell.ColorGold
	tview.Styles.GraphicsColor = tcell.ColorAqua
	tview.Styles.PrimaryTextColor = tcell.ColorWhite
	tview.Styles.SecondaryTextColor = tcell.ColorLightGray
	tview.Styles.TertiaryTextColor = tcell.ColorAqua
	tview.Styles.InverseTextColor = tcell.ColorBlack
}

// SetScreen runs the launcher on screen instead of the terminal
func (l *Launcher) SetScreen(screen tcell.Screen) {
	l.app.SetScreen(screen)
}

// Run shows the launcher until a game is chosen or the player quits
func (l *Launcher) Run() (Selection, error) {
	if err := l.app.SetRoot(l.pages, true).EnableMouse(true).Run(); err != nil {
		return Selection{}, fmt.Errorf("launcher: %w", err)
	}
	if !l.chosen {
		return Selection{}, ErrQuit
	}
	l.logger.Info("game selected", "game", l.selection.GameID,
		"difficulty", l.selection.Difficulty.String(), "stage", l.selection.Stage)
	return l.selection, nil
}

func (l *Launcher) buildProjects() {
	l.list = tview.NewList().ShowSecondaryText(true)
	l.list.SetBorder(true).SetTitle(" STARFALL ")
	l.list.SetHighlightFullLine(true)
	for _, p := range l.projects {
		l.list.AddItem(p.Title, fmt.Sprintf("  %s · %s", p.Group.Title(), strings.Join(p.Tags, ", ")), 0, nil)
	}
	l.list.SetChangedFunc(func(index int, _, _ string, _ rune) {
		l.showProject(index)
	})
	l.list.SetSelectedFunc(func(index int, _, _ string, _ rune) {
		l.open(index)
	})

	l.detail = tview.NewTextView().SetDynamicColors(true).SetWrap(true)
	l.detail.SetBorder(true).SetTitle(" Project ")
	l.status = tview.NewTextView().SetDynamicColors(true).SetText(helpText)

	body := tview.NewFlex().
		AddItem(l.list, 0, 1, true).
		AddItem(l.detail, 0, 1, false)
	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(body, 0, 1, true).
		AddItem(l.status, 1, 0, false)

	l.pages.AddPage(pageProjects, root, true, true)
	l.showProject(0)
}

// showProject fills the detail pane for the project at index
func (l *Launcher) showProject(index int) {
	if index < 0 || index >= len(l.projects) {
		return
	}
	p := l.projects[index]
	var b strings.Builder
	fmt.Fprintf(&b, "[gold::b]%s[-::-]\n\n", tview.Escape(p.Title))
	fmt.Fprintf(&b, "%s\n\n", tview.Escape(p.Description))
	fmt.Fprintf(&b, "[aqua]Tags:[-] %s\n", tview.Escape(strings.Join(p.Tags, ", ")))
	fmt.Fprintf(&b, "[aqua]Folder:[-] %s\n\n", tview.Escape(p.Folder))
	if p.Playable() {
		b.WriteString("[lime]Press Enter to play[-]")
	} else {
		fmt.Fprintf(&b, "[gray]%s[-]", ErrUnavailable.Error())
	}
	l.detail.SetText(b.String())
	l.detail.ScrollToBeginning()
}

// open routes the project at index to its setup page
func (l *Launcher) open(index int) {
	if index < 0 || index >= len(l.projects) {
		return
	}
	p := l.projects[index]
	if err := Open(p); err != nil {
		l.showUnavailable(err)
		return
	}
	switch p.GameID {
	case pageDogfight:
		l.pages.SwitchToPage(pageDogfight)
		l.app.SetFocus(l.pilot)
	case pageShooter:
		l.pages.SwitchToPage(pageShooter)
		l.app.SetFocus(l.shooter)
	case pageTether:
		l.refreshStages()
		l.pages.SwitchToPage(pageTether)
		l.app.SetFocus(l.stages)
	default:
		l.showUnavailable(fmt.Errorf("%s: %w", p.GameID, ErrUnavailable))
	}
}

func (l *Launcher) showUnavailable(err error) {
	modal := tview.NewModal().
		SetText(err.Error()).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(int, string) {
			l.pages.RemovePage(pageUnavailable)
			l.app.SetFocus(l.list)
		})
	l.pages.AddPage(pageUnavailable, modal, false, true)
	l.app.SetFocus(modal)
}

func (l *Launcher) buildDogfight() {
	form := tview.NewForm()
	form.SetBorder(true).SetTitle(" Pilot Registration ")
	form.SetFieldBackgroundColor(tcell.ColorWhite)
	form.SetFieldTextColor(tcell.ColorBlack)
	form.SetLabelColor(tcell.ColorGold)
	form.AddInputField("Pilot", l.pilotName, 20, nil, func(text string) { l.pilotName = text })
	form.AddDropDown("Difficulty", difficultyOptions, int(l.difficulty), func(option string, _ int) {
		l.difficulty = core.ParseDifficulty(option)
	})
	form.AddButton("Launch", func() {
		if err := l.launchDogfight(); err != nil {
			l.setStatus(err)
		}
	})
	form.AddButton("Back", l.back)
	form.SetCancelFunc(l.back)
	l.pilot = form
	l.pages.AddPage(pageDogfight, centered(form, 48, 9), true, false)
}

// launchDogfight saves the pilot profile and selects the mission
func (l *Launcher) launchDogfight() error {
	p, err := storage.SaveProfile(l.store, storage.Profile{Name: l.pilotName, Difficulty: l.difficulty.String()})
	if err != nil {
		return err
	}
	l.finish(Selection{GameID: pageDogfight, Difficulty: l.difficulty, Pilot: p.Name})
	return nil
}

func (l *Launcher) buildShooter() {
	form := tview.NewForm()
	form.SetBorder(true).SetTitle(" Space Shooter ")
	form.SetFieldBackgroundColor(tcell.ColorWhite)
	form.SetFieldTextColor(tcell.ColorBlack)
	form.SetLabelColor(tcell.ColorGold)
	form.AddDropDown("Difficulty", difficultyOptions, int(l.shooterAt), func(option string, _ int) {
		l.shooterAt = core.ParseDifficulty(option)
	})
	form.AddButton("Start", func() {
		l.finish(Selection{GameID: pageShooter, Difficulty: l.shooterAt})
	})
	form.AddButton("Back", l.back)
	form.SetCancelFunc(l.back)
	l.shooter = form
	l.pages.AddPage(pageShooter, centered(form, 40, 7), true, false)
}

func (l *Launcher) buildTether() {
	l.stages = tview.NewList().ShowSecondaryText(true)
	l.stages.SetBorder(true).SetTitle(" TETHROUGH: select stage ")
	l.stages.SetHighlightFullLine(true)
	l.stages.SetSelectedFunc(func(index int, _, _ string, _ rune) {
		if err := l.launchTether(stageAt(index)); err != nil {
			l.setStatus(err)
		}
	})
	l.stages.SetDoneFunc(l.back)
	l.refreshStages()
	l.pages.AddPage(pageTether, centered(l.stages, 44, 26), true, false)
}

// stageNumbers lists the numbered stages followed by infinity
func stageNumbers() []int {
	var out []int
	for s := range parameter.TetherStages {
		if s != parameter.TetherInfinityStage {
			out = append(out, s)
		}
	}
	slices.Sort(out)
	return append(out, parameter.TetherInfinityStage)
}

func stageAt(index int) int {
	stages := stageNumbers()
	if index < 0 || index >= len(stages) {
		return 0
	}
	return stages[index]
}

// refreshStages rebuilds the stage list from saved progress
func (l *Launcher) refreshStages() {
	current := l.stages.GetCurrentItem()
	l.stages.Clear()
	for _, s := range stageNumbers() {
		st := parameter.TetherStages[s]
		main := fmt.Sprintf("Stage %d", s)
		secondary := fmt.Sprintf("  Objective: %d Points", st.Objective)
		if s == parameter.TetherInfinityStage {
			main = "Infinity"
			secondary = fmt.Sprintf("  Best: %d", l.progress.Best())
		}
		if !l.progress.Unlocked(s) {
			main = "[gray]" + main + "  (locked)[-]"
		}
		l.stages.AddItem(main, secondary, 0, nil)
	}
	l.stages.SetCurrentItem(current)
}

// launchTether selects stage if it is unlocked
func (l *Launcher) launchTether(stage int) error {
	if _, ok := parameter.TetherStages[stage]; !ok {
		return fmt.Errorf("unknown stage %d", stage)
	}
	if !l.progress.Unlocked(stage) {
		return fmt.Errorf("stage %d is locked: clear stage %d first", stage, l.progress.Stage())
	}
	l.finish(Selection{GameID: pageTether, Difficulty: l.difficulty, Stage: stage})
	return nil
}

func (l *Launcher) finish(sel Selection) {
	l.selection = sel
	l.chosen = true
	l.app.Stop()
}

func (l *Launcher) back() {
	l.pages.SwitchToPage(pageProjects)
	l.status.SetText(helpText)
	l.app.SetFocus(l.list)
}

func (l *Launcher) setStatus(err error) {
	l.logger.Debug("launcher rejected input", "error", err)
	l.back()
	l.status.SetText(fmt.Sprintf(" [white:red] %s [-:-]  %s", tview.Escape(err.Error()), helpText))
}

// capture owns the global keys: q and Esc leave from the project list, Esc backs out of setup pages
func (l *Launcher) capture(event *tcell.EventKey) *tcell.EventKey {
	front, _ := l.pages.GetFrontPage()
	switch front {
	case pageProjects:
		if event.Key() == tcell.KeyEscape || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			l.app.Stop()
			return nil
		}
	case pageDogfight, pageShooter, pageTether:
		if event.Key() == tcell.KeyEscape {
			l.back()
			return nil
		}
	}
	return event
}

// centered wraps p in a fixed-size box in the middle of the screen
func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 0, true).
			AddItem(nil, 0, 1, false), width, 0, true).
		AddItem(nil, 0, 1, false)
}
