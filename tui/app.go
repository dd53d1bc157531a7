// Package tui is the interactive mode: duplicate sets in a navigable
// table, per-set detail, and per-set deletion behind a confirmation
// modal. Detection semantics are identical to the one-shot CLI flow;
// keepers are never deleted here either.
package tui

import (
	"fmt"
	"log"
	"os"
	"slices"
	"sync/atomic"

	"codeberg.org/tslocum/cview"
	"github.com/riadafridishibly/dupclean/dedup"
	"github.com/riadafridishibly/dupclean/scanner"
)

type App struct {
	app *cview.Application

	header       *cview.TextView
	footer       *cview.TextView
	table        *cview.Table
	panels       *cview.Panels
	detailModal  *cview.Modal
	confirmModal *cview.Modal
	themeModal   *cview.Modal

	sets     []*dedup.DuplicateSet
	rootPath string
	dryRun   bool
	warnings int

	showDetail  bool
	showConfirm bool
	showTheme   bool

	uiUpdates chan func()

	userHomeDir  string
	currentTheme Theme

	scanning   atomic.Bool
	deleted    atomic.Int64
	deleteErrs atomic.Int64
}

func NewApp(scanPath string, dryRun bool) *App {
	app := cview.NewApplication()

	theme := defaultTheme()

	header := cview.NewTextView()
	header.SetDynamicColors(true)

	footer := cview.NewTextView()
	footer.SetDynamicColors(true)

	detailModal := cview.NewModal()
	detailModal.SetText("")
	detailModal.AddButtons([]string{"Okay"})

	confirmModal := cview.NewModal()
	confirmModal.SetText("")
	confirmModal.AddButtons([]string{"Delete", "Cancel"})

	themeModal := cview.NewModal()
	themeModal.SetText("")
	themeNames := getThemeNames()
	themeModal.AddButtons(themeNames)

	panels := cview.NewPanels()
	table := cview.NewTable()
	panels.AddPanel("table", table, true, true)

	a := &App{
		app:          app,
		header:       header,
		footer:       footer,
		table:        table,
		panels:       panels,
		detailModal:  detailModal,
		confirmModal: confirmModal,
		themeModal:   themeModal,
		rootPath:     scanPath,
		dryRun:       dryRun,
		uiUpdates:    make(chan func(), 128),
		currentTheme: theme,
	}

	flex := cview.NewFlex()
	flex.SetDirection(cview.FlexRow)
	flex.AddItem(header, 1, 0, false)
	flex.AddItem(panels, 0, 1, true)
	flex.AddItem(footer, 1, 0, false)

	app.SetInputCapture(a.handleInput)

	detailModal.SetDoneFunc(func(_ int, _ string) {
		a.showDetail = false
		a.setRoot(flex, true)
	})

	confirmModal.SetDoneFunc(func(_ int, buttonLabel string) {
		a.showConfirm = false
		a.setRoot(flex, true)

		if buttonLabel == "Delete" {
			a.deleteSelectedSet()
		}
	})

	themeModal.SetDoneFunc(func(buttonIndex int, buttonLabel string) {
		a.showTheme = false
		a.setRoot(flex, true)

		if buttonIndex >= 0 && buttonIndex < len(themeNames) {
			a.switchTheme(buttonLabel)
			a.applyTheme()
		}
	})

	home, err := os.UserHomeDir()
	if err != nil {
		log.Panicln("Error getting home:", err)
	}
	a.userHomeDir = home

	header.SetTextAlign(cview.AlignCenter)
	header.SetText(headerStartupStatus(&theme, a.rootPath))
	footer.SetTextAlign(cview.AlignCenter)
	footer.SetText(footerStatusMenu(&theme))

	a.setRoot(flex, true)
	a.applyTheme()

	return a
}

func (a *App) switchTheme(themeName string) {
	if th, ok := themes[themeName]; ok {
		a.currentTheme = th
	}
}

func (a *App) applyTheme() {
	theme := a.currentTheme

	a.header.SetBackgroundColor(theme.headerBg)
	a.header.SetTitleColor(theme.headerFg)
	a.header.SetTextColor(theme.headerFg)

	a.footer.SetBackgroundColor(theme.footerBg)
	a.footer.SetTitleColor(theme.footerFg)
	a.footer.SetTextColor(theme.footerFg)

	for _, m := range []*cview.Modal{a.detailModal, a.confirmModal, a.themeModal} {
		m.SetBackgroundColor(theme.modalBg)
		m.SetTextColor(theme.modalFg)
		m.SetButtonBackgroundColor(theme.buttonBg)
		m.SetButtonTextColor(theme.buttonFg)
	}

	a.table.SetBackgroundColor(theme.bg)
	a.panels.SetBackgroundColor(theme.bg)

	a.trySendUIUpdate(func() {
		a.footer.SetText(footerStatusMenu(&theme))
		a.updateFinalStatus()
		a.buildTable()
	})
}

func (a *App) trySendUIUpdate(f func()) {
	select {
	case a.uiUpdates <- f:
	default:
	}
}

// setRoot queues a SetRoot operation to avoid data races
func (a *App) setRoot(primitive cview.Primitive, focus bool) {
	a.app.QueueUpdateDraw(func() {
		a.app.SetRoot(primitive, focus)
	})
}

// scan walks the target directory and regroups. Runs off the UI
// goroutine; results land on it through uiUpdates.
func (a *App) scan() {
	defer a.scanning.Store(false)

	warnings := 0
	records, err := scanner.ScanDir(a.rootPath, func(path string, err error) {
		warnings++
		log.Printf("Skipping %s: %v", path, err)
	})
	if err != nil {
		log.Printf("Error scanning %s: %v", a.rootPath, err)
		a.trySendUIUpdate(func() {
			a.header.SetText(fmt.Sprintf(" Error: %v", err))
		})
		return
	}

	grouped := dedup.Group(records)
	sets := make([]*dedup.DuplicateSet, len(grouped))
	for i := range grouped {
		sets[i] = &grouped[i]
	}

	a.trySendUIUpdate(func() {
		a.sets = sets
		a.warnings = warnings
		a.buildTable()
		a.updateFinalStatus()
	})
}

func (a *App) rescan() {
	if !a.scanning.CompareAndSwap(false, true) {
		return
	}
	go a.scan()
}

// deleteSelectedSet removes the selected set's candidates. The keeper
// always stays. The set leaves the table immediately; removals happen
// in the background with outcomes in the footer.
func (a *App) deleteSelectedSet() {
	set := a.selectedSet()
	if set == nil {
		return
	}

	a.sets = slices.DeleteFunc(a.sets, func(s *dedup.DuplicateSet) bool { return s == set })
	a.trySendUIUpdate(func() {
		a.buildTable()
		a.updateFinalStatus()
	})

	go func() {
		for _, c := range set.Candidates() {
			displayPath := a.replaceHomeWithTilde(c.Path)
			a.trySendUIUpdate(func() { a.footer.SetText(footerStatusDeleting(&a.currentTheme, displayPath)) })

			if err := os.Remove(c.Path); err != nil {
				log.Printf("Error deleting file: %s: error: %v", c.Path, err)
				a.deleteErrs.Add(1)
				a.trySendUIUpdate(func() { a.footer.SetText(footerStatusDeleteError(&a.currentTheme, displayPath, err)) })
				continue
			}
			a.deleted.Add(1)
			a.trySendUIUpdate(func() { a.footer.SetText(footerStatusDeleted(&a.currentTheme, displayPath)) })
		}
		a.trySendUIUpdate(func() {
			a.updateFinalStatus()
			a.footer.SetText(footerStatusMenu(&a.currentTheme))
		})
	}()
}

func (a *App) Run() error {
	log.Println("CurrentTheme:", a.currentTheme.Name)
	go func() {
		for updateFn := range a.uiUpdates {
			a.app.QueueUpdateDraw(updateFn)
		}
	}()
	a.rescan()
	return a.app.Run()
}
