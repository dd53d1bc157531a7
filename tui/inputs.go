package tui

import "github.com/gdamore/tcell/v3"

func (a *App) handleInput(event *tcell.EventKey) *tcell.EventKey {
	if a.showDetail || a.showConfirm || a.showTheme {
		// Let modals handle their own input, with vi keys mapped to
		// button navigation.
		switch event.Str() {
		case "l":
			return tcell.NewEventKey(tcell.KeyRight, tcell.KeyNames[tcell.KeyRight], tcell.ModNone)
		case "h":
			return tcell.NewEventKey(tcell.KeyLeft, tcell.KeyNames[tcell.KeyLeft], tcell.ModNone)
		}

		return event
	}

	switch event.Str() {
	case "q", "Q":
		a.app.Stop()
		return nil
	case "r", "R":
		a.rescan()
		return nil
	case "i", "I":
		a.showSetDetail()
	case "d", "D":
		a.confirmDelete()
	case "t", "T":
		a.showThemeSelector()
	}

	return event
}
