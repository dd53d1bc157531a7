package tui

import (
	"fmt"

	"codeberg.org/tslocum/cview"
	"github.com/dustin/go-humanize"
)

func (a *App) updateFinalStatus() {
	filesToDelete := 0
	var reclaimable int64
	for _, set := range a.sets {
		filesToDelete += len(set.Files) - 1
		reclaimable += set.Reclaimable()
	}

	mode := ""
	if a.dryRun {
		mode = " | DRY RUN"
	}

	status := fmt.Sprintf("[white] Duplicate sets: %d | Files to delete: %s | Reclaimable: %s | Deleted: %d%s ",
		len(a.sets),
		humanize.Comma(int64(filesToDelete)),
		humanize.Bytes(uint64(reclaimable)),
		a.deleted.Load(),
		mode,
	)
	if a.warnings > 0 {
		status += fmt.Sprintf("| Warnings: %d ", a.warnings)
	}
	if n := a.deleteErrs.Load(); n > 0 {
		status += fmt.Sprintf("| Errors: %d ", n)
	}
	a.header.SetText(status)
	a.header.SetTextAlign(cview.AlignCenter)
}

func headerStartupStatus(_ *Theme, rootPath string) string {
	return " Scanning: " + rootPath
}

func footerStatusMenu(_ *Theme) string {
	return "[black] ↑/↓: Navigate  i: Details  [d/D]: Delete set  [r/R]: Rescan  t: Theme  [q/Q]: Quit"
}

func footerStatusDryRun(_ *Theme) string {
	return "[black] Dry-run mode: deletion is disabled"
}

func footerStatusDeleting(_ *Theme, path string) string {
	return " [white]Deleting: [black]" + path
}

func footerStatusDeleted(_ *Theme, path string) string {
	return " [white]Deleted: [black]" + path
}

func footerStatusDeleteError(_ *Theme, path string, err error) string {
	return fmt.Sprintf(" [red]Error deleting %s: %v", path, err)
}
