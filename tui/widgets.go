package tui

import (
	"fmt"
	"log"
	"strings"

	"codeberg.org/tslocum/cview"
	"github.com/dustin/go-humanize"
	"github.com/riadafridishibly/dupclean/dedup"
	"github.com/riadafridishibly/dupclean/scanner"
)

func (a *App) replaceHomeWithTilde(p string) string {
	if after, ok := strings.CutPrefix(p, a.userHomeDir); ok {
		p = "~" + after
	}
	return p
}

// buildTable renders one row per duplicate set. The set reference is
// always bound to column 0.
func (a *App) buildTable() *cview.Table {
	theme := a.currentTheme
	table := a.table
	table.Clear()

	for row, set := range a.sets {
		nameCell := cview.NewTableCell(" " + set.Key)
		nameCell.SetTextColor(theme.fg)
		nameCell.SetAlign(cview.AlignLeft)
		nameCell.SetReference(set)
		table.SetCell(row, 0, nameCell)

		sizeCell := cview.NewTableCell(fmt.Sprintf(" %s ", humanize.Bytes(uint64(set.Size))))
		sizeCell.SetTextColor(theme.sizeFg)
		sizeCell.SetAlign(cview.AlignRight)
		table.SetCell(row, 1, sizeCell)

		copiesCell := cview.NewTableCell(fmt.Sprintf(" %d dup ", len(set.Files)-1))
		copiesCell.SetTextColor(theme.red)
		copiesCell.SetAlign(cview.AlignRight)
		table.SetCell(row, 2, copiesCell)

		freesCell := cview.NewTableCell(fmt.Sprintf(" frees %s ", humanize.Bytes(uint64(set.Reclaimable()))))
		freesCell.SetTextColor(theme.green)
		freesCell.SetAlign(cview.AlignRight)
		table.SetCell(row, 3, freesCell)

		keeperCell := cview.NewTableCell(a.replaceHomeWithTilde(set.Keeper().Path))
		keeperCell.SetTextColor(theme.fg)
		keeperCell.SetAlign(cview.AlignLeft)
		keeperCell.SetExpansion(1)
		table.SetCell(row, 4, keeperCell)
	}

	table.SetBorder(false)
	table.SetBorders(false)
	table.SetSelectable(true, false)
	table.SetSeparator(' ')

	return table
}

func (a *App) selectedSet() *dedup.DuplicateSet {
	if a.table == nil {
		return nil
	}
	row, _ := a.table.GetSelection()
	cell := a.table.GetCell(row, 0)
	if cell == nil {
		return nil
	}
	set, ok := cell.GetReference().(*dedup.DuplicateSet)
	if !ok {
		log.Printf("Expected *dedup.DuplicateSet, but found %T", cell.GetReference())
		return nil
	}
	return set
}

func (a *App) showSetDetail() {
	set := a.selectedSet()
	if set == nil {
		return
	}

	var detail strings.Builder
	fmt.Fprintf(&detail, "Normalized filename: %s\n", set.Key)
	fmt.Fprintf(&detail, "Size: %d bytes (%s)\n\n", set.Size, humanize.Bytes(uint64(set.Size)))

	keeper := set.Keeper()
	fmt.Fprintf(&detail, "Keeping: %s\n  %s\n", a.replaceHomeWithTilde(keeper.Path), timestampLine(keeper))
	for _, c := range set.Candidates() {
		fmt.Fprintf(&detail, "Duplicate: %s\n  %s\n", a.replaceHomeWithTilde(c.Path), timestampLine(c))
	}

	a.detailModal.SetText(detail.String())
	a.showDetail = true
	a.setRoot(a.detailModal, false)
}

// timestampLine labels the ordering time honestly: a mod-time fallback
// is never presented as a creation time.
func timestampLine(rec scanner.FileRecord) string {
	when := rec.Timestamp.Format("2006-01-02 15:04:05 MST")
	if rec.ModTimeFallback {
		return "Modified (no creation time): " + when
	}
	return "Created: " + when
}

func (a *App) confirmDelete() {
	set := a.selectedSet()
	if set == nil {
		return
	}
	if a.dryRun {
		a.footer.SetText(footerStatusDryRun(&a.currentTheme))
		return
	}

	text := fmt.Sprintf("Delete %d duplicate(s) of '%s'?\n\nKeeps: %s\nFrees: %s",
		len(set.Files)-1,
		set.Key,
		a.replaceHomeWithTilde(set.Keeper().Path),
		humanize.Bytes(uint64(set.Reclaimable())),
	)
	a.confirmModal.SetText(text)
	a.showConfirm = true
	a.setRoot(a.confirmModal, false)
}

func (a *App) showThemeSelector() {
	if a.themeModal == nil {
		return
	}
	theme := a.currentTheme
	text := fmt.Sprintf("Select Theme (Current: %s)", theme.Name)
	a.themeModal.SetText(text)
	a.showTheme = true
	a.setRoot(a.themeModal, false)
}
