package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// table writes tab separated rows aligned under a header.
func (a *App) table(header []string, rows [][]string) {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(w, strings.Join(r, "\t"))
	}
	w.Flush()
}

// listResult prints rows or, when there are none, a note that says
// whether the empty list came from the offline fallback.
func (a *App) listResult(what string, header []string, rows [][]string) {
	if len(rows) == 0 {
		if a.currentMode() == ModeOffline {
			a.printf("No %s to show (backend offline)\n", what)
		} else {
			a.printf("No %s found\n", what)
		}
		return
	}
	a.table(header, rows)
}

func yesNo(v bool) string {
	if v {
		return "si"
	}
	return "no"
}

func percent(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d%%", *v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// parseYesNo returns the flag and whether s was understood.
func parseYesNo(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "si", "sí", "y", "yes", "true", "1":
		return true, true
	case "n", "no", "false", "0":
		return false, true
	}
	return false, false
}
