package cli

import (
	"context"
	"strconv"
)

func (a *App) Stats(ctx context.Context, _ []string) error {
	s, err := a.admin.Dashboard(ctx)
	if err != nil {
		return err
	}
	a.table([]string{"COUNTER", "VALUE"}, [][]string{
		{"Socios activos", strconv.Itoa(s.ActiveMembers)},
		{"Socios pendientes", strconv.Itoa(s.PendingMembers)},
		{"Recaudación mensual", strconv.FormatFloat(s.MonthlyRevenue, 'f', 2, 64)},
		{"Comercios adheridos", strconv.Itoa(s.PartnerCommerces)},
	})
	if a.currentMode() == ModeOffline {
		a.println("(backend offline, counters unavailable)")
	}
	return nil
}

func (a *App) Audit(ctx context.Context, _ []string) error {
	items, err := a.admin.Audit(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(items))
	for _, e := range items {
		rows = append(rows, []string{e.Timestamp, orDash(e.UserName), e.Action, orDash(e.Detail)})
	}
	a.listResult("audit entries", []string{"TIME", "USER", "ACTION", "DETAIL"}, rows)
	return nil
}
