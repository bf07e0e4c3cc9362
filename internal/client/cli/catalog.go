package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/ruralportal/internal/client/models"
)

var errBadFreeLimit = errors.New("the free limit must be a non-negative number")

func (a *App) Promotions(ctx context.Context, args []string) error {
	page, err := parsePage(args, "promos [limit] [offset]")
	if err != nil {
		return err
	}
	items, err := a.catalog.Promotions(ctx, page)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(items))
	for _, p := range items {
		rows = append(rows, []string{p.ID, p.Title, orDash(p.CommerceName), percent(p.DiscountPercent), orDash(p.EndsAt)})
	}
	a.listResult("promotions", []string{"ID", "TITLE", "COMMERCE", "DISCOUNT", "UNTIL"}, rows)
	return nil
}

func (a *App) Events(ctx context.Context, args []string) error {
	page, err := parsePage(args, "events [limit] [offset]")
	if err != nil {
		return err
	}
	items, err := a.catalog.Events(ctx, page)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(items))
	for _, e := range items {
		rows = append(rows, []string{e.ID, e.Date, e.Title, orDash(e.Place)})
	}
	a.listResult("events", []string{"ID", "DATE", "TITLE", "PLACE"}, rows)
	return nil
}

func (a *App) Municipalities(ctx context.Context, _ []string) error {
	items, err := a.catalog.Municipalities(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(items))
	for _, m := range items {
		rows = append(rows, []string{m.ID, m.Name, fmt.Sprintf("%.4f,%.4f", m.Coordinates.Lat, m.Coordinates.Lng)})
	}
	a.listResult("municipalities", []string{"ID", "NAME", "COORDINATES"}, rows)
	return nil
}

func (a *App) Chambers(ctx context.Context, _ []string) error {
	items, err := a.catalog.Chambers(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(items))
	for _, c := range items {
		rows = append(rows, []string{c.ID, c.Name, orDash(c.Zone), strconv.Itoa(c.FreeLimit)})
	}
	a.listResult("chambers", []string{"ID", "NAME", "ZONE", "FREE LIMIT"}, rows)
	return nil
}

func (a *App) ChamberAdd(ctx context.Context, _ []string) error {
	var in models.ChamberInput
	var err error
	if in.Name, err = getSimpleText(a.reader, "Nombre", a.out); err != nil {
		return err
	}
	if in.Zone, err = getSimpleText(a.reader, "Zona", a.out); err != nil {
		return err
	}
	limit, err := GetTextDefault(a.reader, "Límite de comercios gratuitos", strconv.Itoa(models.DefaultQuotaLimit), a.out)
	if err != nil {
		return err
	}
	if in.FreeLimit, err = strconv.Atoi(limit); err != nil || in.FreeLimit < 0 {
		return errBadFreeLimit
	}

	c, err := a.catalog.CreateChamber(ctx, in)
	if err != nil {
		return err
	}
	a.printf("Chamber %s created (%s)\n", c.Name, c.ID)
	return nil
}

func (a *App) ChamberAssign(ctx context.Context, args []string) error {
	const u = "chamber-assign <chamber-id> <commerce-id,...>"
	if len(args) != 2 {
		return usage(u)
	}
	var ids []string
	for _, id := range strings.Split(args[1], ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return usage(u)
	}
	if err := a.catalog.AssignCommerces(ctx, args[0], ids); err != nil {
		return err
	}
	a.printf("%d commerce(s) assigned\n", len(ids))
	return nil
}
