package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/dmitrijs2005/ruralportal/internal/client/models"
)

var errBadDiscount = errors.New("the discount must be a number between 0 and 100")

func (a *App) Commerces(ctx context.Context, args []string) error {
	page, err := parsePage(args, "commerces [limit] [offset]")
	if err != nil {
		return err
	}
	items, err := a.commerce.List(ctx, page)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(items))
	for _, c := range items {
		rows = append(rows, []string{c.ID, c.Name, orDash(c.Category), strconv.Itoa(c.BaseDiscount) + "%", string(c.Plan), string(c.Status)})
	}
	a.listResult("commerces", []string{"ID", "NAME", "CATEGORY", "DISCOUNT", "PLAN", "STATUS"}, rows)
	return nil
}

func (a *App) printQuota(q models.Quota) {
	name := ""
	if q.ChamberName != "" {
		name = q.ChamberName + ": "
	}
	a.printf("%sfree commerces %d/%d (%d%%)", name, q.Used, q.Limit, q.Percent)
	if q.IsFull {
		a.printf(", quota full")
	}
	a.println()
}

func (a *App) Quota(ctx context.Context, _ []string) error {
	q, err := a.commerce.Quota(ctx)
	if err != nil {
		return err
	}
	a.printQuota(q)
	return nil
}

// CommerceAdd shows the quota first and proposes the plan it allows.
func (a *App) CommerceAdd(ctx context.Context, _ []string) error {
	plan, q, err := a.commerce.DefaultPlan(ctx)
	if err != nil {
		return err
	}
	a.printQuota(q)

	var in models.CommerceInput
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Nombre", &in.Name},
		{"Rubro", &in.Category},
		{"Dirección", &in.Address},
		{"Teléfono", &in.Phone},
		{"Email", &in.Email},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	disc, err := GetTextDefault(a.reader, "Descuento base (%)", "0", a.out)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(disc)
	if err != nil {
		return errBadDiscount
	}
	in.BaseDiscount = &n

	p, err := GetTextDefault(a.reader, "Plan (gratuito|premium)", string(plan), a.out)
	if err != nil {
		return err
	}
	in.Plan = models.CommercePlan(p)

	c, err := a.commerce.AdminCreate(ctx, in)
	if err != nil {
		return err
	}
	a.printf("Commerce %s created with plan %s (%s)\n", c.Name, orDash(string(c.Plan)), c.ID)
	return nil
}

func (a *App) CommerceApprove(ctx context.Context, args []string) error {
	id, err := oneArg(args, "commerce-approve <id>")
	if err != nil {
		return err
	}
	if err := a.commerce.Approve(ctx, id); err != nil {
		return err
	}
	a.println("Commerce approved")
	return nil
}

func (a *App) CommerceStatus(ctx context.Context, args []string) error {
	const u = "commerce-status <id> <activo|inactivo>"
	if len(args) != 2 {
		return usage(u)
	}
	st := models.Status(args[1])
	if st != models.StatusActive && st != models.StatusInactive {
		return usage(u)
	}
	c, err := a.commerce.Update(ctx, args[0], models.CommerceInput{Status: st})
	if err != nil {
		return err
	}
	a.printf("Commerce %s is now %s\n", c.Name, orDash(string(c.Status)))
	return nil
}

func (a *App) CommerceDelete(ctx context.Context, args []string) error {
	id, err := oneArg(args, "commerce-delete <id>")
	if err != nil {
		return err
	}
	ok, err := Confirm(a.reader, "Delete commerce "+id+"?", a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.commerce.Delete(ctx, id); err != nil {
		return err
	}
	a.println("Commerce deleted")
	return nil
}
