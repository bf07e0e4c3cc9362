package cli

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/ruralportal/internal/client/models"
)

func (a *App) MyCommerce(ctx context.Context, _ []string) error {
	c, err := a.myCommerce.Get(ctx)
	if err != nil {
		return err
	}
	a.table([]string{"FIELD", "VALUE"}, [][]string{
		{"Nombre", c.Name},
		{"Rubro", orDash(c.Category)},
		{"Dirección", orDash(c.Address)},
		{"Teléfono", orDash(c.Phone)},
		{"Email", orDash(c.Email)},
		{"Descuento", strconv.Itoa(c.BaseDiscount) + "%"},
		{"Plan", orDash(string(c.Plan))},
		{"Estado", orDash(string(c.Status))},
	})
	return nil
}

// MyCommerceEdit prompts with the current values; empty answers keep them.
func (a *App) MyCommerceEdit(ctx context.Context, _ []string) error {
	cur, err := a.myCommerce.Get(ctx)
	if err != nil {
		return err
	}

	var in models.CommerceInput
	fields := []struct {
		prompt string
		cur    string
		dst    *string
	}{
		{"Dirección", cur.Address, &in.Address},
		{"Teléfono", cur.Phone, &in.Phone},
		{"Email", cur.Email, &in.Email},
		{"Descripción", cur.Description, &in.Description},
	}
	for _, f := range fields {
		v, err := GetTextDefault(a.reader, f.prompt, f.cur, a.out)
		if err != nil {
			return err
		}
		if v != f.cur {
			*f.dst = v
		}
	}
	if in == (models.CommerceInput{}) {
		a.println("Nothing to update")
		return nil
	}

	if _, err := a.myCommerce.Update(ctx, in); err != nil {
		return err
	}
	a.println("Commerce updated")
	return nil
}

func (a *App) MyPromotions(ctx context.Context, _ []string) error {
	items, err := a.myCommerce.Promotions(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(items))
	for _, p := range items {
		rows = append(rows, []string{p.ID, p.Title, percent(p.DiscountPercent), orDash(p.StartsAt), orDash(p.EndsAt), string(p.Status)})
	}
	a.listResult("promotions", []string{"ID", "TITLE", "DISCOUNT", "FROM", "UNTIL", "STATUS"}, rows)
	return nil
}

func (a *App) MyPromotionAdd(ctx context.Context, _ []string) error {
	var in models.PromotionInput
	var err error
	if in.Title, err = getSimpleText(a.reader, "Título", a.out); err != nil {
		return err
	}
	if in.Description, err = GetMultiline(a.reader, "Descripción", a.out); err != nil {
		return err
	}
	disc, err := getSimpleText(a.reader, "Descuento (%), vacío para ninguno", a.out)
	if err != nil {
		return err
	}
	if disc != "" {
		n, err := strconv.Atoi(disc)
		if err != nil {
			return errBadDiscount
		}
		in.DiscountPercent = &n
	}
	if in.StartsAt, err = getSimpleText(a.reader, "Desde (AAAA-MM-DD)", a.out); err != nil {
		return err
	}
	if in.EndsAt, err = getSimpleText(a.reader, "Hasta (AAAA-MM-DD)", a.out); err != nil {
		return err
	}

	p, err := a.myCommerce.CreatePromotion(ctx, in)
	if err != nil {
		return err
	}
	a.printf("Promotion %s published (%s)\n", p.Title, p.ID)
	return nil
}

func (a *App) MyPromotionDelete(ctx context.Context, args []string) error {
	id, err := oneArg(args, "my-promo-delete <id>")
	if err != nil {
		return err
	}
	if err := a.myCommerce.DeletePromotion(ctx, id); err != nil {
		return err
	}
	a.println("Promotion deleted")
	return nil
}

func (a *App) CheckMember(ctx context.Context, args []string) error {
	id, err := oneArg(args, "check-member <dni|id>")
	if err != nil {
		return err
	}
	v, err := a.myCommerce.ValidateMember(ctx, id)
	if err != nil {
		return err
	}
	switch {
	case v.Valid && v.Member != nil:
		a.printf("VALID: %s (DNI %s)\n", v.Member.FullName(), orDash(v.Member.DNI))
	case v.Valid:
		a.println("VALID")
	default:
		a.println("INVALID:", orDash(v.Message))
	}
	return nil
}
