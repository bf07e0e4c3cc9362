package cli

import (
	"context"

	"github.com/dmitrijs2005/ruralportal/internal/client/models"
)

func (a *App) Members(ctx context.Context, args []string) error {
	page, err := parsePage(args, "members [limit] [offset]")
	if err != nil {
		return err
	}
	items, err := a.members.List(ctx, page)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(items))
	for _, m := range items {
		rows = append(rows, []string{m.ID, m.DNI, m.FullName(), string(m.Role), string(m.Status), yesNo(m.Delinquent)})
	}
	a.listResult("members", []string{"ID", "DNI", "NAME", "ROLE", "STATUS", "MOROSO"}, rows)
	return nil
}

func (a *App) MemberAdd(ctx context.Context, _ []string) error {
	var in models.MemberCreate
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Nombre", &in.FirstName},
		{"Apellido", &in.LastName},
		{"DNI", &in.DNI},
		{"Email", &in.Email},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	role, err := GetTextDefault(a.reader, "Rol", string(models.RoleCommon), a.out)
	if err != nil {
		return err
	}
	in.Role = models.Role(role)

	pw, err := getPassword("Initial password", a.out)
	if err != nil {
		return err
	}
	in.Password = pw

	m, err := a.members.Create(ctx, in)
	if err != nil {
		return err
	}
	a.printf("Member %s created (%s)\n", m.FullName(), m.ID)
	return nil
}

func (a *App) MemberApprove(ctx context.Context, args []string) error {
	id, err := oneArg(args, "member-approve <id>")
	if err != nil {
		return err
	}
	if err := a.members.Approve(ctx, id); err != nil {
		return err
	}
	a.println("Member approved")
	return nil
}

func (a *App) MemberStatus(ctx context.Context, args []string) error {
	const u = "member-status <id> <activo|pendiente|inactivo>"
	if len(args) != 2 {
		return usage(u)
	}
	st := models.Status(args[1])
	switch st {
	case models.StatusActive, models.StatusPending, models.StatusInactive:
	default:
		return usage(u)
	}
	m, err := a.members.Update(ctx, args[0], models.MemberUpdate{Status: &st})
	if err != nil {
		return err
	}
	a.printf("Member %s is now %s\n", m.FullName(), orDash(string(m.Status)))
	return nil
}

func (a *App) MemberDelinquent(ctx context.Context, args []string) error {
	const u = "member-moroso <id> <si|no>"
	if len(args) != 2 {
		return usage(u)
	}
	flag, ok := parseYesNo(args[1])
	if !ok {
		return usage(u)
	}
	if _, err := a.members.Update(ctx, args[0], models.MemberUpdate{Delinquent: &flag}); err != nil {
		return err
	}
	a.println("Payment flag set to", yesNo(flag))
	return nil
}

func (a *App) MemberDelete(ctx context.Context, args []string) error {
	id, err := oneArg(args, "member-delete <id>")
	if err != nil {
		return err
	}
	ok, err := Confirm(a.reader, "Delete member "+id+"?", a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.members.Delete(ctx, id); err != nil {
		return err
	}
	a.println("Member deleted")
	return nil
}

// ValidateCard checks a scanned membership card. There is no offline answer.
func (a *App) ValidateCard(ctx context.Context, args []string) error {
	id, err := oneArg(args, "validate <member-id>")
	if err != nil {
		return err
	}
	v, err := a.auth.ValidateQR(ctx, id)
	if err != nil {
		return err
	}
	state := "INVALID"
	if v.Valid {
		state = "VALID"
	}
	a.printf("%s: %s (DNI %s, %s, moroso: %s)\n", state, v.Member.FullName(), orDash(v.Member.DNI),
		orDash(string(v.Member.Status)), yesNo(v.Member.Delinquent))
	if v.Timestamp != "" {
		a.println("Checked at", v.Timestamp)
	}
	return nil
}
