package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/ruralportal/internal/client/models"
)

// Pay opens a checkout. Commerce accounts pay for the premium plan, every
// other role pays the membership fee.
func (a *App) Pay(ctx context.Context, args []string) error {
	const u = "pay <amount> [title]"
	if len(args) == 0 {
		return usage(u)
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(args[0], ",", "."), 64)
	if err != nil || amount <= 0 {
		return usage(u)
	}

	kind, title := models.PaymentTypeFee, "Cuota social"
	if a.role(ctx).IsCommerce() {
		kind, title = models.PaymentTypePremiumCommerce, "Plan premium"
	}
	if len(args) > 1 {
		title = strings.Join(args[1:], " ")
	}

	pref, err := a.payments.CreatePreference(ctx, title, amount, kind)
	if err != nil {
		return err
	}
	a.println("Checkout:", pref.InitPoint)
	if pref.SandboxInitPoint != "" {
		a.println("Sandbox:", pref.SandboxInitPoint)
	}
	return nil
}
