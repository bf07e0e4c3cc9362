package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/ruralportal/internal/client/models"
	"github.com/dmitrijs2005/ruralportal/internal/client/services"
)

var errUsage = errors.New("usage")

func usage(u string) error {
	return fmt.Errorf("%w: %s", errUsage, u)
}

var (
	adminOnly    = models.Role.IsAdmin
	commerceOnly = models.Role.IsCommerce
)

func (a *App) commands() []command {
	return []command{
		{name: "login", usage: "[email]", help: "sign in", public: true, keepsPasswordChange: true, run: a.Login},
		{name: "register", help: "create a member account", public: true, run: a.Register},
		{name: "status", help: "check backend reachability", public: true, keepsPasswordChange: true, run: a.Status},
		{name: "logout", help: "sign out", keepsPasswordChange: true, run: a.Logout},
		{name: "passwd", help: "change your password", keepsPasswordChange: true, run: a.ChangePassword},
		{name: "whoami", help: "show the current session", keepsPasswordChange: true, run: a.WhoAmI},
		{name: "profile", help: "show your member profile", run: a.Profile},
		{name: "location", usage: "<lat> <lng>", help: "report your location", run: a.UpdateLocation},
		{name: "push-token", usage: "<token>", help: "register a push notification token", run: a.PushToken},
		{name: "pay", usage: "<amount> [title]", help: "open a payment checkout", run: a.Pay},

		{name: "promos", usage: "[limit] [offset]", help: "list promotions", run: a.Promotions},
		{name: "events", usage: "[limit] [offset]", help: "list events", run: a.Events},
		{name: "towns", help: "list municipalities", run: a.Municipalities},
		{name: "chambers", help: "list chambers", run: a.Chambers},
		{name: "commerces", usage: "[limit] [offset]", help: "list partner commerces", run: a.Commerces},

		{name: "members", usage: "[limit] [offset]", help: "list members", allowed: adminOnly, run: a.Members},
		{name: "member-add", help: "create a member", allowed: adminOnly, run: a.MemberAdd},
		{name: "member-approve", usage: "<id>", help: "approve a pending member", allowed: adminOnly, run: a.MemberApprove},
		{name: "member-status", usage: "<id> <activo|pendiente|inactivo>", help: "change a member's status", allowed: adminOnly, run: a.MemberStatus},
		{name: "member-moroso", usage: "<id> <si|no>", help: "flag or clear payment delinquency", allowed: adminOnly, run: a.MemberDelinquent},
		{name: "member-delete", usage: "<id>", help: "delete a member", allowed: adminOnly, run: a.MemberDelete},
		{name: "validate", usage: "<member-id>", help: "validate a membership card", allowed: adminOnly, run: a.ValidateCard},

		{name: "quota", help: "show the free commerce quota", allowed: adminOnly, run: a.Quota},
		{name: "commerce-add", help: "create a commerce (quota aware)", allowed: adminOnly, run: a.CommerceAdd},
		{name: "commerce-approve", usage: "<id>", help: "approve a commerce", allowed: adminOnly, run: a.CommerceApprove},
		{name: "commerce-status", usage: "<id> <activo|inactivo>", help: "enable or disable a commerce", allowed: adminOnly, run: a.CommerceStatus},
		{name: "commerce-delete", usage: "<id>", help: "delete a commerce", allowed: adminOnly, run: a.CommerceDelete},
		{name: "chamber-add", help: "create a chamber", allowed: adminOnly, run: a.ChamberAdd},
		{name: "chamber-assign", usage: "<chamber-id> <commerce-id,...>", help: "assign commerces to a chamber", allowed: adminOnly, run: a.ChamberAssign},
		{name: "audit", help: "show the audit log", allowed: adminOnly, run: a.Audit},
		{name: "stats", help: "show dashboard counters", allowed: adminOnly, run: a.Stats},

		{name: "my-commerce", help: "show your commerce", allowed: commerceOnly, run: a.MyCommerce},
		{name: "my-commerce-edit", help: "edit your commerce contact data", allowed: commerceOnly, run: a.MyCommerceEdit},
		{name: "my-promos", help: "list your promotions", allowed: commerceOnly, run: a.MyPromotions},
		{name: "my-promo-add", help: "publish a promotion", allowed: commerceOnly, run: a.MyPromotionAdd},
		{name: "my-promo-delete", usage: "<id>", help: "delete a promotion", allowed: commerceOnly, run: a.MyPromotionDelete},
		{name: "check-member", usage: "<dni|id>", help: "check a customer's membership", allowed: commerceOnly, run: a.CheckMember},
	}
}

// parsePage reads optional "[limit] [offset]" arguments.
func parsePage(args []string, u string) (services.Page, error) {
	var p services.Page
	if len(args) > 2 {
		return p, usage(u)
	}
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return p, usage(u)
		}
		p.Limit = n
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			return p, usage(u)
		}
		p.Offset = n
	}
	return p, nil
}

func oneArg(args []string, u string) (string, error) {
	if len(args) != 1 {
		return "", usage(u)
	}
	return args[0], nil
}
