package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ruralportal/internal/client/models"
	"github.com/dmitrijs2005/ruralportal/internal/client/session"
)

var errPasswordMismatch = errors.New("passwords do not match")

// Login prompts for credentials (the email may come as an argument) and
// stores the session. When the backend demands a password change it is
// run right away.
func (a *App) Login(ctx context.Context, args []string) error {
	var email string
	if len(args) > 0 {
		email = args[0]
	} else {
		v, err := getSimpleText(a.reader, "Enter email", a.out)
		if err != nil {
			return err
		}
		email = v
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	resp, err := a.auth.Login(ctx, email, password)
	if err != nil {
		a.log.Info(ctx, "login unsuccessful", "error", err)
		return err
	}

	a.setUser(email)
	if resp.Profile != nil && resp.Profile.Email != "" {
		a.setUser(resp.Profile.Email)
	}
	a.printf("Login successful (%s)\n", resp.Role)

	if resp.MustChangePassword() {
		a.println("Your password must be changed before continuing.")
		return a.ChangePassword(ctx, nil)
	}
	return nil
}

func (a *App) Register(ctx context.Context, _ []string) error {
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

	pw, err := a.readNewPassword()
	if err != nil {
		return err
	}
	in.Password = pw

	if err := a.auth.Register(ctx, in); err != nil {
		return err
	}
	a.println("Registration received. An administrator will review your membership.")
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.setUser("")
	a.println("Logged out")
	return nil
}

func (a *App) readNewPassword() (string, error) {
	pw, err := getPassword("New password", a.out)
	if err != nil {
		return "", err
	}
	again, err := getPassword("Repeat new password", a.out)
	if err != nil {
		return "", err
	}
	if pw != again {
		return "", errPasswordMismatch
	}
	return pw, nil
}

func (a *App) ChangePassword(ctx context.Context, _ []string) error {
	current, err := getPassword("Current password", a.out)
	if err != nil {
		return err
	}
	next, err := a.readNewPassword()
	if err != nil {
		return err
	}
	if err := a.users.ChangePassword(ctx, current, next); err != nil {
		return err
	}
	a.println("Password changed")
	return nil
}

func (a *App) WhoAmI(ctx context.Context, _ []string) error {
	sess, err := a.session.Load(ctx)
	if err != nil {
		return err
	}

	a.printf("Role: %s\n", sess.Role)
	if sess.Profile != nil {
		a.printf("Name: %s\n", sess.Profile.FullName())
		if sess.Profile.Email != "" {
			a.printf("Email: %s\n", sess.Profile.Email)
		}
	}
	if c, err := session.ParseClaims(sess.Token); err == nil {
		if c.Subject != "" {
			a.printf("Token subject: %s\n", c.Subject)
		}
		if !c.ExpiresAt.IsZero() {
			state := "valid until"
			if c.Expired(time.Now()) {
				state = "expired at"
			}
			a.printf("Token %s %s\n", state, c.ExpiresAt.Local().Format(time.DateTime))
		}
	}
	if sess.MustChangePassword {
		a.println("Password change pending")
	}
	return nil
}

func (a *App) Profile(ctx context.Context, _ []string) error {
	p, err := a.users.Profile(ctx)
	if err != nil {
		return err
	}
	a.printf("%s\nDNI: %s\nEmail: %s\nEstado: %s\nMoroso: %s\n",
		p.FullName(), p.DNI, p.Email, p.Status, yesNo(p.Delinquent))
	return nil
}

func (a *App) UpdateLocation(ctx context.Context, args []string) error {
	const u = "location <lat> <lng>"
	if len(args) != 2 {
		return usage(u)
	}
	var lat, lng float64
	if _, err := fmt.Sscan(args[0], &lat); err != nil {
		return usage(u)
	}
	if _, err := fmt.Sscan(args[1], &lng); err != nil {
		return usage(u)
	}
	if err := a.users.UpdateLocation(ctx, lat, lng); err != nil {
		return err
	}
	a.println("Location updated")
	return nil
}

func (a *App) PushToken(ctx context.Context, args []string) error {
	tok, err := oneArg(args, "push-token <token>")
	if err != nil {
		return err
	}
	if err := a.users.RegisterPushToken(ctx, tok); err != nil {
		return err
	}
	a.println("Push token registered")
	return nil
}
