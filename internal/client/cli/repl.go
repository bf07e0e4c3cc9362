package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/ruralportal/internal/client/api"
	"github.com/dmitrijs2005/ruralportal/internal/client/models"
	"github.com/dmitrijs2005/ruralportal/internal/client/services"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

type command struct {
	name  string
	usage string
	help  string
	// public commands work without a session.
	public bool
	// keepsPasswordChange commands run even while a password change is pending.
	keepsPasswordChange bool
	// allowed restricts the command to some roles; nil allows every role.
	allowed func(models.Role) bool
	run     func(ctx context.Context, args []string) error
}

// execIface defines the minimal surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	role(ctx context.Context) models.Role
	mustChangePassword(ctx context.Context) bool
	ChangePassword(ctx context.Context, args []string) error
	commands() []command
}

// runREPL reads one command per line and dispatches it. It exits on EOF or
// when the user types "exit" or "quit". Handler errors are printed; the
// loop itself never stops on them.
//
// While the session carries a pending password change, every command
// other than passwd, logout and help runs the password change instead.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	index := make(map[string]command)
	for _, c := range a.commands() {
		index[c.name] = c
	}

	for {
		printlnFn(fmt.Sprintf("sr %s> ", statusFn()))
		line, readErr := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if readErr != nil {
				return
			}
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "help":
			printlnFn(helpText(ctx, a, a.commands()))
			continue
		}

		c, ok := index[name]
		switch {
		case !ok:
			printlnFn("Unknown command:", name)
		case !c.public && !a.isLoggedIn(ctx):
			printlnFn("Please login first")
		case c.allowed != nil && !c.allowed(a.role(ctx)):
			printlnFn("Command not available for your role:", name)
		case !c.keepsPasswordChange && a.isLoggedIn(ctx) && a.mustChangePassword(ctx):
			printlnFn("You must change your password before continuing.")
			if err := a.ChangePassword(ctx, nil); err != nil {
				printlnFn("Error:", describe(err))
			}
		default:
			if err := c.run(ctx, args); err != nil {
				printlnFn("Error:", describe(err))
			}
		}

		if readErr != nil {
			return
		}
	}
}

func helpText(ctx context.Context, a execIface, cmds []command) string {
	loggedIn := a.isLoggedIn(ctx)
	role := a.role(ctx)

	var lines []string
	for _, c := range cmds {
		if !loggedIn && !c.public {
			continue
		}
		if loggedIn && c.allowed != nil && !c.allowed(role) {
			continue
		}
		lines = append(lines, fmt.Sprintf("  %-40s %s", strings.TrimSpace(c.name+" "+c.usage), c.help))
	}
	sort.Strings(lines)
	lines = append(lines, fmt.Sprintf("  %-40s %s", "help", "show this list"), fmt.Sprintf("  %-40s %s", "exit | quit", "leave the program"))
	return "Available commands:\n" + strings.Join(lines, "\n")
}

// describe renders an error for the user.
func describe(err error) string {
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		return err.Error() + " (use 'login' to sign in again)"
	case errors.Is(err, services.ErrQuotaFull):
		return err.Error() + "; create the commerce with the premium plan instead"
	}
	return err.Error()
}
