package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/ruralportal/internal/client/api"
	"github.com/dmitrijs2005/ruralportal/internal/client/config"
	"github.com/dmitrijs2005/ruralportal/internal/client/migrations"
	"github.com/dmitrijs2005/ruralportal/internal/client/models"
	"github.com/dmitrijs2005/ruralportal/internal/client/repositories/storage"
	"github.com/dmitrijs2005/ruralportal/internal/client/services"
	"github.com/dmitrijs2005/ruralportal/internal/client/session"
	"github.com/dmitrijs2005/ruralportal/internal/client/supabase"
	"github.com/dmitrijs2005/ruralportal/internal/dbx"
	"github.com/dmitrijs2005/ruralportal/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const statusProbeTimeout = 3 * time.Second

type App struct {
	config *config.Config
	log    logging.Logger
	out    io.Writer
	reader *bufio.Reader

	session    *session.Store
	client     *api.Client
	metrics    *api.Metrics
	auth       services.AuthService
	members    services.MemberService
	commerce   services.CommerceService
	catalog    services.CatalogService
	admin      services.AdminService
	users      services.UserService
	payments   services.PaymentService
	myCommerce services.MyCommerceService

	closers []func() error

	guard latestGuard

	mu   sync.RWMutex
	mode Mode
	user string
}

// NewApp opens the session store and builds the API services. An empty
// DBPath keeps the session in memory only.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}
	a := &App{config: c, log: log, out: os.Stdout, reader: bufio.NewReader(os.Stdin)}

	var repo storage.Repository
	if c.DBPath == "" {
		repo = storage.NewMemoryRepository()
	} else {
		db, err := dbx.OpenSQLite(ctx, c.DBPath, migrations.FS)
		if err != nil {
			log.Error(ctx, "error initializing database", "path", c.DBPath, "error", err)
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		repo = storage.NewSQLiteRepository(db)
	}
	a.session = session.NewStore(repo)

	a.metrics = api.NewMetrics()
	a.client = api.New(c.APIURL, a.session,
		api.WithOrigin(c.Origin),
		api.WithTimeout(c.RequestTimeout),
		api.WithLogger(log.With("component", "api")),
		api.WithMetrics(a.metrics),
	)

	var secondary services.ProfileSource
	if sb, err := supabase.New(supabase.Config{URL: c.SupabaseURL, APIKey: c.SupabaseAnonKey}); err == nil {
		secondary = sb
	}

	a.wireServices(secondary)
	return a, nil
}

func (a *App) wireServices(secondary services.ProfileSource) {
	a.auth = services.NewAuthService(a.client, a.session)
	a.members = services.NewMemberService(a.client, secondary, a.log.With("component", "members"))
	a.commerce = services.NewCommerceService(a.client)
	a.catalog = services.NewCatalogService(a.client)
	a.admin = services.NewAdminService(a.client)
	a.users = services.NewUserService(a.client, a.session)
	a.payments = services.NewPaymentService(a.client)
	a.myCommerce = services.NewMyCommerceService(a.client)
}

// Run blocks until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.config.MetricsAddr != "" {
		go func() {
			if err := a.serveMetrics(ctx, a.config.MetricsAddr); err != nil {
				a.log.Error(ctx, "metrics server stopped", "error", err)
			}
		}()
	}

	a.println("Welcome to the Sociedad Rural portal CLI (type 'help' for commands)")
	a.println("Backend:", a.client.BaseURL())

	a.refreshStatus(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	if ok := a.restoreSession(ctx); !ok {
		if err := a.Login(ctx, nil); err != nil {
			a.println("Error:", describe(err))
		}
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

// restoreSession picks up a token saved by a previous run.
func (a *App) restoreSession(ctx context.Context) bool {
	sess, err := a.session.Load(ctx)
	if err != nil {
		return false
	}
	a.setUser(displayName(sess))
	a.println("Session restored for", a.currentUser(), "("+string(sess.Role)+")")
	return true
}

func displayName(sess session.Session) string {
	if sess.Profile != nil && sess.Profile.Email != "" {
		return sess.Profile.Email
	}
	if c, err := session.ParseClaims(sess.Token); err == nil && c.Subject != "" {
		return c.Subject
	}
	return string(sess.Role)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	tok, err := a.session.Token(ctx)
	return err == nil && tok != ""
}

func (a *App) role(ctx context.Context) models.Role {
	r, err := a.session.Role(ctx)
	if err != nil {
		return models.RoleCommon
	}
	return r
}

func (a *App) mustChangePassword(ctx context.Context) bool {
	v, err := a.session.MustChangePassword(ctx)
	return err == nil && v
}

func (a *App) setUser(u string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = u
}

func (a *App) currentUser() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), fmt.Sprintf("Switched to %s mode", mode))
	}
}

func (a *App) currentMode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) getStatus() string {
	s := ""
	if u := a.currentUser(); u != "" {
		s = u + " "
	}
	if m := a.currentMode(); m != "" {
		s += string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
