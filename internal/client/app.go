package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-pass-owl/internal/adapter"
	"github.com/MKhiriev/go-pass-owl/internal/app"
	"github.com/MKhiriev/go-pass-owl/internal/config"
	"github.com/MKhiriev/go-pass-owl/internal/crypto"
	"github.com/MKhiriev/go-pass-owl/internal/logger"
	"github.com/MKhiriev/go-pass-owl/internal/service"
	"github.com/MKhiriev/go-pass-owl/internal/session"
	"github.com/MKhiriev/go-pass-owl/internal/store"
	"github.com/MKhiriev/go-pass-owl/internal/utils"
	"github.com/MKhiriev/go-pass-owl/internal/workers"
)

var _ workers.Worker = (*service.ReauthMonitor)(nil)

// App owns every client component for one process.
type App struct {
	cfg       *config.ClientConfig
	logger    *logger.Logger
	storages  *store.ClientStorages
	custodian *session.Custodian
	services  *service.ClientServices
	workers   *workers.Workers

	input *lineReader
	out   io.Writer
}

// NewApp wires storage, transport, the key custodian and the services. in
// supplies master passwords and interactive commands; out receives prompts
// and results.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger, in io.Reader, out io.Writer) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, utils.NewUUIDGenerator(), log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	primitives := crypto.NewPrimitives(crypto.WithIterations(cfg.Session.KDFIterations))
	custodian := session.NewCustodian(primitives, storages.Session, serverAdapter, log,
		session.WithTTL(cfg.Session.KeyTTL),
		session.WithIterations(cfg.Session.KDFIterations),
	)

	services := service.NewClientServices(storages, serverAdapter, primitives, custodian, service.ClientServicesConfig{
		KDFIterations: cfg.Session.KDFIterations,
		MonitorOptions: []service.MonitorOption{
			service.WithReauthInterval(cfg.Workers.ReauthInterval),
			service.WithReauthTimeout(cfg.Workers.ReauthTimeout),
		},
	}, log)

	return &App{
		cfg:       cfg,
		logger:    log.Component("client"),
		storages:  storages,
		custodian: custodian,
		services:  services,
		workers:   workers.NewWorkers(services.ReauthMonitor),
		input:     newLineReader(in),
		out:       out,
	}, nil
}

func (a *App) Services() *service.ClientServices {
	return a.services
}

func (a *App) Out() io.Writer {
	return a.out
}

// Prompt prints label and reads one line of input.
func (a *App) Prompt(ctx context.Context, label string) (string, error) {
	_, _ = fmt.Fprint(a.out, label)
	return a.input.Next(ctx)
}

// RequireSession loads the stored session into the transport.
func (a *App) RequireSession(ctx context.Context) error {
	ok, err := a.services.AuthService.Restore(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return service.ErrNotLoggedIn
	}
	return nil
}

// Unlock restores the session and re-derives the keys from the master
// password read from input, allowing MaxReauthAttempts tries.
func (a *App) Unlock(ctx context.Context) (string, error) {
	if err := a.RequireSession(ctx); err != nil {
		return "", err
	}
	return a.reauthenticate(ctx)
}

func (a *App) reauthenticate(ctx context.Context) (string, error) {
	attempts := max(a.cfg.Workers.MaxReauthAttempts, 1)

	var err error
	for i := 0; i < attempts; i++ {
		var password string
		password, err = a.Prompt(ctx, "Master password: ")
		if err != nil {
			return "", err
		}
		if err = a.services.AuthService.Reauthenticate(ctx, password); err == nil {
			return password, nil
		}
		if !errors.Is(err, service.ErrWrongPassword) {
			return "", err
		}
		_, _ = fmt.Fprintln(a.out, app.MessageFor(err))
	}
	return "", err
}

// Run is the interactive session: it unlocks the vault, starts the
// re-authentication monitor and serves commands until quit, end of input
// or a forced logout.
func (a *App) Run(ctx context.Context) error {
	if _, err := a.Unlock(ctx); err != nil {
		return err
	}

	signals := newSignalListener()
	a.services.ReauthMonitor.SetListener(signals)
	defer a.services.ReauthMonitor.SetListener(nil)

	a.workers.Start(ctx)
	defer a.workers.Stop()

	a.logger.Info().Msg("interactive session started")
	_, _ = fmt.Fprintln(a.out, "vault unlocked, type help for commands")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-signals.loggedOut:
			_, _ = fmt.Fprintln(a.out, "session ended, log in again")
			return nil
		case <-signals.required:
			if err := a.handleReauth(ctx); err != nil {
				return err
			}
			continue
		default:
		}

		_, _ = fmt.Fprint(a.out, "> ")
		line, err := a.input.NextOrSignal(ctx, signals)
		if errors.Is(err, errSignal) {
			_, _ = fmt.Fprintln(a.out)
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		quit, err := a.execute(ctx, line)
		if err != nil {
			logger.FromContext(ctx).Debug().Err(err).Str("command", line).Msg("command failed")
			_, _ = fmt.Fprintln(a.out, "error:", app.MessageFor(err))
			if errors.Is(err, session.ErrKeyUnavailable) {
				a.services.ReauthMonitor.RequestReauth(ctx)
			}
		}
		if quit {
			return nil
		}
	}
}

// handleReauth asks for the master password after the monitor signalled.
// Exhausting the attempts ends the session. A session ended meanwhile is
// reported by the listener, so it is not an error here.
func (a *App) handleReauth(ctx context.Context) error {
	_, _ = fmt.Fprintln(a.out, "vault locked, re-enter the master password")
	if _, err := a.reauthenticate(ctx); err != nil {
		if errors.Is(err, session.ErrSessionCleared) {
			return nil
		}
		if errors.Is(err, service.ErrWrongPassword) {
			a.logger.Warn().Msg("re-authentication attempts exhausted")
			return a.services.ReauthMonitor.ReauthFailed(ctx)
		}
		return err
	}
	return nil
}

func (a *App) execute(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		_, _ = fmt.Fprintln(a.out, "commands: credentials, credential <id>, notes, note <id>, shared, categories, stats, status, logout, quit")
	case "status":
		_, _ = fmt.Fprintf(a.out, "monitor: %s, key held: %t, private key held: %t\n",
			a.services.ReauthMonitor.State(), a.custodian.HasKey(), a.custodian.HasPrivateKey())
	case "credentials":
		return false, PrintCredentials(ctx, a.services.CredentialService, a.out)
	case "credential":
		id, err := parseID(args)
		if err != nil {
			return false, err
		}
		return false, PrintCredential(ctx, a.services.CredentialService, a.out, id)
	case "notes":
		return false, PrintNotes(ctx, a.services.NoteService, a.out)
	case "note":
		id, err := parseID(args)
		if err != nil {
			return false, err
		}
		return false, PrintNote(ctx, a.services.NoteService, a.out, id)
	case "shared":
		return false, PrintReceived(ctx, a.services.SharingService, a.out)
	case "categories":
		return false, PrintCategories(ctx, a.services.CategoryService, a.out)
	case "stats":
		return false, PrintStats(ctx, a.services.AuthService, a.out)
	case "logout":
		return true, a.services.AuthService.Logout(ctx)
	default:
		_, _ = fmt.Fprintf(a.out, "unknown command %q\n", cmd)
	}
	return false, nil
}

// Close wipes the session keys and releases storage. The persisted session
// metadata is kept.
func (a *App) Close() error {
	a.workers.Stop()
	a.custodian.Clear()
	return a.storages.Close()
}
