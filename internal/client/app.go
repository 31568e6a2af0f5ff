package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-cloud-keeper/internal/config"
	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/internal/service"
	"github.com/MKhiriev/go-cloud-keeper/internal/workers"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

// Options collects what [NewApp] wires together. Background parts are started
// before the session is opened. Stop funcs and then Closers run in reverse
// order when [App.Run] returns.
type Options struct {
	Config     *config.ClientConfig
	Services   *service.ClientServices
	Background []workers.Worker
	Stop       []func()
	Closers    []io.Closer
	Out        io.Writer
	Logger     *logger.Logger
}

type App struct {
	cfg        *config.ClientConfig
	services   *service.ClientServices
	background *workers.Workers
	stop       []func()
	closers    []io.Closer
	out        io.Writer
	logger     *logger.Logger
}

func NewApp(opts Options) (*App, error) {
	if opts.Config == nil || opts.Services == nil {
		return nil, errors.New("client app needs a config and services")
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	return &App{
		cfg:        opts.Config,
		services:   opts.Services,
		background: workers.NewWorkers(opts.Background...),
		stop:       opts.Stop,
		closers:    opts.Closers,
		out:        opts.Out,
		logger:     opts.Logger,
	}, nil
}

// Run implements [Client]. It blocks until SIGINT, SIGTERM or SIGQUIT.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.background.Run()
	defer a.release()

	session, err := a.openSession(ctx)
	if err != nil {
		return err
	}
	a.logger.Info().Int64("user_id", session.UserID).Msg("session ready")

	if err = a.printRootFolder(ctx); err != nil {
		return err
	}

	a.services.KeySyncJob.Start(ctx, a.cfg.Workers.KeySyncInterval)
	defer a.services.KeySyncJob.Stop()

	<-ctx.Done()
	a.logger.Info().Msg("client stopped")
	return nil
}

// openSession prefers the stored session. A stored session of another
// account than the configured one is replaced by a fresh login.
func (a *App) openSession(ctx context.Context) (models.Session, error) {
	account := a.cfg.Account

	session, err := a.services.AuthService.RestoreSession(ctx)
	switch {
	case err == nil && (account.Email == "" || strings.EqualFold(session.Email, account.Email)):
		return session, nil
	case err != nil && !errors.Is(err, service.ErrNotAuthenticated):
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	if account.Email == "" || account.Password == "" {
		return models.Session{}, ErrMissingCredentials
	}

	session, err = a.services.AuthService.Authenticate(ctx, models.Credentials{
		Email:         account.Email,
		Password:      account.Password,
		TwoFactorCode: account.TwoFactorCode,
	})
	if err != nil {
		return models.Session{}, fmt.Errorf("authenticate: %w", err)
	}
	return session, nil
}

func (a *App) printRootFolder(ctx context.Context) error {
	folder := a.cfg.Account.RootFolder
	if folder == "" {
		a.logger.Info().Msg("no root folder configured, skipping listing")
		return nil
	}

	items, err := a.services.MetadataService.ListFolder(ctx, models.SourceOwn, folder)
	if err != nil {
		return fmt.Errorf("list folder %s: %w", folder, err)
	}
	return printListing(a.out, items)
}

func (a *App) release() {
	for i := len(a.stop) - 1; i >= 0; i-- {
		a.stop[i]()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.logger.Error().Err(err).Msg("release client resource")
		}
	}
}

func printListing(w io.Writer, items []models.DecodedItem) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tNAME\tSIZE\tMODIFIED\tUUID")
	for _, item := range items {
		size := "-"
		if item.Type == models.ItemFile {
			size = fmt.Sprintf("%d", item.Size)
		}
		modified := "-"
		if item.LastModified > 0 {
			modified = time.UnixMilli(item.LastModified).UTC().Format(time.RFC3339)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", item.Type, item.Name, size, modified, item.UUID)
	}
	return tw.Flush()
}
