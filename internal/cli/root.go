// Package cli wires the page controllers to a cobra command tree. Commands
// stay thin: flags in, one controller call, table or line output. All policy
// (validation, role gates, confirmation rules) lives in the pages package.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/config"
	"github.com/mehmetcc/oseek/internal/credstore"
	"github.com/mehmetcc/oseek/internal/guard"
	"github.com/mehmetcc/oseek/internal/httpx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type App struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *credstore.FileStore
	client *api.Client
}

// Root builds the whole command tree. The app initializes lazily in the
// persistent pre-run so `oseek --help` works without a config or store.
func Root() *cobra.Command {
	var verbose bool
	app := &App{}

	cmd := &cobra.Command{
		Use:           "oseek",
		Short:         "Terminal client for the OSEEK job board",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(verbose)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.close()
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log what the client is doing")

	cmd.AddCommand(
		app.loginCmd(),
		app.signupCmd(),
		app.logoutCmd(),
		app.whoamiCmd(),
		app.jobsCmd(),
		app.myJobsCmd(),
		app.recommendCmd(),
		app.applyCmd(),
		app.activityCmd(),
		app.applicantsCmd(),
		app.wishlistCmd(),
		app.notificationsCmd(),
		app.connectionsCmd(),
		app.profileCmd(),
		app.companyCmd(),
		app.dashboardCmd(),
		app.adminCmd(),
		app.accountCmd(),
	)
	return cmd
}

func (a *App) init(verbose bool) error {
	if a.client != nil {
		return nil
	}

	logger := zap.NewNop()
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = l
	}

	cfg, err := config.LoadConfig(logger)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	store, err := credstore.NewFileStore(cfg.StoreConfig.Dir, logger)
	if err != nil {
		return fmt.Errorf("open credential store: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.store = store
	a.client = api.NewClient(cfg.APIConfig, store, logger)
	return nil
}

func (a *App) close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("failed to close credential store", zap.Error(err))
		}
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// gate is the protected-route check: every command that maps to a
// logged-in page runs it before doing anything else.
func (a *App) gate(ctx context.Context) error {
	res := guard.New(a.client, a.store, a.logger).Check(ctx)
	if !res.Authorized() {
		return errors.New("not logged in, run `oseek login` first")
	}
	return nil
}

// pageErr converts a controller's banner and field errors into one error.
func pageErr(msg string, fields []httpx.FieldError) error {
	if len(fields) == 0 {
		return errors.New(msg)
	}
	lines := make([]string, 0, len(fields)+1)
	lines = append(lines, msg)
	for _, f := range fields {
		line := "  " + f.Field + ": fails " + f.Rule
		if f.Param != "" {
			line += "=" + f.Param
		}
		lines = append(lines, line)
	}
	return errors.New(strings.Join(lines, "\n"))
}

// denied renders an Enter() refusal.
func denied(redirect string) error {
	if redirect == guard.LoginRoute {
		return errors.New("not logged in, run `oseek login` first")
	}
	return errors.New("your account role cannot open this page")
}

func table(cmd *cobra.Command) *tabwriter.Writer {
	return tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
}
