package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/signup/internal/config"
	"github.com/jask/signup/internal/form"
	"github.com/jask/signup/internal/logging"
	"github.com/jask/signup/internal/service"
	"github.com/jask/signup/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// env holds what every subcommand needs after config is loaded.
type env struct {
	cfg      config.Config
	logger   *zap.Logger
	sessions *service.SessionService
}

func newRootCmd() *cobra.Command {
	var (
		policyFlag string
		verbose    bool
		e          env
	)

	root := &cobra.Command{
		Use:   "signup",
		Short: "Interactive sign-up form with live validation",
		Long: `signup runs a terminal sign-up form (username, email, password, repeat)
that validates as you type. Error messages appear according to the configured
policy:

  always       every invalid field shows its message at all times
  focus-keyed  legacy: the last committed message shows on the field it names
  per-field    a field's message toggles when that field is committed (default)`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if policyFlag != "" {
				cfg.Form.Policy = policyFlag
			}
			if verbose {
				cfg.Log.Level = "debug"
			}
			policy, err := cfg.Policy()
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log)
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			e = env{
				cfg:    cfg,
				logger: logger,
				sessions: &service.SessionService{
					Policy:          policy,
					KnownDomains:    cfg.Form.KnownDomains,
					SuggestDistance: cfg.Form.SuggestDistance,
					Logger:          logger,
				},
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := tui.New(e.cfg, e.sessions, e.logger)
			if err != nil {
				return err
			}
			if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("run ui: %w", err)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&policyFlag, "policy", "p", "", "message visibility policy (always, focus-keyed, per-field)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newCheckCmd(&e), newPoliciesCmd())
	return root
}

func newPoliciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "List message visibility policies",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range form.Policies() {
				marker := " "
				if p == form.DefaultPolicy {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, p)
			}
		},
	}
}
