package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/taskboard/internal/client"
	"github.com/idilsaglam/taskboard/internal/config"
	"github.com/idilsaglam/taskboard/internal/logging"
	"github.com/idilsaglam/taskboard/internal/store/jsonstore"
	"github.com/idilsaglam/taskboard/internal/ui"
)

// rootFlags override the config file and environment.
type rootFlags struct {
	configPath string
	baseURL    string
	fixture    string
	theme      string
	logFile    string
	debug      bool
}

// app is what every command needs once flags are parsed.
type app struct {
	cfg    *config.Config
	theme  ui.Theme
	logger *zap.Logger
	source client.Source
	stdout io.Writer
	stderr io.Writer
}

// Run executes the command line and returns an exit code (0 ok, 1 error).
func Run(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		ui.Fail(stderr, ui.ThemeByName(""), err.Error())
		return 1
	}
	return 0
}

// NewRootCmd builds the command tree. The bare command opens the dashboard.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "taskboard",
		Short: "Task-tracking dashboard for the terminal",
		Long: `taskboard lists tasks fetched from a remote service and lets you add,
edit, delete and re-status them for the session. Changes stay local.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, stdout, stderr, runDash)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/taskboard/config.yaml)")
	pf.StringVar(&flags.baseURL, "base-url", "", "task service base URL")
	pf.StringVar(&flags.fixture, "fixture", "", "read tasks from a local JSON file instead of the service")
	pf.StringVar(&flags.theme, "theme", "", "classic, neon or mono")
	pf.StringVar(&flags.logFile, "log-file", "", "write logs to this file")
	pf.BoolVar(&flags.debug, "debug", false, "debug logging")

	root.AddCommand(
		&cobra.Command{
			Use:   "dash",
			Short: "Open the interactive dashboard",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(flags, stdout, stderr, runDash)
			},
		},
		newListCmd(flags, stdout, stderr),
		&cobra.Command{
			Use:   "stats",
			Short: "Print completion statistics",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(flags, stdout, stderr, func(a *app) error { return runStats(cmd, a) })
			},
		},
		&cobra.Command{
			Use:   "logout-url",
			Short: "Print the identity provider logout link",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(flags, stdout, stderr, func(a *app) error {
					fmt.Fprintln(a.stdout, ui.LogoutURL(a.cfg.Identity.Issuer, a.cfg.Identity.LogoutRedirect))
					return nil
				})
			},
		},
	)
	return root
}

func withApp(flags *rootFlags, stdout, stderr io.Writer, fn func(*app) error) error {
	a, err := newApp(flags, stdout, stderr)
	if err != nil {
		return err
	}
	defer func() { _ = logging.Sync(a.logger) }()
	return fn(a)
}

func newApp(flags *rootFlags, stdout, stderr io.Writer) (*app, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if flags.baseURL != "" {
		cfg.Remote.BaseURL = flags.baseURL
	}
	if flags.fixture != "" {
		cfg.Fixture = flags.fixture
	}
	if flags.theme != "" {
		cfg.Theme = flags.theme
	}
	if flags.logFile != "" {
		cfg.Logging.File = flags.logFile
	}
	if flags.debug {
		cfg.Logging.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	var src client.Source
	if cfg.Fixture != "" {
		src = jsonstore.New(cfg.Fixture)
		logger.Info("using fixture", zap.String("path", cfg.Fixture))
	} else {
		c := client.New(cfg.Remote, logger.Named("client"))
		src = c
		logger.Info("using remote", zap.String("url", c.URL()))
	}

	return &app{
		cfg:    cfg,
		theme:  ui.ThemeByName(cfg.Theme),
		logger: logger,
		source: src,
		stdout: stdout,
		stderr: stderr,
	}, nil
}
