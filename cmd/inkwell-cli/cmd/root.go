package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"inkwell/internal/adapters/configjson"
	"inkwell/internal/adapters/credfile"
	"inkwell/internal/adapters/wikiapi"
	"inkwell/internal/application"
	"inkwell/internal/config"
	"inkwell/internal/domain"
	"inkwell/internal/output"
	"inkwell/internal/ports"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagProfile string
	flagBaseURL string
	flagToken   string
	flagTimeout int
	flagJSON    bool
	flagQuiet   bool
	flagVerbose bool

	formatter *output.Formatter
	settings  config.Settings
	client    ports.WikiClient
	configs   ports.ConfigStore
	creds     ports.CredentialStore
)

var rootCmd = &cobra.Command{
	Use:   "inkwell-cli",
	Short: "Command-line client for a remote wiki",
	Long: `inkwell-cli talks to a remote wiki's HTTP API: search, read, create,
update, and export documents from scripts or the terminal.

Authentication and the server address come from 'auth login', the
INKWELL_BASE_URL / INKWELL_API_TOKEN environment variables, or the
--base-url / --token flags, in increasing order of precedence.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		formatter = output.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), version)
		formatter.JSON = flagJSON
		formatter.Quiet = flagQuiet

		switch cmd.Name() {
		case "help", "completion", "version":
			return nil
		}

		configPath, err := config.ConfigPath()
		if err != nil {
			return err
		}
		credDir, err := config.CredentialsDir()
		if err != nil {
			return err
		}
		configs = configjson.New(configPath)
		creds = credfile.New(credDir)

		cfg, err := configs.Load()
		if err != nil {
			return err
		}
		settings, err = config.Resolve(config.Overrides{
			Profile:        flagProfile,
			BaseURL:        flagBaseURL,
			Token:          flagToken,
			TimeoutSeconds: flagTimeout,
		}, cfg, creds)
		if err != nil {
			return err
		}

		wikiapi.UserAgent = "inkwell/" + version
		client = wikiapi.New(wikiapi.Config{
			BaseURL: settings.BaseURL,
			Token:   settings.Token,
			Timeout: settings.Timeout,
			Logger:  newLogger(),
		})
		return nil
	},
}

// Execute runs the root command and turns its outcome into the process
// exit code.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return
	}

	var ee *exitError
	if errors.As(err, &ee) {
		os.Exit(ee.code)
	}

	// Errors that bypassed the commands: cobra usage errors and setup
	// failures from PersistentPreRunE.
	f := formatter
	if f == nil {
		f = fallbackFormatter()
	}
	if isUsageError(err) {
		err = &application.ValidationError{Field: "args", Message: err.Error()}
	}
	f.Failure("cli", err, time.Now())
	os.Exit(application.ExitCode(err))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "configuration profile to use")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "wiki server base URL (overrides stored profile)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "API token (overrides INKWELL_API_TOKEN and stored credential)")
	rootCmd.PersistentFlags().IntVar(&flagTimeout, "timeout", 0, "per-request timeout in seconds")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit a machine-readable JSON envelope on stdout")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress result output; rely on the exit code")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log requests and retries to stderr")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &application.ValidationError{Field: "flags", Message: err.Error()}
	})
}

// exitError carries a computed exit code up through cobra.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// respond writes the command outcome through the formatter and maps a
// failure to its exit code. Every RunE funnels through here so stdout,
// stderr, and the exit code always agree.
func respond(cmd *cobra.Command, data any, page *domain.Pagination, started time.Time, err error) error {
	name := commandName(cmd)
	if err != nil {
		formatter.Failure(name, err, started)
		return &exitError{code: application.ExitCode(err)}
	}
	formatter.Result(name, data, page, started)
	return nil
}

// commandName renders the command path in dotted form ("docs.search").
func commandName(cmd *cobra.Command) string {
	parts := strings.Fields(cmd.CommandPath())
	if len(parts) <= 1 {
		return "cli"
	}
	return strings.Join(parts[1:], ".")
}

func newLogger() *slog.Logger {
	if !flagVerbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// fallbackFormatter covers errors raised before PersistentPreRunE ran,
// honoring the output flags as literally given.
func fallbackFormatter() *output.Formatter {
	f := output.New(os.Stdout, os.Stderr, version)
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--":
			return f
		case "--json":
			f.JSON = true
		case "--quiet", "-q":
			f.Quiet = true
		}
	}
	return f
}

func isUsageError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "accepts ") ||
		strings.HasPrefix(msg, "requires ")
}
