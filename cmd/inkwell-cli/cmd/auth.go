package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"inkwell/internal/adapters/wikiapi"
	"inkwell/internal/application"
	"inkwell/internal/application/commands"
)

var loginTokenStdin bool

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage server profiles and credentials",
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a server address and API token",
	Long: `Store the wiki address and an API token under a named profile
(--profile, "default" when omitted). The token is read from --token,
--token-stdin, or a hidden interactive prompt, and is kept in a file
only readable by you, never in the config document.

Examples:
  inkwell-cli auth login --base-url https://wiki.example.com
  echo "$WIKI_TOKEN" | inkwell-cli auth login --base-url https://wiki.example.com --token-stdin
  inkwell-cli auth login --profile work --base-url https://wiki.corp.example.com`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		started := time.Now()

		token, err := resolveLoginToken()
		if err != nil {
			return respond(cmd, nil, nil, started, err)
		}

		// settings.BaseURL is the resolved target: flag, then the
		// INKWELL_BASE_URL environment variable, then the stored profile.
		login := commands.NewLoginCommand(configs, creds, settings.BaseURL, token).
			WithVerify(verifyWith(settings.BaseURL, token))
		login.Profile = flagProfile
		login.TimeoutSeconds = flagTimeout

		result, err := login.Execute(cmd.Context())
		return respond(cmd, result, nil, started, err)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the effective profile and whether the server accepts it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		started := time.Now()

		var ping func(ctx context.Context) error
		if settings.BaseURL != "" {
			ping = verifyWith(settings.BaseURL, settings.Token)
		}
		status := commands.NewStatusCommand(settings.Profile, settings.BaseURL, settings.TokenSource, ping)

		result, err := status.Execute(cmd.Context())
		return respond(cmd, result, nil, started, err)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored credential for a profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		started := time.Now()

		result, err := commands.NewLogoutCommand(creds, settings.Profile).Execute(cmd.Context())
		return respond(cmd, result, nil, started, err)
	},
}

func init() {
	loginCmd.Flags().BoolVar(&loginTokenStdin, "token-stdin", false, "read the API token from standard input")
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(statusCmd)
	authCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(authCmd)
}

// resolveLoginToken picks the token from --token, --token-stdin, or a
// hidden prompt, in that order.
func resolveLoginToken() (string, error) {
	if flagToken != "" {
		return flagToken, nil
	}
	if loginTokenStdin {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read token from stdin: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", &application.ValidationError{
			Field:   "token",
			Message: "stdin is not a terminal; pass --token or --token-stdin",
		}
	}
	fmt.Fprint(os.Stderr, "API token: ")
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// verifyWith returns a cheap authenticated call against the given
// address and token, independent of the resolved settings.
func verifyWith(baseURL, token string) func(ctx context.Context) error {
	probe := wikiapi.New(wikiapi.Config{
		BaseURL: baseURL,
		Token:   token,
		Timeout: settings.Timeout,
		Logger:  newLogger(),
	})
	return func(ctx context.Context) error {
		list := commands.NewListCollectionsCommand(probe)
		list.Limit = 1
		_, err := list.Execute(ctx)
		return err
	}
}
