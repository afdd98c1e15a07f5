package cmd

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Run commands from standard input, one per line",
	Long: `Read commands from standard input and run them one after another,
each as its own invocation with its own exit semantics. Blank lines and
lines starting with # are skipped; "exit" or "quit" stops the loop.

Global flags given to shell (such as --json or --profile) are passed to
every line.

Example:
  inkwell-cli shell --json <<'EOF'
  docs search "etcd"
  collections list
  EOF`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		started := time.Now()

		exe, err := os.Executable()
		if err != nil {
			return respond(cmd, nil, nil, started, fmt.Errorf("locate executable: %w", err))
		}
		inherited := inheritedFlags()

		scanner := bufio.NewScanner(cmd.InOrStdin())
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		lines := 0
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			if line == "exit" || line == "quit" {
				break
			}

			argv, err := splitArgs(line)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
				continue
			}

			child := exec.CommandContext(cmd.Context(), exe, append(argv, inherited...)...)
			child.Stdin = nil
			child.Stdout = cmd.OutOrStdout()
			child.Stderr = cmd.ErrOrStderr()
			// Each line stands alone; a failing command does not stop
			// the ones after it.
			_ = child.Run()
			lines++

			if cmd.Context().Err() != nil {
				return respond(cmd, nil, nil, started, cmd.Context().Err())
			}
		}
		if err := scanner.Err(); err != nil {
			return respond(cmd, nil, nil, started, fmt.Errorf("read input: %w", err))
		}
		return respond(cmd, fmt.Sprintf("ran %d command(s)", lines), nil, started, nil)
	},
}

// inheritedFlags re-encodes the global flags so child invocations see
// the same profile, server, and output mode.
func inheritedFlags() []string {
	var flags []string
	if flagProfile != "" {
		flags = append(flags, "--profile", flagProfile)
	}
	if flagBaseURL != "" {
		flags = append(flags, "--base-url", flagBaseURL)
	}
	if flagToken != "" {
		flags = append(flags, "--token", flagToken)
	}
	if flagTimeout > 0 {
		flags = append(flags, "--timeout", fmt.Sprint(flagTimeout))
	}
	if flagJSON {
		flags = append(flags, "--json")
	}
	if flagQuiet {
		flags = append(flags, "--quiet")
	}
	if flagVerbose {
		flags = append(flags, "--verbose")
	}
	return flags
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
