package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
// These match the expectations of shell scripts:
//
//	0 = selection made (use the result)
//	1 = cancelled by user
//	2 = error or fallback (no TTY, bad arguments, etc.)
const (
	exitSuccess   = 0
	exitCancelled = 1
	exitFallback  = 2
)

const (
	groupPrompt = "prompt"
	groupSetup  = "setup"
)

// errCancelled is returned by prompt commands when the user cancels.
var errCancelled = errors.New("cancelled")

// app carries the process streams into the commands.
type app struct {
	stdin  *os.File
	stdout io.Writer
	stderr *os.File

	// openTTY opens the controlling terminal when stdin or stderr is
	// redirected.
	openTTY func() (*os.File, error)
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pickaboo",
		Short: "pick one option in the terminal",
		Long: `pickaboo - pick one option in the terminal
  - ←→ or the shortcut key to move, enter to confirm, esc to cancel
  - prints the chosen label; exits 1 when cancelled`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)
	rootCmd.SetIn(a.stdin)

	rootCmd.AddGroup(
		&cobra.Group{ID: groupPrompt, Title: "Prompts:"},
		&cobra.Group{ID: groupSetup, Title: "Setup:"},
	)
	rootCmd.AddCommand(newChooseCmd(a))
	rootCmd.AddCommand(newYesNoCmd(a))
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	return run(os.Args[1:], &app{
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		openTTY: openTTY,
	})
}

// run is separated from Execute to enable testing.
func run(args []string, a *app) int {
	args, err := withDefaultOpts(args, os.Getenv("PICKABOO_DEFAULT_OPTS"))
	if err != nil {
		fmt.Fprintf(a.stderr, "pickaboo: %v\n", err)
		return exitFallback
	}

	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errCancelled) {
			return exitCancelled
		}
		fmt.Fprintf(a.stderr, "pickaboo: %v\n", err)
		return exitFallback
	}
	return exitSuccess
}
