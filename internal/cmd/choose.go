package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/runger/pickaboo/picker"
)

func newChooseCmd(a *app) *cobra.Command {
	var (
		flags        pickerFlags
		defaultIndex int
	)

	cmd := &cobra.Command{
		Use:   "choose PROMPT [OPTION...]",
		Short: "Pick one of several options",
		Long: `Pick one of several options and print its label.

Each option is written as "Label[(Short)][: Description]". The first letter
of Short, or of Label, is the key that jumps to the option.

Without OPTION arguments, options are read from stdin, one per line, and
keys are read from the terminal.

Exit status is 0 when an option was chosen, 1 when cancelled, and 2 on
errors. Flags can also be set in PICKABOO_DEFAULT_OPTS.

Examples:
  pickaboo choose "Do you like it?" Yes Maybe "So so" No
  pickaboo choose --describe=all "Deploy to" "staging: test cluster" "prod(P): live"
  git branch --format='%(refname:short)' | pickaboo choose --alt-screen "Branch"`,
		GroupID: groupPrompt,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := args[1:]
			if len(entries) == 0 {
				if term.IsTerminal(int(a.stdin.Fd())) {
					return errors.New("no options given")
				}
				var err error
				if entries, err = readOptions(a.stdin); err != nil {
					return err
				}
			}

			o, err := picker.ParseOptions(entries...)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("default") {
				if o, err = o.StartingAt(defaultIndex); err != nil {
					return err
				}
			}

			pr, err := a.newPrompt(cmd.Flags(), &flags)
			if err != nil {
				return err
			}
			defer pr.release()

			label, ok, err := pr.picker.Choose(args[0], o)
			if err != nil {
				return err
			}
			if !ok {
				return errCancelled
			}
			fmt.Fprintln(cmd.OutOrStdout(), label)
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().IntVar(&defaultIndex, "default", 0, "index of the option the cursor starts on")
	return cmd
}

// readOptions reads one option per non-blank line.
func readOptions(r io.Reader) ([]string, error) {
	var entries []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read options: %w", err)
	}
	return entries, nil
}
