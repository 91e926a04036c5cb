package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newYesNoCmd(a *app) *cobra.Command {
	var (
		flags     pickerFlags
		defaultNo bool
	)

	cmd := &cobra.Command{
		Use:   "yesno PROMPT",
		Short: "Ask a yes or no question",
		Long: `Ask a yes or no question and print "yes" or "no".

The cursor starts on Yes unless --no is given. Exit status is 0 when
answered, 1 when cancelled, and 2 on errors.

Examples:
  pickaboo yesno "Continue?" && make deploy
  [ "$(pickaboo yesno --no 'Delete all?')" = yes ] && rm -rf build`,
		GroupID: groupPrompt,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pr, err := a.newPrompt(cmd.Flags(), &flags)
			if err != nil {
				return err
			}
			defer pr.release()

			answer, ok, err := pr.picker.YesNo(args[0], !defaultNo)
			if err != nil {
				return err
			}
			if !ok {
				return errCancelled
			}
			if answer {
				fmt.Fprintln(cmd.OutOrStdout(), "yes")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "no")
			}
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&defaultNo, "no", false, "start with the cursor on No")
	return cmd
}
