package cmd

import (
	"fmt"

	"github.com/google/shlex"
)

// withDefaultOpts inserts the flags from PICKABOO_DEFAULT_OPTS right after
// the subcommand name, so flags given on the command line still win.
func withDefaultOpts(args []string, env string) ([]string, error) {
	if env == "" || len(args) == 0 {
		return args, nil
	}
	switch args[0] {
	case "choose", "yesno":
	default:
		return args, nil
	}

	defaults, err := shlex.Split(env)
	if err != nil {
		return nil, fmt.Errorf("invalid PICKABOO_DEFAULT_OPTS: %w", err)
	}

	out := make([]string, 0, len(args)+len(defaults))
	out = append(out, args[0])
	out = append(out, defaults...)
	return append(out, args[1:]...), nil
}
