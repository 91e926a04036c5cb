package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runger/pickaboo/internal/config"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config [key] [value]",
		Short: "Get or set configuration values",
		Long: `Get or set pickaboo configuration values.

Without arguments, lists all configuration keys.
With one argument, shows the value of that key.
With two arguments, sets the key to the value.

Configuration is stored in ~/.config/pickaboo/config.yaml (XDG compliant).
Command-line flags override these values for a single run.

Keys are in the format: section.key
Sections: picker, log

Examples:
  pickaboo config                            # List all keys
  pickaboo config picker.allow_wrap          # Get picker.allow_wrap value
  pickaboo config picker.allow_wrap true     # Wrap around at the ends
  pickaboo config picker.description_mode all`,
		GroupID: groupSetup,
		Args:    cobra.MaximumNArgs(2),
		RunE:    runConfig,
	}
}

func runConfig(cmd *cobra.Command, args []string) error {
	paths := config.DefaultPaths()
	load := config.LoadFromFile
	if len(args) == 2 {
		load = config.ReadFromFile
	}
	cfg, err := load(paths.ConfigFile())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out := cmd.OutOrStdout()
	pal := newPalette(out)
	switch len(args) {
	case 0:
		return listConfig(out, pal, cfg, paths)
	case 1:
		return getConfig(out, pal, cfg, args[0])
	case 2:
		return setConfig(out, pal, cfg, paths, args[0], args[1])
	}

	return nil
}

func listConfig(out io.Writer, pal palette, cfg *config.Config, paths *config.Paths) error {
	fmt.Fprintln(out, pal.bold("Configuration Keys"))
	fmt.Fprintln(out, strings.Repeat("-", 40))
	fmt.Fprintln(out)

	var failedKeys []string
	for _, key := range config.ListKeys() {
		value, err := cfg.Get(key)
		if err != nil {
			failedKeys = append(failedKeys, key)
			continue
		}

		displayValue := value
		if displayValue == "" {
			displayValue = pal.dim("(not set)")
		}

		fmt.Fprintf(out, "  %s = %s\n", pal.key(key), displayValue)
	}

	if len(failedKeys) > 0 {
		fmt.Fprintf(out, "\n%s Failed to retrieve keys: %s\n", pal.warn("Warning:"), strings.Join(failedKeys, ", "))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Config file: %s\n", paths.ConfigFile())

	return nil
}

func getConfig(out io.Writer, pal palette, cfg *config.Config, key string) error {
	value, err := cfg.Get(key)
	if err != nil {
		return err
	}

	if value == "" {
		fmt.Fprintln(out, pal.dim("(not set)"))
	} else {
		fmt.Fprintln(out, value)
	}

	return nil
}

func setConfig(out io.Writer, pal palette, cfg *config.Config, paths *config.Paths, key, value string) error {
	if err := cfg.Set(key, value); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := paths.EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	if err := cfg.SaveToFile(paths.ConfigFile()); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s = %s\n", pal.key(key), value)
	fmt.Fprintf(out, "Saved to: %s\n", paths.ConfigFile())

	return nil
}
