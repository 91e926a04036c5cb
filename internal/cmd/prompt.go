package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/runger/pickaboo/internal/config"
	"github.com/runger/pickaboo/picker"
)

// pickerFlags are the flags shared by the prompt commands. Each one that is
// set overrides the matching picker.* config key.
type pickerFlags struct {
	altScreen bool
	wrap      bool
	delimiter string
	paren     string
	describe  string
	nameWidth string
}

func (f *pickerFlags) register(fs *pflag.FlagSet) {
	fs.BoolVar(&f.altScreen, "alt-screen", false, "draw on the alternate screen instead of inline")
	fs.BoolVar(&f.wrap, "wrap", false, "wrap around at the first and last option")
	fs.StringVar(&f.delimiter, "delimiter", "/", "separator between inline options")
	fs.StringVar(&f.paren, "paren", "", `parentheses around inline options, e.g. "()" or "[]"`)
	fs.StringVar(&f.describe, "describe", "none", "descriptions to show: none, selected, or all")
	fs.StringVar(&f.nameWidth, "name-width", "auto", "column width of option names: auto or a number")
}

// apply writes the flags the user set into cfg.
func (f *pickerFlags) apply(fs *pflag.FlagSet, cfg *config.Config) error {
	overrides := []struct {
		flag  string
		key   string
		value string
	}{
		{"alt-screen", "picker.alternate_screen", strconv.FormatBool(f.altScreen)},
		{"wrap", "picker.allow_wrap", strconv.FormatBool(f.wrap)},
		{"delimiter", "picker.delimiter", f.delimiter},
		{"paren", "picker.paren", f.paren},
		{"describe", "picker.description_mode", f.describe},
		{"name-width", "picker.name_width", f.nameWidth},
	}
	for _, o := range overrides {
		if !fs.Changed(o.flag) {
			continue
		}
		if err := cfg.Set(o.key, o.value); err != nil {
			return fmt.Errorf("--%s: %w", o.flag, err)
		}
	}
	return nil
}

// prompt is a picker bound to the terminal for one command run.
type prompt struct {
	picker  *picker.Picker
	release func()
}

// newPrompt loads the config, applies flags, checks the terminal and builds
// a picker drawing on it. The caller must call release.
func (a *app) newPrompt(fs *pflag.FlagSet, flags *pickerFlags) (*prompt, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := flags.apply(fs, cfg); err != nil {
		return nil, err
	}
	pc, err := cfg.PickerConfig()
	if err != nil {
		return nil, err
	}

	in, out, releaseTTY, err := a.terminal()
	if err != nil {
		return nil, err
	}
	if err := preflight(out); err != nil {
		releaseTTY()
		return nil, err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		releaseTTY()
		return nil, err
	}

	p, err := picker.New(pc,
		picker.WithInput(in),
		picker.WithOutput(out),
		picker.WithLogger(logger),
	)
	if err != nil {
		closeLog()
		releaseTTY()
		return nil, err
	}

	return &prompt{
		picker: p,
		release: func() {
			closeLog()
			releaseTTY()
		},
	}, nil
}
