package picker

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/runger/pickaboo/internal/tty"
)

// Picker runs selection sessions with a fixed configuration.
type Picker struct {
	cfg    Config
	in     *os.File
	out    *os.File
	logger *slog.Logger
}

// Option customizes a Picker.
type Option func(*Picker)

// WithInput reads keys from f instead of os.Stdin. f must be a terminal.
func WithInput(f *os.File) Option {
	return func(p *Picker) { p.in = f }
}

// WithOutput draws frames on f instead of os.Stderr.
func WithOutput(f *os.File) Option {
	return func(p *Picker) { p.out = f }
}

// WithLogger sets the logger used for debug records. Defaults to
// slog.Default(). The picker only logs at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(p *Picker) { p.logger = l }
}

// New creates a Picker after validating cfg.
func New(cfg Config, opts ...Option) (*Picker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Picker{
		cfg:    cfg,
		in:     os.Stdin,
		out:    os.Stderr,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p, nil
}

// Config returns the picker's configuration.
func (p *Picker) Config() Config {
	return p.cfg
}

// Choose asks the user to pick one of o and blocks until they confirm or
// cancel.
//
// It returns the chosen label and true on Enter, "" and false when the user
// cancels with Escape or Ctrl+C, and an error if the terminal cannot be used.
// The terminal mode is restored before Choose returns in every case.
func (p *Picker) Choose(prompt string, o *Options) (label string, ok bool, err error) {
	if o == nil || o.Len() == 0 {
		return "", false, &ValidationError{Index: -1, Err: ErrNoItems}
	}

	logger := p.logger.With("component", "picker", "session", uuid.NewString())
	logger.Debug("session starting",
		"items", o.Len(),
		"alt_screen", p.cfg.AlternateScreen,
		"wrap", p.cfg.AllowWrap,
		"descriptions", p.cfg.DescriptionMode.String(),
	)

	s, err := tty.Open(p.in, p.out, tty.Mode{
		AltScreen: p.cfg.AlternateScreen,
		Height:    frameHeight(p.cfg, o.Len()),
	})
	if err != nil {
		logger.Debug("terminal unavailable", "error", err)
		return "", false, err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil {
			logger.Debug("terminal restore failed", "error", cerr)
			label, ok = "", false
			if err == nil {
				err = cerr
			} else {
				err = errors.Join(err, cerr)
			}
		}
	}()

	width, height := s.Size()
	r := newRenderer(p.cfg, prompt, o, width, height, s.Profile())
	st, err := p.run(s, r, o, logger)
	if err != nil {
		logger.Debug("session aborted", "error", err)
		return "", false, err
	}

	logger.Debug("session finished", "status", st.status.String(), "cursor", st.cursor)
	if st.status == statusConfirmed {
		return o.Item(st.cursor).Label, true, nil
	}
	return "", false, nil
}

// keySession is the part of a terminal session the loop needs.
type keySession interface {
	io.Writer
	ReadKey() (tty.Key, error)
}

// run is the event loop: draw, read one key, map it, update the state and
// draw again until the state is confirmed or cancelled. Ignored keys do not
// trigger a redraw.
func (p *Picker) run(s keySession, r *renderer, o *Options, logger *slog.Logger) (state, error) {
	st := state{cursor: o.Initial()}
	if err := r.draw(s, st); err != nil {
		return st, err
	}

	for {
		k, err := s.ReadKey()
		if err != nil {
			return st, err
		}

		a := mapKey(k, o)
		if a.kind == actionIgnore {
			continue
		}

		st = st.apply(a, o.Len(), p.cfg.AllowWrap)
		logger.Debug("key", "key", k.String(), "action", a.kind.String(), "cursor", st.cursor)
		if st.status != statusRunning {
			return st, nil
		}

		if err := r.draw(s, st); err != nil {
			return st, err
		}
	}
}

// YesNo asks a yes-or-no question. defaultYes puts the cursor on "Yes",
// otherwise on "No". It returns the answer and true, or false and false when
// cancelled.
func (p *Picker) YesNo(prompt string, defaultYes bool) (answer bool, ok bool, err error) {
	o, err := NewOptions(NewItem("Yes", 'y', ""), NewItem("No", 'n', ""))
	if err != nil {
		return false, false, err
	}
	if !defaultYes {
		if o, err = o.StartingAt(1); err != nil {
			return false, false, err
		}
	}

	label, ok, err := p.Choose(prompt, o)
	if err != nil || !ok {
		return false, false, err
	}
	return label == "Yes", true, nil
}

// Choose runs a picker with DefaultConfig: inline, keys from stdin, frames
// on stderr.
func Choose(prompt string, o *Options) (string, bool, error) {
	p, err := New(DefaultConfig())
	if err != nil {
		return "", false, err
	}
	return p.Choose(prompt, o)
}

// YesNo asks a yes-or-no question with DefaultConfig.
func YesNo(prompt string, defaultYes bool) (bool, bool, error) {
	p, err := New(DefaultConfig())
	if err != nil {
		return false, false, err
	}
	return p.YesNo(prompt, defaultYes)
}
