package blurtext

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Kornerupin/blur-text/pkg/charset"
	"github.com/Kornerupin/blur-text/pkg/ports"
)

// Decorator holds the resolved targets and the merged configuration for one
// decoration pass. Targets are resolved once, at construction; the
// configuration is immutable afterwards.
type Decorator struct {
	host    ports.Host
	cfg     Config
	targets []ports.Element
	logger  *slog.Logger
	hooks   Hooks
}

// New resolves target against the host and prepares a Decorator.
//
// target is a selector string, a single element handle, or a slice of
// handles. A target that matches nothing is not an error: an advisory is
// logged and the Decorator becomes a no-op. The only error is a target value
// the host cannot interpret (ports.ErrBadTarget).
//
// Coverage gaps in the merged configuration are logged here, once, as
// advisories; they never block decoration.
func New(host ports.Host, target any, opts ...Option) (*Decorator, error) {
	d := &Decorator{
		host:   host,
		cfg:    defaultConfig(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}

	for _, r := range d.cfg.Categories.Coverage(charset.Reference) {
		d.logger.Warn("no category covers character, falling back",
			"char", string(r),
			"fallback", charset.Fallback)
		if d.hooks.OnCoverageGap != nil {
			d.hooks.OnCoverageGap(r)
		}
	}

	targets, err := host.Resolve(target)
	if err != nil {
		return nil, fmt.Errorf("resolve target: %w", err)
	}
	if len(targets) == 0 {
		d.logger.Warn("target resolved to no elements", "target", fmt.Sprintf("%v", target))
	}
	d.targets = targets
	return d, nil
}

// Config returns a copy of the merged configuration.
func (d *Decorator) Config() Config {
	cfg := d.cfg
	cfg.Categories = append(charset.Categories(nil), d.cfg.Categories...)
	return cfg
}

// Targets returns the number of elements resolved at construction.
func (d *Decorator) Targets() int { return len(d.targets) }

// Apply decorates every resolved element in resolution order. Elements
// already carrying the processed marker are left untouched, so calling Apply
// twice (or resolving the same element twice) is safe.
func (d *Decorator) Apply() {
	for _, el := range d.targets {
		d.decorate(el)
	}
}

// Decorate is the one-shot entry point: resolve, configure, apply.
func Decorate(host ports.Host, target any, opts ...Option) error {
	d, err := New(host, target, opts...)
	if err != nil {
		return err
	}
	d.Apply()
	return nil
}
