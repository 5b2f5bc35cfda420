package config

import (
	"fmt"

	"github.com/katalvlaran/lobjects/atom"
	"github.com/katalvlaran/lobjects/host"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Patch is a set of live objects built from a Script.
type Patch struct {
	script  *Script
	objects map[string]*host.Object
	order   []string
	logger  *zap.Logger
}

// PatchOption configures Build.
type PatchOption func(*patchConfig)

type patchConfig struct {
	logger   *zap.Logger
	objects  []host.Option
	tapper   Tapper
}

// Tapper supplies an Outlet for every object outlet. *host.Recorder is a
// Tapper.
type Tapper interface {
	Tap(object string, outlet int) host.Outlet
}

// WithLogger logs event delivery to l.
func WithLogger(l *zap.Logger) PatchOption {
	return func(c *patchConfig) { c.logger = l }
}

// WithTapper attaches t to every outlet. Taps are attached before the
// script connections, so an object's output is seen before the output it
// triggers downstream.
func WithTapper(t Tapper) PatchOption {
	return func(c *patchConfig) { c.tapper = t }
}

// WithObjectOptions passes opts to every host.New call.
func WithObjectOptions(opts ...host.Option) PatchOption {
	return func(c *patchConfig) { c.objects = append(c.objects, opts...) }
}

// Build creates the objects of s in declaration order and wires them.
func Build(s *Script, opts ...PatchOption) (*Patch, error) {
	cfg := patchConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Patch{script: s, objects: make(map[string]*host.Object, len(s.Objects)), logger: cfg.logger}
	for _, spec := range s.Objects {
		objOpts := append([]host.Option{host.WithName(spec.Name)}, cfg.objects...)
		obj, err := host.New(spec.Kind, atom.ParseAtoms(spec.Args), objOpts...)
		if err != nil {
			return nil, fmt.Errorf("config: object %q: %w", spec.Name, err)
		}
		if cfg.tapper != nil {
			for i := 0; i < obj.Outlets(); i++ {
				_ = obj.Connect(i, cfg.tapper.Tap(spec.Name, i))
			}
		}
		p.objects[spec.Name] = obj
		p.order = append(p.order, spec.Name)
	}

	for i, c := range s.Connect {
		from, to, err := p.pair(c.From, c.To)
		if err != nil {
			return nil, fmt.Errorf("config: connect[%d]: %w", i, err)
		}
		if c.Inlet < 0 || c.Inlet >= to.Inlets() {
			return nil, fmt.Errorf("config: connect[%d]: %w: %s inlet %d", i, host.ErrNoSuchInlet, c.To, c.Inlet)
		}
		if err := from.Connect(c.Outlet, to.Inlet(c.Inlet)); err != nil {
			return nil, fmt.Errorf("config: connect[%d]: %w", i, err)
		}
	}

	return p, nil
}

func (p *Patch) pair(from, to string) (*host.Object, *host.Object, error) {
	a, ok := p.objects[from]
	if !ok {
		return nil, nil, fmt.Errorf("unknown object %q", from)
	}
	b, ok := p.objects[to]
	if !ok {
		return nil, nil, fmt.Errorf("unknown object %q", to)
	}

	return a, b, nil
}

// Object returns the object with the given name.
func (p *Patch) Object(name string) (*host.Object, bool) {
	o, ok := p.objects[name]

	return o, ok
}

// Names returns the object names in declaration order.
func (p *Patch) Names() []string { return p.order }

// Run delivers the script events in order. A failing event does not stop
// the run; every failure is returned combined.
func (p *Patch) Run() error {
	var errs error
	for i, e := range p.script.Events {
		errs = multierr.Append(errs, p.deliver(i, e))
	}

	return errs
}

func (p *Patch) deliver(i int, e Event) error {
	obj, ok := p.objects[e.To]
	if !ok {
		return fmt.Errorf("config: events[%d]: unknown object %q", i, e.To)
	}
	msg, err := atom.Parse(e.Message)
	if err != nil {
		return fmt.Errorf("config: events[%d]: %w", i, err)
	}
	p.logger.Debug("event",
		zap.Int("index", i),
		zap.String("to", e.To),
		zap.Int("inlet", e.Inlet),
		zap.Stringer("message", msg))
	if err := obj.Send(e.Inlet, msg); err != nil {
		return fmt.Errorf("config: events[%d]: %w", i, err)
	}

	return nil
}
