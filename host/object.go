package host

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lobjects/atom"
	"github.com/katalvlaran/lobjects/diag"
	"github.com/katalvlaran/lobjects/mess"
	"go.uber.org/zap"
)

// Method and attribute selectors handled by the Object itself.
const (
	selClear    atom.Symbol = "clear"
	selReset    atom.Symbol = "reset"
	selPost     atom.Symbol = "post"
	selMaxlen   atom.Symbol = "maxlen"
	selWarnings atom.Symbol = "warnings"
	selLock     atom.Symbol = "lock"
)

// Option configures an Object.
type Option func(*Object)

// WithName sets the name stamped on diagnostics and log entries.
// It defaults to the object kind.
func WithName(name string) Option {
	return func(o *Object) { o.name = name }
}

// WithReporter routes diagnostics to r instead of the package logger.
func WithReporter(r diag.Reporter) Option {
	return func(o *Object) { o.reporter = r }
}

// WithPoster receives the text produced by "post".
// It defaults to an info entry on the package logger.
func WithPoster(fn func(text string)) Option {
	return func(o *Object) { o.poster = fn }
}

// Object hosts one Component.
type Object struct {
	name     string
	kind     string
	comp     Component
	env      *Env
	emit     *diag.Emitter
	reporter diag.Reporter
	poster   func(text string)
	outlets  [][]Outlet
	maxlen   int
}

// New creates an object of the given kind.
//
// Implementation:
//   - Stage 1: build the component with the default capacity.
//   - Stage 2: apply "@name value..." attributes in order.
//   - Stage 3: fall back to the default maxlen if an attribute left the
//     object unallocated.
//   - Stage 4: hand the positional arguments to the component.
//
// Attribute problems are reported as diagnostics and do not fail New.
func New(kind string, args []atom.Atom, opts ...Option) (*Object, error) {
	factory, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	o := &Object{name: kind, kind: kind}
	for _, opt := range opts {
		opt(o)
	}
	if o.reporter == nil {
		o.reporter = diag.NewZapReporter(Logger())
	}
	if o.poster == nil {
		o.poster = func(text string) {
			Logger().Info("post", zap.String("object", o.name), zap.String("text", text))
		}
	}
	o.emit = diag.NewEmitter(o.name, o.reporter)
	o.env = &Env{Emit: o.emit, send: o.send}

	comp, err := factory(o.env)
	if err != nil {
		return nil, fmt.Errorf("host: %s: %w", kind, err)
	}
	o.comp = comp
	o.maxlen = mess.DefaultCapacity
	o.outlets = make([][]Outlet, comp.Outlets())

	positional, attrs := SplitArgs(args)
	for _, a := range attrs {
		_ = o.SetAttr(a.Name, a.Values)
	}
	if o.maxlen == 0 {
		_ = o.SetMaxlen(mess.DefaultCapacity)
	}
	if o.maxlen > 0 {
		if err := comp.Preset(positional); err != nil {
			Logger().Debug("preset failed", zap.String("object", o.name), zap.Error(err))
		}
	}

	return o, nil
}

// Attr is one "@name value..." creation argument.
type Attr struct {
	Name   string
	Values []atom.Atom
}

// SplitArgs separates positional creation arguments from attribute
// arguments. Positional arguments end at the first symbol starting with '@'.
func SplitArgs(args []atom.Atom) (positional []atom.Atom, attrs []Attr) {
	i := 0
	for i < len(args) && !isAttrName(args[i]) {
		i++
	}
	positional = args[:i]
	for ; i < len(args); i++ {
		if isAttrName(args[i]) {
			attrs = append(attrs, Attr{Name: strings.TrimPrefix(string(args[i].AsSymbol()), "@")})

			continue
		}
		last := &attrs[len(attrs)-1]
		last.Values = append(last.Values, args[i])
	}

	return positional, attrs
}

func isAttrName(a atom.Atom) bool {
	return a.IsSymbol() && strings.HasPrefix(string(a.AsSymbol()), "@")
}

// Name returns the object name.
func (o *Object) Name() string { return o.name }

// Kind returns the object kind.
func (o *Object) Kind() string { return o.kind }

// Inlets returns the number of inlets.
func (o *Object) Inlets() int { return o.comp.Inlets() }

// Outlets returns the number of outlets.
func (o *Object) Outlets() int { return len(o.outlets) }

// Maxlen returns the current capacity, 0 after a failed allocation.
func (o *Object) Maxlen() int { return o.maxlen }

// Warnings reports whether warnings are enabled.
func (o *Object) Warnings() bool { return o.emit.Warnings }

// Component returns the hosted component.
func (o *Object) Component() Component { return o.comp }

// Connect attaches dst to an outlet. An outlet may feed several
// destinations; they receive messages in connection order.
func (o *Object) Connect(outlet int, dst Outlet) error {
	if outlet < 0 || outlet >= len(o.outlets) {
		return fmt.Errorf("%w: %s outlet %d", ErrNoSuchOutlet, o.name, outlet)
	}
	o.outlets[outlet] = append(o.outlets[outlet], dst)

	return nil
}

// Inlet returns an Outlet that delivers into inlet n of o, for wiring
// objects together.
func (o *Object) Inlet(n int) Outlet {
	return OutletFunc(func(msg atom.Message) {
		if err := o.Send(n, msg); err != nil {
			Logger().Debug("delivery failed", zap.String("object", o.name), zap.Int("inlet", n), zap.Error(err))
		}
	})
}

func (o *Object) send(outlet int, msg atom.Message) {
	if outlet < 0 || outlet >= len(o.outlets) {
		return
	}
	Logger().Debug("outlet",
		zap.String("object", o.name),
		zap.Int("outlet", outlet),
		zap.Stringer("message", msg))
	for _, dst := range o.outlets[outlet] {
		dst.Send(msg)
	}
}

// Send delivers msg to inlet.
//
// Methods (bang, clear, reset, post) and attribute messages are handled
// on any inlet. Data messages are routed by selector: int, float, list,
// and anything else with its selector as the lead tag.
func (o *Object) Send(inlet int, msg atom.Message) error {
	if inlet < 0 || inlet >= o.comp.Inlets() {
		return fmt.Errorf("%w: %s inlet %d", ErrNoSuchInlet, o.name, inlet)
	}
	Logger().Debug("inlet",
		zap.String("object", o.name),
		zap.Int("inlet", inlet),
		zap.Stringer("message", msg))

	switch msg.Selector {
	case atom.SymBang:
		o.comp.Bang()

		return nil
	case selClear:
		o.comp.Clear()

		return nil
	case selPost:
		o.Post()

		return nil
	case selMaxlen, selWarnings:
		return o.SetAttr(string(msg.Selector), msg.Args)
	case selReset:
		if r, ok := o.comp.(Resetter); ok {
			r.Reset()

			return nil
		}
	case selLock:
		if _, ok := o.comp.(Locker); ok {
			return o.SetAttr(string(msg.Selector), msg.Args)
		}
	}

	if o.maxlen == 0 {
		o.emit.Error(diag.OutOfMemory, "Previous allocation error. Try resetting maxlen.")

		return ErrNotAllocated
	}

	var err error
	switch msg.Selector {
	case atom.SymInt:
		err = o.comp.Int(inlet, firstArg(msg).AsInt())
	case atom.SymFloat:
		err = o.comp.Float(inlet, firstArg(msg).AsFloat())
	case atom.SymList:
		err = o.comp.List(inlet, msg.Args)
	default:
		err = o.comp.Anything(inlet, msg.Selector, msg.Args)
	}
	if err != nil {
		return fmt.Errorf("host: %s: %w", o.name, err)
	}

	return nil
}

func firstArg(msg atom.Message) atom.Atom {
	if len(msg.Args) == 0 {
		return atom.Atom{}
	}

	return msg.Args[0]
}

// SetAttr sets an attribute from its message values.
func (o *Object) SetAttr(name string, values []atom.Atom) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: %s: value expected", ErrBadAttribute, name)
	}
	v := values[0]
	switch atom.Symbol(name) {
	case selMaxlen:
		return o.SetMaxlen(int(v.AsInt()))
	case selWarnings:
		o.emit.Warnings = v.AsInt() != 0
	case selLock:
		l, ok := o.comp.(Locker)
		if !ok {
			o.emit.Error(diag.InvalidConfigValue, "Unknown attribute: %s", name)

			return fmt.Errorf("%w: %s", ErrBadAttribute, name)
		}
		l.SetLocked(v.AsInt() != 0)
	default:
		o.emit.Error(diag.InvalidConfigValue, "Unknown attribute: %s", name)

		return fmt.Errorf("%w: %s", ErrBadAttribute, name)
	}

	return nil
}

// SetMaxlen reallocates the component.
//
// Behavior highlights:
//   - n <= 0 is replaced by the default capacity, with a warning.
//   - Setting the current value again does nothing.
//   - On failure the object is latched at maxlen 0 and refuses data
//     messages until a later SetMaxlen succeeds.
func (o *Object) SetMaxlen(n int) error {
	if n <= 0 {
		o.emit.Warn(diag.InvalidConfigValue,
			"maxlen: Invalid value: %d - Expected: int >= 1 - Default used: %d", n, mess.DefaultCapacity)
		n = mess.DefaultCapacity
	}
	if n == o.maxlen {
		return nil
	}
	if err := o.comp.Resize(n); err != nil {
		o.maxlen = 0
		o.emit.Error(diag.OutOfMemory, "Out of memory: unable to allocate maxlen %d.", n)

		return fmt.Errorf("host: %s: %w", o.name, err)
	}
	o.maxlen = n

	return nil
}

// Post renders the component state and hands it to the poster.
func (o *Object) Post() {
	o.poster(o.comp.Describe(Attrs{Maxlen: o.maxlen, Warnings: o.emit.Warnings}))
}
