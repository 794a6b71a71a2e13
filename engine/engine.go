// Package engine executes signal-processing kernels. It owns the native
// port buffers algorithms read from and write to, and the catalog of
// registered kernel builders the factory resolves names against.
//
// The engine knows nothing about typed access: its ports are tag-checked
// slots keyed by string name. The graph package layers named, typed views
// on top of engine instances.
package engine

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/rs/xid"

	"github.com/pipelined/extract/value"
)

// Errors returned by the engine.
var (
	// ErrUnknownAlgorithm is returned by New for a name with no
	// registered builder.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	// ErrKindMismatch is returned when a port is asked to hold a value
	// of a kind other than its own.
	ErrKindMismatch = errors.New("kind mismatch")
)

// Port is a single native data slot. Its kind is fixed at creation; the
// slot only ever holds values of that kind.
type Port struct {
	name string
	kind value.Kind
	data value.Value
}

// NewPort creates a port holding the zero value of kind k.
func NewPort(name string, k value.Kind) *Port {
	return &Port{name: name, kind: k, data: value.Zero(k)}
}

// Name returns the port name local to its algorithm.
func (p *Port) Name() string { return p.name }

// Kind returns the fixed kind of the port.
func (p *Port) Kind() value.Kind { return p.kind }

// Value returns the currently held value.
func (p *Port) Value() value.Value { return p.data }

// SetValue stores v. A value of a kind other than the port's own is
// rejected and the held value is left untouched.
func (p *Port) SetValue(v value.Value) error {
	if v.Kind() != p.kind {
		return fmt.Errorf("%w: port %q holds %v, got %v", ErrKindMismatch, p.name, p.kind, v.Kind())
	}
	p.data = v
	return nil
}

// Algorithm is the kernel contract. Process reads input ports and
// overwrites output ports; it runs to completion on the calling
// goroutine. Reset clears accumulated kernel state without touching
// ports.
type Algorithm interface {
	Process(in, out map[string]*Port)
	Reset()
}

// PortDef declares one port of a kernel.
type PortDef struct {
	Name string
	Kind value.Kind
}

// Descriptor declares the port set a configured kernel exposes.
type Descriptor struct {
	Inputs  []PortDef
	Outputs []PortDef
}

// Builder constructs a kernel configured with params and describes its
// port set.
type Builder func(params map[string]value.Value) (Descriptor, Algorithm, error)

var builders = map[string]Builder{}

// Register adds a kernel builder to the factory catalog. Registering the
// same name twice panics: the catalog is write-once at process start.
func Register(name string, b Builder) {
	if _, ok := builders[name]; ok {
		panic(fmt.Sprintf("engine: algorithm %q registered twice", name))
	}
	builders[name] = b
}

// Instance is one configured algorithm with its ports. Ports live
// exactly as long as the instance.
type Instance struct {
	name     string
	fullName string
	impl     Algorithm
	inputs   map[string]*Port
	outputs  map[string]*Port
}

// New instantiates a registered algorithm. The returned instance owns
// freshly created ports holding zero values.
func New(name string, params map[string]value.Value) (*Instance, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	desc, impl, err := b(params)
	if err != nil {
		return nil, fmt.Errorf("configure %q: %w", name, err)
	}
	i := &Instance{
		name:     name,
		fullName: name + "." + xid.New().String(),
		impl:     impl,
		inputs:   make(map[string]*Port, len(desc.Inputs)),
		outputs:  make(map[string]*Port, len(desc.Outputs)),
	}
	for _, d := range desc.Inputs {
		i.inputs[d.Name] = NewPort(d.Name, d.Kind)
	}
	for _, d := range desc.Outputs {
		i.outputs[d.Name] = NewPort(d.Name, d.Kind)
	}
	return i, nil
}

// Name returns the registered algorithm name.
func (i *Instance) Name() string { return i.name }

// FullName returns the namespaced identifier, unique per instance.
func (i *Instance) FullName() string { return i.fullName }

// Inputs returns the input ports keyed by name.
func (i *Instance) Inputs() map[string]*Port { return i.inputs }

// Outputs returns the output ports keyed by name.
func (i *Instance) Outputs() map[string]*Port { return i.outputs }

// Process runs the kernel once over the currently bound port values.
func (i *Instance) Process() {
	i.impl.Process(i.inputs, i.outputs)
}

// Reset clears accumulated kernel state. Ports and their values are
// left untouched.
func (i *Instance) Reset() {
	i.impl.Reset()
}

// BindInput replaces the named input slot with p, so the instance reads
// whatever p's owner last wrote. Used to connect a producer output to a
// consumer input; kinds must match.
func (i *Instance) BindInput(name string, p *Port) error {
	current, ok := i.inputs[name]
	if !ok {
		return fmt.Errorf("%q has no input %q", i.name, name)
	}
	if current.Kind() != p.Kind() {
		return fmt.Errorf("%w: input %q of %q holds %v, got %v", ErrKindMismatch, name, i.name, current.Kind(), p.Kind())
	}
	i.inputs[name] = p
	return nil
}

// DecodeParams fills a kernel config struct from a parameter set. Field
// names are matched case-insensitively, the mapstructure way.
func DecodeParams(params map[string]value.Value, target interface{}) error {
	raw := make(map[string]interface{}, len(params))
	for name, v := range params {
		raw[name] = v.Interface()
	}
	return mapstructure.Decode(raw, target)
}
