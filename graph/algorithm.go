// Package graph binds engine instances to named, typed port views.
//
// Two facades exist over one instance. Algorithm looks ports up by
// string name and reports absence with a comma-ok result. Typed is
// keyed by a per-algorithm Spec and offers kind-checked accessors; it
// is obtained from an Algorithm through Downcast, which resolves the
// instance's registered name against the spec registry.
package graph

import (
	"github.com/pipelined/extract/engine"
	"github.com/pipelined/extract/value"
)

// Algorithm is the name-keyed view over one engine instance. It holds
// non-owning references to the instance's ports; every Typed view
// produced by Downcast shares the same Port pointers.
type Algorithm struct {
	instance *engine.Instance
	inputs   map[string]*Port
	outputs  map[string]*Port
}

// New instantiates a registered algorithm with params and wraps it.
func New(name string, params map[string]value.Value) (*Algorithm, error) {
	instance, err := engine.New(name, params)
	if err != nil {
		return nil, err
	}
	return Wrap(instance), nil
}

// Wrap builds the name-keyed view over an existing instance.
func Wrap(instance *engine.Instance) *Algorithm {
	a := &Algorithm{
		instance: instance,
		inputs:   make(map[string]*Port, len(instance.Inputs())),
		outputs:  make(map[string]*Port, len(instance.Outputs())),
	}
	for name, slot := range instance.Inputs() {
		a.inputs[name] = newPort(instance.FullName(), slot)
	}
	for name, slot := range instance.Outputs() {
		a.outputs[name] = newPort(instance.FullName(), slot)
	}
	return a
}

// Name returns the registered algorithm name.
func (a *Algorithm) Name() string { return a.instance.Name() }

// FullName returns the namespaced instance identifier.
func (a *Algorithm) FullName() string { return a.instance.FullName() }

// Input looks an input port up by name.
func (a *Algorithm) Input(name string) (*Port, bool) {
	p, ok := a.inputs[name]
	return p, ok
}

// Output looks an output port up by name.
func (a *Algorithm) Output(name string) (*Port, bool) {
	p, ok := a.outputs[name]
	return p, ok
}

// Process runs the computation once over currently bound input values,
// overwriting outputs. The call is synchronous and may be repeated
// without an intervening Reset.
func (a *Algorithm) Process() {
	a.instance.Process()
}

// Reset clears accumulated kernel state. Port identities and their
// last-written values survive.
func (a *Algorithm) Reset() {
	a.instance.Reset()
}

// connectInput rebinds the named input to share src's slot. Kind
// mismatch and unknown names are reported by the engine.
func (a *Algorithm) connectInput(name string, src *Port) error {
	if err := a.instance.BindInput(name, src.slot); err != nil {
		return err
	}
	a.inputs[name].connect(src)
	return nil
}
