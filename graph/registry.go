package graph

import "fmt"

// Spec is the compile-time contract for one algorithm kind. A spec type
// names the algorithm it binds to and enumerates the identifiers of its
// ports and parameters; the strings must match the native names exactly.
type Spec interface {
	AlgorithmName() string
	InputNames() []string
	OutputNames() []string
	ParamNames() []string
}

// Identifier types bound to a spec. Declaring port identifiers as typed
// constants of In[S] and Out[S] makes them usable only with the Typed
// view of that same spec.
type (
	// In identifies an input port of algorithm spec S.
	In[S Spec] string
	// Out identifies an output port of algorithm spec S.
	Out[S Spec] string
	// Param identifies a construction parameter of algorithm spec S.
	Param[S Spec] string
)

type specEntry struct {
	matches func(Spec) bool
}

// Process-wide name-to-spec catalog. Populated at process start via
// RegisterSpec, read-only afterwards.
var specs = map[string]specEntry{}

// RegisterSpec binds spec S to its algorithm name in the downcast
// catalog. Registering a name to two different spec types panics.
func RegisterSpec[S Spec]() {
	var s S
	name := s.AlgorithmName()
	if e, ok := specs[name]; ok {
		if !e.matches(s) {
			panic(fmt.Sprintf("graph: algorithm %q already registered to a different spec", name))
		}
		return
	}
	specs[name] = specEntry{
		matches: func(o Spec) bool {
			_, ok := o.(S)
			return ok
		},
	}
}

// Downcast resolves a name-keyed view into the Typed view of spec S.
// The algorithm's runtime name must be registered to S, and every
// identifier S enumerates must resolve to a port of the instance; a
// violation of either means spec and engine are out of sync and panics.
func Downcast[S Spec](a *Algorithm) *Typed[S] {
	var s S
	e, ok := specs[a.Name()]
	if !ok {
		panic(fmt.Sprintf("graph: no spec registered for algorithm %q", a.Name()))
	}
	if !e.matches(s) {
		panic(fmt.Sprintf("graph: algorithm %q is registered to a different spec", a.Name()))
	}
	t := &Typed[S]{
		alg:     a,
		spec:    s,
		inputs:  make(map[In[S]]*Port, len(s.InputNames())),
		outputs: make(map[Out[S]]*Port, len(s.OutputNames())),
	}
	for _, name := range s.InputNames() {
		p, ok := a.Input(name)
		if !ok {
			panic(fmt.Sprintf("graph: spec of %q declares input %q, instance has none", a.Name(), name))
		}
		t.inputs[In[S](name)] = p
	}
	for _, name := range s.OutputNames() {
		p, ok := a.Output(name)
		if !ok {
			panic(fmt.Sprintf("graph: spec of %q declares output %q, instance has none", a.Name(), name))
		}
		t.outputs[Out[S](name)] = p
	}
	return t
}
