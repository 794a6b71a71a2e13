package graph

import (
	"fmt"

	"github.com/pipelined/extract/value"
)

// Typed is the spec-keyed view over one algorithm instance. It shares
// the underlying Algorithm's Port pointers, so values written through
// either view are observed by both. Lookups are total: identifiers are
// validated against the instance once, at Downcast time.
type Typed[S Spec] struct {
	alg     *Algorithm
	spec    S
	inputs  map[In[S]]*Port
	outputs map[Out[S]]*Port
}

// Spec returns the spec value the view is keyed by.
func (t *Typed[S]) Spec() S { return t.spec }

// Name returns the registered algorithm name.
func (t *Typed[S]) Name() string { return t.alg.Name() }

// FullName returns the namespaced instance identifier.
func (t *Typed[S]) FullName() string { return t.alg.FullName() }

// Generic returns the name-keyed view this one was downcast from.
func (t *Typed[S]) Generic() *Algorithm { return t.alg }

// Process runs the computation once over currently bound input values.
func (t *Typed[S]) Process() { t.alg.Process() }

// Reset clears accumulated kernel state, leaving ports untouched.
func (t *Typed[S]) Reset() { t.alg.Reset() }

// InputPort returns the port for a declared input identifier. Invoking
// it on a spec that declares no inputs, or with an identifier outside
// the declared set, is caller misuse and panics.
func (t *Typed[S]) InputPort(id In[S]) *Port {
	if len(t.inputs) == 0 {
		panic(fmt.Sprintf("graph: %q declares no inputs", t.alg.Name()))
	}
	p, ok := t.inputs[id]
	if !ok {
		panic(fmt.Sprintf("graph: %q is not an input of %q", string(id), t.alg.Name()))
	}
	return p
}

// OutputPort returns the port for a declared output identifier, with
// the same misuse contract as InputPort.
func (t *Typed[S]) OutputPort(id Out[S]) *Port {
	if len(t.outputs) == 0 {
		panic(fmt.Sprintf("graph: %q declares no outputs", t.alg.Name()))
	}
	p, ok := t.outputs[id]
	if !ok {
		panic(fmt.Sprintf("graph: %q is not an output of %q", string(id), t.alg.Name()))
	}
	return p
}

func readErr(p *Port, got, want value.Kind) error {
	return fmt.Errorf("read %s: %w: holds %v, want %v", p.FullName(), ErrKindMismatch, got, want)
}

// Per-kind accessors. Each family covers one value kind: a read from an
// input, a write to an input and a read from an output. Reads of a port
// holding another kind report the identifier and the expected kind.

// InReal reads a real scalar input.
func (t *Typed[S]) InReal(id In[S]) (float64, error) {
	p := t.InputPort(id)
	v := p.Read()
	f, ok := v.Real()
	if !ok {
		return 0, readErr(p, v.Kind(), value.Real)
	}
	return f, nil
}

// SetReal writes a real scalar input.
func (t *Typed[S]) SetReal(id In[S], f float64) error {
	return t.InputPort(id).Write(value.NewReal(f))
}

// OutReal reads a real scalar output.
func (t *Typed[S]) OutReal(id Out[S]) (float64, error) {
	p := t.OutputPort(id)
	v := p.Read()
	f, ok := v.Real()
	if !ok {
		return 0, readErr(p, v.Kind(), value.Real)
	}
	return f, nil
}

// InStr reads a text input.
func (t *Typed[S]) InStr(id In[S]) (string, error) {
	p := t.InputPort(id)
	v := p.Read()
	s, ok := v.Str()
	if !ok {
		return "", readErr(p, v.Kind(), value.String)
	}
	return s, nil
}

// SetStr writes a text input.
func (t *Typed[S]) SetStr(id In[S], s string) error {
	return t.InputPort(id).Write(value.NewString(s))
}

// OutStr reads a text output.
func (t *Typed[S]) OutStr(id Out[S]) (string, error) {
	p := t.OutputPort(id)
	v := p.Read()
	s, ok := v.Str()
	if !ok {
		return "", readErr(p, v.Kind(), value.String)
	}
	return s, nil
}

// InInt reads an integer input.
func (t *Typed[S]) InInt(id In[S]) (int, error) {
	p := t.InputPort(id)
	v := p.Read()
	i, ok := v.Int()
	if !ok {
		return 0, readErr(p, v.Kind(), value.Int)
	}
	return i, nil
}

// SetInt writes an integer input.
func (t *Typed[S]) SetInt(id In[S], i int) error {
	return t.InputPort(id).Write(value.NewInt(i))
}

// OutInt reads an integer output.
func (t *Typed[S]) OutInt(id Out[S]) (int, error) {
	p := t.OutputPort(id)
	v := p.Read()
	i, ok := v.Int()
	if !ok {
		return 0, readErr(p, v.Kind(), value.Int)
	}
	return i, nil
}

// InComplex reads a complex scalar input.
func (t *Typed[S]) InComplex(id In[S]) (complex128, error) {
	p := t.InputPort(id)
	v := p.Read()
	c, ok := v.Complex()
	if !ok {
		return 0, readErr(p, v.Kind(), value.Complex)
	}
	return c, nil
}

// SetComplex writes a complex scalar input.
func (t *Typed[S]) SetComplex(id In[S], c complex128) error {
	return t.InputPort(id).Write(value.NewComplex(c))
}

// OutComplex reads a complex scalar output.
func (t *Typed[S]) OutComplex(id Out[S]) (complex128, error) {
	p := t.OutputPort(id)
	v := p.Read()
	c, ok := v.Complex()
	if !ok {
		return 0, readErr(p, v.Kind(), value.Complex)
	}
	return c, nil
}

// InStereo reads a paired-channel sample input.
func (t *Typed[S]) InStereo(id In[S]) (value.StereoSample, error) {
	p := t.InputPort(id)
	v := p.Read()
	s, ok := v.Stereo()
	if !ok {
		return value.StereoSample{}, readErr(p, v.Kind(), value.Stereo)
	}
	return s, nil
}

// SetStereo writes a paired-channel sample input.
func (t *Typed[S]) SetStereo(id In[S], s value.StereoSample) error {
	return t.InputPort(id).Write(value.NewStereo(s))
}

// OutStereo reads a paired-channel sample output.
func (t *Typed[S]) OutStereo(id Out[S]) (value.StereoSample, error) {
	p := t.OutputPort(id)
	v := p.Read()
	s, ok := v.Stereo()
	if !ok {
		return value.StereoSample{}, readErr(p, v.Kind(), value.Stereo)
	}
	return s, nil
}

// InPool reads an aggregate mapping input.
func (t *Typed[S]) InPool(id In[S]) (map[string]value.Value, error) {
	p := t.InputPort(id)
	v := p.Read()
	m, ok := v.Pool()
	if !ok {
		return nil, readErr(p, v.Kind(), value.Pool)
	}
	return m, nil
}

// SetPool writes an aggregate mapping input.
func (t *Typed[S]) SetPool(id In[S], m map[string]value.Value) error {
	return t.InputPort(id).Write(value.NewPool(m))
}

// OutPool reads an aggregate mapping output.
func (t *Typed[S]) OutPool(id Out[S]) (map[string]value.Value, error) {
	p := t.OutputPort(id)
	v := p.Read()
	m, ok := v.Pool()
	if !ok {
		return nil, readErr(p, v.Kind(), value.Pool)
	}
	return m, nil
}

// InMatrix reads a real matrix input.
func (t *Typed[S]) InMatrix(id In[S]) (value.RealMatrix, error) {
	p := t.InputPort(id)
	v := p.Read()
	m, ok := v.Matrix()
	if !ok {
		return value.RealMatrix{}, readErr(p, v.Kind(), value.Matrix)
	}
	return m, nil
}

// SetMatrix writes a real matrix input.
func (t *Typed[S]) SetMatrix(id In[S], m value.RealMatrix) error {
	return t.InputPort(id).Write(value.NewMatrix(m))
}

// OutMatrix reads a real matrix output.
func (t *Typed[S]) OutMatrix(id Out[S]) (value.RealMatrix, error) {
	p := t.OutputPort(id)
	v := p.Read()
	m, ok := v.Matrix()
	if !ok {
		return value.RealMatrix{}, readErr(p, v.Kind(), value.Matrix)
	}
	return m, nil
}

// InRealVec reads a real vector input.
func (t *Typed[S]) InRealVec(id In[S]) ([]float64, error) {
	p := t.InputPort(id)
	v := p.Read()
	r, ok := v.RealVec()
	if !ok {
		return nil, readErr(p, v.Kind(), value.RealVec)
	}
	return r, nil
}

// SetRealVec writes a real vector input.
func (t *Typed[S]) SetRealVec(id In[S], r []float64) error {
	return t.InputPort(id).Write(value.NewRealVec(r))
}

// OutRealVec reads a real vector output.
func (t *Typed[S]) OutRealVec(id Out[S]) ([]float64, error) {
	p := t.OutputPort(id)
	v := p.Read()
	r, ok := v.RealVec()
	if !ok {
		return nil, readErr(p, v.Kind(), value.RealVec)
	}
	return r, nil
}

// InStrVec reads a text vector input.
func (t *Typed[S]) InStrVec(id In[S]) ([]string, error) {
	p := t.InputPort(id)
	v := p.Read()
	s, ok := v.StrVec()
	if !ok {
		return nil, readErr(p, v.Kind(), value.StringVec)
	}
	return s, nil
}

// SetStrVec writes a text vector input.
func (t *Typed[S]) SetStrVec(id In[S], s []string) error {
	return t.InputPort(id).Write(value.NewStringVec(s))
}

// OutStrVec reads a text vector output.
func (t *Typed[S]) OutStrVec(id Out[S]) ([]string, error) {
	p := t.OutputPort(id)
	v := p.Read()
	s, ok := v.StrVec()
	if !ok {
		return nil, readErr(p, v.Kind(), value.StringVec)
	}
	return s, nil
}

// InComplexVec reads a complex vector input.
func (t *Typed[S]) InComplexVec(id In[S]) ([]complex128, error) {
	p := t.InputPort(id)
	v := p.Read()
	c, ok := v.ComplexVec()
	if !ok {
		return nil, readErr(p, v.Kind(), value.ComplexVec)
	}
	return c, nil
}

// SetComplexVec writes a complex vector input.
func (t *Typed[S]) SetComplexVec(id In[S], c []complex128) error {
	return t.InputPort(id).Write(value.NewComplexVec(c))
}

// OutComplexVec reads a complex vector output.
func (t *Typed[S]) OutComplexVec(id Out[S]) ([]complex128, error) {
	p := t.OutputPort(id)
	v := p.Read()
	c, ok := v.ComplexVec()
	if !ok {
		return nil, readErr(p, v.Kind(), value.ComplexVec)
	}
	return c, nil
}

// InStereoVec reads a paired-sample vector input.
func (t *Typed[S]) InStereoVec(id In[S]) ([]value.StereoSample, error) {
	p := t.InputPort(id)
	v := p.Read()
	s, ok := v.StereoVec()
	if !ok {
		return nil, readErr(p, v.Kind(), value.StereoVec)
	}
	return s, nil
}

// SetStereoVec writes a paired-sample vector input.
func (t *Typed[S]) SetStereoVec(id In[S], s []value.StereoSample) error {
	return t.InputPort(id).Write(value.NewStereoVec(s))
}

// OutStereoVec reads a paired-sample vector output.
func (t *Typed[S]) OutStereoVec(id Out[S]) ([]value.StereoSample, error) {
	p := t.OutputPort(id)
	v := p.Read()
	s, ok := v.StereoVec()
	if !ok {
		return nil, readErr(p, v.Kind(), value.StereoVec)
	}
	return s, nil
}

// InMatrixVec reads a matrix vector input.
func (t *Typed[S]) InMatrixVec(id In[S]) ([]value.RealMatrix, error) {
	p := t.InputPort(id)
	v := p.Read()
	m, ok := v.MatrixVec()
	if !ok {
		return nil, readErr(p, v.Kind(), value.MatrixVec)
	}
	return m, nil
}

// SetMatrixVec writes a matrix vector input.
func (t *Typed[S]) SetMatrixVec(id In[S], m []value.RealMatrix) error {
	return t.InputPort(id).Write(value.NewMatrixVec(m))
}

// OutMatrixVec reads a matrix vector output.
func (t *Typed[S]) OutMatrixVec(id Out[S]) ([]value.RealMatrix, error) {
	p := t.OutputPort(id)
	v := p.Read()
	m, ok := v.MatrixVec()
	if !ok {
		return nil, readErr(p, v.Kind(), value.MatrixVec)
	}
	return m, nil
}

// InRealVecVec reads a nested real vector input.
func (t *Typed[S]) InRealVecVec(id In[S]) ([][]float64, error) {
	p := t.InputPort(id)
	v := p.Read()
	r, ok := v.RealVecVec()
	if !ok {
		return nil, readErr(p, v.Kind(), value.RealVecVec)
	}
	return r, nil
}

// SetRealVecVec writes a nested real vector input.
func (t *Typed[S]) SetRealVecVec(id In[S], r [][]float64) error {
	return t.InputPort(id).Write(value.NewRealVecVec(r))
}

// OutRealVecVec reads a nested real vector output.
func (t *Typed[S]) OutRealVecVec(id Out[S]) ([][]float64, error) {
	p := t.OutputPort(id)
	v := p.Read()
	r, ok := v.RealVecVec()
	if !ok {
		return nil, readErr(p, v.Kind(), value.RealVecVec)
	}
	return r, nil
}

// InStrVecVec reads a nested text vector input.
func (t *Typed[S]) InStrVecVec(id In[S]) ([][]string, error) {
	p := t.InputPort(id)
	v := p.Read()
	s, ok := v.StrVecVec()
	if !ok {
		return nil, readErr(p, v.Kind(), value.StringVecVec)
	}
	return s, nil
}

// SetStrVecVec writes a nested text vector input.
func (t *Typed[S]) SetStrVecVec(id In[S], s [][]string) error {
	return t.InputPort(id).Write(value.NewStringVecVec(s))
}

// OutStrVecVec reads a nested text vector output.
func (t *Typed[S]) OutStrVecVec(id Out[S]) ([][]string, error) {
	p := t.OutputPort(id)
	v := p.Read()
	s, ok := v.StrVecVec()
	if !ok {
		return nil, readErr(p, v.Kind(), value.StringVecVec)
	}
	return s, nil
}

// InComplexVecVec reads a nested complex vector input.
func (t *Typed[S]) InComplexVecVec(id In[S]) ([][]complex128, error) {
	p := t.InputPort(id)
	v := p.Read()
	c, ok := v.ComplexVecVec()
	if !ok {
		return nil, readErr(p, v.Kind(), value.ComplexVecVec)
	}
	return c, nil
}

// SetComplexVecVec writes a nested complex vector input.
func (t *Typed[S]) SetComplexVecVec(id In[S], c [][]complex128) error {
	return t.InputPort(id).Write(value.NewComplexVecVec(c))
}

// OutComplexVecVec reads a nested complex vector output.
func (t *Typed[S]) OutComplexVecVec(id Out[S]) ([][]complex128, error) {
	p := t.OutputPort(id)
	v := p.Read()
	c, ok := v.ComplexVecVec()
	if !ok {
		return nil, readErr(p, v.Kind(), value.ComplexVecVec)
	}
	return c, nil
}

// InStereoVecVec reads a nested paired-sample vector input.
func (t *Typed[S]) InStereoVecVec(id In[S]) ([][]value.StereoSample, error) {
	p := t.InputPort(id)
	v := p.Read()
	s, ok := v.StereoVecVec()
	if !ok {
		return nil, readErr(p, v.Kind(), value.StereoVecVec)
	}
	return s, nil
}

// SetStereoVecVec writes a nested paired-sample vector input.
func (t *Typed[S]) SetStereoVecVec(id In[S], s [][]value.StereoSample) error {
	return t.InputPort(id).Write(value.NewStereoVecVec(s))
}

// OutStereoVecVec reads a nested paired-sample vector output.
func (t *Typed[S]) OutStereoVecVec(id Out[S]) ([][]value.StereoSample, error) {
	p := t.OutputPort(id)
	v := p.Read()
	s, ok := v.StereoVecVec()
	if !ok {
		return nil, readErr(p, v.Kind(), value.StereoVecVec)
	}
	return s, nil
}
