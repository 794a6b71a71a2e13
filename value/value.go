// Package value provides the tagged union exchanged between algorithm
// ports. Every value carries exactly one payload whose shape is identified
// by a Kind. The set of kinds is closed: it mirrors the data types the
// execution engine knows how to move between algorithms.
package value

import (
	"fmt"
	"reflect"
)

// Kind identifies the shape of a value's payload.
type Kind uint8

// Supported kinds.
const (
	Invalid Kind = iota
	Real
	String
	Int
	Complex
	Stereo
	Pool
	Matrix
	RealVec
	StringVec
	ComplexVec
	StereoVec
	MatrixVec
	RealVecVec
	StringVecVec
	ComplexVecVec
	StereoVecVec
)

var kindNames = map[Kind]string{
	Invalid:       "invalid",
	Real:          "real",
	String:        "string",
	Int:           "int",
	Complex:       "complex",
	Stereo:        "stereo_sample",
	Pool:          "pool",
	Matrix:        "matrix_real",
	RealVec:       "vector_real",
	StringVec:     "vector_string",
	ComplexVec:    "vector_complex",
	StereoVec:     "vector_stereo_sample",
	MatrixVec:     "vector_matrix_real",
	RealVecVec:    "vector_vector_real",
	StringVecVec:  "vector_vector_string",
	ComplexVecVec: "vector_vector_complex",
	StereoVecVec:  "vector_vector_stereo_sample",
}

// Kinds lists every valid kind.
func Kinds() []Kind {
	return []Kind{
		Real, String, Int, Complex, Stereo, Pool, Matrix,
		RealVec, StringVec, ComplexVec, StereoVec, MatrixVec,
		RealVecVec, StringVecVec, ComplexVecVec, StereoVecVec,
	}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// StereoSample is a single paired-channel sample.
type StereoSample struct {
	Left  float64
	Right float64
}

// RealMatrix is a dense row-major real matrix.
type RealMatrix struct {
	Rows int
	Cols int
	Data []float64
}

// At returns the element at row r, column c.
func (m RealMatrix) At(r, c int) float64 {
	return m.Data[r*m.Cols+c]
}

// Value holds one payload tagged with its Kind. The zero Value has kind
// Invalid and must not be written into a port.
type Value struct {
	kind Kind
	data interface{}
}

// New constructs a value from a native tag and payload. The native tag
// space is closed and totally mapped, so a mismatch between kind and
// payload type is a programming error and panics.
func New(k Kind, data interface{}) Value {
	if !payloadOK(k, data) {
		panic(fmt.Sprintf("value: cannot construct %v from %T", k, data))
	}
	return Value{kind: k, data: data}
}

// Zero returns the value a freshly created port of kind k holds.
func Zero(k Kind) Value {
	switch k {
	case Real:
		return Value{kind: k, data: float64(0)}
	case String:
		return Value{kind: k, data: ""}
	case Int:
		return Value{kind: k, data: int(0)}
	case Complex:
		return Value{kind: k, data: complex128(0)}
	case Stereo:
		return Value{kind: k, data: StereoSample{}}
	case Pool:
		return Value{kind: k, data: map[string]Value(nil)}
	case Matrix:
		return Value{kind: k, data: RealMatrix{}}
	case RealVec:
		return Value{kind: k, data: []float64(nil)}
	case StringVec:
		return Value{kind: k, data: []string(nil)}
	case ComplexVec:
		return Value{kind: k, data: []complex128(nil)}
	case StereoVec:
		return Value{kind: k, data: []StereoSample(nil)}
	case MatrixVec:
		return Value{kind: k, data: []RealMatrix(nil)}
	case RealVecVec:
		return Value{kind: k, data: [][]float64(nil)}
	case StringVecVec:
		return Value{kind: k, data: [][]string(nil)}
	case ComplexVecVec:
		return Value{kind: k, data: [][]complex128(nil)}
	case StereoVecVec:
		return Value{kind: k, data: [][]StereoSample(nil)}
	}
	panic(fmt.Sprintf("value: no zero value for %v", k))
}

func payloadOK(k Kind, data interface{}) bool {
	switch k {
	case Real:
		_, ok := data.(float64)
		return ok
	case String:
		_, ok := data.(string)
		return ok
	case Int:
		_, ok := data.(int)
		return ok
	case Complex:
		_, ok := data.(complex128)
		return ok
	case Stereo:
		_, ok := data.(StereoSample)
		return ok
	case Pool:
		_, ok := data.(map[string]Value)
		return ok
	case Matrix:
		_, ok := data.(RealMatrix)
		return ok
	case RealVec:
		_, ok := data.([]float64)
		return ok
	case StringVec:
		_, ok := data.([]string)
		return ok
	case ComplexVec:
		_, ok := data.([]complex128)
		return ok
	case StereoVec:
		_, ok := data.([]StereoSample)
		return ok
	case MatrixVec:
		_, ok := data.([]RealMatrix)
		return ok
	case RealVecVec:
		_, ok := data.([][]float64)
		return ok
	case StringVecVec:
		_, ok := data.([][]string)
		return ok
	case ComplexVecVec:
		_, ok := data.([][]complex128)
		return ok
	case StereoVecVec:
		_, ok := data.([][]StereoSample)
		return ok
	}
	return false
}

// Constructors, one per kind.

// NewReal returns a real scalar value.
func NewReal(f float64) Value { return Value{kind: Real, data: f} }

// NewString returns a text value.
func NewString(s string) Value { return Value{kind: String, data: s} }

// NewInt returns an integer value.
func NewInt(i int) Value { return Value{kind: Int, data: i} }

// NewComplex returns a complex scalar value.
func NewComplex(c complex128) Value { return Value{kind: Complex, data: c} }

// NewStereo returns a paired-channel sample value.
func NewStereo(s StereoSample) Value { return Value{kind: Stereo, data: s} }

// NewPool returns an aggregate mapping value.
func NewPool(p map[string]Value) Value { return Value{kind: Pool, data: p} }

// NewMatrix returns a real matrix value.
func NewMatrix(m RealMatrix) Value { return Value{kind: Matrix, data: m} }

// NewRealVec returns a real vector value.
func NewRealVec(v []float64) Value { return Value{kind: RealVec, data: v} }

// NewStringVec returns a text vector value.
func NewStringVec(v []string) Value { return Value{kind: StringVec, data: v} }

// NewComplexVec returns a complex vector value.
func NewComplexVec(v []complex128) Value { return Value{kind: ComplexVec, data: v} }

// NewStereoVec returns a paired-sample vector value.
func NewStereoVec(v []StereoSample) Value { return Value{kind: StereoVec, data: v} }

// NewMatrixVec returns a matrix vector value.
func NewMatrixVec(v []RealMatrix) Value { return Value{kind: MatrixVec, data: v} }

// NewRealVecVec returns a nested real vector value.
func NewRealVecVec(v [][]float64) Value { return Value{kind: RealVecVec, data: v} }

// NewStringVecVec returns a nested text vector value.
func NewStringVecVec(v [][]string) Value { return Value{kind: StringVecVec, data: v} }

// NewComplexVecVec returns a nested complex vector value.
func NewComplexVecVec(v [][]complex128) Value { return Value{kind: ComplexVecVec, data: v} }

// NewStereoVecVec returns a nested paired-sample vector value.
func NewStereoVecVec(v [][]StereoSample) Value { return Value{kind: StereoVecVec, data: v} }

// Kind returns the tag of the active case.
func (v Value) Kind() Kind { return v.kind }

// Interface returns the raw payload.
func (v Value) Interface() interface{} { return v.data }

// Equal reports structural equality: same kind and deeply equal payload.
func (v Value) Equal(o Value) bool {
	return v.kind == o.kind && reflect.DeepEqual(v.data, o.data)
}

// Accessors, one per kind. The bool result reports whether the value's
// active case matches the accessor.

// Real returns the real scalar payload.
func (v Value) Real() (float64, bool) {
	f, ok := v.data.(float64)
	return f, ok && v.kind == Real
}

// Str returns the text payload.
func (v Value) Str() (string, bool) {
	s, ok := v.data.(string)
	return s, ok && v.kind == String
}

// Int returns the integer payload.
func (v Value) Int() (int, bool) {
	i, ok := v.data.(int)
	return i, ok && v.kind == Int
}

// Complex returns the complex scalar payload.
func (v Value) Complex() (complex128, bool) {
	c, ok := v.data.(complex128)
	return c, ok && v.kind == Complex
}

// Stereo returns the paired-channel sample payload.
func (v Value) Stereo() (StereoSample, bool) {
	s, ok := v.data.(StereoSample)
	return s, ok && v.kind == Stereo
}

// Pool returns the aggregate mapping payload.
func (v Value) Pool() (map[string]Value, bool) {
	p, ok := v.data.(map[string]Value)
	return p, ok && v.kind == Pool
}

// Matrix returns the real matrix payload.
func (v Value) Matrix() (RealMatrix, bool) {
	m, ok := v.data.(RealMatrix)
	return m, ok && v.kind == Matrix
}

// RealVec returns the real vector payload.
func (v Value) RealVec() ([]float64, bool) {
	r, ok := v.data.([]float64)
	return r, ok && v.kind == RealVec
}

// StrVec returns the text vector payload.
func (v Value) StrVec() ([]string, bool) {
	s, ok := v.data.([]string)
	return s, ok && v.kind == StringVec
}

// ComplexVec returns the complex vector payload.
func (v Value) ComplexVec() ([]complex128, bool) {
	c, ok := v.data.([]complex128)
	return c, ok && v.kind == ComplexVec
}

// StereoVec returns the paired-sample vector payload.
func (v Value) StereoVec() ([]StereoSample, bool) {
	s, ok := v.data.([]StereoSample)
	return s, ok && v.kind == StereoVec
}

// MatrixVec returns the matrix vector payload.
func (v Value) MatrixVec() ([]RealMatrix, bool) {
	m, ok := v.data.([]RealMatrix)
	return m, ok && v.kind == MatrixVec
}

// RealVecVec returns the nested real vector payload.
func (v Value) RealVecVec() ([][]float64, bool) {
	r, ok := v.data.([][]float64)
	return r, ok && v.kind == RealVecVec
}

// StrVecVec returns the nested text vector payload.
func (v Value) StrVecVec() ([][]string, bool) {
	s, ok := v.data.([][]string)
	return s, ok && v.kind == StringVecVec
}

// ComplexVecVec returns the nested complex vector payload.
func (v Value) ComplexVecVec() ([][]complex128, bool) {
	c, ok := v.data.([][]complex128)
	return c, ok && v.kind == ComplexVecVec
}

// StereoVecVec returns the nested paired-sample vector payload.
func (v Value) StereoVecVec() ([][]StereoSample, bool) {
	s, ok := v.data.([][]StereoSample)
	return s, ok && v.kind == StereoVecVec
}
