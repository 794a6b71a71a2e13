package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pipelined/extract/value"
)

func sampleValues() map[value.Kind]value.Value {
	return map[value.Kind]value.Value{
		value.Real:    value.NewReal(3.14),
		value.String:  value.NewString("harmony"),
		value.Int:     value.NewInt(42),
		value.Complex: value.NewComplex(complex(1, -1)),
		value.Stereo:  value.NewStereo(value.StereoSample{Left: 0.5, Right: -0.5}),
		value.Pool: value.NewPool(map[string]value.Value{
			"lowlevel.centroid": value.NewReal(0.25),
		}),
		value.Matrix: value.NewMatrix(value.RealMatrix{
			Rows: 2, Cols: 2, Data: []float64{1, 2, 3, 4},
		}),
		value.RealVec:    value.NewRealVec([]float64{0.1, 0.2}),
		value.StringVec:  value.NewStringVec([]string{"a", "b"}),
		value.ComplexVec: value.NewComplexVec([]complex128{1i, 2i}),
		value.StereoVec: value.NewStereoVec([]value.StereoSample{
			{Left: 1, Right: 2},
		}),
		value.MatrixVec: value.NewMatrixVec([]value.RealMatrix{
			{Rows: 1, Cols: 1, Data: []float64{7}},
		}),
		value.RealVecVec:    value.NewRealVecVec([][]float64{{1}, {2, 3}}),
		value.StringVecVec:  value.NewStringVecVec([][]string{{"x"}, {"y"}}),
		value.ComplexVecVec: value.NewComplexVecVec([][]complex128{{1i}}),
		value.StereoVecVec: value.NewStereoVecVec([][]value.StereoSample{
			{{Left: 1, Right: 1}},
		}),
	}
}

func TestKinds(t *testing.T) {
	samples := sampleValues()
	assert.Equal(t, len(value.Kinds()), len(samples))
	for _, k := range value.Kinds() {
		v, ok := samples[k]
		assert.True(t, ok, k.String())
		assert.Equal(t, k, v.Kind())
	}
}

func TestAccessors(t *testing.T) {
	v := value.NewReal(1.5)
	f, ok := v.Real()
	assert.True(t, ok)
	assert.Equal(t, 1.5, f)

	// wrong-kind accessor reports false
	_, ok = v.Str()
	assert.False(t, ok)
	_, ok = v.RealVec()
	assert.False(t, ok)

	s, ok := value.NewString("loud").Str()
	assert.True(t, ok)
	assert.Equal(t, "loud", s)

	i, ok := value.NewInt(3).Int()
	assert.True(t, ok)
	assert.Equal(t, 3, i)

	c, ok := value.NewComplex(2i).Complex()
	assert.True(t, ok)
	assert.Equal(t, 2i, c)

	st, ok := value.NewStereo(value.StereoSample{Left: 1}).Stereo()
	assert.True(t, ok)
	assert.Equal(t, 1.0, st.Left)

	m, ok := value.NewMatrix(value.RealMatrix{Rows: 1, Cols: 2, Data: []float64{4, 5}}).Matrix()
	assert.True(t, ok)
	assert.Equal(t, 5.0, m.At(0, 1))

	vec, ok := value.NewRealVec([]float64{1, 2}).RealVec()
	assert.True(t, ok)
	assert.Equal(t, []float64{1, 2}, vec)

	pool, ok := value.NewPool(map[string]value.Value{"k": value.NewInt(1)}).Pool()
	assert.True(t, ok)
	assert.True(t, pool["k"].Equal(value.NewInt(1)))
}

func TestEqual(t *testing.T) {
	tests := []struct {
		left  value.Value
		right value.Value
		equal bool
	}{
		{value.NewReal(1), value.NewReal(1), true},
		{value.NewReal(1), value.NewReal(2), false},
		{value.NewReal(1), value.NewInt(1), false},
		{value.NewRealVec([]float64{1, 2}), value.NewRealVec([]float64{1, 2}), true},
		{value.NewRealVec([]float64{1, 2}), value.NewRealVec([]float64{2, 1}), false},
		{
			value.NewPool(map[string]value.Value{"a": value.NewReal(1)}),
			value.NewPool(map[string]value.Value{"a": value.NewReal(1)}),
			true,
		},
		{value.Value{}, value.Value{}, true},
		{value.Value{}, value.NewReal(0), false},
	}
	for _, test := range tests {
		assert.Equal(t, test.equal, test.left.Equal(test.right))
	}
}

func TestNew(t *testing.T) {
	for k, sample := range sampleValues() {
		v := value.New(k, sample.Interface())
		assert.True(t, v.Equal(sample), k.String())
	}

	assert.Panics(t, func() { value.New(value.Real, "text") })
	assert.Panics(t, func() { value.New(value.RealVec, 1.0) })
	assert.Panics(t, func() { value.New(value.Invalid, nil) })
}

func TestZero(t *testing.T) {
	for _, k := range value.Kinds() {
		z := value.Zero(k)
		assert.Equal(t, k, z.Kind())
	}
	f, ok := value.Zero(value.Real).Real()
	assert.True(t, ok)
	assert.Equal(t, 0.0, f)
	assert.Panics(t, func() { value.Zero(value.Invalid) })
}

func TestInfer(t *testing.T) {
	tests := []struct {
		raw      interface{}
		expected value.Value
	}{
		{3.5, value.NewReal(3.5)},
		{float32(2), value.NewReal(2)},
		{7, value.NewInt(7)},
		{int64(7), value.NewInt(7)},
		{"name", value.NewString("name")},
		{[]float64{1, 2}, value.NewRealVec([]float64{1, 2})},
		{[]interface{}{1.0, 2.0}, value.NewRealVec([]float64{1, 2})},
		{[]interface{}{1, 2.5}, value.NewRealVec([]float64{1, 2.5})},
		{[]interface{}{"a", "b"}, value.NewStringVec([]string{"a", "b"})},
		{
			[]interface{}{[]interface{}{1.0}, []interface{}{2.0, 3.0}},
			value.NewRealVecVec([][]float64{{1}, {2, 3}}),
		},
		{
			map[string]interface{}{"bpm": 120.0},
			value.NewPool(map[string]value.Value{"bpm": value.NewReal(120)}),
		},
		{value.NewInt(9), value.NewInt(9)},
	}
	for _, test := range tests {
		v, err := value.Infer(test.raw)
		assert.NoError(t, err)
		assert.True(t, v.Equal(test.expected), test.expected.Kind().String())
	}

	_, err := value.Infer(struct{}{})
	assert.Error(t, err)
	_, err = value.Infer([]interface{}{1.0, "b"})
	assert.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "real", value.Real.String())
	assert.Equal(t, "vector_real", value.RealVec.String())
	assert.Equal(t, "vector_vector_real", value.RealVecVec.String())
	assert.Equal(t, "invalid", value.Invalid.String())
	assert.Equal(t, "kind(200)", value.Kind(200).String())
}
