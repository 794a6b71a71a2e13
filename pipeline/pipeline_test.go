package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/pipelined/extract/graph"
	"github.com/pipelined/extract/log"
	"github.com/pipelined/extract/metric"
	"github.com/pipelined/extract/mock"
	"github.com/pipelined/extract/pipeline"
	"github.com/pipelined/extract/value"
)

func TestMain(m *testing.M) {
	mock.Register()
	goleak.VerifyTestMain(m)
}

func buildChain(t *testing.T, options ...pipeline.Option) (*pipeline.Network, *graph.Algorithm, *graph.Algorithm, *graph.Algorithm) {
	t.Helper()
	src, err := graph.New("Source", map[string]value.Value{
		"values": value.NewRealVec([]float64{1, 1, 1, 1}),
	})
	assert.NoError(t, err)
	amp, err := graph.New("Gain", map[string]value.Value{
		"gain": value.NewReal(0.5),
	})
	assert.NoError(t, err)
	centroid, err := graph.New("Centroid", nil)
	assert.NoError(t, err)

	n, err := pipeline.New(options...)
	assert.NoError(t, err)
	n.Add(src, amp, centroid)
	assert.NoError(t, n.Connect(src, "signal", amp, "signal"))
	assert.NoError(t, n.Connect(amp, "signal", centroid, "array"))
	return n, src, amp, centroid
}

func TestRun(t *testing.T) {
	n, _, _, centroid := buildChain(t, pipeline.WithName("chain"), pipeline.WithLogger(log.GetLogger()))

	n.Run()
	typed := graph.Downcast[mock.CentroidSpec](centroid)
	f, err := typed.OutReal(mock.CentroidOut)
	assert.NoError(t, err)
	assert.Equal(t, 1.5, f)

	// a second run over unchanged inputs reproduces the result
	n.Run()
	f, err = typed.OutReal(mock.CentroidOut)
	assert.NoError(t, err)
	assert.Equal(t, 1.5, f)
}

func TestMetered(t *testing.T) {
	m := &metric.Metric{}
	n, src, _, _ := buildChain(t, pipeline.WithMetric(m))

	n.Run()
	n.Run()

	measure := m.Measure()
	assert.Len(t, measure, 3)
	assert.Equal(t, int64(2), measure[src.FullName()][metric.ProcessCounter])
}

func TestReset(t *testing.T) {
	accum, err := graph.New("Accum", nil)
	assert.NoError(t, err)
	typed := graph.Downcast[mock.AccumSpec](accum)
	assert.NoError(t, typed.SetReal(mock.AccumValue, 1))

	n, err := pipeline.New()
	assert.NoError(t, err)
	n.Add(accum)

	n.Run()
	n.Run()
	sum, err := typed.OutReal(mock.AccumSum)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, sum)

	n.Reset()
	n.Run()
	sum, err = typed.OutReal(mock.AccumSum)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, sum)
}

func TestConnectMembership(t *testing.T) {
	n, err := pipeline.New()
	assert.NoError(t, err)

	src, err := graph.New("Source", nil)
	assert.NoError(t, err)
	amp, err := graph.New("Gain", nil)
	assert.NoError(t, err)
	n.Add(src)

	// amp was never added
	assert.Error(t, n.Connect(src, "signal", amp, "signal"))
	n.Add(amp)
	assert.NoError(t, n.Connect(src, "signal", amp, "signal"))
}

func TestString(t *testing.T) {
	named, err := pipeline.New(pipeline.WithName("tonal"))
	assert.NoError(t, err)
	assert.Contains(t, named.String(), "tonal")

	anonymous, err := pipeline.New()
	assert.NoError(t, err)
	assert.NotEmpty(t, anonymous.String())
}
