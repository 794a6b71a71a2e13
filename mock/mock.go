// Package mock provides small reference kernels and their specs. They
// back the package tests and show the two halves an algorithm author
// supplies: an engine builder for the kernel and a graph spec for the
// typed view.
package mock

import (
	"fmt"
	"sync"

	"github.com/pipelined/extract/engine"
	"github.com/pipelined/extract/graph"
	"github.com/pipelined/extract/value"
)

var registerOnce sync.Once

// Register wires the mock kernels into the engine catalog and their
// specs into the downcast registry. Subsequent calls are no-ops.
func Register() {
	registerOnce.Do(func() {
		engine.Register("Source", buildSource)
		engine.Register("Gain", buildGain)
		engine.Register("Centroid", buildCentroid)
		engine.Register("Accum", buildAccum)
		engine.Register("Frame", buildFrame)
		engine.Register("Describe", buildDescribe)
		engine.Register("Null", buildNull)
		engine.Register("Slots", buildSlots)

		graph.RegisterSpec[SourceSpec]()
		graph.RegisterSpec[GainSpec]()
		graph.RegisterSpec[CentroidSpec]()
		graph.RegisterSpec[AccumSpec]()
		graph.RegisterSpec[FrameSpec]()
		graph.RegisterSpec[DescribeSpec]()
		graph.RegisterSpec[NullSpec]()
	})
}

func mustSet(p *engine.Port, v value.Value) {
	if err := p.SetValue(v); err != nil {
		panic(err)
	}
}

// Source emits the vector it was configured with. No inputs.
type source struct {
	values []float64
}

func buildSource(params map[string]value.Value) (engine.Descriptor, engine.Algorithm, error) {
	var cfg struct {
		Values []float64 `mapstructure:"values"`
	}
	if err := engine.DecodeParams(params, &cfg); err != nil {
		return engine.Descriptor{}, nil, err
	}
	desc := engine.Descriptor{
		Outputs: []engine.PortDef{{Name: "signal", Kind: value.RealVec}},
	}
	return desc, &source{values: cfg.Values}, nil
}

func (s *source) Process(in, out map[string]*engine.Port) {
	mustSet(out["signal"], value.NewRealVec(s.values))
}

func (s *source) Reset() {}

// Gain scales a vector by a constant factor. Stateless.
type gain struct {
	factor float64
}

func buildGain(params map[string]value.Value) (engine.Descriptor, engine.Algorithm, error) {
	cfg := struct {
		Gain float64 `mapstructure:"gain"`
	}{Gain: 1}
	if err := engine.DecodeParams(params, &cfg); err != nil {
		return engine.Descriptor{}, nil, err
	}
	desc := engine.Descriptor{
		Inputs:  []engine.PortDef{{Name: "signal", Kind: value.RealVec}},
		Outputs: []engine.PortDef{{Name: "signal", Kind: value.RealVec}},
	}
	return desc, &gain{factor: cfg.Gain}, nil
}

func (g *gain) Process(in, out map[string]*engine.Port) {
	src, _ := in["signal"].Value().RealVec()
	scaled := make([]float64, len(src))
	for i, f := range src {
		scaled[i] = f * g.factor
	}
	mustSet(out["signal"], value.NewRealVec(scaled))
}

func (g *gain) Reset() {}

// Centroid reduces a vector to its barycenter index. Stateless.
type centroid struct{}

func buildCentroid(params map[string]value.Value) (engine.Descriptor, engine.Algorithm, error) {
	desc := engine.Descriptor{
		Inputs:  []engine.PortDef{{Name: "array", Kind: value.RealVec}},
		Outputs: []engine.PortDef{{Name: "centroid", Kind: value.Real}},
	}
	return desc, centroid{}, nil
}

func (centroid) Process(in, out map[string]*engine.Port) {
	array, _ := in["array"].Value().RealVec()
	var weighted, total float64
	for i, f := range array {
		weighted += float64(i) * f
		total += f
	}
	result := 0.0
	if total != 0 {
		result = weighted / total
	}
	mustSet(out["centroid"], value.NewReal(result))
}

func (centroid) Reset() {}

// Accum keeps a running sum of its scalar input across Process calls.
// Reset clears the sum.
type accum struct {
	sum float64
}

func buildAccum(params map[string]value.Value) (engine.Descriptor, engine.Algorithm, error) {
	desc := engine.Descriptor{
		Inputs:  []engine.PortDef{{Name: "value", Kind: value.Real}},
		Outputs: []engine.PortDef{{Name: "sum", Kind: value.Real}},
	}
	return desc, &accum{}, nil
}

func (a *accum) Process(in, out map[string]*engine.Port) {
	f, _ := in["value"].Value().Real()
	a.sum += f
	mustSet(out["sum"], value.NewReal(a.sum))
}

func (a *accum) Reset() {
	a.sum = 0
}

// Frame cuts a vector into hopped frames. Stateless.
type frame struct {
	size int
	hop  int
}

func buildFrame(params map[string]value.Value) (engine.Descriptor, engine.Algorithm, error) {
	cfg := struct {
		FrameSize int `mapstructure:"frameSize"`
		HopSize   int `mapstructure:"hopSize"`
	}{FrameSize: 1024, HopSize: 512}
	if err := engine.DecodeParams(params, &cfg); err != nil {
		return engine.Descriptor{}, nil, err
	}
	if cfg.FrameSize <= 0 || cfg.HopSize <= 0 {
		return engine.Descriptor{}, nil, fmt.Errorf("frameSize %d and hopSize %d must be positive", cfg.FrameSize, cfg.HopSize)
	}
	desc := engine.Descriptor{
		Inputs:  []engine.PortDef{{Name: "signal", Kind: value.RealVec}},
		Outputs: []engine.PortDef{{Name: "frames", Kind: value.RealVecVec}},
	}
	return desc, frame{size: cfg.FrameSize, hop: cfg.HopSize}, nil
}

func (f frame) Process(in, out map[string]*engine.Port) {
	signal, _ := in["signal"].Value().RealVec()
	var frames [][]float64
	for start := 0; start+f.size <= len(signal); start += f.hop {
		cut := make([]float64, f.size)
		copy(cut, signal[start:start+f.size])
		frames = append(frames, cut)
	}
	mustSet(out["frames"], value.NewRealVecVec(frames))
}

func (frame) Reset() {}

// Describe folds a named scalar into an aggregate mapping output.
type describe struct{}

func buildDescribe(params map[string]value.Value) (engine.Descriptor, engine.Algorithm, error) {
	desc := engine.Descriptor{
		Inputs: []engine.PortDef{
			{Name: "name", Kind: value.String},
			{Name: "value", Kind: value.Real},
		},
		Outputs: []engine.PortDef{{Name: "pool", Kind: value.Pool}},
	}
	return desc, describe{}, nil
}

func (describe) Process(in, out map[string]*engine.Port) {
	name, _ := in["name"].Value().Str()
	f, _ := in["value"].Value().Real()
	current, _ := out["pool"].Value().Pool()
	pool := make(map[string]value.Value, len(current)+1)
	for k, v := range current {
		pool[k] = v
	}
	pool[name] = value.NewReal(f)
	mustSet(out["pool"], value.NewPool(pool))
}

func (describe) Reset() {}

// Null declares no ports at all.
type null struct{}

func buildNull(params map[string]value.Value) (engine.Descriptor, engine.Algorithm, error) {
	return engine.Descriptor{}, null{}, nil
}

func (null) Process(in, out map[string]*engine.Port) {}

func (null) Reset() {}

// Slots copies every input to the same-named output, one port pair per
// value kind. It backs round-trip tests and deliberately has no spec.
type slots struct{}

func buildSlots(params map[string]value.Value) (engine.Descriptor, engine.Algorithm, error) {
	var desc engine.Descriptor
	for _, k := range value.Kinds() {
		desc.Inputs = append(desc.Inputs, engine.PortDef{Name: k.String(), Kind: k})
		desc.Outputs = append(desc.Outputs, engine.PortDef{Name: k.String(), Kind: k})
	}
	return desc, slots{}, nil
}

func (slots) Process(in, out map[string]*engine.Port) {
	for name, p := range in {
		mustSet(out[name], p.Value())
	}
}

func (slots) Reset() {}
