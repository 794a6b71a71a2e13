package mock

import "github.com/pipelined/extract/graph"

// Specs for the mock kernels, one marker type each, with their port
// identifiers declared as typed values next to them.

// SourceSpec keys the typed view of Source.
type SourceSpec struct{}

func (SourceSpec) AlgorithmName() string { return "Source" }
func (SourceSpec) InputNames() []string  { return nil }
func (SourceSpec) OutputNames() []string { return []string{"signal"} }
func (SourceSpec) ParamNames() []string  { return []string{"values"} }

// Source identifiers.
var (
	SourceSignal = graph.Out[SourceSpec]("signal")
	SourceValues = graph.Param[SourceSpec]("values")
)

// GainSpec keys the typed view of Gain.
type GainSpec struct{}

func (GainSpec) AlgorithmName() string { return "Gain" }
func (GainSpec) InputNames() []string  { return []string{"signal"} }
func (GainSpec) OutputNames() []string { return []string{"signal"} }
func (GainSpec) ParamNames() []string  { return []string{"gain"} }

// Gain identifiers.
var (
	GainIn     = graph.In[GainSpec]("signal")
	GainOut    = graph.Out[GainSpec]("signal")
	GainFactor = graph.Param[GainSpec]("gain")
)

// CentroidSpec keys the typed view of Centroid.
type CentroidSpec struct{}

func (CentroidSpec) AlgorithmName() string { return "Centroid" }
func (CentroidSpec) InputNames() []string  { return []string{"array"} }
func (CentroidSpec) OutputNames() []string { return []string{"centroid"} }
func (CentroidSpec) ParamNames() []string  { return nil }

// Centroid identifiers.
var (
	CentroidArray = graph.In[CentroidSpec]("array")
	CentroidOut   = graph.Out[CentroidSpec]("centroid")
)

// AccumSpec keys the typed view of Accum.
type AccumSpec struct{}

func (AccumSpec) AlgorithmName() string { return "Accum" }
func (AccumSpec) InputNames() []string  { return []string{"value"} }
func (AccumSpec) OutputNames() []string { return []string{"sum"} }
func (AccumSpec) ParamNames() []string  { return nil }

// Accum identifiers.
var (
	AccumValue = graph.In[AccumSpec]("value")
	AccumSum   = graph.Out[AccumSpec]("sum")
)

// FrameSpec keys the typed view of Frame.
type FrameSpec struct{}

func (FrameSpec) AlgorithmName() string { return "Frame" }
func (FrameSpec) InputNames() []string  { return []string{"signal"} }
func (FrameSpec) OutputNames() []string { return []string{"frames"} }
func (FrameSpec) ParamNames() []string  { return []string{"frameSize", "hopSize"} }

// Frame identifiers.
var (
	FrameIn        = graph.In[FrameSpec]("signal")
	FrameOut       = graph.Out[FrameSpec]("frames")
	FrameFrameSize = graph.Param[FrameSpec]("frameSize")
	FrameHopSize   = graph.Param[FrameSpec]("hopSize")
)

// DescribeSpec keys the typed view of Describe.
type DescribeSpec struct{}

func (DescribeSpec) AlgorithmName() string { return "Describe" }
func (DescribeSpec) InputNames() []string  { return []string{"name", "value"} }
func (DescribeSpec) OutputNames() []string { return []string{"pool"} }
func (DescribeSpec) ParamNames() []string  { return nil }

// Describe identifiers.
var (
	DescribeName  = graph.In[DescribeSpec]("name")
	DescribeValue = graph.In[DescribeSpec]("value")
	DescribePool  = graph.Out[DescribeSpec]("pool")
)

// NullSpec keys the typed view of Null, which declares no ports.
type NullSpec struct{}

func (NullSpec) AlgorithmName() string { return "Null" }
func (NullSpec) InputNames() []string  { return nil }
func (NullSpec) OutputNames() []string { return nil }
func (NullSpec) ParamNames() []string  { return nil }
