package profile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pipelined/extract/graph"
	"github.com/pipelined/extract/mock"
	"github.com/pipelined/extract/profile"
)

func init() {
	mock.Register()
}

const chainProfile = `
name: demo
algorithms:
  - id: src
    name: Source
    params:
      values: [1.0, 1.0, 1.0, 1.0]
  - id: amp
    name: Gain
    params:
      gain: 2.0
  - id: centroid
    name: Centroid
connections:
  - from: src.signal
    to: amp.signal
  - from: amp.signal
    to: centroid.array
`

func TestBuild(t *testing.T) {
	p, err := profile.Parse(strings.NewReader(chainProfile))
	assert.NoError(t, err)
	assert.Equal(t, "demo", p.Name)
	assert.Len(t, p.Algorithms, 3)

	n, byID, err := p.Build()
	assert.NoError(t, err)
	assert.Contains(t, n.String(), "demo")

	n.Run()
	typed := graph.Downcast[mock.CentroidSpec](byID["centroid"])
	f, err := typed.OutReal(mock.CentroidOut)
	assert.NoError(t, err)
	assert.Equal(t, 1.5, f)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "not yaml",
			yaml: "\t",
		},
		{
			name: "missing name",
			yaml: `
algorithms:
  - id: src
`,
		},
		{
			name: "duplicate id",
			yaml: `
algorithms:
  - id: src
    name: Source
  - id: src
    name: Gain
`,
		},
	}
	for _, test := range tests {
		_, err := profile.Parse(strings.NewReader(test.yaml))
		assert.Error(t, err, test.name)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "unknown algorithm",
			yaml: `
algorithms:
  - id: a
    name: NoSuchAlgorithm
`,
		},
		{
			name: "bad endpoint",
			yaml: `
algorithms:
  - id: src
    name: Source
connections:
  - from: src
    to: src.signal
`,
		},
		{
			name: "unknown connection id",
			yaml: `
algorithms:
  - id: src
    name: Source
connections:
  - from: ghost.signal
    to: src.signal
`,
		},
		{
			name: "kind mismatch",
			yaml: `
algorithms:
  - id: src
    name: Source
  - id: accum
    name: Accum
connections:
  - from: src.signal
    to: accum.value
`,
		},
		{
			name: "bad param",
			yaml: `
algorithms:
  - id: src
    name: Source
    params:
      values: [1.0, nope]
`,
		},
	}
	for _, test := range tests {
		p, err := profile.Parse(strings.NewReader(test.yaml))
		assert.NoError(t, err, test.name)
		_, _, err = p.Build()
		assert.Error(t, err, test.name)
	}
}
