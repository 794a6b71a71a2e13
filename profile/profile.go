// Package profile builds networks from YAML descriptions. A profile
// names the algorithms to instantiate, their parameters and the edges
// between their ports:
//
//	name: tonal
//	algorithms:
//	  - id: src
//	    name: Source
//	    params:
//	      values: [0.1, 0.2, 0.3]
//	  - id: gain
//	    name: Gain
//	    params:
//	      gain: 2.0
//	connections:
//	  - from: src.signal
//	    to: gain.signal
package profile

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pipelined/extract/graph"
	"github.com/pipelined/extract/pipeline"
	"github.com/pipelined/extract/value"
)

// Profile describes one network.
type Profile struct {
	Name        string       `yaml:"name"`
	Algorithms  []Algorithm  `yaml:"algorithms"`
	Connections []Connection `yaml:"connections"`
}

// Algorithm describes one instance to create.
type Algorithm struct {
	ID     string                 `yaml:"id"`
	Name   string                 `yaml:"name"`
	Params map[string]interface{} `yaml:"params"`
}

// Connection describes one edge, both ends in "id.port" form.
type Connection struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Parse decodes and validates a profile.
func Parse(r io.Reader) (*Profile, error) {
	var p Profile
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	seen := make(map[string]bool, len(p.Algorithms))
	for _, a := range p.Algorithms {
		if a.ID == "" || a.Name == "" {
			return nil, fmt.Errorf("profile %q: algorithm needs both id and name", p.Name)
		}
		if seen[a.ID] {
			return nil, fmt.Errorf("profile %q: duplicate algorithm id %q", p.Name, a.ID)
		}
		seen[a.ID] = true
	}
	return &p, nil
}

// Build instantiates every algorithm, wires the connections and
// returns the network along with the instances keyed by profile id.
func (p *Profile) Build(options ...pipeline.Option) (*pipeline.Network, map[string]*graph.Algorithm, error) {
	n, err := pipeline.New(append(options, pipeline.WithName(p.Name))...)
	if err != nil {
		return nil, nil, err
	}

	byID := make(map[string]*graph.Algorithm, len(p.Algorithms))
	for _, ac := range p.Algorithms {
		params := make(map[string]value.Value, len(ac.Params))
		for name, raw := range ac.Params {
			v, err := value.Infer(raw)
			if err != nil {
				return nil, nil, fmt.Errorf("%s: param %q: %w", ac.ID, name, err)
			}
			params[name] = v
		}
		a, err := graph.New(ac.Name, params)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ac.ID, err)
		}
		n.Add(a)
		byID[ac.ID] = a
	}

	for _, c := range p.Connections {
		fromID, output, err := endpoint(c.From)
		if err != nil {
			return nil, nil, err
		}
		toID, input, err := endpoint(c.To)
		if err != nil {
			return nil, nil, err
		}
		from, ok := byID[fromID]
		if !ok {
			return nil, nil, fmt.Errorf("connection from unknown id %q", fromID)
		}
		to, ok := byID[toID]
		if !ok {
			return nil, nil, fmt.Errorf("connection to unknown id %q", toID)
		}
		if err := n.Connect(from, output, to, input); err != nil {
			return nil, nil, err
		}
	}
	return n, byID, nil
}

func endpoint(s string) (id, port string, err error) {
	id, port, ok := strings.Cut(s, ".")
	if !ok || id == "" || port == "" {
		return "", "", fmt.Errorf("endpoint %q is not in id.port form", s)
	}
	return id, port, nil
}
