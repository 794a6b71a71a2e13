package graph

import (
	"fmt"

	"github.com/pipelined/extract/engine"
	"github.com/pipelined/extract/value"
)

// ErrKindMismatch is returned when a port read or write is asked for a
// kind other than the one the port was created with.
var ErrKindMismatch = engine.ErrKindMismatch

// Port is a named single-slot holder of one value with a kind fixed for
// its lifetime. All views over one algorithm share the same Port
// pointers, and a connected consumer port shares the producer's slot by
// reference, so a write through any of them is observed by all.
type Port struct {
	name     string
	fullName string
	slot     *engine.Port
	// peer is the one connected port on the other side of a graph
	// edge: the consumer for an output, the producer for an input.
	peer *Port
}

func newPort(ownerFullName string, slot *engine.Port) *Port {
	return &Port{
		name:     slot.Name(),
		fullName: ownerFullName + "." + slot.Name(),
		slot:     slot,
	}
}

// Name returns the identifier local to the owning algorithm.
func (p *Port) Name() string { return p.name }

// FullName returns the identifier namespaced by the owning instance,
// unique within the graph.
func (p *Port) FullName() string { return p.fullName }

// Kind returns the fixed kind of the port.
func (p *Port) Kind() value.Kind { return p.slot.Kind() }

// Read returns the currently held value.
func (p *Port) Read() value.Value { return p.slot.Value() }

// Write stores v if its kind matches the port's. On mismatch the held
// value is left untouched and ErrKindMismatch is returned.
func (p *Port) Write(v value.Value) error {
	if err := p.slot.SetValue(v); err != nil {
		return fmt.Errorf("write %s: %w", p.fullName, err)
	}
	return nil
}

// Peer returns the port connected on the other side of a graph edge,
// or nil for an unconnected port.
func (p *Port) Peer() *Port { return p.peer }

// connect rebinds the port to share src's slot. Both engine-side input
// binding and this view-side rebinding are needed so that every facade
// over the consumer observes the producer's writes.
func (p *Port) connect(src *Port) {
	p.slot = src.slot
	p.peer = src
	src.peer = p
}
