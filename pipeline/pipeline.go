// Package pipeline drives an ordered network of bound algorithms. The
// whole network runs on the calling goroutine: Run processes every
// algorithm once, in insertion order, and returns when the last one
// finished. Driving one network from more than one goroutine at a time
// is the caller's responsibility to avoid.
package pipeline

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/xid"

	"github.com/pipelined/extract/graph"
	"github.com/pipelined/extract/metric"
)

// Logger is a global interface for pipeline loggers.
type Logger interface {
	Debug(...interface{})
	Info(...interface{})
}

// Network is an ordered set of algorithms with data edges between
// their ports.
type Network struct {
	uid        string
	name       string
	algorithms []*graph.Algorithm
	meters     map[*graph.Algorithm]*metric.Meter
	metric     *metric.Metric
	log        Logger
}

// Option provides a way to set functional parameters to a network.
type Option func(n *Network) error

// New creates a new empty network and applies provided options.
func New(options ...Option) (*Network, error) {
	n := &Network{
		uid:    xid.New().String(),
		log:    defaultLogger,
		meters: make(map[*graph.Algorithm]*metric.Meter),
	}
	for _, option := range options {
		if err := option(n); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// WithName sets name to the network.
func WithName(name string) Option {
	return func(n *Network) error {
		n.name = name
		return nil
	}
}

// WithLogger sets logger to the network. If this option is not
// provided, silent logger is used.
func WithLogger(l Logger) Option {
	return func(n *Network) error {
		n.log = l
		return nil
	}
}

// WithMetric adds metrics for this network's algorithms.
func WithMetric(m *metric.Metric) Option {
	return func(n *Network) error {
		n.metric = m
		return nil
	}
}

// Add appends algorithms to the network in processing order.
func (n *Network) Add(algorithms ...*graph.Algorithm) {
	for _, a := range algorithms {
		n.algorithms = append(n.algorithms, a)
		n.meters[a] = n.metric.Meter(a.FullName())
	}
}

// Connect adds a data edge from a producer output to a consumer input.
// Both algorithms must already be part of the network.
func (n *Network) Connect(from *graph.Algorithm, output string, to *graph.Algorithm, input string) error {
	if !n.contains(from) {
		return fmt.Errorf("%s is not part of network %s", from.FullName(), n)
	}
	if !n.contains(to) {
		return fmt.Errorf("%s is not part of network %s", to.FullName(), n)
	}
	return graph.Connect(from, output, to, input)
}

func (n *Network) contains(a *graph.Algorithm) bool {
	_, ok := n.meters[a]
	return ok
}

// Run processes every algorithm once, in insertion order.
func (n *Network) Run() {
	for _, a := range n.algorithms {
		n.log.Debug(fmt.Sprintf("%s processing %s", n, a.FullName()))
		a.Process()
		n.meters[a].Process()
	}
	if n.metric != nil {
		n.log.Debug(spew.Sdump(n.metric.Measure()))
	}
}

// Reset clears accumulated state of every algorithm, leaving ports and
// their last-written values untouched.
func (n *Network) Reset() {
	for _, a := range n.algorithms {
		a.Reset()
	}
	n.log.Debug(fmt.Sprintf("%s reset", n))
}

// String returns network name if set, uid otherwise.
func (n *Network) String() string {
	if n.name == "" {
		return n.uid
	}
	return fmt.Sprintf("%v %v", n.name, n.uid)
}

type silentLogger struct{}

func (silentLogger) Debug(args ...interface{}) {}

func (silentLogger) Info(args ...interface{}) {}

var defaultLogger silentLogger
