/*
Package extract binds signal-processing algorithms into typed port
graphs.

Concept

The execution engine moves data between algorithms as tagged buffers:
every port is a single slot fixed to one value kind for its lifetime.
Callers work with two facades over one algorithm instance:

	graph.Algorithm - name-keyed lookups, checked at run time;
	graph.Typed     - spec-keyed accessors, checked at compile time.

A spec enumerates the input, output and parameter identifiers of one
algorithm kind. Downcast resolves an instance's registered name through
the spec registry and validates every declared identifier against the
instance's actual port set, so a Typed view never misses a port.

Subpackages

	value    - the closed tagged union ports exchange;
	engine   - kernel catalog, instances and native port slots;
	graph    - ports, the two facades and the spec registry;
	pipeline - ordered networks of connected algorithms;
	metric   - per-algorithm execution counters;
	profile  - YAML network descriptions;
	wavefile - WAV files as port values;
	mock     - reference kernels and specs.

Everything runs on the calling goroutine: Process and Reset return
only after the work is done, and a network must not be driven from two
goroutines at a time.
*/
package extract
