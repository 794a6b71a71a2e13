package graph

import "fmt"

// Connect shares a producer output port with a consumer input port by
// reference, so the consumer's next Process reads whatever the producer
// last wrote. A port participates in at most one edge; kinds must
// match.
func Connect(from *Algorithm, output string, to *Algorithm, input string) error {
	src, ok := from.Output(output)
	if !ok {
		return fmt.Errorf("%q has no output %q", from.Name(), output)
	}
	dst, ok := to.Input(input)
	if !ok {
		return fmt.Errorf("%q has no input %q", to.Name(), input)
	}
	if src.peer != nil {
		return fmt.Errorf("output %s already feeds %s", src.FullName(), src.peer.FullName())
	}
	if dst.peer != nil {
		return fmt.Errorf("input %s already fed by %s", dst.FullName(), dst.peer.FullName())
	}
	return to.connectInput(input, src)
}
