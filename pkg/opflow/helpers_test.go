package opflow_test

import (
	"errors"
	"fmt"
)

var errOpBroken = errors.New("op broken")

// simKind is a closed catalogue of simulation operations.
type simKind int

const (
	simInit simKind = iota
	simAllocate
	simRun
)

func (k simKind) String() string {
	switch k {
	case simInit:
		return "init"
	case simAllocate:
		return "allocate"
	case simRun:
		return "run"
	}

	return "unknown"
}

// simOp is a self-contained operation: it records its own execution into the
// trace it captured at construction time.
type simOp struct {
	kind  simKind
	x, y  float64
	delta float64
	trace *[]string
	fail  bool
}

func (o simOp) String() string {
	return o.kind.String()
}

func (o simOp) Execute() error {
	if o.fail {
		return errOpBroken
	}

	switch o.kind {
	case simInit:
		*o.trace = append(*o.trace, "init")
	case simAllocate:
		*o.trace = append(*o.trace, fmt.Sprintf("allocate %.1f %.1f", o.x, o.y))
	case simRun:
		*o.trace = append(*o.trace, fmt.Sprintf("run %.1f", o.delta))
	}

	return nil
}

// counterOp reads the shared counter, records the value it saw and
// increments it, so order-dependent mutation is observable.
type counterOp struct {
	seen *[]int
}

func (o counterOp) Execute(counter *int) error {
	*o.seen = append(*o.seen, *counter)
	*counter++

	return nil
}

type world struct {
	x, y float64
}

// moveOp shares two pieces of context: the world it mutates and the elapsed
// time of the current call.
type moveOp struct {
	dx, dy float64
	fail   bool
}

func (o moveOp) Execute(w *world, delta *float64) error {
	if o.fail {
		return errOpBroken
	}

	w.x += o.dx * *delta
	w.y += o.dy * *delta

	return nil
}
