package opflow

// Executable is the contract for self-contained operations. Execute performs
// the work of one operation using nothing but its own payload.
//
// Implementations on a closed catalogue type are expected to switch
// exhaustively over every variant, with no default case.
type Executable interface {
	Execute() error
}

// ExecutableWith is the contract for operations that share one piece of
// caller-owned context. Every operation of a run receives the same arg, so a
// mutation made by one operation is visible to the operations after it.
//
// Instantiate Arg with a pointer type when operations must mutate the shared
// context, or with a value type when they only read it.
type ExecutableWith[Arg any] interface {
	Execute(arg Arg) error
}

// ExecutableWithPair is the contract for operations that share two
// independent pieces of caller-owned context, e.g. persistent world state and
// transient per-call data such as an elapsed time.
type ExecutableWithPair[A, B any] interface {
	Execute(first A, second B) error
}
