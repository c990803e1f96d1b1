// Package opflow executes an ordered sequence of operations in a single
// synchronous pass.
//
// The opflow package is built around closed operation catalogues: the caller
// models every possible operation as one variant of a single type, usually a
// tag plus a payload, and implements one of the three execution contracts
// with an exhaustive switch over the variants. A slice of such values is then
// wrapped into a pipeline and executed in insertion order.
//
// Three contracts are supported, one per calling shape. Executable runs an
// operation on its own payload alone. ExecutableWith additionally receives
// one piece of caller-owned context, shared by every operation of the run.
// ExecutableWithPair receives two independent pieces of context, which is
// useful when long-lived state and per-invocation data should stay separate.
// Because the three contracts share the method name Execute, a concrete type
// can commit to exactly one shape.
//
// A pipeline is a single-use vessel. Building one takes ownership of the
// slice, executing it drains the slice, and a second execution returns
// ErrPipelineConsumed. The run stops at the first failing operation and the
// returned error reports its position, so the caller knows how much of the
// sequence actually ran. Shared context is left exactly as the completed
// operations left it.
package opflow
