// Package value provides the runtime value system for the interpreter.
//
// Value Types:
//
// Primitive Types:
//   - Bool: boolean values (true, false)
//   - Num: 64-bit IEEE-754 floating-point numbers
//   - Str: UTF-8 encoded strings
//   - Nil: the absence-of-value singleton
//
// Functional Types:
//   - Closure: the opaque, uncallable placeholder for a first-class
//     function value (the grammar has no syntax to produce one)
//   - Builtin: native functions bound directly into the global scope
//
// Equality is structural within a variant (Equal); cross-variant equality
// is always false, and function values never compare equal. Truthy reports
// whether a value counts as true in a condition: every value is truthy
// except Bool(false) and Nil.
//
// Scope implements lexical scoping as a singly linked chain of
// name-to-value maps. The evaluator holds the innermost scope as current;
// Push installs a fresh nested scope and Pop restores the outer one. Define
// always binds in the current scope (var declarations); Set walks the chain
// to find and overwrite an existing binding (assignment), reporting failure
// if none is found anywhere in the chain.
package value
