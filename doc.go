// Package tsdecl provides:
//
// - An in-memory model of TypeScript type expressions (primitives, string literals, object shapes, unions, intersections, arrays)
// - Named declarations (enum, type alias, interface) that print by name when used as values
// - A printer that renders the model as declaration source text with precedence-aware parentheses
// - An intersection optimizer that merges intersections of object shapes into one object literal
//
// Design policy:
// - Keep the model and printer in the root package; importers live under jsonschema/, tsgen/ and fromgo/.
// - The CLI lives under cmd/tsdecl and is the only place that touches files.
// - No validation: the model renders whatever it is given.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	user := tsdecl.NewInterface("User", tsdecl.NewObjectType(
//	    tsdecl.NewProperty("id", tsdecl.String),
//	    tsdecl.NewProperty("age", tsdecl.Number).WithComment("age in years"),
//	)).Export()
//	prog := tsdecl.NewProgram(user)
//	src := prog.Print(0)
package tsdecl
