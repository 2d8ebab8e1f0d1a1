// Package descriptor parses JVM field and method descriptors.
//
// A descriptor is the compact type encoding stored in the constant pool of a
// class file:
//
//	FieldDescriptor  := "["* BaseTypeCode
//	BaseTypeCode     := "B" | "C" | "D" | "F" | "I" | "J" | "S" | "Z" | "L" ClassName ";"
//	MethodDescriptor := "(" FieldDescriptor* ")" FieldDescriptor
//
// Every entry point requires the whole input to match and reports failure
// through a boolean. Callers that need a diagnostic build it themselves, for
// example with the constant pool index that held the descriptor.
//
// Class names are not validated or resolved, and generic signatures are a
// different grammar that this package does not accept.
package descriptor
