// Package library loads open-source attribution descriptors into ordered,
// immutable library records.
//
// A descriptor is either a JSON array of library objects or the aboutlibraries
// envelope ({"libraries": [...]}). Documents are validated against an embedded
// JSON Schema before decoding, so a malformed or non-conforming document fails
// with a *ParseError and never yields a partial sequence.
package library
