// Package wynncraft is a typed client for the public Wynncraft v3 API.
//
// Every call issues a single GET, decodes the body and maps it into plain records.
// A call either returns a complete record or an error; partially mapped records are
// never handed back. Errors fall into four groups:
//
//	TransportError      the request failed or the API answered with a non-2xx status
//	FormatError         the body is not a JSON document
//	SchemaError         a field is missing or holds the wrong kind of value
//	MissingNestedError  a required nested object is absent
//
// Lists built from JSON objects are returned in a fixed order, so mapping the same
// document twice yields equal results.
package wynncraft
