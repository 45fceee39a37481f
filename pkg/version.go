// Package eoltraits converts Encyclopedia of Life trait records into
// triples and resolves identifiers between EOL and other data providers.
package eoltraits

var (
	// Version of eoltraits, set during build.
	Version = "v0.1.0"
	// Build timestamp, set during build.
	Build = "n/a"
)
