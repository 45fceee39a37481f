// Package provider enumerates external data providers whose taxon
// identifiers can be converted to and from EOL page IDs.
package provider

import (
	"strings"
)

// DataProvider is a namespace of external identifiers.
type DataProvider int

// Known data providers.
const (
	Unknown DataProvider = iota
	Frost
	GBIF
	ITIS
	IUCN
	NCBI
	WoRMS
)

var ids = map[DataProvider]string{
	Frost: "726",
	GBIF:  "767",
	ITIS:  "695",
	IUCN:  "5",
	NCBI:  "676",
	WoRMS: "459",
}

var names = map[DataProvider]string{
	Unknown: "unknown",
	Frost:   "Frost",
	GBIF:    "GBIF",
	ITIS:    "ITIS",
	IUCN:    "IUCN",
	NCBI:    "NCBI",
	WoRMS:   "WoRMS",
}

// All returns every known data provider.
func All() []DataProvider {
	return []DataProvider{Frost, GBIF, ITIS, IUCN, NCBI, WoRMS}
}

// New parses a provider name (case-insensitive) or a provider ID.
// Unrecognized input returns Unknown.
func New(s string) DataProvider {
	s = strings.TrimSpace(s)
	for _, p := range All() {
		if strings.EqualFold(s, names[p]) || s == ids[p] {
			return p
		}
	}
	return Unknown
}

// FromID returns the provider with the given provider ID.
func FromID(id int) DataProvider {
	for _, p := range All() {
		if p.IntID() == id {
			return p
		}
	}
	return Unknown
}

// ID returns the provider ID used by the EOL identifier map.
// Unknown provider returns an empty string.
func (p DataProvider) ID() string {
	return ids[p]
}

// IntID returns the provider ID as an integer, 0 for Unknown.
func (p DataProvider) IntID() int {
	var res int
	for _, r := range ids[p] {
		res = res*10 + int(r-'0')
	}
	return res
}

// String returns the name of the provider.
func (p DataProvider) String() string {
	if n, ok := names[p]; ok {
		return n
	}
	return names[Unknown]
}
