// Package terms lists trait predicates that are used often with EOL data
// and gives them short aliases for the command line.
package terms

import (
	"slices"
	"strings"
)

// Predicate URIs.
const (
	Eats               = "http://purl.obolibrary.org/obo/RO_0002470"
	IsEatenBy          = "http://purl.obolibrary.org/obo/RO_0002471"
	PreysOn            = "http://purl.obolibrary.org/obo/RO_0002439"
	Parasitizes        = "http://purl.obolibrary.org/obo/RO_0002444"
	Pollinates         = "http://purl.obolibrary.org/obo/RO_0002455"
	HasHabitat         = "http://purl.obolibrary.org/obo/RO_0002303"
	Habitat            = "http://rs.tdwg.org/dwc/terms/habitat"
	Present            = "http://eol.org/schema/terms/Present"
	NativeRange        = "http://eol.org/schema/terms/NativeRange"
	IntroducedRange    = "http://eol.org/schema/terms/IntroducedRange"
	ExtinctionStatus   = "http://eol.org/schema/terms/ExtinctionStatus"
	BodyMass           = "http://purl.obolibrary.org/obo/VT_0001259"
	ConservationStatus = "http://rs.tdwg.org/ontology/voc/SPMInfoItems#ConservationStatus"
)

var aliases = map[string]string{
	"eats":                Eats,
	"is-eaten-by":         IsEatenBy,
	"preys-on":            PreysOn,
	"parasitizes":         Parasitizes,
	"pollinates":          Pollinates,
	"has-habitat":         HasHabitat,
	"habitat":             Habitat,
	"present":             Present,
	"native-range":        NativeRange,
	"introduced-range":    IntroducedRange,
	"extinction-status":   ExtinctionStatus,
	"body-mass":           BodyMass,
	"conservation-status": ConservationStatus,
}

// Aliases returns sorted short names of known predicates.
func Aliases() []string {
	res := make([]string, 0, len(aliases))
	for k := range aliases {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// Resolve converts an alias to a predicate URI. Underscores and spaces
// in aliases are treated as dashes. Anything that is not a known alias
// is returned unchanged.
func Resolve(s string) string {
	s = strings.TrimSpace(s)
	k := strings.ToLower(s)
	k = strings.NewReplacer("_", "-", " ", "-").Replace(k)
	if uri, ok := aliases[k]; ok {
		return uri
	}
	return s
}

// ResolveAll applies Resolve to every element.
func ResolveAll(ss []string) []string {
	res := make([]string, len(ss))
	for i, v := range ss {
		res[i] = Resolve(v)
	}
	return res
}
