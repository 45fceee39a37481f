package normalizer

import "github.com/gnames/eoltraits/pkg/ent/record"

// KeyMap renames a field of a raw record.
type KeyMap struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Mapping describes how fields of one raw schema are renamed to canonical
// keys. Keys are applied in order, then Delete fields are removed.
type Mapping struct {
	Name   string   `yaml:"name"`
	Keys   []KeyMap `yaml:"keys"`
	Delete []string `yaml:"delete"`
}

func to(from string, k record.Key) KeyMap {
	return KeyMap{From: from, To: string(k)}
}

// CSVMapping returns the mapping of the EOL traits CSV export.
func CSVMapping() Mapping {
	return Mapping{
		Name: "csv",
		Keys: []KeyMap{
			// raw units fill in when normal units are absent, differing
			// values are a collision
			to("normal_units_uri", record.NormalUnitsURI),
			to("units_uri", record.NormalUnitsURI),
			to("citation", record.Citation),
			to("eol_pk", record.RecordID),
			to("literal", record.Literal),
			to("normal_measurement", record.NormalMeasure),
			to("predicate", record.Predicate),
			to("source", record.SourceURL),
			to("value_uri", record.ValueURI),
			to("page_id", record.PageID),
		},
	}
}

// APIMapping returns the mapping of rows returned by the EOL Cypher API.
func APIMapping() Mapping {
	return Mapping{
		Name: "api",
		Keys: []KeyMap{
			to("t.eol_pk", record.RecordID),
			to("obj.uri", record.ValueURI),
			to("p.page_id", record.PageID),
			to("pred.uri", record.Predicate),
			to("t.citation", record.Citation),
			to("t.literal", record.Literal),
			to("t.normal_measurement", record.NormalMeasure),
			to("t.source", record.SourceURL),
			to("units.uri", record.NormalUnitsURI),
		},
		// page citation differs from trait citation, normal_units is a label
		Delete: []string{"p.citation", "t.normal_units"},
	}
}

// SourceKey returns the raw field name that is mapped to the canonical
// key. If the key is not renamed by the mapping, the key itself is
// returned.
func (m Mapping) SourceKey(k record.Key) string {
	for _, v := range m.Keys {
		if v.To == string(k) {
			return v.From
		}
	}
	return string(k)
}
