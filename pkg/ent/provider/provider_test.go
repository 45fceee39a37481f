package provider_test

import (
	"testing"

	"github.com/gnames/eoltraits/pkg/ent/provider"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		input string
		res   provider.DataProvider
	}{
		{"gbif", provider.GBIF},
		{"GBIF", provider.GBIF},
		{"767", provider.GBIF},
		{" worms ", provider.WoRMS},
		{"459", provider.WoRMS},
		{"5", provider.IUCN},
		{"frost", provider.Frost},
		{"col", provider.Unknown},
		{"", provider.Unknown},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, provider.New(v.input), v.input)
	}
}

func TestIDs(t *testing.T) {
	tests := []struct {
		p     provider.DataProvider
		id    string
		intID int
		name  string
	}{
		{provider.Frost, "726", 726, "Frost"},
		{provider.GBIF, "767", 767, "GBIF"},
		{provider.ITIS, "695", 695, "ITIS"},
		{provider.IUCN, "5", 5, "IUCN"},
		{provider.NCBI, "676", 676, "NCBI"},
		{provider.WoRMS, "459", 459, "WoRMS"},
		{provider.Unknown, "", 0, "unknown"},
	}

	for _, v := range tests {
		assert.Equal(t, v.id, v.p.ID(), v.name)
		assert.Equal(t, v.intID, v.p.IntID(), v.name)
		assert.Equal(t, v.name, v.p.String())
		if v.p != provider.Unknown {
			assert.Equal(t, v.p, provider.FromID(v.intID))
		}
	}
}
