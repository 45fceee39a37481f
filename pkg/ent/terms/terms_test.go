package terms_test

import (
	"testing"

	"github.com/gnames/eoltraits/pkg/ent/terms"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		input string
		res   string
	}{
		{"eats", terms.Eats},
		{"IS_EATEN_BY", terms.IsEatenBy},
		{"introduced range", terms.IntroducedRange},
		{" habitat ", terms.Habitat},
		{"http://example.org/term", "http://example.org/term"},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, terms.Resolve(v.input), v.input)
	}
}

func TestAliases(t *testing.T) {
	res := terms.Aliases()
	assert.Contains(t, res, "eats")
	assert.IsIncreasing(t, res)
	assert.Equal(t, []string{terms.Present, terms.Habitat},
		terms.ResolveAll([]string{"present", "habitat"}))
}
