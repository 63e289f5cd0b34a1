package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolverFirstInsertedWins(t *testing.T) {
	r := NewResolver()
	r.AddBag([]string{"CHEBI:1", "CHEBI:2"})
	r.AddBag([]string{"CHEBI:2", "CHEBI:3"})

	canon := Canonicalizer(r.Build())

	for _, c := range []string{"CHEBI:1", "CHEBI:2", "CHEBI:3"} {
		got, ok := canon.Canonicalize(c)
		assert.True(t, ok)
		assert.Equal(t, "CHEBI:1", got)
	}
}

func TestResolverDisjointBagsStayDisjoint(t *testing.T) {
	r := NewResolver()
	r.AddBag([]string{"MONDO:1"})
	r.AddBag([]string{"MONDO:2"})

	canon := Canonicalizer(r.Build())
	a, _ := canon.Canonicalize("MONDO:1")
	b, _ := canon.Canonicalize("MONDO:2")
	assert.NotEqual(t, a, b)
}

func TestResolverUnseenCurieFails(t *testing.T) {
	r := NewResolver()
	r.AddBag([]string{"MONDO:1"})
	canon := Canonicalizer(r.Build())
	_, ok := canon.Canonicalize("MONDO:999")
	assert.False(t, ok)
}

func TestResolverInsertionOrderAcrossBags(t *testing.T) {
	r := NewResolver()
	r.AddBag([]string{"X"})
	r.AddBag([]string{"Y"})
	r.AddBag([]string{"Y", "X"})

	canon := Canonicalizer(r.Build())
	got, ok := canon.Canonicalize("Y")
	assert.True(t, ok)
	assert.Equal(t, "X", got)
}
