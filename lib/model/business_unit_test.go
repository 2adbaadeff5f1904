package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinedRegionsKeepsOrder(t *testing.T) {
	t.Parallel()

	u := NewBusinessUnit("a", "", 1, "", "Europe", "Asie")

	assert.Equal(t, "Europe, Asie", u.JoinedRegions())
}

func TestJoinedRegionsEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", NewBusinessUnit("a", "", 1, "").JoinedRegions())
}

func TestFilteredResultLookup(t *testing.T) {
	t.Parallel()

	a := NewBusinessUnit("a", "", 1, "")
	b := NewBusinessUnit("b", "", 2, "")

	r := NewFilteredResult([]*BusinessUnit{b, a})

	assert.Equal(t, []string{"b", "a"}, r.Names())
	assert.Equal(t, a, r.Get("a"))
	assert.Nil(t, r.Get("c"))
	assert.Equal(t, 2, r.Len())
	assert.False(t, r.IsEmpty())
	assert.True(t, NewFilteredResult(nil).IsEmpty())
}
