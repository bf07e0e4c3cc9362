package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatestGuard_DropsSupersededResults(t *testing.T) {
	var g latestGuard
	var applied []int

	first := g.begin("status")
	second := g.begin("status")

	assert.False(t, g.apply("status", first, func() { applied = append(applied, 1) }))
	assert.True(t, g.apply("status", second, func() { applied = append(applied, 2) }))
	assert.Equal(t, []int{2}, applied)
}

func TestLatestGuard_KindsAreIndependent(t *testing.T) {
	var g latestGuard

	s := g.begin("status")
	l := g.begin("list")

	assert.True(t, g.apply("status", s, func() {}))
	assert.True(t, g.apply("list", l, func() {}))
	assert.False(t, g.apply("other", 1, func() {}))
}
