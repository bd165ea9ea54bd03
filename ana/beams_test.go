package ana

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCantilever(t *testing.T) {
	c := Cantilever{P: -1000, L: 10, E: 7e10, I: 0.2}
	assert.InDelta(t, -1000*1000/(3*7e10*0.2), c.TipDeflection(), 1e-18)
	assert.Equal(t, 1000., c.RootReaction())
	assert.Equal(t, 10000., c.RootMoment())

	// a uniform load equals its resultant for the reaction
	u := Cantilever{Q: -100, L: 10, E: 7e10, I: 0.2}
	assert.Equal(t, 1000., u.RootReaction())
	assert.Equal(t, 5000., u.RootMoment())
	assert.Less(t, u.TipDeflection(), 0.)
}

func TestClamped(t *testing.T) {
	p := ClampedPointLoad{P: -1000, L: 2.5, E: 7e10, I: 0.2}
	assert.Equal(t, 500., p.Reaction())
	assert.Equal(t, 1000*2.5/8, p.EndMoment())

	q := ClampedUniform{Q: -1000, L: 2.5, E: 7e10, I: 0.2}
	assert.Equal(t, 1250., q.Reaction())
	assert.InDelta(t, -1000*math.Pow(2.5, 4)/(384*7e10*0.2), q.MidspanDeflection(), 1e-20)

	// the uniform load deflects less than the same total load at midspan
	assert.Less(t, math.Abs(q.MidspanDeflection()),
		math.Abs(ClampedPointLoad{P: -2500, L: 2.5, E: 7e10, I: 0.2}.MidspanDeflection()))
}

func TestFrequencies(t *testing.T) {
	assert.InDelta(t, 1/(2*math.Pi), SpringMass(4, 4), 1e-15)
	f1 := CantileverFrequency(1, 1, 1, 1, 1, 1)
	f2 := CantileverFrequency(2, 1, 1, 1, 1, 1)
	assert.InDelta(t, 6.2669, f2/f1, 1e-4)
	assert.InDelta(t, f1, 4*CantileverFrequency(1, 2, 1, 1, 1, 1), 1e-12)
}
