package material

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/deskscene/pkg/math"
)

func TestLookupEmpty(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Lookup("desk")
	assert.False(t, ok)
}

func TestRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	r.Register(Material{Tag: "desk", Diffuse: math.V3(0.8, 0.5, 0.2), Specular: math.Splat3(0.5), Shininess: 32})
	r.Register(Material{Tag: "lamp", Diffuse: math.Splat3(0.8), Specular: math.Splat3(0.5), Shininess: 64})

	m, ok := r.Lookup("lamp")
	assert.True(t, ok)
	assert.Equal(t, float32(64), m.Shininess)
	assert.Equal(t, math.Splat3(0.8), m.Diffuse)

	_, ok = r.Lookup("ghost")
	assert.False(t, ok)
}

func TestDuplicateTagFirstWins(t *testing.T) {
	r := NewRegistry()
	r.Register(Material{Tag: "wood", Shininess: 1})
	r.Register(Material{Tag: "wood", Shininess: 99})

	m, ok := r.Lookup("wood")
	assert.True(t, ok)
	assert.Equal(t, float32(1), m.Shininess)
	assert.Equal(t, 2, r.Count())
}

func TestUnclampedColorsAllowed(t *testing.T) {
	r := NewRegistry()
	r.Register(Material{Tag: "glow", Diffuse: math.V3(4, 4.4, 4), Shininess: 0})

	m, ok := r.Lookup("glow")
	assert.True(t, ok)
	assert.Equal(t, float32(4.4), m.Diffuse.Y)
}
