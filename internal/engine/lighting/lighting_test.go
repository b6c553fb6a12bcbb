package lighting

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/deskscene/pkg/math"
)

// recordingSink captures uniform pushes by name.
type recordingSink struct {
	bools  map[string]bool
	floats map[string]float32
	vec3s  map[string]math.Vec3
	order  []string
}

func newRecordingSink() *recordingSink {
	return &recordingSink{
		bools:  map[string]bool{},
		floats: map[string]float32{},
		vec3s:  map[string]math.Vec3{},
	}
}

func (s *recordingSink) SetBool(name string, v bool) {
	s.bools[name] = v
	s.order = append(s.order, name)
}

func (s *recordingSink) SetInt(name string, v int32) { s.order = append(s.order, name) }

func (s *recordingSink) SetFloat(name string, v float32) {
	s.floats[name] = v
	s.order = append(s.order, name)
}

func (s *recordingSink) SetVec2(name string, v math.Vec2) { s.order = append(s.order, name) }

func (s *recordingSink) SetVec3(name string, v math.Vec3) {
	s.vec3s[name] = v
	s.order = append(s.order, name)
}

func (s *recordingSink) SetVec4(name string, v math.Vec4) { s.order = append(s.order, name) }

func (s *recordingSink) SetMat4(name string, m math.Mat4) { s.order = append(s.order, name) }

func TestApplyPushesWireNames(t *testing.T) {
	rig := &Rig{
		ViewPosition: math.V3(0, -10, 10),
		Directional: Directional{
			Direction: math.V3(-0.3, -1, -0.3),
			Ambient:   math.Splat3(0.2),
			Diffuse:   math.Splat3(0.6),
			Specular:  math.Splat3(1),
			Active:    true,
		},
		Spot: Spot{
			Position:    math.V3(-2.2, 6.5, 2.5),
			Direction:   math.V3(-0.7, -1.5, 1),
			CutOff:      CutOffCos(12.5),
			OuterCutOff: CutOffCos(35.5),
			Diffuse:     math.V3(4, 4.4, 4),
			Constant:    1,
			Linear:      0.09,
			Quadratic:   0.032,
			Active:      true,
		},
	}
	rig.Points[0] = Point{
		Position: math.V3(-5, 6.5, -5),
		Ambient:  math.V3(0.05, 0.05, 0.5),
		Diffuse:  math.Splat3(0.2),
		Specular: math.V3(0.4, 0.3, 0.3),
		Active:   true,
	}

	sink := newRecordingSink()
	rig.Apply(sink)

	assert.Equal(t, math.V3(0, -10, 10), sink.vec3s["viewPosition"])

	assert.True(t, sink.bools["directionalLight.bActive"])
	assert.Equal(t, math.V3(-0.3, -1, -0.3), sink.vec3s["directionalLight.direction"])
	assert.Equal(t, math.Splat3(0.6), sink.vec3s["directionalLight.diffuse"])

	assert.True(t, sink.bools["pointLights[0].bActive"])
	assert.Equal(t, math.V3(-5, 6.5, -5), sink.vec3s["pointLights[0].position"])

	assert.True(t, sink.bools["spotLight.bActive"])
	assert.Equal(t, float32(0.09), sink.floats["spotLight.linear"])
	assert.InDelta(t, math32.Cos(math.Radians(12.5)), sink.floats["spotLight.cutOff"], 1e-6)
}

func TestApplyInactiveSlotsStillFlagged(t *testing.T) {
	rig := &Rig{}
	sink := newRecordingSink()
	rig.Apply(sink)

	// Every slot gets a defined active flag, nothing else.
	for _, name := range []string{
		"directionalLight.bActive",
		"pointLights[0].bActive",
		"pointLights[1].bActive",
		"pointLights[2].bActive",
		"pointLights[3].bActive",
		"spotLight.bActive",
	} {
		v, ok := sink.bools[name]
		assert.True(t, ok, "missing %s", name)
		assert.False(t, v, "%s should be inactive", name)
	}
	assert.NotContains(t, sink.vec3s, "pointLights[0].position")
	assert.NotContains(t, sink.vec3s, "spotLight.position")
}
