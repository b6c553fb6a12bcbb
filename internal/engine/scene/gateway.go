package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/deskscene/internal/engine/texture"
	"github.com/Faultbox/deskscene/internal/engine/transform"
	"github.com/Faultbox/deskscene/internal/logger"
	"github.com/Faultbox/deskscene/pkg/math"
)

// Uniform names shared with the GLSL sources. These strings are the wire
// contract with the shading stage; see the shaders package.
const (
	uniformModel       = "model"
	uniformColor       = "objectColor"
	uniformTexture     = "objectTexture"
	uniformUseTexture  = "bUseTexture"
	uniformUseLighting = "bUseLighting"
	uniformUVScale     = "UVscale"
)

// SetTransformations composes a model matrix from the given scale, XYZ Euler
// rotation in degrees and position, and pushes it for the next draw.
func (s *Scene) SetTransformations(scale, rotationDeg, position math.Vec3) {
	s.sink.SetMat4(uniformModel, transform.Compose(scale, rotationDeg, position))
}

// setModel pushes a pre-composed model matrix, for meshes that need a
// rotation about a pivot rather than about their own origin.
func (s *Scene) setModel(m math.Mat4) {
	s.sink.SetMat4(uniformModel, m)
}

// SetShaderColor switches the next draw to flat-color shading. Mutually
// exclusive with texture mode; the last call before a draw wins.
func (s *Scene) SetShaderColor(r, g, b, a float32) {
	s.sink.SetBool(uniformUseTexture, false)
	s.sink.SetVec4(uniformColor, math.Vec4{X: r, Y: g, Z: b, W: a})
}

// SetShaderTexture switches the next draw to texture sampling from the slot
// registered under tag. An unregistered tag falls back to flat-color mode
// rather than pushing the not-found sentinel as a sampler index, which would
// leave sampling undefined.
func (s *Scene) SetShaderTexture(tag string) {
	slot := s.textures.LookupSlot(tag)
	if slot == texture.NotFound {
		logger.Warn("texture tag not found, falling back to flat color", zap.String("tag", tag))
		s.sink.SetBool(uniformUseTexture, false)
		return
	}
	s.sink.SetBool(uniformUseTexture, true)
	s.sink.SetInt(uniformTexture, int32(slot))
}

// SetTextureUVScale sets the tiling factor applied to texture coordinates.
func (s *Scene) SetTextureUVScale(u, v float32) {
	s.sink.SetVec2(uniformUVScale, math.Vec2{X: u, Y: v})
}

// SetShaderMaterial pushes the material registered under tag. On a lookup
// miss nothing is pushed and the previously set material persists, so every
// draw that needs a material must set one first.
func (s *Scene) SetShaderMaterial(tag string) {
	m, ok := s.materials.Lookup(tag)
	if !ok {
		logger.Warn("material tag not found", zap.String("tag", tag))
		return
	}
	s.sink.SetVec3("material.diffuseColor", m.Diffuse)
	s.sink.SetVec3("material.specularColor", m.Specular)
	s.sink.SetFloat("material.shininess", m.Shininess)
}

// SetLighting toggles the lighting model for subsequent draws.
func (s *Scene) SetLighting(enabled bool) {
	s.sink.SetBool(uniformUseLighting, enabled)
}
