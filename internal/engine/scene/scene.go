// Package scene prepares and renders the study-room scene: a desk with a
// lamp, a book and an analog clock, inside a simple room. It owns the
// texture and material registries, the light rig and the per-frame draw
// sequence, pushing all state through a shader sink.
package scene

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/deskscene/internal/engine/lighting"
	"github.com/Faultbox/deskscene/internal/engine/material"
	"github.com/Faultbox/deskscene/internal/engine/mesh"
	"github.com/Faultbox/deskscene/internal/engine/shader"
	"github.com/Faultbox/deskscene/internal/engine/texture"
	"github.com/Faultbox/deskscene/internal/logger"
	"github.com/Faultbox/deskscene/pkg/math"
)

// Scene orchestrates scene preparation and per-frame rendering. Prepare runs
// once; Render runs once per frame. All registry mutation happens in Prepare,
// Render only reads.
type Scene struct {
	sink      shader.Sink
	textures  *texture.Registry
	materials *material.Registry
	meshes    mesh.Drawer
	lights    lighting.Rig
	clock     Clock

	textureDir string
	prepared   bool
}

// Option configures a Scene.
type Option func(*Scene)

// WithClock overrides the wall-clock time source, making the clock hands
// deterministic.
func WithClock(c Clock) Option {
	return func(s *Scene) { s.clock = c }
}

// WithTextureDir sets the directory texture images are loaded from.
func WithTextureDir(dir string) Option {
	return func(s *Scene) { s.textureDir = dir }
}

// New creates a scene over the given sink, texture registry and mesh drawer.
func New(sink shader.Sink, textures *texture.Registry, meshes mesh.Drawer, opts ...Option) *Scene {
	s := &Scene{
		sink:       sink,
		textures:   textures,
		materials:  material.NewRegistry(),
		meshes:     meshes,
		clock:      SystemClock,
		textureDir: "textures",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Prepare runs the one-time setup phase: lights, then materials, then
// textures, then primitive meshes. Calling it again is a no-op.
func (s *Scene) Prepare() error {
	if s.prepared {
		logger.Warn("scene already prepared")
		return nil
	}

	s.setupLights()
	s.registerMaterials()
	s.loadTextures()

	for _, k := range []mesh.Kind{
		mesh.Plane, mesh.Box, mesh.Cone, mesh.Cylinder, mesh.Sphere, mesh.TaperedCylinder,
	} {
		s.meshes.Load(k)
	}

	s.prepared = true
	logger.Info("scene prepared",
		zap.Int("textures", s.textures.Count()),
		zap.Int("materials", s.materials.Count()),
	)
	return nil
}

// Destroy releases scene-owned GPU resources.
func (s *Scene) Destroy() {
	s.textures.Destroy()
	s.meshes.Destroy()
}

// setupLights configures the fixed light rig and pushes it once: one warm
// overhead directional light, a cool point light in the back corner and the
// lamp spotlight aimed across the desk.
func (s *Scene) setupLights() {
	s.SetLighting(true)

	s.lights = lighting.Rig{
		ViewPosition: math.V3(0, -10, 10),
		Directional: lighting.Directional{
			Direction: math.V3(-0.3, -1, -0.3),
			Ambient:   math.Splat3(0.2),
			Diffuse:   math.Splat3(0.6),
			Specular:  math.Splat3(1),
			Active:    true,
		},
		Spot: lighting.Spot{
			Position:    math.V3(-2.2, 6.5, 2.5), // tip of the lamp head
			Direction:   math.V3(-0.7, -1.5, 1),
			CutOff:      lighting.CutOffCos(12.5),
			OuterCutOff: lighting.CutOffCos(35.5),
			Ambient:     math.Splat3(0.001),
			Diffuse:     math.V3(4, 4.4, 4),
			Specular:    math.Splat3(3),
			Constant:    1,
			Linear:      0.09,
			Quadratic:   0.032,
			Active:      true,
		},
	}
	s.lights.Points[0] = lighting.Point{
		Position: math.V3(-5, 6.5, -5),
		Ambient:  math.V3(0.05, 0.05, 0.5),
		Diffuse:  math.Splat3(0.2),
		Specular: math.V3(0.4, 0.3, 0.3),
		Active:   true,
	}

	s.lights.Apply(s.sink)
}

// registerMaterials populates the material table for every tagged surface.
func (s *Scene) registerMaterials() {
	for _, m := range []material.Material{
		{Tag: "desk", Diffuse: math.V3(0.8, 0.5, 0.2), Specular: math.Splat3(0.5), Shininess: 32},
		{Tag: "lamp", Diffuse: math.Splat3(0.8), Specular: math.Splat3(0.5), Shininess: 64},
		{Tag: "lamp_head", Diffuse: math.Splat3(0.5), Specular: math.Splat3(0.8), Shininess: 32},
		{Tag: "lamp_base", Diffuse: math.Splat3(0.7), Specular: math.Splat3(0.4), Shininess: 16},
		{Tag: "rubber", Diffuse: math.Splat3(0.6), Specular: math.Splat3(0.3), Shininess: 16},
		{Tag: "cover", Diffuse: math.Splat3(0.5), Specular: math.V3(0.1, 0.1, 0.2), Shininess: 1},
		{Tag: "fabric", Diffuse: math.Splat3(0.5), Specular: math.Splat3(0.1), Shininess: 1},
		{Tag: "fabric_black", Diffuse: math.Splat3(1), Specular: math.Splat3(0.1), Shininess: 0.4},
		{Tag: "clock_face", Diffuse: math.Splat3(1), Specular: math.Splat3(0.1), Shininess: 0.4},
		{Tag: "marble", Diffuse: math.V3(0.8, 0.5, 0.2), Specular: math.Splat3(1), Shininess: 64},
		{Tag: "planks", Diffuse: math.V3(0.8, 0.5, 0.2), Specular: math.Splat3(0.5), Shininess: 0.5},
		{Tag: "ceiling", Diffuse: math.V3(0.8, 0.5, 0.2), Specular: math.Splat3(0.5), Shininess: 5},
	} {
		s.materials.Register(m)
	}
}

// loadTextures registers and binds the scene texture set. A failed
// registration is logged and skipped; the object falls back to flat color.
func (s *Scene) loadTextures() {
	for _, tex := range []struct {
		file, tag string
	}{
		{"wood_desk.png", "desk"},
		{"lamp_bronze.jpg", "bronze"},
		{"lamp_chrome.jpg", "chrome"},
		{"rubber.jpg", "rubber"},
		{"book_cover.jpg", "cover"},
		{"book_fabric.jpg", "fabric"},
		{"fabric_black.jpg", "fabric_black"},
		{"clock_face.jpg", "clock_face"},
		{"ceiling.jpg", "ceiling"},
		{"wall_planks.jpg", "planks"},
		{"marble_floor.jpg", "marble"},
	} {
		path := filepath.Join(s.textureDir, tex.file)
		if err := s.textures.Register(path, tex.tag); err != nil {
			logger.Error("texture load failed", zap.String("tag", tex.tag), zap.Error(err))
		}
	}
	s.textures.BindAll()
}
