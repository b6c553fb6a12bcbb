package scene

import (
	"github.com/Faultbox/deskscene/internal/engine/mesh"
	"github.com/Faultbox/deskscene/internal/engine/transform"
	"github.com/Faultbox/deskscene/pkg/math"
)

// Render draws one frame: the static furniture and room, then the three
// clock hands rotated for the current time of day. Each object follows the
// same pattern: push transform, push shader state, draw. Lookup misses
// degrade to flat color or stale material state; the frame never aborts.
func (s *Scene) Render() {
	hour, minute, second := s.clock()
	hourAngle, minuteAngle, secondAngle := HandAngles(hour, minute, second)

	s.drawDesk()
	s.drawLamp()
	s.drawBook()
	s.drawRoom()
	s.drawClock(hourAngle, minuteAngle, secondAngle)
}

func (s *Scene) drawDesk() {
	// Desk top, two slabs for a beveled edge.
	s.SetShaderTexture("desk")
	s.SetShaderMaterial("desk")
	s.SetTextureUVScale(4, 4)
	s.SetTransformations(math.V3(25, 0.5, 12), math.Vec3{}, math.V3(0, -0.3, 2))
	s.meshes.Draw(mesh.Box)

	s.SetTransformations(math.V3(20, 0.3, 11), math.Vec3{}, math.V3(0, -0.3, 2))
	s.meshes.Draw(mesh.Box)

	// Legs.
	legScale := math.V3(0.5, 5, 0.5)
	legY := -0.3 - legScale.Y/2.1
	s.SetShaderColor(0.2, 0.2, 0.2, 1)
	for _, pos := range []math.Vec3{
		{X: -9, Y: legY, Z: 3.5},
		{X: 9, Y: legY, Z: 3.5},
		{X: -9, Y: legY, Z: -3.5},
		{X: 9, Y: legY, Z: -3.5},
	} {
		s.SetTransformations(legScale, math.Vec3{}, pos)
		s.meshes.Draw(mesh.Box)
	}
}

func (s *Scene) drawLamp() {
	// Base, wide and flat on the desk.
	s.SetShaderTexture("bronze")
	s.SetShaderMaterial("lamp_base")
	s.SetTextureUVScale(1, 1)
	s.SetTransformations(math.V3(2.5, 0.8, 2.5), math.Vec3{}, math.V3(0, 0.05, 0))
	s.meshes.Draw(mesh.Cylinder)

	// Lower pole.
	s.SetShaderTexture("bronze")
	s.SetShaderMaterial("lamp")
	s.SetTransformations(math.V3(0.3, 6.6, 0.3), math.Vec3{}, math.V3(0, 0.7, 0))
	s.meshes.Draw(mesh.Cylinder)

	// Upper pole, angled out over the desk.
	s.SetTransformations(math.V3(0.3, 2, 0.3), math.V3(75, -45, 0), math.V3(0, 7.5, 0))
	s.meshes.Draw(mesh.Cylinder)

	// Hinges.
	s.SetShaderTexture("rubber")
	s.SetShaderMaterial("rubber")
	s.SetTransformations(math.Splat3(0.5), math.V3(0, 45, 0), math.V3(0, 7.5, 0))
	s.meshes.Draw(mesh.Sphere)
	s.SetTransformations(math.Splat3(0.5), math.V3(0, 45, 0), math.V3(-1.5, 8.1, 1.5))
	s.meshes.Draw(mesh.Sphere)

	// Head, a cone tilted down toward the desk.
	s.SetShaderTexture("chrome")
	s.SetShaderMaterial("lamp_head")
	s.SetTransformations(math.V3(1.5, 2, 1.5), math.V3(35, 145, 0), math.V3(-2.2, 6.5, 2.5))
	s.meshes.Draw(mesh.Cone)
}

func (s *Scene) drawBook() {
	// Bottom cover.
	s.SetShaderTexture("fabric_black")
	s.SetShaderMaterial("fabric_black")
	s.SetTransformations(math.V3(4.7, 0.2, 3.8), math.Vec3{}, math.V3(-3, 0.1, 6))
	s.meshes.Draw(mesh.Box)

	// Page block.
	s.SetShaderColor(1, 1, 0.9, 1)
	for i := 0; i < 8; i++ {
		s.SetTransformations(
			math.V3(4.65, 0.04, 3.7),
			math.Vec3{},
			math.V3(-3.03, 0.21+float32(i)*0.045, 6),
		)
		s.meshes.Draw(mesh.Box)
	}

	// Top cover and spine.
	s.SetShaderTexture("fabric_black")
	s.SetShaderMaterial("fabric_black")
	s.SetTransformations(math.V3(4.7, 0.2, 3.8), math.Vec3{}, math.V3(-3, 0.64, 6))
	s.meshes.Draw(mesh.Box)
	s.SetTransformations(math.V3(0.2, 0.74, 3.8), math.Vec3{}, math.V3(-5.45, 0.37, 6))
	s.meshes.Draw(mesh.Box)

	// Cover artwork on top.
	s.SetShaderTexture("cover")
	s.SetShaderMaterial("cover")
	s.SetTextureUVScale(1, 1)
	s.SetTransformations(math.V3(1.9, 0.01, 2.35), math.V3(0, 90, 0), math.V3(-3, 0.742, 6))
	s.meshes.Draw(mesh.Plane)
}

func (s *Scene) drawRoom() {
	s.SetShaderTexture("planks")
	s.SetShaderMaterial("planks")
	s.SetTextureUVScale(4, 2)

	// Back, left and right walls.
	s.SetTransformations(math.V3(40, 20, 0.5), math.Vec3{}, math.V3(0, 5, -20))
	s.meshes.Draw(mesh.Box)
	s.SetTransformations(math.V3(0.5, 20, 40), math.Vec3{}, math.V3(-20, 5, 0))
	s.meshes.Draw(mesh.Box)
	s.SetTransformations(math.V3(0.5, 20, 40), math.Vec3{}, math.V3(20, 5, 0))
	s.meshes.Draw(mesh.Box)

	// Floor.
	s.SetShaderTexture("marble")
	s.SetShaderMaterial("marble")
	s.SetTextureUVScale(6, 6)
	s.SetTransformations(math.V3(40, 0.3, 40), math.Vec3{}, math.V3(0, -5, 0))
	s.meshes.Draw(mesh.Box)

	// Door on the back wall.
	s.SetShaderColor(0.3, 0.2, 0.1, 1)
	s.SetTransformations(math.V3(9, 16, 0.2), math.Vec3{}, math.V3(7, 2.5, -19.75))
	s.meshes.Draw(mesh.Box)

	// Ceiling.
	s.SetShaderTexture("ceiling")
	s.SetShaderMaterial("ceiling")
	s.SetTextureUVScale(4, 4)
	s.SetTransformations(math.V3(40, 0.3, 40), math.Vec3{}, math.V3(0, 15, 0))
	s.meshes.Draw(mesh.Box)
}

func (s *Scene) drawClock(hourAngle, minuteAngle, secondAngle float32) {
	// Face, a thin cylinder turned to stand upright.
	s.SetShaderTexture("clock_face")
	s.SetShaderMaterial("clock_face")
	s.SetTextureUVScale(1, 1)
	s.SetTransformations(math.V3(1, 0.1, 1), math.V3(90, 180, 180), math.V3(6, 1, 2))
	s.meshes.Draw(mesh.Cylinder)

	// Base and stand.
	s.SetShaderColor(0.3, 0.3, 0.3, 1)
	s.SetTransformations(math.V3(0.4, 1, 0.4), math.Vec3{}, math.V3(6, 0.3, 1.7))
	s.meshes.Draw(mesh.Box)
	s.SetTransformations(math.Splat3(0.4), math.V3(90, 0, 0), math.V3(6, 1, 1.65))
	s.meshes.Draw(mesh.Sphere)

	// Hands rotate about the face center, each extending outward by half its
	// length and sitting slightly proud of the one below.
	center := math.V3(6, 1.05, 2.008)
	hands := []struct {
		scale   math.Vec3
		angle   float32
		r, g, b float32
		zLift   float32
	}{
		{math.V3(0.4, 0.03, 0.01), hourAngle, 0.2, 0.2, 0.2, 0},
		{math.V3(0.7, 0.03, 0.01), minuteAngle, 0.1, 0.1, 0.1, 0.002},
		{math.V3(0.8, 0.02, 0.01), secondAngle, 1, 0, 0, 0.007},
	}
	for _, h := range hands {
		pivot := center
		pivot.Z += h.zLift
		s.setModel(transform.AboutPivot(pivot, h.angle, math.V3(h.scale.X/2, 0, 0), h.scale))
		s.SetShaderColor(h.r, h.g, h.b, 1)
		s.meshes.Draw(mesh.Box)
	}
}
