// Package lighting models the fixed light set of the scene: one directional
// light, a small bank of point lights and one spotlight.
package lighting

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/deskscene/internal/engine/shader"
	"github.com/Faultbox/deskscene/pkg/math"
)

// MaxPointLights is the size of the point light bank in the fragment shader.
const MaxPointLights = 4

// Directional is a sun-style light with no position.
type Directional struct {
	Direction math.Vec3
	Ambient   math.Vec3
	Diffuse   math.Vec3
	Specular  math.Vec3
	Active    bool
}

// Point is a positional light without a cone.
type Point struct {
	Position math.Vec3
	Ambient  math.Vec3
	Diffuse  math.Vec3
	Specular math.Vec3
	Active   bool
}

// Spot is a positional light restricted to a cone. CutOff and OuterCutOff
// hold the cosines of the inner and outer cone angles; use CutOffCos to
// derive them from degrees. Constant, Linear and Quadratic are the distance
// attenuation terms.
type Spot struct {
	Position    math.Vec3
	Direction   math.Vec3
	CutOff      float32
	OuterCutOff float32
	Ambient     math.Vec3
	Diffuse     math.Vec3
	Specular    math.Vec3
	Constant    float32
	Linear      float32
	Quadratic   float32
	Active      bool
}

// Rig is the complete light configuration of a scene plus the camera position
// the specular terms are computed against. It is configured once at scene
// setup and never mutated afterwards.
type Rig struct {
	Directional  Directional
	Points       [MaxPointLights]Point
	Spot         Spot
	ViewPosition math.Vec3
}

// CutOffCos converts a cone angle in degrees to the cosine form the shader
// compares against.
func CutOffCos(degrees float32) float32 {
	return math32.Cos(math.Radians(degrees))
}

// Apply pushes the entire rig into the sink under the fixed uniform naming
// scheme (directionalLight.*, pointLights[i].*, spotLight.*, viewPosition).
// Inactive lights still get their active flag pushed so the shader sees a
// defined value for every slot.
func (r *Rig) Apply(sink shader.Sink) {
	sink.SetVec3("viewPosition", r.ViewPosition)

	sink.SetBool("directionalLight.bActive", r.Directional.Active)
	if r.Directional.Active {
		sink.SetVec3("directionalLight.direction", r.Directional.Direction)
		sink.SetVec3("directionalLight.ambient", r.Directional.Ambient)
		sink.SetVec3("directionalLight.diffuse", r.Directional.Diffuse)
		sink.SetVec3("directionalLight.specular", r.Directional.Specular)
	}

	for i, p := range r.Points {
		prefix := fmt.Sprintf("pointLights[%d]", i)
		sink.SetBool(prefix+".bActive", p.Active)
		if !p.Active {
			continue
		}
		sink.SetVec3(prefix+".position", p.Position)
		sink.SetVec3(prefix+".ambient", p.Ambient)
		sink.SetVec3(prefix+".diffuse", p.Diffuse)
		sink.SetVec3(prefix+".specular", p.Specular)
	}

	sink.SetBool("spotLight.bActive", r.Spot.Active)
	if r.Spot.Active {
		sink.SetVec3("spotLight.position", r.Spot.Position)
		sink.SetVec3("spotLight.direction", r.Spot.Direction)
		sink.SetFloat("spotLight.cutOff", r.Spot.CutOff)
		sink.SetFloat("spotLight.outerCutOff", r.Spot.OuterCutOff)
		sink.SetVec3("spotLight.ambient", r.Spot.Ambient)
		sink.SetVec3("spotLight.diffuse", r.Spot.Diffuse)
		sink.SetVec3("spotLight.specular", r.Spot.Specular)
		sink.SetFloat("spotLight.constant", r.Spot.Constant)
		sink.SetFloat("spotLight.linear", r.Spot.Linear)
		sink.SetFloat("spotLight.quadratic", r.Spot.Quadratic)
	}
}
