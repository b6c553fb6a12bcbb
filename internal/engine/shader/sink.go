// Package shader provides GLSL program compilation and a named-uniform sink
// used to push per-draw state into the shading stage.
package shader

import "github.com/Faultbox/deskscene/pkg/math"

// Sink accepts named uniform values for the shading stage. Uniform names form
// the wire contract with the GLSL sources; see the shaders package.
type Sink interface {
	SetBool(name string, v bool)
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec2(name string, v math.Vec2)
	SetVec3(name string, v math.Vec3)
	SetVec4(name string, v math.Vec4)
	SetMat4(name string, m math.Mat4)
}
