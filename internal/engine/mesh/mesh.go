// Package mesh provides the primitive shapes the scene is assembled from.
// Geometry is generated procedurally; each kind is loaded into GPU buffers
// once and drawn any number of times with whatever transform and shader
// state was pushed beforehand.
package mesh

// Kind identifies a primitive shape.
type Kind int

// The supported primitive kinds.
const (
	Plane Kind = iota
	Box
	Cone
	Cylinder
	Sphere
	TaperedCylinder
	kindCount
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case Plane:
		return "plane"
	case Box:
		return "box"
	case Cone:
		return "cone"
	case Cylinder:
		return "cylinder"
	case Sphere:
		return "sphere"
	case TaperedCylinder:
		return "tapered cylinder"
	default:
		return "unknown"
	}
}

// Drawer loads primitive meshes into the graphics backend and draws them.
// Load is idempotent per kind; Draw consumes the most recently pushed
// transform and shader state.
type Drawer interface {
	Load(k Kind)
	Draw(k Kind)
	Destroy()
}
