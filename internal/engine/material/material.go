// Package material owns the mapping from symbolic tags to surface material
// properties used by the lighting model.
package material

import "github.com/Faultbox/deskscene/pkg/math"

// Material holds the lighting properties of a surface. Color components are
// linear-range and deliberately unclamped; values above 1.0 emulate bright
// highlights. Shininess is the specular exponent and must be non-negative.
type Material struct {
	Tag       string
	Diffuse   math.Vec3
	Specular  math.Vec3
	Shininess float32
}

// Registry is an ordered material list. Duplicate tags are legal; lookups
// return the first match.
type Registry struct {
	materials []Material
}

// NewRegistry creates an empty material registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a material. No uniqueness check is performed.
func (r *Registry) Register(m Material) {
	r.materials = append(r.materials, m)
}

// Lookup scans in registration order and returns the first material with the
// given tag. ok is false when the registry is empty or no tag matches; the
// caller must not push material state in that case.
func (r *Registry) Lookup(tag string) (Material, bool) {
	for _, m := range r.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// Count returns the number of registered materials.
func (r *Registry) Count() int {
	return len(r.materials)
}
