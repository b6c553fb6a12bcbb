package mesh

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometryWellFormed(t *testing.T) {
	kinds := []Kind{Plane, Box, Cone, Cylinder, Sphere, TaperedCylinder}
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			verts, indices := geometry(k)
			require.NotEmpty(t, verts)
			require.NotEmpty(t, indices)

			assert.Zero(t, len(verts)%vertexStride, "vertex buffer must be whole vertices")
			assert.Zero(t, len(indices)%3, "index buffer must be whole triangles")

			vertexCount := uint32(len(verts) / vertexStride)
			for _, idx := range indices {
				assert.Less(t, idx, vertexCount, "index out of range")
			}

			// Normals are unit length.
			for v := 0; v < len(verts); v += vertexStride {
				nx, ny, nz := verts[v+3], verts[v+4], verts[v+5]
				l := math32.Sqrt(nx*nx + ny*ny + nz*nz)
				assert.InDelta(t, 1.0, l, 1e-4, "normal at vertex %d", v/vertexStride)
			}
		})
	}
}

func TestPlaneFacesUp(t *testing.T) {
	verts, indices := planeGeometry()
	assert.Len(t, indices, 6)
	for v := 0; v < len(verts); v += vertexStride {
		assert.Equal(t, float32(0), verts[v+1], "plane lies in XZ")
		assert.Equal(t, float32(1), verts[v+4], "plane normal is +Y")
	}
}

func TestBoxShape(t *testing.T) {
	verts, indices := boxGeometry()
	assert.Len(t, indices, 36)
	assert.Len(t, verts, 24*vertexStride)
	// Unit cube centered on origin.
	for v := 0; v < len(verts); v += vertexStride {
		for c := 0; c < 3; c++ {
			assert.Equal(t, float32(0.5), math32.Abs(verts[v+c]))
		}
	}
}

func TestSphereRadius(t *testing.T) {
	verts, _ := sphereGeometry()
	for v := 0; v < len(verts); v += vertexStride {
		x, y, z := verts[v], verts[v+1], verts[v+2]
		r := math32.Sqrt(x*x + y*y + z*z)
		assert.InDelta(t, 1.0, r, 1e-4)
	}
}

func TestFrustumHeightAndRadii(t *testing.T) {
	tests := []struct {
		name   string
		bottom float32
		top    float32
	}{
		{"cylinder", 1, 1},
		{"cone", 1, 0},
		{"tapered", 1, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verts, _ := frustumGeometry(tt.bottom, tt.top)
			for v := 0; v < len(verts); v += vertexStride {
				y := verts[v+1]
				assert.GreaterOrEqual(t, y, float32(0))
				assert.LessOrEqual(t, y, float32(1))

				x, z := verts[v], verts[v+2]
				r := math32.Sqrt(x*x + z*z)
				maxR := tt.bottom
				if tt.top > maxR {
					maxR = tt.top
				}
				assert.LessOrEqual(t, r, maxR+1e-4)
			}
		})
	}
}
