package mesh

import "github.com/chewxy/math32"

// Vertex layout: position (3), normal (3), texture coordinate (2),
// interleaved. Stride in floats:
const vertexStride = 8

const (
	circleSlices = 36
	sphereStacks = 18
	sphereSlices = 36
)

// geometry returns the interleaved vertex buffer and index buffer for a kind.
// All shapes are unit-sized so draw calls shape them purely through scale:
// the plane and box are centered on the origin, the cylinder family has its
// base at y=0 and height 1, the sphere has radius 1.
func geometry(k Kind) (verts []float32, indices []uint32) {
	switch k {
	case Plane:
		return planeGeometry()
	case Box:
		return boxGeometry()
	case Cone:
		return frustumGeometry(1, 0)
	case Cylinder:
		return frustumGeometry(1, 1)
	case TaperedCylinder:
		return frustumGeometry(1, 0.5)
	case Sphere:
		return sphereGeometry()
	default:
		return nil, nil
	}
}

// planeGeometry is a unit quad in the XZ plane facing +Y, spanning -1..1.
func planeGeometry() ([]float32, []uint32) {
	verts := []float32{
		-1, 0, -1, 0, 1, 0, 0, 1,
		-1, 0, 1, 0, 1, 0, 0, 0,
		1, 0, 1, 0, 1, 0, 1, 0,
		1, 0, -1, 0, 1, 0, 1, 1,
	}
	indices := []uint32{0, 1, 2, 0, 2, 3}
	return verts, indices
}

// boxGeometry is a unit cube centered on the origin, 24 vertices so each
// face carries its own normal.
func boxGeometry() ([]float32, []uint32) {
	type face struct {
		normal  [3]float32
		corners [4][3]float32
	}
	const h = 0.5
	// Front, back, left, right, top, bottom.
	faces := []face{
		{[3]float32{0, 0, 1}, [4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	var verts []float32
	var indices []uint32
	for fi, f := range faces {
		for ci, c := range f.corners {
			verts = append(verts,
				c[0], c[1], c[2],
				f.normal[0], f.normal[1], f.normal[2],
				uvs[ci][0], uvs[ci][1],
			)
		}
		base := uint32(fi * 4)
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return verts, indices
}

// frustumGeometry builds a capped solid of revolution with the given bottom
// and top radii, base at y=0 and top at y=1. topRadius 0 yields a cone,
// equal radii a cylinder.
func frustumGeometry(bottomRadius, topRadius float32) ([]float32, []uint32) {
	var verts []float32
	var indices []uint32

	// Side normals tilt with the slope of the wall.
	slope := bottomRadius - topRadius
	nscale := 1 / math32.Sqrt(1+slope*slope)
	ny := slope * nscale

	// Side rings: bottom then top, one extra column to close the seam in UV.
	for _, ring := range []struct {
		y, radius, v float32
	}{{0, bottomRadius, 0}, {1, topRadius, 1}} {
		for i := 0; i <= circleSlices; i++ {
			theta := 2 * math32.Pi * float32(i) / circleSlices
			c, s := math32.Cos(theta), math32.Sin(theta)
			verts = append(verts,
				ring.radius*c, ring.y, ring.radius*s,
				c*nscale, ny, s*nscale,
				float32(i)/circleSlices, ring.v,
			)
		}
	}
	cols := uint32(circleSlices + 1)
	for i := uint32(0); i < circleSlices; i++ {
		b0, b1 := i, i+1
		t0, t1 := cols+i, cols+i+1
		indices = append(indices, b0, t0, b1, b1, t0, t1)
	}

	// Caps: center vertex plus a fan. Skip a degenerate top cap.
	addCap := func(y, radius, normalY float32) {
		if radius == 0 {
			return
		}
		center := uint32(len(verts) / vertexStride)
		verts = append(verts, 0, y, 0, 0, normalY, 0, 0.5, 0.5)
		for i := 0; i <= circleSlices; i++ {
			theta := 2 * math32.Pi * float32(i) / circleSlices
			c, s := math32.Cos(theta), math32.Sin(theta)
			verts = append(verts,
				radius*c, y, radius*s,
				0, normalY, 0,
				0.5+c/2, 0.5+s/2,
			)
		}
		for i := uint32(0); i < circleSlices; i++ {
			if normalY > 0 {
				indices = append(indices, center, center+1+i, center+2+i)
			} else {
				indices = append(indices, center, center+2+i, center+1+i)
			}
		}
	}
	addCap(0, bottomRadius, -1)
	addCap(1, topRadius, 1)

	return verts, indices
}

// sphereGeometry is a UV sphere of radius 1 centered on the origin.
func sphereGeometry() ([]float32, []uint32) {
	var verts []float32
	var indices []uint32

	for stack := 0; stack <= sphereStacks; stack++ {
		phi := math32.Pi * float32(stack) / sphereStacks
		y := math32.Cos(phi)
		r := math32.Sin(phi)
		for slice := 0; slice <= sphereSlices; slice++ {
			theta := 2 * math32.Pi * float32(slice) / sphereSlices
			x := r * math32.Cos(theta)
			z := r * math32.Sin(theta)
			verts = append(verts,
				x, y, z,
				x, y, z, // unit sphere: normal equals position
				float32(slice)/sphereSlices, 1-float32(stack)/sphereStacks,
			)
		}
	}

	cols := uint32(sphereSlices + 1)
	for stack := uint32(0); stack < sphereStacks; stack++ {
		for slice := uint32(0); slice < sphereSlices; slice++ {
			a := stack*cols + slice
			b := a + cols
			indices = append(indices, a, b, a+1, a+1, b, b+1)
		}
	}

	return verts, indices
}
