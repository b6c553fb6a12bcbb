package mesh

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/deskscene/internal/logger"
)

// GLDrawer owns one VAO/VBO/EBO triple per loaded primitive kind.
// Vertex attributes: location 0 position, 1 normal, 2 texture coordinate.
type GLDrawer struct {
	buffers [kindCount]glBuffers
}

type glBuffers struct {
	vao, vbo, ebo uint32
	indexCount    int32
	loaded        bool
}

// NewGLDrawer returns a drawer backed by the current GL context.
func NewGLDrawer() *GLDrawer {
	return &GLDrawer{}
}

// Load generates the geometry for a kind and uploads it. Loading an
// already-loaded kind is a no-op; only one copy of each mesh lives in GPU
// memory regardless of how often it is drawn.
func (d *GLDrawer) Load(k Kind) {
	if k < 0 || k >= kindCount || d.buffers[k].loaded {
		return
	}

	verts, indices := geometry(k)

	var b glBuffers
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(vertexStride * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	b.indexCount = int32(len(indices))
	b.loaded = true
	d.buffers[k] = b

	logger.Debug("mesh loaded",
		zap.Stringer("kind", k),
		zap.Int("vertices", len(verts)/vertexStride),
		zap.Int32("indices", b.indexCount),
	)
}

// Draw renders a loaded kind with the current program state. Drawing an
// unloaded kind is logged and skipped.
func (d *GLDrawer) Draw(k Kind) {
	if k < 0 || k >= kindCount || !d.buffers[k].loaded {
		logger.Warn("draw of unloaded mesh", zap.Stringer("kind", k))
		return
	}
	b := d.buffers[k]
	gl.BindVertexArray(b.vao)
	gl.DrawElements(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy releases all GPU buffers.
func (d *GLDrawer) Destroy() {
	for k := range d.buffers {
		b := &d.buffers[k]
		if !b.loaded {
			continue
		}
		gl.DeleteBuffers(1, &b.vbo)
		gl.DeleteBuffers(1, &b.ebo)
		gl.DeleteVertexArrays(1, &b.vao)
		*b = glBuffers{}
	}
}
