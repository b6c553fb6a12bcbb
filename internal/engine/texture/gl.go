package texture

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLUploader uploads pixel buffers as OpenGL 2D textures with repeat
// wrapping, linear filtering and a generated mipmap chain.
type GLUploader struct{}

// NewGLUploader returns an uploader backed by the current GL context.
func NewGLUploader() *GLUploader {
	return &GLUploader{}
}

// Upload implements Uploader. The new texture stays bound to GL_TEXTURE_2D.
func (GLUploader) Upload(pix []byte, width, height, channels int) (uint32, error) {
	var internalFormat int32
	var format uint32
	switch channels {
	case 3:
		internalFormat = gl.RGB8
		format = gl.RGB
	case 4:
		internalFormat = gl.RGBA8
		format = gl.RGBA
	default:
		return 0, fmt.Errorf("upload with %d channels: %w", channels, ErrUnsupportedChannels)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// RGB rows are not 4-byte aligned.
	if channels == 3 {
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
		defer gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	}

	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, int32(width), int32(height),
		0, format, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	return id, nil
}

// Bind implements Uploader.
func (GLUploader) Bind(unit int, handle uint32) {
	gl.ActiveTexture(uint32(gl.TEXTURE0 + unit))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

// Delete implements Uploader.
func (GLUploader) Delete(handles []uint32) {
	if len(handles) > 0 {
		gl.DeleteTextures(int32(len(handles)), &handles[0])
	}
}
