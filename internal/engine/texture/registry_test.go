package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUploader records uploads and binds without touching GL.
type fakeUploader struct {
	nextHandle uint32
	uploads    []struct{ w, h, channels int }
	binds      []struct {
		unit   int
		handle uint32
	}
	deleted []uint32
}

func (f *fakeUploader) Upload(pix []byte, w, h, channels int) (uint32, error) {
	f.uploads = append(f.uploads, struct{ w, h, channels int }{w, h, channels})
	f.nextHandle++
	return f.nextHandle, nil
}

func (f *fakeUploader) Bind(unit int, handle uint32) {
	f.binds = append(f.binds, struct {
		unit   int
		handle uint32
	}{unit, handle})
}

func (f *fakeUploader) Delete(handles []uint32) {
	f.deleted = append(f.deleted, handles...)
}

// writePNG writes img to a new file under dir and returns its path.
func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func rgbaImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 7, A: 255})
		}
	}
	return img
}

func TestRegisterAssignsDenseSlots(t *testing.T) {
	dir := t.TempDir()
	up := &fakeUploader{}
	r := NewRegistry(up)

	for i := 0; i < 3; i++ {
		path := writePNG(t, dir, fmt.Sprintf("tex%d.png", i), rgbaImage(4, 4))
		require.NoError(t, r.Register(path, fmt.Sprintf("tag%d", i)))
	}

	assert.Equal(t, 3, r.Count())
	for i := 0; i < 3; i++ {
		tag := fmt.Sprintf("tag%d", i)
		assert.Equal(t, i, r.LookupSlot(tag), "slot for %s", tag)
		assert.Equal(t, i+1, r.LookupHandle(tag), "handle for %s", tag)
	}
}

func TestLookupMissReturnsSentinel(t *testing.T) {
	r := NewRegistry(&fakeUploader{})
	assert.Equal(t, NotFound, r.LookupSlot("ghost"))
	assert.Equal(t, NotFound, r.LookupHandle("ghost"))
}

func TestRegisterMissingFile(t *testing.T) {
	r := NewRegistry(&fakeUploader{})
	err := r.Register(filepath.Join(t.TempDir(), "absent.png"), "absent")
	assert.Error(t, err)
	assert.Equal(t, 0, r.Count())
}

func TestRegisterGrayscaleRejected(t *testing.T) {
	dir := t.TempDir()
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	path := writePNG(t, dir, "gray.png", gray)

	r := NewRegistry(&fakeUploader{})
	err := r.Register(path, "gray")
	assert.True(t, errors.Is(err, ErrUnsupportedChannels), "got %v", err)
	assert.Equal(t, 0, r.Count())
}

func TestRegisterCapacity(t *testing.T) {
	dir := t.TempDir()
	up := &fakeUploader{}
	r := NewRegistry(up)

	for i := 0; i < MaxSlots; i++ {
		path := writePNG(t, dir, fmt.Sprintf("t%d.png", i), rgbaImage(2, 2))
		require.NoError(t, r.Register(path, fmt.Sprintf("t%d", i)))
	}

	path := writePNG(t, dir, "overflow.png", rgbaImage(2, 2))
	err := r.Register(path, "overflow")
	assert.True(t, errors.Is(err, ErrSlotCapacity), "got %v", err)
	assert.Equal(t, MaxSlots, r.Count())
	assert.Equal(t, NotFound, r.LookupSlot("overflow"))
}

func TestBindAllUsesSlotAsUnit(t *testing.T) {
	dir := t.TempDir()
	up := &fakeUploader{}
	r := NewRegistry(up)

	require.NoError(t, r.Register(writePNG(t, dir, "a.png", rgbaImage(2, 2)), "a"))
	require.NoError(t, r.Register(writePNG(t, dir, "b.png", rgbaImage(2, 2)), "b"))

	r.BindAll()
	require.Len(t, up.binds, 2)
	assert.Equal(t, 0, up.binds[0].unit)
	assert.Equal(t, uint32(1), up.binds[0].handle)
	assert.Equal(t, 1, up.binds[1].unit)
	assert.Equal(t, uint32(2), up.binds[1].handle)
}

func TestDuplicateTagFirstWins(t *testing.T) {
	dir := t.TempDir()
	r := NewRegistry(&fakeUploader{})

	require.NoError(t, r.Register(writePNG(t, dir, "a.png", rgbaImage(2, 2)), "dup"))
	require.NoError(t, r.Register(writePNG(t, dir, "b.png", rgbaImage(2, 2)), "dup"))

	assert.Equal(t, 0, r.LookupSlot("dup"))
	assert.Equal(t, 1, r.LookupHandle("dup"))
}

func TestDestroyEmptiesRegistry(t *testing.T) {
	dir := t.TempDir()
	up := &fakeUploader{}
	r := NewRegistry(up)
	require.NoError(t, r.Register(writePNG(t, dir, "a.png", rgbaImage(2, 2)), "a"))

	r.Destroy()
	assert.Equal(t, 0, r.Count())
	assert.Equal(t, []uint32{1}, up.deleted)
	assert.Equal(t, NotFound, r.LookupSlot("a"))
}
