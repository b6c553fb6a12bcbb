package texture

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/deskscene/internal/logger"
)

// MaxSlots is the texture-unit budget shared with the shading stage.
const MaxSlots = 16

// NotFound is the sentinel returned by lookups for unregistered tags.
const NotFound = -1

var (
	// ErrUnsupportedChannels reports a decoded image with a 1- or 2-channel
	// layout, which the upload path does not handle.
	ErrUnsupportedChannels = errors.New("unsupported channel layout")

	// ErrSlotCapacity reports a registration beyond MaxSlots.
	ErrSlotCapacity = errors.New("texture slot capacity exceeded")
)

// Entry associates a tag with an uploaded texture handle and its slot index.
type Entry struct {
	Tag    string
	Handle uint32
	Slot   int
}

// Uploader abstracts the graphics API behind the registry so registration
// logic can be exercised without a GL context.
type Uploader interface {
	// Upload creates a 2D texture from the pixel buffer and returns its
	// handle. channels is 3 (RGB) or 4 (RGBA). The uploaded texture remains
	// bound as a byproduct; callers must not rely on binding state.
	Upload(pix []byte, width, height, channels int) (uint32, error)
	// Bind binds handle to the given texture unit.
	Bind(unit int, handle uint32)
	// Delete releases the given texture handles.
	Delete(handles []uint32)
}

// Registry owns texture entries. Tags are unique among live entries and slot
// indices are dense, assigned in registration order starting at 0.
type Registry struct {
	uploader Uploader
	entries  []Entry
}

// NewRegistry creates an empty registry backed by the given uploader.
func NewRegistry(uploader Uploader) *Registry {
	return &Registry{uploader: uploader}
}

// Register decodes the image at path, uploads it, and appends an entry under
// tag with the next sequential slot. On any failure the registry is unchanged.
func (r *Registry) Register(path, tag string) error {
	if len(r.entries) >= MaxSlots {
		return fmt.Errorf("registering %q: %w", tag, ErrSlotCapacity)
	}

	pix, width, height, channels, err := DecodeFile(path)
	if err != nil {
		return err
	}

	handle, err := r.uploader.Upload(pix, width, height, channels)
	if err != nil {
		return fmt.Errorf("uploading %q: %w", tag, err)
	}

	slot := len(r.entries)
	r.entries = append(r.entries, Entry{Tag: tag, Handle: handle, Slot: slot})

	logger.Info("texture registered",
		zap.String("tag", tag),
		zap.String("path", path),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("channels", channels),
		zap.Int("slot", slot),
	)
	return nil
}

// BindAll binds every live entry's handle to the texture unit equal to its
// slot index, in registration order. Call once after all registrations and
// before any draw that references a texture by slot.
func (r *Registry) BindAll() {
	for _, e := range r.entries {
		r.uploader.Bind(e.Slot, e.Handle)
	}
}

// LookupHandle returns the handle registered under tag, or NotFound.
func (r *Registry) LookupHandle(tag string) int {
	for _, e := range r.entries {
		if e.Tag == tag {
			return int(e.Handle)
		}
	}
	return NotFound
}

// LookupSlot returns the slot index registered under tag, or NotFound.
func (r *Registry) LookupSlot(tag string) int {
	for _, e := range r.entries {
		if e.Tag == tag {
			return e.Slot
		}
	}
	return NotFound
}

// Count returns the number of live entries.
func (r *Registry) Count() int {
	return len(r.entries)
}

// Destroy releases every uploaded texture and empties the registry.
func (r *Registry) Destroy() {
	if len(r.entries) == 0 {
		return
	}
	handles := make([]uint32, len(r.entries))
	for i, e := range r.entries {
		handles[i] = e.Handle
	}
	r.uploader.Delete(handles)
	r.entries = nil
}
