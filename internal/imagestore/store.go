// Package imagestore keeps user-uploaded flashcard images in memory for the
// life of the process.
package imagestore

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// DefaultMaxBytes caps a single upload.
const DefaultMaxBytes = 5 << 20

var (
	ErrNotFound         = errors.New("image not found")
	ErrEmpty            = errors.New("image is empty")
	ErrTooLarge         = errors.New("image too large")
	ErrUnsupportedImage = errors.New("unsupported image type")
)

// Image is a stored upload.
type Image struct {
	ID          string
	ContentType string
	Data        []byte
}

// Store holds uploads keyed by ID.
type Store struct {
	mu       sync.RWMutex
	images   map[string]Image
	maxBytes int64
}

// New creates an empty store. maxBytes <= 0 uses DefaultMaxBytes.
func New(maxBytes int64) *Store {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Store{
		images:   make(map[string]Image),
		maxBytes: maxBytes,
	}
}

// MaxBytes returns the per-upload limit.
func (s *Store) MaxBytes() int64 {
	return s.maxBytes
}

// Put sniffs data, keeps it when it is an image and returns its locator.
func (s *Store) Put(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmpty
	}
	if int64(len(data)) > s.maxBytes {
		return "", fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, len(data), s.maxBytes)
	}
	mt := mimetype.Detect(data)
	// SVG can carry script, so only raster formats are served back.
	if !strings.HasPrefix(mt.String(), "image/") || mt.Is("image/svg+xml") {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedImage, mt.String())
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	img := Image{
		ID:          uuid.NewString(),
		ContentType: mt.String(),
		Data:        buf,
	}
	s.mu.Lock()
	s.images[img.ID] = img
	s.mu.Unlock()
	return img.ID, nil
}

// Get returns an upload by locator.
func (s *Store) Get(id string) (Image, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, ok := s.images[id]
	if !ok {
		return Image{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return img, nil
}
