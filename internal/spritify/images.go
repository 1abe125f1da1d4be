package spritify

import (
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/h2non/filetype"
)

// ImageInspector reports the pixel dimensions of an image on disk.
// A missing file must produce an error matching fs.ErrNotExist.
type ImageInspector interface {
	Dimensions(path string) (width, height int, err error)
}

// sniffLen is how many leading bytes filetype needs to recognize an image
const sniffLen = 261

// FileInspector reads dimensions from PNG headers without decoding pixels
type FileInspector struct{}

// Dimensions implements ImageInspector
func (FileInspector) Dimensions(path string) (int, int, error) {
	// #nosec G304 - path comes from the stylesheet being processed
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		return 0, 0, fmt.Errorf("read %s: %w", path, err)
	}
	if !filetype.Is(head[:n], "png") {
		return 0, 0, fmt.Errorf("%w: %s", ErrNotPNG, path)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return 0, 0, fmt.Errorf("read %s: %w", path, err)
	}
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode %s: %w", path, err)
	}

	return cfg.Width, cfg.Height, nil
}

// cachedInspector queries each path once per run
type cachedInspector struct {
	inner ImageInspector
	sizes map[string][2]int
}

func newCachedInspector(inner ImageInspector) *cachedInspector {
	return &cachedInspector{inner: inner, sizes: make(map[string][2]int)}
}

// Dimensions implements ImageInspector. Errors are not cached; they abort the run.
func (c *cachedInspector) Dimensions(path string) (int, int, error) {
	if size, ok := c.sizes[path]; ok {
		return size[0], size[1], nil
	}
	w, h, err := c.inner.Dimensions(path)
	if err != nil {
		return 0, 0, err
	}
	c.sizes[path] = [2]int{w, h}
	return w, h, nil
}
