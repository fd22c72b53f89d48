package config

import (
	"fmt"
	"image"
	"os"
	"time"

	"github.com/iburimskiy/pulse-button/internal/assets"
)

// ImageCache keeps decoded button images by resolved path. Reloading a
// config whose image files did not change returns the same image values,
// so the engine does not see an image change. An entry is decoded again
// when the file's size or modification time moves.
type ImageCache struct {
	entries map[string]cachedImage
}

type cachedImage struct {
	size    int64
	modTime time.Time
	img     image.Image
}

func NewImageCache() *ImageCache {
	return &ImageCache{entries: map[string]cachedImage{}}
}

// Load returns the image at path, decoding it only when the file is new
// or has changed since the last call.
func (c *ImageCache) Load(path string) (image.Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	if e, ok := c.entries[path]; ok && e.size == info.Size() && e.modTime.Equal(info.ModTime()) {
		return e.img, nil
	}

	img, err := assets.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	c.entries[path] = cachedImage{size: info.Size(), modTime: info.ModTime(), img: img}
	return img, nil
}

// retain drops every entry except paths.
func (c *ImageCache) retain(paths ...string) {
	keep := make(map[string]cachedImage, len(paths))
	for _, p := range paths {
		if e, ok := c.entries[p]; ok {
			keep[p] = e
		}
	}
	c.entries = keep
}
