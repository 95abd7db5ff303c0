package service

import (
	"bytes"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

const (
	// DefaultImageCacheDir is where optimized item photos are stored
	DefaultImageCacheDir = "cache/images"
	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800
)

// ImageOptimizer resizes wardrobe item photos and keeps the results in a disk cache
type ImageOptimizer struct {
	cacheDir string
}

// NewImageOptimizer creates an optimizer caching into cacheDir
func NewImageOptimizer(cacheDir string) *ImageOptimizer {
	if cacheDir == "" {
		cacheDir = DefaultImageCacheDir
	}
	return &ImageOptimizer{cacheDir: cacheDir}
}

// EnsureCacheDir ensures the cache directory exists, creates it if it doesn't
func (o *ImageOptimizer) EnsureCacheDir() error {
	if err := os.MkdirAll(o.cacheDir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	return nil
}

// CachePath returns the cache file path for a wardrobe item photo and size
func (o *ImageOptimizer) CachePath(itemID int, size string) string {
	return filepath.Join(o.cacheDir, fmt.Sprintf("wardrobe_item_%d_%s.jpg", itemID, size))
}

// ItemImage returns the optimized photo of an item, serving it from the cache when present
func (o *ImageOptimizer) ItemImage(itemID int, size string, raw []byte) ([]byte, error) {
	cachePath := o.CachePath(itemID, size)
	if data, err := os.ReadFile(cachePath); err == nil {
		log.Printf("💾 Serving cached image: %s", cachePath)
		return data, nil
	}

	optimized, err := OptimizeImage(raw, size)
	if err != nil {
		return nil, err
	}

	if err := o.save(cachePath, optimized); err != nil {
		// serving still works without the cache
		log.Printf("⚠️  Could not cache image for item %d: %v", itemID, err)
	}
	return optimized, nil
}

// Invalidate removes every cached size of an item photo
func (o *ImageOptimizer) Invalidate(itemID int) {
	for _, size := range []string{"thumb", "medium"} {
		if err := os.Remove(o.CachePath(itemID, size)); err != nil && !os.IsNotExist(err) {
			log.Printf("⚠️  Could not remove cached image for item %d: %v", itemID, err)
		}
	}
}

func (o *ImageOptimizer) save(cachePath string, imageData []byte) error {
	if err := os.MkdirAll(filepath.Dir(cachePath), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(cachePath, imageData, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	log.Printf("✓ Image cached: %s", cachePath)
	return nil
}

// OptimizeImage converts a photo to JPEG and fits it inside the size's max dimension
// size: "thumb" or "medium", anything else falls back to medium
func OptimizeImage(imageData []byte, size string) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	log.Printf("📸 Image decoded: format=%s, bounds=%v", format, img.Bounds())

	maxDim, quality := maxSizeMedium, qualityMedium
	switch size {
	case "thumb":
		maxDim, quality = maxSizeThumb, qualityThumb
	case "medium":
	default:
		log.Printf("⚠️  Unknown size '%s', defaulting to medium", size)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
		log.Printf("🔄 Resized image: %v -> %v", bounds.Size(), img.Bounds().Size())
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	log.Printf("✓ Image optimized: size=%s, quality=%d, output_size=%d bytes", size, quality, buf.Len())
	return buf.Bytes(), nil
}
