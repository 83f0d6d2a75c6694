// Package images resolves named image assets into render-ready images.
package images

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/UnitVectorY-Labs/ackpage/internal/models"
)

// ErrAssetNotFound is returned when a referenced asset does not exist.
var ErrAssetNotFound = errors.New("asset not found")

// Ref names an image asset and the fixed width it renders at.
type Ref struct {
	Name         string
	RelativePath string
	Width        int
}

// Resolver turns a Ref into an image the page can render.
type Resolver interface {
	Resolve(ctx context.Context, ref Ref) (models.Image, error)
}

// Local copies assets next to the generated pages.
type Local struct {
	AssetsDir string
	OutputDir string
	// PublicPrefix is the URL prefix of OutputDir, "/images" by default.
	PublicPrefix string
}

// Resolve copies the asset to <OutputDir>/<hash>-<name> and returns its
// public path and scaled dimensions.
func (l *Local) Resolve(ctx context.Context, ref Ref) (models.Image, error) {
	if err := ctx.Err(); err != nil {
		return models.Image{}, err
	}
	src := filepath.Join(l.AssetsDir, filepath.FromSlash(ref.RelativePath))
	data, err := os.ReadFile(src)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.Image{}, fmt.Errorf("%w: %s (%s)", ErrAssetNotFound, ref.RelativePath, ref.Name)
		}
		return models.Image{}, fmt.Errorf("failed to read %s: %w", src, err)
	}

	width, height, err := scaledSize(data, ref.Width)
	if err != nil {
		return models.Image{}, fmt.Errorf("failed to decode %s: %w", src, err)
	}

	if err := os.MkdirAll(l.OutputDir, 0755); err != nil {
		return models.Image{}, fmt.Errorf("failed to create directory %s: %w", l.OutputDir, err)
	}
	name := hashBytes(data) + "-" + path.Base(ref.RelativePath)
	if err := os.WriteFile(filepath.Join(l.OutputDir, name), data, 0644); err != nil {
		return models.Image{}, fmt.Errorf("failed to write %s: %w", name, err)
	}

	prefix := l.PublicPrefix
	if prefix == "" {
		prefix = "/images"
	}
	return models.Image{
		Src:    strings.TrimSuffix(prefix, "/") + "/" + name,
		Width:  width,
		Height: height,
	}, nil
}

// scaledSize returns the dimensions of the image scaled to width. A zero
// width keeps the natural size.
func scaledSize(data []byte, width int) (int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, err
	}
	if width <= 0 || cfg.Width == 0 {
		return cfg.Width, cfg.Height, nil
	}
	return width, cfg.Height * width / cfg.Width, nil
}

func readSize(r io.Reader, width int) (int, int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, 0, err
	}
	return scaledSize(data, width)
}

func hashBytes(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])[:12]
}
