package images

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/UnitVectorY-Labs/ackpage/internal/models"
	"github.com/cloudinary/cloudinary-go/v2"
)

// Cloudinary serves assets from a Cloudinary delivery URL. The assets are
// expected to be uploaded under Folder with their relative path, minus the
// extension, as public ID.
type Cloudinary struct {
	cld       *cloudinary.Cloudinary
	folder    string
	assetsDir string
}

// NewCloudinary creates a resolver for the given cloud. assetsDir is used to
// read natural image sizes and may be empty.
func NewCloudinary(cloudName, apiKey, apiSecret, folder, assetsDir string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}
	cld.Config.URL.Secure = true
	return &Cloudinary{cld: cld, folder: strings.Trim(folder, "/"), assetsDir: assetsDir}, nil
}

// PublicID returns the Cloudinary public ID of a ref.
func (c *Cloudinary) PublicID(ref Ref) string {
	id := strings.TrimSuffix(ref.RelativePath, path.Ext(ref.RelativePath))
	if c.folder == "" {
		return id
	}
	return c.folder + "/" + id
}

// Resolve builds a fixed-width delivery URL for the ref.
func (c *Cloudinary) Resolve(ctx context.Context, ref Ref) (models.Image, error) {
	if err := ctx.Err(); err != nil {
		return models.Image{}, err
	}
	asset, err := c.cld.Image(c.PublicID(ref))
	if err != nil {
		return models.Image{}, fmt.Errorf("failed to build image %s: %w", ref.Name, err)
	}
	transformation := "c_limit,q_100,f_auto"
	if ref.Width > 0 {
		transformation = fmt.Sprintf("w_%d,%s", ref.Width, transformation)
	}
	asset.Transformation = transformation
	src, err := asset.String()
	if err != nil {
		return models.Image{}, fmt.Errorf("failed to build url for %s: %w", ref.Name, err)
	}

	img := models.Image{Src: src, Width: ref.Width}
	if c.assetsDir != "" {
		if f, err := os.Open(filepath.Join(c.assetsDir, filepath.FromSlash(ref.RelativePath))); err == nil {
			if w, h, err := readSize(f, ref.Width); err == nil {
				img.Width, img.Height = w, h
			}
			f.Close()
		}
	}
	return img, nil
}
