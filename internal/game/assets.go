package game

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/solar-explorer/internal/logging"
	"github.com/iburimskiy/solar-explorer/internal/render"
	"github.com/iburimskiy/solar-explorer/internal/sim"
)

// fallbackTextureSize is the resolution of synthesized disc textures for
// bodies without a usable source image.
const fallbackTextureSize = 64

var imageExtensions = []string{".jpg", ".jpeg", ".png"}

// loadBodyTextures builds one shaded texture per body. Bodies with a readable
// image get the lit-sphere treatment of that image; everything else gets a
// synthetic shaded disc in the body's base color. Shading runs once here,
// never per frame.
func loadBodyTextures(bodies []sim.Body, names []string, dir string, log *logging.Logger) []*ebiten.Image {
	textures := make([]*ebiten.Image, len(bodies))
	for i := range bodies {
		base := ""
		if i < len(names) {
			base = names[i]
		}
		if src := loadImage(dir, base, log); src != nil {
			textures[i] = ebiten.NewImageFromImage(render.Shade(src))
			continue
		}
		textures[i] = ebiten.NewImageFromImage(render.ShadedDisc(fallbackTextureSize, bodies[i].Color))
	}
	return textures
}

// loadSunTexture returns the shaded sun image, or nil to use the procedural
// gradient fallback.
func loadSunTexture(dir string, log *logging.Logger) *ebiten.Image {
	if src := loadImage(dir, "sun", log); src != nil {
		return ebiten.NewImageFromImage(render.Shade(src))
	}
	return nil
}

// loadImage tries base.<ext> under dir for each known extension. Missing or
// corrupt files are a logged fallback, never an error.
func loadImage(dir, base string, log *logging.Logger) image.Image {
	if base == "" {
		return nil
	}
	for _, ext := range imageExtensions {
		path := filepath.Join(dir, base+ext)
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		img, _, err := image.Decode(f)
		_ = f.Close()
		if err != nil {
			log.Warn("unreadable image %s: %v", path, err)
			continue
		}
		return img
	}
	log.Debug("no image for %q, using shaded disc", base)
	return nil
}
