package sprite

import (
	"encoding/json"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"sort"

	"github.com/khankhulgun/maritimemap/mapstyle"
	"github.com/khankhulgun/maritimemap/models"
)

// Pack lays images out left to right in name order and returns the sheet
// with its MapLibre sprite index.
func Pack(images map[string]image.Image, pixelRatio int) (*image.RGBA, map[string]models.SpriteMeta) {
	names := make([]string, 0, len(images))
	for name := range images {
		names = append(names, name)
	}
	sort.Strings(names)

	var spriteWidth, maxHeight int
	spriteMeta := make(map[string]models.SpriteMeta, len(images))
	for _, name := range names {
		bounds := images[name].Bounds()
		width, height := bounds.Dx(), bounds.Dy()
		spriteMeta[name] = models.SpriteMeta{
			X:          spriteWidth,
			Y:          0,
			Width:      width,
			Height:     height,
			PixelRatio: pixelRatio,
		}
		spriteWidth += width
		if height > maxHeight {
			maxHeight = height
		}
	}

	spriteImg := image.NewRGBA(image.Rect(0, 0, spriteWidth, maxHeight))
	for _, name := range names {
		img := images[name]
		meta := spriteMeta[name]
		draw.Draw(spriteImg, image.Rect(meta.X, 0, meta.X+meta.Width, meta.Height), img, img.Bounds().Min, draw.Over)
	}

	return spriteImg, spriteMeta
}

// Legend renders every legend entry of a merged config at size pixels.
func Legend(cfg mapstyle.Config, size int) (map[string]image.Image, error) {
	images := make(map[string]image.Image)
	for _, entry := range Entries(cfg) {
		img, err := Swatch(entry, size)
		if err != nil {
			return nil, err
		}
		images[entry.ID] = img
	}
	return images, nil
}

// WriteSheet writes name.png/name.json and the @2x variants into dir.
func WriteSheet(cfg mapstyle.Config, dir, name string, size int) error {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create sprite directory: %w", err)
	}

	for _, ratio := range []int{1, 2} {
		images, err := Legend(cfg, size*ratio)
		if err != nil {
			return err
		}
		sheet, meta := Pack(images, ratio)

		base := filepath.Join(dir, name)
		if ratio > 1 {
			base = fmt.Sprintf("%s@%dx", base, ratio)
		}
		if err := saveImage(sheet, base+".png"); err != nil {
			return err
		}
		if err := saveJSON(meta, base+".json"); err != nil {
			return err
		}
	}
	return nil
}

func saveImage(img image.Image, filename string) error {
	outFile, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create sprite image: %w", err)
	}
	defer outFile.Close()
	if err := png.Encode(outFile, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

func saveJSON(meta map[string]models.SpriteMeta, filename string) error {
	jsonFile, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer jsonFile.Close()
	encoder := json.NewEncoder(jsonFile)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(meta); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
