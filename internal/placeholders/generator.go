package placeholders

import (
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
)

// Standard size for placeholder portraits
const (
	PortraitWidth  = 240
	PortraitHeight = 420
)

// Palette is the set of silhouette colours picked from by name.
var Palette = []color.RGBA{
	{186, 84, 84, 255},   // Brick red
	{84, 120, 186, 255},  // Slate blue
	{96, 160, 96, 255},   // Sage green
	{196, 150, 70, 255},  // Ochre
	{140, 96, 170, 255},  // Plum
	{70, 150, 160, 255},  // Teal
	{170, 110, 80, 255},  // Umber
	{120, 120, 130, 255}, // Pewter
}

// ColorFor returns the palette colour for a character name.
// The same name always maps to the same colour.
func ColorFor(name string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(name))
	return Palette[h.Sum32()%uint32(len(Palette))]
}

// Portrait draws a head-and-shoulders silhouette on a transparent background.
func Portrait(name string, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	// Make background transparent
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)

	fill := ColorFor(name)
	outline := Darken(fill, 0.6)

	cx := width / 2
	headRadius := width / 5
	headCY := height/4 + headRadius/2

	// Head
	for y := headCY - headRadius - 1; y <= headCY+headRadius+1; y++ {
		for x := cx - headRadius - 1; x <= cx+headRadius+1; x++ {
			dx := x - cx
			dy := y - headCY
			distSq := dx*dx + dy*dy

			if distSq <= headRadius*headRadius {
				img.Set(x, y, fill)
			} else if distSq <= (headRadius+1)*(headRadius+1) {
				img.Set(x, y, outline)
			}
		}
	}

	// Shoulders: a trapezoid widening towards the bottom edge
	top := headCY + headRadius + height/40
	for y := top; y < height; y++ {
		progress := float64(y-top) / float64(height-top)
		half := int(float64(width)*0.2 + float64(width)*0.28*progress)
		for x := cx - half; x <= cx+half; x++ {
			if x == cx-half || x == cx+half || y == top {
				img.Set(x, y, outline)
			} else {
				img.Set(x, y, fill)
			}
		}
	}

	return img
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// FileName returns the file a generated portrait for name is saved under.
// Only the last path element of name is used.
func FileName(name string) string {
	return fmt.Sprintf("placeholder_%s.png", filepath.Base(name))
}

// GenerateAndSave writes a placeholder portrait for each name into dir and
// returns the written paths.
func GenerateAndSave(dir string, names []string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create portrait directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, FileName(name))
		if err := SavePNG(Portrait(name, PortraitWidth, PortraitHeight), path); err != nil {
			return paths, fmt.Errorf("failed to save portrait for %s: %w", name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
