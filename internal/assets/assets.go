// Package assets maps logical asset names to images. Every name has a
// procedurally drawn default so the game runs without any files on disk;
// a directory of PNG/JPEG files can override individual names.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg" // Register JPEG decoder for overrides
	_ "image/png"  // Register PNG decoder for overrides
	"math"
	"os"
	"path/filepath"
	"sort"
)

// Logical asset names.
const (
	Player     = "player"
	Zombie     = "zombie"
	Background = "bk"
	Star       = "star"
)

// ErrUnknownAsset is returned when a name has no image.
var ErrUnknownAsset = errors.New("assets: unknown asset")

// overrideExts are tried in order when loading from a directory.
var overrideExts = []string{".png", ".jpg", ".jpeg"}

// Catalog holds one image per logical name.
type Catalog struct {
	images map[string]image.Image
}

// Default returns a catalog with the built-in images.
func Default() *Catalog {
	return &Catalog{
		images: map[string]image.Image{
			Player:     drawPlayer(40, 80),
			Zombie:     drawZombie(50, 100),
			Background: drawBackground(64, 64),
			Star:       drawStar(32, 32),
		},
	}
}

// Get returns the image registered under name.
func (c *Catalog) Get(name string) (image.Image, error) {
	img, ok := c.images[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownAsset, name)
	}
	return img, nil
}

// Names returns the registered names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.images))
	for name := range c.images {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadDir replaces built-in images with files named after their logical
// name (for example zombie.png or bk.jpg). Missing files keep the default;
// files that exist but cannot be decoded are an error.
func (c *Catalog) LoadDir(dir string) error {
	for _, name := range c.Names() {
		for _, ext := range overrideExts {
			path := filepath.Join(dir, name+ext)
			img, err := decodeFile(path)
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			if err != nil {
				return err
			}
			c.images[name] = img
			break
		}
	}
	return nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", path, err)
	}
	return img, nil
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func drawPlayer(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	skin := color.RGBA{R: 0xf1, G: 0xc2, B: 0x7d, A: 0xff}
	shirt := color.RGBA{R: 0x2e, G: 0x6f, B: 0xd8, A: 0xff}
	pants := color.RGBA{R: 0x33, G: 0x33, B: 0x44, A: 0xff}

	fill(img, image.Rect(w/4, 0, w*3/4, h/4), skin)
	fill(img, image.Rect(w/8, h/4, w*7/8, h*5/8), shirt)
	fill(img, image.Rect(w/4, h*5/8, w/2-1, h), pants)
	fill(img, image.Rect(w/2+1, h*5/8, w*3/4, h), pants)
	return img
}

func drawZombie(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	skin := color.RGBA{R: 0x6b, G: 0xa3, B: 0x4a, A: 0xff}
	rags := color.RGBA{R: 0x5a, G: 0x3e, B: 0x2b, A: 0xff}
	eye := color.RGBA{R: 0xd0, G: 0x10, B: 0x10, A: 0xff}

	fill(img, image.Rect(w/4, 0, w*3/4, h/4), skin)
	fill(img, image.Rect(w/4+3, h/10, w/4+8, h/10+4), eye)
	// Arms reach forward (to the left, towards the player)
	fill(img, image.Rect(0, h/4+4, w/4, h/4+12), skin)
	fill(img, image.Rect(w/8, h/4, w*7/8, h*5/8), rags)
	fill(img, image.Rect(w/4, h*5/8, w/2-1, h), skin)
	fill(img, image.Rect(w/2+1, h*5/8, w*3/4, h), skin)
	return img
}

func drawBackground(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		t := float64(y) / float64(h-1)
		c := color.RGBA{
			R: uint8(0x1a + t*0x20),
			G: uint8(0x10 + t*0x18),
			B: uint8(0x30 + t*0x30),
			A: 0xff,
		}
		fill(img, image.Rect(0, y, w, y+1), c)
	}
	return img
}

func drawStar(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	gold := color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	cx, cy := float64(w)/2, float64(h)/2
	outer := math.Min(cx, cy)
	inner := outer * 0.45

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if insideStar(dx, dy, outer, inner) {
				img.Set(x, y, gold)
			}
		}
	}
	return img
}

// insideStar tests a point against a five-pointed star by comparing its
// radius with the star outline at the point's angle.
func insideStar(dx, dy, outer, inner float64) bool {
	r := math.Hypot(dx, dy)
	if r > outer {
		return false
	}
	const points = 5
	angle := math.Atan2(dx, -dy) // 0 at the top spike
	if angle < 0 {
		angle += 2 * math.Pi
	}
	sector := 2 * math.Pi / points
	frac := math.Mod(angle, sector) / sector // 0 at a spike, 0.5 between
	if frac > 0.5 {
		frac = 1 - frac
	}
	limit := outer - (outer-inner)*frac*2
	return r <= limit
}
