package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalogHasEveryName(t *testing.T) {
	c := Default()

	for _, name := range []string{Player, Zombie, Background, Star} {
		img, err := c.Get(name)
		if err != nil {
			t.Errorf("Get(%q) failed: %v", name, err)
			continue
		}
		if img.Bounds().Empty() {
			t.Errorf("Get(%q) returned an empty image", name)
		}
	}

	if got := len(c.Names()); got != 4 {
		t.Errorf("Names() has %d entries, expected 4", got)
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Default().Get("dragon")
	if !errors.Is(err, ErrUnknownAsset) {
		t.Errorf("expected ErrUnknownAsset, got %v", err)
	}
}

func TestStarShape(t *testing.T) {
	img, _ := Default().Get(Star)
	b := img.Bounds()

	_, _, _, center := img.At(b.Dx()/2, b.Dy()/2).RGBA()
	if center == 0 {
		t.Error("star center should be opaque")
	}
	_, _, _, corner := img.At(0, 0).RGBA()
	if corner != 0 {
		t.Error("star corner should be transparent")
	}
}

func TestLoadDirOverrides(t *testing.T) {
	dir := t.TempDir()
	override := image.NewRGBA(image.Rect(0, 0, 7, 9))
	override.Set(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	f, err := os.Create(filepath.Join(dir, "zombie.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, override); err != nil {
		t.Fatal(err)
	}
	f.Close()

	c := Default()
	if err := c.LoadDir(dir); err != nil {
		t.Fatalf("LoadDir() failed: %v", err)
	}

	img, _ := c.Get(Zombie)
	if img.Bounds().Dx() != 7 || img.Bounds().Dy() != 9 {
		t.Errorf("zombie override not applied, bounds = %v", img.Bounds())
	}

	// Untouched names keep their defaults
	player, _ := c.Get(Player)
	if player.Bounds().Dx() != 40 {
		t.Errorf("player should keep default image, bounds = %v", player.Bounds())
	}
}

func TestLoadDirRejectsCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "star.png"), []byte("not a png"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := Default().LoadDir(dir); err == nil {
		t.Error("expected error for undecodable override")
	}
}
