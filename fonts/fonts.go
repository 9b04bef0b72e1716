package fonts

import (
	"log"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	HUD   FontName = "hud"
	Title FontName = "title"
	Small FontName = "small"
)

var fonts = map[FontName]font.Face{}

// Get returns the registered face for this name, falling back to the
// built-in bitmap face when no TTF has been loaded.
func (f FontName) Get() font.Face {
	if face, ok := fonts[f]; ok {
		return face
	}
	return basicfont.Face7x13
}

// LoadFromFile loads the display font from disk. The file is optional; when
// it is missing every face resolves to the bitmap fallback.
func LoadFromFile(path string) {
	ttf, err := os.ReadFile(path)
	if err != nil {
		return
	}
	LoadFontWithSize(HUD, ttf, 20)
	LoadFontWithSize(Title, ttf, 32)
	LoadFontWithSize(Small, ttf, 12)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		log.Printf("Warning: could not parse font for %s: %v", name, err)
		return
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}
