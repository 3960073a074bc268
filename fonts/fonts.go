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
	HUD      FontName = "hud"
	Subtitle FontName = "subtitle"
)

const fontPath = "assets/fonts/excel.ttf"

var faces = map[FontName]font.Face{}

// Load parses the bundled TTF and builds the faces used by the HUD and
// the game-over screen. When the font file is absent every face falls
// back to the basic debug font.
func Load() {
	sizes := map[FontName]float64{
		HUD:      24,
		Subtitle: 32,
	}

	data, err := os.ReadFile(fontPath)
	if err != nil {
		log.Printf("font unavailable, using fallback: %v", err)
		for name := range sizes {
			faces[name] = basicfont.Face7x13
		}
		return
	}

	tt, err := truetype.Parse(data)
	if err != nil {
		log.Printf("failed to parse %s: %v", fontPath, err)
		for name := range sizes {
			faces[name] = basicfont.Face7x13
		}
		return
	}

	for name, size := range sizes {
		faces[name] = truetype.NewFace(tt, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
}

// Face returns a loaded face by name.
func Face(name FontName) font.Face {
	if face, ok := faces[name]; ok {
		return face
	}
	return basicfont.Face7x13
}
