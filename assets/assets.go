package assets

import (
	"fmt"
	"image"
	"log"
	"os"

	"github.com/calebrood/ghostpunch/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// AnimationLoader caches sprite sheets and per-frame sub-images so a
// sheet is decoded once no matter how many actors use it.
type AnimationLoader struct {
	imageCache map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
	missing    map[string]bool
}

var animationLoader = &AnimationLoader{
	imageCache: make(map[string]*ebiten.Image),
	frameCache: make(map[string]*ebiten.Image),
	missing:    make(map[string]bool),
}

// LoadImage loads and caches an image from the assets directory.
// Returns nil when the file doesn't exist so the renderer can fall
// back to placeholder boxes.
func (l *AnimationLoader) LoadImage(path string) *ebiten.Image {
	if img, ok := l.imageCache[path]; ok {
		return img
	}
	if l.missing[path] {
		return nil
	}

	if _, err := os.Stat(path); err != nil {
		l.missing[path] = true
		log.Printf("asset missing, using placeholder: %s", path)
		return nil
	}

	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		l.missing[path] = true
		log.Printf("failed to load %s: %v", path, err)
		return nil
	}
	l.imageCache[path] = img
	return img
}

// GetFrame returns a cached sub-image for a specific animation frame.
func (l *AnimationLoader) GetFrame(dir string, state config.StateID, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	key := fmt.Sprintf("%s/%s/%d", dir, state.String(), frameIndex)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	sheet := GetSheet(dir, state)
	if sheet == nil {
		return nil
	}

	frame := sheet.SubImage(srcRect).(*ebiten.Image)
	l.frameCache[key] = frame
	return frame
}

// GetSheet returns the sprite sheet for a character key and state, or
// nil when the art isn't present.
func GetSheet(dir string, state config.StateID) *ebiten.Image {
	name, ok := config.StateToFileName[state]
	if !ok {
		return nil
	}
	path := fmt.Sprintf("assets/images/spritesheets/%s/%s-sheet.png", dir, name)
	return animationLoader.LoadImage(path)
}

// GetFrame returns a cached frame sub-image for a character key.
func GetFrame(dir string, state config.StateID, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	return animationLoader.GetFrame(dir, state, frameIndex, srcRect)
}
