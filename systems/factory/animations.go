package factory

import (
	"fmt"

	"github.com/calebrood/ghostpunch/assets/animations"
	"github.com/calebrood/ghostpunch/components"
	cfg "github.com/calebrood/ghostpunch/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// GenerateAnimations builds the animation set for a character key.
// Sprite sheets themselves are fetched lazily by the renderer so game
// logic never touches image data.
func GenerateAnimations(key string, frameWidth, frameHeight int) *components.AnimationData {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("no animation definitions found for key: %s", key))
	}

	animData := &components.AnimationData{
		SheetKey:     key,
		SpriteSheets: make(map[cfg.StateID]*ebiten.Image),
		Animations:   make(map[cfg.StateID]*animations.Animation),
		FrameWidth:   frameWidth,
		FrameHeight:  frameHeight,
		CurrentSheet: cfg.Idle,
	}

	for state, def := range defs {
		animData.Animations[state] = animations.NewAnimation(def.First, def.Last, def.FrameDuration, def.FreezeOnComplete)
	}

	return animData
}
