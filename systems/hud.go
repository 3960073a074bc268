package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/calebrood/ghostpunch/components"
	cfg "github.com/calebrood/ghostpunch/config"
	"github.com/calebrood/ghostpunch/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 220
	hudBarHeight = 18
	hudMargin    = 16
)

// DrawHUD renders the health bar, score counters and the round clock.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)

	// Background (dark gray)
	vector.DrawFilledRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth), float32(hudBarHeight),
		color.RGBA{40, 40, 40, 255}, false)

	// Current HP (green)
	ratio := float32(hp.Current) / float32(hp.Max)
	if ratio < 0 {
		ratio = 0
	}
	vector.DrawFilledRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth)*ratio, float32(hudBarHeight),
		color.RGBA{40, 220, 40, 255}, false)

	sessionEntry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)

	face := fonts.Face(fonts.HUD)
	scoreLine := fmt.Sprintf("SCORE %d   BEST %d", session.Score, session.HighScore)
	text.Draw(screen, scoreLine, face, hudMargin, hudMargin+hudBarHeight+28, cfg.White)

	clock := fmt.Sprintf("%d", int(math.Ceil(session.RoundTimer.Remaining)))
	clockColor := cfg.White
	if session.RoundTimer.Remaining <= 10 {
		clockColor = cfg.LightRed
	}
	clockFace := fonts.Face(fonts.Subtitle)
	bounds := text.BoundString(clockFace, clock)
	clockX := (cfg.C.Width - bounds.Dx()) / 2
	text.Draw(screen, clock, clockFace, clockX, hudMargin+32, clockColor)
}
