package systems

import (
	"image"
	"image/color"

	"github.com/calebrood/ghostpunch/assets"
	"github.com/calebrood/ghostpunch/components"
	cfg "github.com/calebrood/ghostpunch/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// World space is Y-up with the arena centered at the middle of the
// resolv grid; the screen is Y-down with the origin top-left. These
// helpers convert.
func screenX(x float64) float64 {
	return float64(cfg.C.Width)/2 + x - cfg.WorldCenterX
}

func screenY(y float64) float64 {
	return float64(cfg.C.Height)/2 - (y - cfg.WorldCenterY)
}

// DrawArena paints the backdrop and the ground line.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 22, B: 34, A: 255})

	groundY := arenaOf(ecs).GroundY
	vector.DrawFilledRect(screen,
		0, float32(screenY(groundY)),
		float32(cfg.C.Width), float32(float64(cfg.C.Height)-screenY(groundY)),
		color.RGBA{R: 40, G: 36, B: 52, A: 255}, false)
}

// DrawActors renders every animated entity, flipping sprites to match
// facing and tinting freshly hit actors.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		anim := components.Animation.Get(e)

		if anim.CurrentAnimation == nil {
			drawPlaceholder(e, screen)
			return
		}

		frame := anim.CurrentAnimation.Frame()
		img := frameImage(anim, frame)
		if img == nil {
			drawPlaceholder(e, screen)
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		// Anchor at bottom-center so feet sit on the hurtbox floor.
		drawOp.GeoM.Translate(-float64(anim.FrameWidth)/2, -float64(anim.FrameHeight))

		if facing(e) < 0 {
			drawOp.GeoM.Scale(-1, 1)
		}

		drawOp.GeoM.Translate(screenX(o.X+o.W/2), screenY(o.Y))

		if e.HasComponent(components.HitFlash) {
			flash := components.HitFlash.Get(e)
			drawOp.ColorScale.Scale(1, 1-flash.Intensity, 1-flash.Intensity, 1)
		}

		screen.DrawImage(img, drawOp)
	})
}

func frameImage(anim *components.AnimationData, frame int) *ebiten.Image {
	sheet, loaded := anim.SpriteSheets[anim.CurrentSheet]
	if !loaded {
		sheet = assets.GetSheet(anim.SheetKey, anim.CurrentSheet)
		anim.SpriteSheets[anim.CurrentSheet] = sheet
	}
	if sheet == nil {
		return nil
	}

	sx := frame * anim.FrameWidth
	srcRect := image.Rect(sx, 0, sx+anim.FrameWidth, anim.FrameHeight)
	return assets.GetFrame(anim.SheetKey, anim.CurrentSheet, frame, srcRect)
}

// drawPlaceholder keeps the game playable before any art is dropped in.
func drawPlaceholder(e *donburi.Entry, screen *ebiten.Image) {
	o := components.Object.Get(e)

	boxColor := cfg.Yellow
	if e.HasComponent(components.Player) {
		boxColor = cfg.Green
	}
	if e.HasComponent(components.HitFlash) {
		boxColor = cfg.LightRed
	}

	vector.DrawFilledRect(screen,
		float32(screenX(o.X)), float32(screenY(o.Y+o.H)),
		float32(o.W), float32(o.H),
		boxColor, false)
}

func facing(e *donburi.Entry) float64 {
	if e.HasComponent(components.Player) {
		return components.Player.Get(e).Facing
	}
	if e.HasComponent(components.Enemy) {
		return components.Enemy.Get(e).Facing
	}
	return 1
}

// DrawHitboxes outlines hurtboxes and active hit volumes. Toggled with F1.
var debugHitboxes bool

func DrawHitboxes(ecs *ecs.ECS, screen *ebiten.Image) {
	if ebiten.IsKeyPressed(ebiten.KeyF1) {
		debugHitboxes = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyF2) {
		debugHitboxes = false
	}
	if !debugHitboxes {
		return
	}

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.StrokeRect(screen,
			float32(screenX(o.X)), float32(screenY(o.Y+o.H)),
			float32(o.W), float32(o.H),
			1, cfg.White, false)
	})

	components.Hitbox.Each(ecs.World, func(e *donburi.Entry) {
		hb := components.Hitbox.Get(e)
		if !hb.Active || hb.Object == nil {
			return
		}
		vector.StrokeRect(screen,
			float32(screenX(hb.Object.X)), float32(screenY(hb.Object.Y+hb.Object.H)),
			float32(hb.Object.W), float32(hb.Object.H),
			2, cfg.Red, false)
	})
}
