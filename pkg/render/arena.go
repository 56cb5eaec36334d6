// pkg/render/arena.go
package render

import (
	"fmt"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-spell-arena/internal/assets"
	"go-spell-arena/internal/config"
	"go-spell-arena/internal/entity"
	"go-spell-arena/internal/types"
	"go-spell-arena/pkg/geom"
)

// ArenaRenderer рисует арену и все сущности мира поверх предрендеренного
// задника. Система координат арены отображается на экран с центром
// в середине окна и масштабом config.WorldScale.
type ArenaRenderer struct {
	screenWidth  int
	screenHeight int
	scale        float64
	handles      *assets.Handles
	face         font.Face
	background   *ebiten.Image
}

// NewArenaRenderer создает рендерер и готовит задник один раз.
func NewArenaRenderer(handles *assets.Handles, screenWidth, screenHeight int) *ArenaRenderer {
	r := &ArenaRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		scale:        config.WorldScale,
		handles:      handles,
		face:         basicfont.Face7x13,
		background:   ebiten.NewImage(screenWidth, screenHeight),
	}
	r.renderBackground()
	return r
}

// renderBackground заливает фон и обводит границу арены.
func (r *ArenaRenderer) renderBackground() {
	r.background.Fill(config.BackgroundColor)

	half := float32(config.ArenaHalfSize * r.scale)
	cx := float32(r.screenWidth) / 2
	cy := float32(r.screenHeight) / 2
	vector.StrokeRect(r.background, cx-half, cy-half, half*2, half*2, 2, config.ArenaEdgeColor, true)
}

func (r *ArenaRenderer) toScreen(v geom.Vec2) (float32, float32) {
	return float32(float64(r.screenWidth)/2 + v.X*r.scale),
		float32(float64(r.screenHeight)/2 + v.Y*r.scale)
}

// Draw отрисовывает один кадр: зоны и воронки под телами, тела,
// снаряды и волны поверх, затем HUD.
func (r *ArenaRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	screen.DrawImage(r.background, nil)

	r.drawZones(screen, ecs)
	r.drawVortexes(screen, ecs)
	r.drawCones(screen, ecs)
	r.drawTurrets(screen, ecs)
	r.drawBodies(screen, ecs)
	r.drawWraithForms(screen, ecs)
	r.drawBursts(screen, ecs)
	r.drawProjectiles(screen, ecs)
	r.drawHUD(screen, ecs)
}

func (r *ArenaRenderer) drawZones(screen *ebiten.Image, ecs *entity.ECS) {
	for _, zone := range ecs.Zones {
		x, y := r.toScreen(zone.Center)
		radius := float32(zone.Radius * r.scale)
		vector.DrawFilledCircle(screen, x, y, radius, r.handles.Translucent(zone.Element), true)
		vector.StrokeCircle(screen, x, y, radius, 1, r.handles.EffectColor(zone.Element), true)
	}

	for id, droplet := range ecs.Droplets {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		x, y := r.toScreen(pos.Vec())
		clr := r.handles.EffectColor(droplet.Element)
		// Тень на земле и сама капля, поднятая на текущую высоту.
		vector.DrawFilledCircle(screen, x, y, 2, r.handles.Translucent(droplet.Element), true)
		vector.DrawFilledCircle(screen, x, y-float32(droplet.Height*r.scale), 3, clr, true)
	}
}

func (r *ArenaRenderer) drawVortexes(screen *ebiten.Image, ecs *entity.ECS) {
	for _, vortex := range ecs.Vortexes {
		x, y := r.toScreen(vortex.Center)
		radius := float32(vortex.PullRadius * r.scale)
		clr := r.handles.EffectColor(vortex.Element)
		vector.StrokeCircle(screen, x, y, radius, 1, r.handles.Translucent(vortex.Element), true)

		// Три спицы, вращающиеся вместе с воронкой.
		for i := 0; i < 3; i++ {
			angle := vortex.Rotation + float64(i)*2*math.Pi/3
			tip := vortex.Center.Add(geom.FromAngle(angle).Scale(vortex.PullRadius * 0.8))
			tx, ty := r.toScreen(tip)
			vector.StrokeLine(screen, x, y, tx, ty, 1, clr, true)
		}
	}
}

func (r *ArenaRenderer) drawCones(screen *ebiten.Image, ecs *entity.ECS) {
	for _, cone := range ecs.Cones {
		ox, oy := r.toScreen(cone.Origin)
		clr := r.handles.EffectColor(cone.Element)
		axis := cone.Direction.Angle()
		left := cone.Origin.Add(geom.FromAngle(axis - cone.HalfAngle).Scale(cone.Range))
		right := cone.Origin.Add(geom.FromAngle(axis + cone.HalfAngle).Scale(cone.Range))
		lx, ly := r.toScreen(left)
		rx, ry := r.toScreen(right)
		vector.StrokeLine(screen, ox, oy, lx, ly, 1, clr, true)
		vector.StrokeLine(screen, ox, oy, rx, ry, 1, clr, true)
		vector.StrokeLine(screen, lx, ly, rx, ry, 1, r.handles.Translucent(cone.Element), true)
	}
}

func (r *ArenaRenderer) drawTurrets(screen *ebiten.Image, ecs *entity.ECS) {
	for _, turret := range ecs.Turrets {
		x, y := r.toScreen(turret.Position)
		clr := r.handles.EffectColor(turret.Element)
		vector.StrokeCircle(screen, x, y, float32(turret.Range*r.scale), 1, r.handles.Translucent(turret.Element), true)
		vector.DrawFilledCircle(screen, x, y, 4, clr, true)
	}
}

func (r *ArenaRenderer) drawBursts(screen *ebiten.Image, ecs *entity.ECS) {
	for _, burst := range ecs.Bursts {
		x, y := r.toScreen(burst.Center)
		vector.StrokeCircle(screen, x, y, float32(burst.CurrentRadius*r.scale), 2, r.handles.EffectColor(burst.Element), true)
	}
}

func (r *ArenaRenderer) drawWraithForms(screen *ebiten.Image, ecs *entity.ECS) {
	for id, form := range ecs.WraithForms {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		x, y := r.toScreen(pos.Vec())
		radius := float32((form.ContactRange + 0.5) * r.scale)
		vector.StrokeCircle(screen, x, y, radius, 1, r.handles.EffectColor(form.Element), true)
	}
}

func (r *ArenaRenderer) drawProjectiles(screen *ebiten.Image, ecs *entity.ECS) {
	for _, arc := range ecs.ArcProjectiles {
		gx, gy := r.toScreen(arc.GroundPosition())
		clr := r.handles.EffectColor(arc.Element)
		vector.DrawFilledCircle(screen, gx, gy, 2, r.handles.Translucent(arc.Element), true)
		vector.DrawFilledCircle(screen, gx, gy-float32(arc.Height()*r.scale), 4, clr, true)
	}

	for id, frag := range ecs.Fragments {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		x, y := r.toScreen(pos.Vec())
		vector.DrawFilledCircle(screen, x, y, 2, r.handles.EffectColor(frag.Element), true)
	}

	for id, bolt := range ecs.Bolts {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		x, y := r.toScreen(pos.Vec())
		vector.DrawFilledCircle(screen, x, y, 3, r.handles.EffectColor(bolt.Element), true)
	}
}

// drawBodies рисует игрока и врагов в порядке возрастания ID, чтобы
// перекрытия не мерцали от кадра к кадру.
func (r *ArenaRenderer) drawBodies(screen *ebiten.Image, ecs *entity.ECS) {
	ids := make([]types.EntityID, 0, len(ecs.Renderables))
	for id := range ecs.Renderables {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		renderable := ecs.Renderables[id]
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		x, y := r.toScreen(pos.Vec())
		radius := float32(renderable.Radius * r.scale)
		if renderable.Ring {
			vector.StrokeCircle(screen, x, y, radius, 1, renderable.Color, true)
		} else {
			vector.DrawFilledCircle(screen, x, y, radius, renderable.Color, true)
			if renderable.HasStroke {
				vector.StrokeCircle(screen, x, y, radius, 1, DarkenColor(renderable.Color), true)
			}
		}

		if health, ok := ecs.Healths[id]; ok {
			r.drawHealthBar(screen, x, y-radius-6, radius*2, health.Percentage())
		}
	}
}

func (r *ArenaRenderer) drawHealthBar(screen *ebiten.Image, x, y, width float32, fraction float64) {
	if fraction >= 1 {
		return
	}
	vector.DrawFilledRect(screen, x-width/2, y, width, 3, config.HealthBackColor, false)
	vector.DrawFilledRect(screen, x-width/2, y, width*float32(fraction), 3, config.HealthBarColor, false)
}

func (r *ArenaRenderer) drawHUD(screen *ebiten.Image, ecs *entity.ECS) {
	stats := ecs.Stats
	line := fmt.Sprintf("Score %d   Level %d   Kills %d   Time %s   Enemies %d",
		stats.Score, stats.MatchLevel, stats.Kills, formatTime(stats.SurvivalTime), len(ecs.Enemies))
	text.Draw(screen, line, r.face, 12, 20, config.TextLightColor)
}

func formatTime(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
