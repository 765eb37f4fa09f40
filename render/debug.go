package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/ungravity/gameplay"
	"github.com/milk9111/ungravity/physics"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 4
)

var (
	backgroundColor = color.RGBA{R: 0x0b, G: 0x10, B: 0x20, A: 0xff}
	axesColor       = color.NRGBA{R: 255, G: 255, B: 255, A: 20}
	labelOffset     = 6.0
)

// Colours per body role.
var (
	colorBall       = cp.FColor{R: 1, G: 0.2, B: 1, A: 1}
	colorStatic     = cp.FColor{R: 0.35, G: 0.55, B: 1, A: 0.9}
	colorSensor     = cp.FColor{R: 1, G: 0.9, B: 0.2, A: 0.9}
	colorGoalLocked = cp.FColor{R: 1, G: 0.25, B: 0.25, A: 0.9}
	colorGoalOpen   = cp.FColor{R: 0.3, G: 1, B: 0.45, A: 0.9}
	colorUnknown    = cp.FColor{R: 0.6, G: 0.6, B: 0.6, A: 0.6}
)

// DrawSession draws the session's world, colouring the goal by its gate.
func DrawSession(screen *ebiten.Image, s *gameplay.Session, cam *Camera) {
	if s == nil {
		screen.Fill(backgroundColor)
		return
	}
	drawWorld(screen, s.World, cam, s.Contacts.GoalEnabled())
}

// DrawWorld draws every shape in world with the goal shown locked.
func DrawWorld(screen *ebiten.Image, world *physics.World, cam *Camera) {
	drawWorld(screen, world, cam, false)
}

func drawWorld(screen *ebiten.Image, world *physics.World, cam *Camera, goalOpen bool) {
	if screen == nil {
		return
	}
	screen.Fill(backgroundColor)
	if world == nil {
		return
	}

	d := &debugDrawer{screen: screen, cam: cam, world: world, goalOpen: goalOpen}
	d.drawAxes()
	cp.DrawSpace(world.Space(), d)

	for _, b := range world.Bodies() {
		x, y := cam.WorldToScreen(b.Position())
		ebitenutil.DebugPrintAt(screen, b.Kind().String(), int(x+labelOffset), int(y-labelOffset-12))
	}
}

// BodyColor picks the debug colour for b.
func BodyColor(b *physics.Body, goalOpen bool) cp.FColor {
	if b == nil {
		return colorUnknown
	}
	switch b.Kind() {
	case physics.KindBall:
		return colorBall
	case physics.KindGoal:
		if goalOpen {
			return colorGoalOpen
		}
		return colorGoalLocked
	case physics.KindStar:
		return colorSensor
	case physics.KindWall:
		return colorStatic
	}
	if b.Sensor() {
		return colorSensor
	}
	if b.Static() {
		return colorStatic
	}
	return colorUnknown
}

type debugDrawer struct {
	screen   *ebiten.Image
	cam      *Camera
	world    *physics.World
	goalOpen bool
}

func (d *debugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.drawCircle(pos, radius, fill)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, fill)
}

func (d *debugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *debugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
	if radius > 0 {
		d.drawCircle(a, radius, fill)
		d.drawCircle(b, radius, fill)
	}
}

func (d *debugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], fill)
}

func (d *debugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	half := size / 2 / d.cam.Scale()
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, fill)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, fill)
}

func (d *debugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *debugDrawer) OutlineColor() cp.FColor {
	return colorUnknown
}

func (d *debugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	b, _ := d.world.BodyForShape(shape)
	return BodyColor(b, d.goalOpen)
}

func (d *debugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *debugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *debugDrawer) Data() interface{} {
	return nil
}

func (d *debugDrawer) drawAxes() {
	ox, oy := d.cam.WorldToScreen(cp.Vector{})
	w, h := d.screen.Bounds().Dx(), d.screen.Bounds().Dy()
	ebitenutil.DrawLine(d.screen, 0, oy, float64(w), oy, axesColor)
	ebitenutil.DrawLine(d.screen, ox, 0, ox, float64(h), axesColor)
}

func (d *debugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.cam.WorldToScreen(a)
	x2, y2 := d.cam.WorldToScreen(b)
	ebitenutil.DrawLine(d.screen, x1, y1, x2, y2, toNRGBA(c))
}

func (d *debugDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := 0; i < len(verts); i++ {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *debugDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, c)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
