package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"go-wall-defense/internal/app"
)

const (
	hudLineHeight = 18
	healthBarH    = 3
)

// FieldRenderer draws a snapshot of the battlefield: ground, structures,
// weapons, enemies, projectiles, fog and a text HUD next to the map.
type FieldRenderer struct {
	area    image.Rectangle // where the map goes on screen
	hudX    int
	scale   float64
	mapW    float64
	mapH    float64
	colors  *FieldColors
	face    font.Face
	printer *message.Printer

	fillImg     *ebiten.Image
	fillVs      []ebiten.Vertex
	fillIs      []uint16
	groundImage *ebiten.Image // Предрендеренная земля
}

// FitScale returns the largest scale at which a w x h map fits into area.
func FitScale(w, h float64, area image.Rectangle) float64 {
	if w <= 0 || h <= 0 {
		return 1
	}
	return math.Min(float64(area.Dx())/w, float64(area.Dy())/h)
}

func NewFieldRenderer(mapW, mapH float64, area image.Rectangle, hudX int, face font.Face, colors *FieldColors) *FieldRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &FieldRenderer{
		area:    area,
		hudX:    hudX,
		scale:   FitScale(mapW, mapH, area),
		mapW:    mapW,
		mapH:    mapH,
		colors:  colors,
		face:    face,
		printer: message.NewPrinter(language.English),
		fillImg: fillImg,
		fillVs:  make([]ebiten.Vertex, 0, 8),
		fillIs:  make([]uint16, 0, 8),
	}
	r.RenderGroundImage()
	return r
}

// RenderGroundImage pre-renders the static background once.
func (r *FieldRenderer) RenderGroundImage() {
	w := int(math.Ceil(r.mapW * r.scale))
	h := int(math.Ceil(r.mapH * r.scale))
	if w < 1 || h < 1 {
		w, h = 1, 1
	}
	r.groundImage = ebiten.NewImage(w, h)
	r.groundImage.Fill(r.colors.Ground)

	// horizontal guide every tenth of the map height
	for i := 1; i < 10; i++ {
		y := float32(float64(h) * float64(i) / 10)
		vector.StrokeLine(r.groundImage, 0, y, float32(w), y, 1, DarkenColor(r.colors.Ground), false)
	}
}

// ToScreen maps field coordinates to screen pixels.
func (r *FieldRenderer) ToScreen(x, y float64) (float32, float32) {
	return float32(float64(r.area.Min.X) + x*r.scale), float32(float64(r.area.Min.Y) + y*r.scale)
}

func (r *FieldRenderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	screen.Fill(r.colors.Background)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.area.Min.X), float64(r.area.Min.Y))
	screen.DrawImage(r.groundImage, op)

	r.drawStructure(screen, snap.Fence, r.colors.Fence)
	r.drawStructure(screen, snap.Wall, r.colors.Wall)
	for _, w := range snap.Weapons {
		r.drawWeapon(screen, w)
	}
	for _, e := range snap.Enemies {
		r.drawEnemy(screen, e)
	}
	for _, p := range snap.Projectiles {
		x, y := r.ToScreen(p.X, p.Y)
		vector.DrawFilledCircle(screen, x, y, float32(math.Max(1.5, p.Radius*r.scale)), r.colors.Projectile, true)
	}
	for _, b := range snap.Blasts {
		x, y := r.ToScreen(b.X, b.Y)
		vector.StrokeCircle(screen, x, y, float32(b.Radius*r.scale), 2, r.colors.Projectile, true)
	}
	// туман поверх врагов
	if snap.FogBottom > 0 {
		x, y := r.ToScreen(0, 0)
		vector.DrawFilledRect(screen, x, y, float32(snap.Width*r.scale), float32(snap.FogBottom*r.scale), r.colors.Fog, false)
	}

	x, y := r.ToScreen(0, 0)
	vector.StrokeRect(screen, x, y, float32(snap.Width*r.scale), float32(snap.Height*r.scale), r.colors.StrokeWidth, r.colors.Text, false)

	r.drawHUD(screen, snap)
}

func (r *FieldRenderer) drawStructure(screen *ebiten.Image, s *app.StructureView, base color.RGBA) {
	if s == nil {
		return
	}
	x, y := r.ToScreen(0, s.Top)
	h := float32((s.Bottom - s.Top) * r.scale)
	w := float32(r.mapW * r.scale)
	if s.Health <= 0 {
		vector.StrokeRect(screen, x, y, w, h, r.colors.StrokeWidth, DarkenColor(base), false)
		return
	}
	vector.DrawFilledRect(screen, x, y, w, h, Damaged(base, s.Health, s.MaxHealth), false)
}

// drawWeapon draws a small upward triangle with the weapon's range ring.
func (r *FieldRenderer) drawWeapon(screen *ebiten.Image, w app.WeaponView) {
	cx, cy := r.ToScreen(w.X, w.Y)
	size := float32(7 * r.scale)
	if size < 4 {
		size = 4
	}

	path := vector.Path{}
	path.MoveTo(cx, cy-size)
	path.LineTo(cx+size, cy+size)
	path.LineTo(cx-size, cy+size)
	path.Close()

	clr := r.colors.Weapon
	if w.Cooldown > 0 {
		clr = LerpColor(clr, DarkenColor(clr), 0.5)
	}
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(clr.R) / 255
		r.fillVs[i].ColorG = float32(clr.G) / 255
		r.fillVs[i].ColorB = float32(clr.B) / 255
		r.fillVs[i].ColorA = float32(clr.A) / 255
	}
	screen.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})

	ring := r.colors.Weapon
	ring.A = 60
	vector.StrokeCircle(screen, cx, cy, float32(w.Range*r.scale), 1, ring, true)
}

func (r *FieldRenderer) drawEnemy(screen *ebiten.Image, e app.EnemyView) {
	x, y := r.ToScreen(e.X-e.W/2, e.Y-e.H/2)
	w := float32(e.W * r.scale)
	h := float32(e.H * r.scale)

	clr := r.colors.Enemy
	if e.Flies {
		clr = r.colors.Flyer
	}
	if e.Slowed {
		clr = LerpColor(clr, color.RGBA{80, 160, 255, 255}, 0.5)
	}
	if e.Flash > 0 {
		clr = LerpColor(clr, color.RGBA{255, 255, 255, 255}, e.Flash)
	}
	vector.DrawFilledRect(screen, x, y, w, h, clr, false)
	if e.Blocked {
		vector.StrokeRect(screen, x, y, w, h, 1, r.colors.Text, false)
	}

	if e.MaxHealth > 0 && e.Health < e.MaxHealth {
		frac := float32(e.Health / e.MaxHealth)
		vector.DrawFilledRect(screen, x, y-healthBarH-1, w, healthBarH, DarkenColor(r.colors.HealthBar), false)
		vector.DrawFilledRect(screen, x, y-healthBarH-1, w*frac, healthBarH, r.colors.HealthBar, false)
	}
}

// HUDLines renders the text panel contents for a snapshot.
func HUDLines(p *message.Printer, snap app.Snapshot) []string {
	lines := []string{
		p.Sprintf("Night %d", snap.Day),
		p.Sprintf("Time %.1f / %.0f s", snap.NightTime, snap.NightDuration),
		p.Sprintf("Resources %.0f", snap.Resources),
	}
	if snap.Wall != nil {
		lines = append(lines, p.Sprintf("Wall %.0f / %.0f", snap.Wall.Health, snap.Wall.MaxHealth))
	}
	if snap.Fence != nil {
		lines = append(lines, p.Sprintf("Fence %.0f / %.0f", snap.Fence.Health, snap.Fence.MaxHealth))
	}
	lines = append(lines,
		p.Sprintf("Speed x%.0f", snap.Speed),
		p.Sprintf("Enemies %d", len(snap.Enemies)),
	)
	if snap.Stats != nil {
		t := snap.Stats.Totals()
		lines = append(lines, p.Sprintf("Spawned %d  Killed %d", t.Spawned, t.Killed))
		for _, name := range snap.Stats.Names() {
			a := snap.Stats.Get(name)
			lines = append(lines, p.Sprintf("  %s %d/%d", name, a.Killed, a.Spawned))
		}
	}
	if snap.Paused {
		lines = append(lines, "PAUSED")
	}
	return lines
}

func (r *FieldRenderer) drawHUD(screen *ebiten.Image, snap app.Snapshot) {
	y := r.area.Min.Y + hudLineHeight
	for _, line := range HUDLines(r.printer, snap) {
		text.Draw(screen, line, r.face, r.hudX, y, r.colors.Text)
		y += hudLineHeight
	}
}

// DrawBanner writes a centered line of text across the screen.
func (r *FieldRenderer) DrawBanner(screen *ebiten.Image, msg string, y int) {
	b := text.BoundString(r.face, msg)
	x := (screen.Bounds().Dx() - b.Dx()) / 2
	text.Draw(screen, msg, r.face, x, y, r.colors.Text)
}
