// Package game wires the simulation, renderer, audio and input together into
// an ebiten application.
package game

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/solar-explorer/internal/audio"
	"github.com/iburimskiy/solar-explorer/internal/catalog"
	"github.com/iburimskiy/solar-explorer/internal/config"
	"github.com/iburimskiy/solar-explorer/internal/logging"
	"github.com/iburimskiy/solar-explorer/internal/render"
	"github.com/iburimskiy/solar-explorer/internal/sim"
)

var (
	panelBg       = color.RGBA{R: 0x25, G: 0x25, B: 0x25, A: 0xFF}
	buttonBg      = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	buttonHoverBg = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	buttonPressBg = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	buttonBorder  = color.RGBA{R: 150, G: 170, B: 200, A: 255}
	meterFill     = color.RGBA{R: 0x4F, G: 0xC3, B: 0xF7, A: 255}
)

// button is a clickable panel control with hover and press states.
type button struct {
	x, y, w, h int
	label      string
	action     func(g *Game)
	hovered    bool
	pressed    bool
}

func (b *button) contains(mx, my int) bool {
	return mx >= b.x && mx <= b.x+b.w && my >= b.y && my <= b.y+b.h
}

// Game is the interaction/render side of the application. It owns the view
// state and all drawing; kinematic state arrives as scheduler snapshots.
type Game struct {
	cfg config.Settings
	log *logging.Logger

	cat    *catalog.Catalog
	sys    *sim.System
	sched  *sim.Scheduler
	view   *render.View
	scene  *render.Scene
	player *audio.Player

	frame    sim.Snapshot
	selected int // body index, -1 for none

	prevKey      map[ebiten.Key]bool
	dragging     bool
	lastX, lastY int

	buttons  []*button
	shotPath string // pending screenshot destination
	lastErr  error
}

// New builds the whole application from settings.
func New(cfg config.Settings, log *logging.Logger) *Game {
	cat := catalog.Load(cfg.Data.Dir, log)
	sys := sim.Build(cat, rand.New(rand.NewSource(time.Now().UnixNano())))

	sched := sim.NewScheduler(sys, config.TickInterval, time.Now(), log)
	sched.SetTimeScale(cfg.View.TimeScale)

	view := render.NewView(config.CenterX, config.CenterY, cfg.View.Zoom)
	view.ShowOrbits = cfg.View.ShowOrbits
	view.ShowNames = cfg.View.ShowNames
	view.ShowSatellites = cfg.View.ShowSatellites
	view.ThreeD = cfg.View.ThreeD

	imageNames := make([]string, len(cat.Bodies))
	for i := range cat.Bodies {
		imageNames[i] = cat.Bodies[i].Image
	}
	scene := &render.Scene{
		View:     view,
		Bodies:   sys.Bodies,
		Sats:     sys.Satellites,
		Textures: loadBodyTextures(sys.Bodies, imageNames, cfg.Data.ImagesDir, log),
		Sun:      loadSunTexture(cfg.Data.ImagesDir, log),
		Width:    config.CanvasWidth,
		Height:   config.CanvasHeight,
	}

	player := audio.NewPlayer(cfg.Audio.Volume, log)
	if cfg.Audio.File != "" {
		if err := player.Load(cfg.Audio.File); err != nil {
			log.Warn("background music not loaded: %v", err)
		}
	}

	g := &Game{
		cfg:      cfg,
		log:      log,
		cat:      cat,
		sys:      sys,
		sched:    sched,
		view:     view,
		scene:    scene,
		player:   player,
		selected: -1,
		prevKey:  map[ebiten.Key]bool{},
	}
	g.frame = sched.Current()
	g.buttons = g.makeButtons()
	return g
}

// Select makes the named body the info-panel subject. Unknown names clear the
// selection and report false.
func (g *Game) Select(name string) bool {
	i := g.sys.Find(name)
	g.selected = i
	return i >= 0
}

func (g *Game) makeButtons() []*button {
	defs := []struct {
		label  string
		action func(g *Game)
	}{
		{"Start", func(g *Game) { g.sched.Start() }},
		{"Pause", func(g *Game) { g.sched.Pause() }},
		{"Reset", func(g *Game) { g.reset() }},
		{"Export CSV", func(g *Game) { g.exportDialog() }},
		{"Load Music", func(g *Game) { g.musicDialog() }},
		{"Screenshot", func(g *Game) { g.screenshotDialog() }},
	}
	x := config.CanvasWidth + (config.PanelWidth-config.ButtonWidth)/2
	buttons := make([]*button, len(defs))
	for i, d := range defs {
		buttons[i] = &button{
			x: x, y: 120 + i*(config.ButtonHeight+10),
			w: config.ButtonWidth, h: config.ButtonHeight,
			label:  d.label,
			action: d.action,
		}
	}
	return buttons
}

// reset restores the initial zoom, pan, body angles and date, leaving the
// running state and toggles alone.
func (g *Game) reset() {
	g.view.Reset()
	g.sched.Reset()
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mx, my := ebiten.CursorPosition()
	overCanvas := mx >= 0 && mx < config.CanvasWidth && my >= 0 && my < config.CanvasHeight

	for _, b := range g.buttons {
		b.hovered = b.contains(mx, my)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		pressedButton := false
		for _, b := range g.buttons {
			if b.hovered {
				b.pressed = true
				pressedButton = true
			}
		}
		if !pressedButton && overCanvas {
			if hit := render.Pick(g.view, g.sys.Bodies, g.frame, float64(mx), float64(my)); hit >= 0 {
				g.selected = hit
			}
			g.dragging = true
			g.lastX, g.lastY = mx, my
		}
	}

	if g.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.view.Pan(float64(mx-g.lastX), float64(my-g.lastY))
		g.lastX, g.lastY = mx, my
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		for _, b := range g.buttons {
			if b.pressed && b.hovered {
				b.action(g)
			}
			b.pressed = false
		}
		g.dragging = false
	}

	if _, wheelY := ebiten.Wheel(); wheelY != 0 && overCanvas {
		if wheelY > 0 {
			g.view.ZoomBy(config.ZoomStep)
		} else {
			g.view.ZoomBy(1 / config.ZoomStep)
		}
	}

	if justPressed(ebiten.KeySpace) {
		if g.sched.Running() {
			g.sched.Pause()
		} else {
			g.sched.Start()
		}
	}
	if justPressed(ebiten.KeyR) {
		g.reset()
	}
	if justPressed(ebiten.KeyO) {
		g.view.ShowOrbits = !g.view.ShowOrbits
	}
	if justPressed(ebiten.KeyN) {
		g.view.ShowNames = !g.view.ShowNames
	}
	if justPressed(ebiten.KeyM) {
		g.view.ShowSatellites = !g.view.ShowSatellites
	}
	if justPressed(ebiten.KeyD) {
		g.view.ThreeD = !g.view.ThreeD
	}
	if justPressed(ebiten.KeyTab) && len(g.sys.Bodies) > 0 {
		g.selected = (g.selected + 1) % len(g.sys.Bodies)
	}
	if justPressed(ebiten.KeyEqual) {
		g.stepTimeScale(0.1)
	}
	if justPressed(ebiten.KeyMinus) {
		g.stepTimeScale(-0.1)
	}
	if justPressed(ebiten.KeyB) {
		g.player.Toggle()
	}
	if justPressed(ebiten.KeyBracketRight) {
		g.player.StepVolume(0.1)
	}
	if justPressed(ebiten.KeyBracketLeft) {
		g.player.StepVolume(-0.1)
	}
	if justPressed(ebiten.KeyP) {
		g.screenshotDialog()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.sched.Pause()
		return ebiten.Termination
	}

	if justPressed(ebiten.KeyArrowLeft) {
		g.view.Pan(20, 0)
	}
	if justPressed(ebiten.KeyArrowRight) {
		g.view.Pan(-20, 0)
	}
	if justPressed(ebiten.KeyArrowUp) {
		g.view.Pan(0, 20)
	}
	if justPressed(ebiten.KeyArrowDown) {
		g.view.Pan(0, -20)
	}

	// Take the latest tick snapshot, if one arrived.
	select {
	case f := <-g.sched.Frames():
		g.frame = f
	default:
	}

	return nil
}

func (g *Game) stepTimeScale(delta float64) {
	ts := g.sched.TimeScale() + delta
	if ts < config.MinTimeScale {
		ts = config.MinTimeScale
	}
	if ts > config.MaxTimeScale {
		ts = config.MaxTimeScale
	}
	g.sched.SetTimeScale(ts)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen, g.frame)
	g.drawPanel(screen)

	if g.shotPath != "" {
		path := g.shotPath
		g.shotPath = ""
		if err := saveScreenshot(screen, path); err != nil {
			g.lastErr = err
			g.log.Error("screenshot failed: %v", err)
		} else {
			g.log.Info("screenshot saved: %s", path)
		}
	}
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	px := config.CanvasWidth
	vector.DrawFilledRect(screen, float32(px), 0, config.PanelWidth, config.WindowHeight, panelBg, false)

	ebitenutil.DebugPrintAt(screen, "SOLAR SYSTEM EXPLORER", px+25, 16)
	ebitenutil.DebugPrintAt(screen, g.frame.Date.Format("2006-01-02"), px+85, 40)

	status := "Stopped - Space to start"
	if g.sched.Running() {
		status = "Running - Space to pause"
	}
	ebitenutil.DebugPrintAt(screen, status, px+25, 64)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Speed %.1fx  Zoom %.2fx", g.sched.TimeScale(), g.view.Zoom), px+25, 84)

	for _, b := range g.buttons {
		g.drawButton(screen, b)
	}

	y := g.buttons[len(g.buttons)-1].y + config.ButtonHeight + 20
	g.drawMusicStatus(screen, px+25, y)
	y += 44

	toggles := fmt.Sprintf("[O]rbits:%s [N]ames:%s\n[M]oons:%s  [D]3D:%s",
		onOff(g.view.ShowOrbits), onOff(g.view.ShowNames),
		onOff(g.view.ShowSatellites), onOff(g.view.ThreeD))
	ebitenutil.DebugPrintAt(screen, toggles, px+25, y)
	y += 44

	g.drawSelectedInfo(screen, px+15, y)

	if g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "Error: "+g.lastErr.Error(), px+15, config.WindowHeight-24)
	}
}

func (g *Game) drawButton(screen *ebiten.Image, b *button) {
	bg := buttonBg
	if b.pressed {
		bg = buttonPressBg
	} else if b.hovered {
		bg = buttonHoverBg
	}
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bg, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, buttonBorder, false)

	textWidth := len(b.label) * 8
	ebitenutil.DebugPrintAt(screen, b.label, b.x+(b.w-textWidth)/2, b.y+(b.h-16)/2)
}

func (g *Game) drawMusicStatus(screen *ebiten.Image, x, y int) {
	label := "Music: none ([B] toggle)"
	if g.player.Loaded() {
		if g.player.Playing() {
			label = fmt.Sprintf("Music: on  vol %.0f%%", g.player.Volume()*100)
		} else {
			label = fmt.Sprintf("Music: off vol %.0f%%", g.player.Volume()*100)
		}
	}
	ebitenutil.DebugPrintAt(screen, label, x, y)

	// Level meter under the label.
	const meterW, meterH = 180, 6
	vector.DrawFilledRect(screen, float32(x), float32(y+20), meterW, meterH, color.RGBA{R: 20, G: 25, B: 35, A: 255}, false)
	level := g.player.Level()
	if level > 1 {
		level = 1
	}
	if level > 0 {
		vector.DrawFilledRect(screen, float32(x), float32(y+20), float32(meterW*level), meterH, meterFill, false)
	}
}

func (g *Game) drawSelectedInfo(screen *ebiten.Image, x, y int) {
	if g.selected < 0 || g.selected >= len(g.cat.Bodies) {
		ebitenutil.DebugPrintAt(screen, "Click a planet for info\n(Tab cycles selection)", x, y)
		return
	}
	rec := &g.cat.Bodies[g.selected]

	lines := []string{rec.Name, ""}
	lines = append(lines, wrapText(rec.Facts, 28)...)
	lines = append(lines, "", fmt.Sprintf("Moons: %d", g.cat.MoonCount(rec.Name)))
	for _, field := range catalog.ScienceFields {
		if v, ok := rec.Science[field.Key]; ok {
			lines = append(lines, field.Label+": "+v)
		}
	}

	maxLines := (config.WindowHeight - y - 40) / 16
	if len(lines) > maxLines && maxLines > 0 {
		lines = lines[:maxLines]
	}
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), x, y)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

func (g *Game) exportDialog() {
	path, err := zenity.SelectFileSave(
		zenity.Title("Export Planet Data"),
		zenity.Filename("planets_export.csv"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{Name: "CSV", Patterns: []string{"*.csv"}}},
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			g.lastErr = err
		}
		return
	}
	f, err := os.Create(path)
	if err != nil {
		g.lastErr = err
		return
	}
	defer f.Close()
	if err := g.cat.WriteCSV(f); err != nil {
		g.lastErr = err
		return
	}
	g.log.Info("planet data exported: %s", path)
}

func (g *Game) musicDialog() {
	path, err := zenity.SelectFile(
		zenity.Title("Open Music File"),
		zenity.FileFilters{{Name: "Audio", Patterns: []string{"*.wav", "*.mp3", "*.flac"}}},
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			g.lastErr = err
		}
		return
	}
	if err := g.player.Load(path); err != nil {
		g.lastErr = err
	}
}

func (g *Game) screenshotDialog() {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save Screenshot"),
		zenity.Filename("solar_system.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{Name: "PNG", Patterns: []string{"*.png"}}},
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			g.lastErr = err
		}
		return
	}
	// Captured at the end of the next Draw, once the frame is complete.
	g.shotPath = path
}

func saveScreenshot(screen *ebiten.Image, path string) error {
	b := screen.Bounds()
	pix := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pix)
	img := &image.RGBA{Pix: pix, Stride: 4 * b.Dx(), Rect: image.Rect(0, 0, b.Dx(), b.Dy())}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// wrapText word-wraps s to at most width characters per line.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
