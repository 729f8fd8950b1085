package main

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog/log"
)

const (
	// Window title prefix, followed by the current file path
	titleHeader = "Image Viewer - "

	// How long transient overlay messages stay on screen
	overlayMessageDuration = 2 * time.Second

	overlayFontSize = 18.0
)

// Common colors used in rendering
var (
	colorWhite    = color.RGBA{255, 255, 255, 255}
	colorGray     = color.RGBA{180, 180, 180, 255}
	colorYellow   = color.RGBA{255, 255, 100, 255}
	bgColorMedium = color.RGBA{0, 0, 0, 160}
	bgColorDark   = color.RGBA{0, 0, 0, 200}
)

// Viewer is the UI shell: one window showing the session's current view.
// It never reaches into scanner or engine internals; every state change
// goes through the session's methods and the display is re-rendered from
// CurrentDisplayBitmap afterwards.
type Viewer struct {
	session *Session
	km      *KeybindingManager
	watcher *DirWatcher
	config  Config
	outPath string // save target override from --out

	fullscreen bool
	showInfo   bool
	showHelp   bool
	savedWinW  int
	savedWinH  int

	// Cached upload of the current rendered bitmap; rebuilt when the
	// session's view changes.
	displayed *ebiten.Image
	dirty     bool

	overlayMessage     string
	overlayMessageTime time.Time
}

// NewViewer creates the shell around an already-opened session.
func NewViewer(session *Session, config Config, outPath string, watcher *DirWatcher) *Viewer {
	return &Viewer{
		session:    session,
		km:         NewKeybindingManager(config.Keybindings),
		watcher:    watcher,
		config:     config,
		outPath:    outPath,
		fullscreen: config.Fullscreen,
		showInfo:   config.ShowInfo,
		dirty:      true,
	}
}

func (v *Viewer) showMessage(msg string) {
	v.overlayMessage = msg
	v.overlayMessageTime = time.Now()
}

func (v *Viewer) updateTitle() {
	if path, ok := v.session.CurrentPath(); ok {
		ebiten.SetWindowTitle(titleHeader + path)
	} else {
		ebiten.SetWindowTitle(strings.TrimSuffix(titleHeader, " - "))
	}
}

// Update handles one frame of input. All session mutation happens here,
// on the game loop goroutine.
func (v *Viewer) Update() error {
	if v.watcher != nil && v.watcher.Dirty() {
		if err := v.session.Refresh(); err != nil {
			v.showMessage(err.Error())
		} else {
			v.dirty = true
			v.updateTitle()
		}
	}

	v.handleQuit()
	v.handleNavigation()
	v.handleTransforms()
	v.handleSave()
	v.handleToggles()

	return nil
}

func (v *Viewer) handleQuit() {
	if !v.km.CheckAction("quit") {
		return
	}
	v.persistConfig()
	os.Exit(0)
}

func (v *Viewer) persistConfig() {
	if v.fullscreen {
		if v.savedWinW > 0 && v.savedWinH > 0 {
			v.config.WindowWidth = v.savedWinW
			v.config.WindowHeight = v.savedWinH
		}
	} else {
		v.config.WindowWidth, v.config.WindowHeight = ebiten.WindowSize()
	}
	v.config.Fullscreen = v.fullscreen
	v.config.ShowInfo = v.showInfo
	v.config.SortMethod = v.session.SortMethod()
	saveConfig(v.config)
}

func (v *Viewer) navigate(f func() error) {
	if err := f(); err != nil {
		log.Error().Err(err).Msg("navigation failed")
		v.showMessage(err.Error())
		return
	}
	v.dirty = true
	v.updateTitle()
}

func (v *Viewer) handleNavigation() {
	switch {
	case v.km.CheckAction("next"):
		v.navigate(func() error { return v.session.Cycle(CycleNext) })
	case v.km.CheckAction("previous"):
		v.navigate(func() error { return v.session.Cycle(CyclePrevious) })
	case v.km.CheckAction("first"):
		v.navigate(func() error { return v.session.JumpTo(0) })
	case v.km.CheckAction("last"):
		v.navigate(func() error { return v.session.JumpTo(v.session.Count() - 1) })
	case v.km.CheckAction("refresh"):
		v.navigate(v.session.Refresh)
	}
}

func (v *Viewer) handleTransforms() {
	switch {
	case v.km.CheckAction("rotate_right"):
		v.session.Rotate(RotateClockwise)
	case v.km.CheckAction("rotate_left"):
		v.session.Rotate(RotateCounterClockwise)
	case v.km.CheckAction("flip_horizontal"):
		v.session.Flip(FlipHorizontal)
	case v.km.CheckAction("flip_vertical"):
		v.session.Flip(FlipVertical)
	case v.km.CheckAction("reset_transform"):
		v.session.ResetTransform()
	default:
		return
	}
	v.dirty = true
}

// savePath picks the output path for the save action: the --out target
// when given, otherwise a sibling copy next to the original.
func (v *Viewer) savePath() string {
	if v.outPath != "" {
		return v.outPath
	}
	path, ok := v.session.CurrentPath()
	if !ok {
		return ""
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_edited" + ext
}

func (v *Viewer) handleSave() {
	if !v.km.CheckAction("save") {
		return
	}

	outPath := v.savePath()
	if outPath == "" {
		return
	}
	if err := v.session.Save(outPath); err != nil {
		log.Error().Err(err).Str("path", outPath).Msg("save failed")
		v.showMessage(err.Error())
		return
	}
	v.showMessage("Saved " + filepath.Base(outPath))
}

func (v *Viewer) handleToggles() {
	if v.km.CheckAction("info") {
		v.showInfo = !v.showInfo
	}
	if v.km.CheckAction("help") {
		v.showHelp = !v.showHelp
	}
	if v.km.CheckAction("cycle_sort") {
		name := v.session.CycleSortMethod()
		v.showMessage("Sort: " + name)
		v.updateTitle()
	}
	if v.km.CheckAction("fullscreen") {
		v.toggleFullscreen()
	}
}

func (v *Viewer) toggleFullscreen() {
	v.fullscreen = !v.fullscreen
	if v.fullscreen {
		v.savedWinW, v.savedWinH = ebiten.WindowSize()
		ebiten.SetFullscreen(true)
	} else {
		ebiten.SetFullscreen(false)
		if v.savedWinW > 0 && v.savedWinH > 0 {
			ebiten.SetWindowSize(v.savedWinW, v.savedWinH)
		}
	}
}

// currentImage returns the ebiten upload of the session's display bitmap,
// rebuilding it when the view changed.
func (v *Viewer) currentImage() *ebiten.Image {
	if !v.dirty && v.displayed != nil {
		return v.displayed
	}

	buf := v.session.CurrentDisplayBitmap()
	if buf == nil {
		path, _ := v.session.CurrentPath()
		return CreateErrorImage(400, 300, path, "nothing to display")
	}

	if v.displayed != nil {
		v.displayed.Deallocate()
	}
	v.displayed = ebiten.NewImageFromImage(buf)
	v.dirty = false
	return v.displayed
}

func (v *Viewer) calculateImageScale(img *ebiten.Image, maxW, maxH int) float64 {
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()

	if v.fullscreen {
		return math.Min(float64(maxW)/float64(iw), float64(maxH)/float64(ih))
	}

	// In windowed mode, don't scale up small images
	if iw > maxW || ih > maxH {
		return math.Min(float64(maxW)/float64(iw), float64(maxH)/float64(ih))
	}
	return 1
}

// Draw renders the current view plus any overlays.
func (v *Viewer) Draw(screen *ebiten.Image) {
	img := v.currentImage()
	if img == nil {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	scale := v.calculateImageScale(img, w, h)

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Scale(scale, scale)
	sw := float64(img.Bounds().Dx()) * scale
	sh := float64(img.Bounds().Dy()) * scale
	op.GeoM.Translate(float64(w)/2-sw/2, float64(h)/2-sh/2)
	screen.DrawImage(img, op)

	if v.showInfo {
		v.drawInfoBar(screen)
	}
	if v.showHelp {
		v.drawHelpOverlay(screen)
	}
	if v.overlayMessage != "" && time.Since(v.overlayMessageTime) < overlayMessageDuration {
		v.drawOverlayMessage(screen)
	}
}

func (v *Viewer) overlayFont() *text.GoTextFace {
	return &text.GoTextFace{
		Source: globalFontSource,
		Size:   overlayFontSize,
	}
}

func (v *Viewer) drawInfoBar(screen *ebiten.Image) {
	info, ok := v.session.CurrentImageInfo()
	if !ok {
		return
	}
	path, _ := v.session.CurrentPath()

	line := fmt.Sprintf("%d/%d  %s  %s %dx%d  [%s]",
		v.session.CurrentIndex()+1, v.session.Count(),
		filepath.Base(path), info.Mode, info.Width, info.Height,
		v.session.Transform())

	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	barH := overlayFontSize * 2
	DrawFilledRect(screen, 0, h-barH, w, barH, bgColorMedium)
	DrawText(screen, line, v.overlayFont(), 10, h-barH+overlayFontSize/2, colorWhite)
}

func (v *Viewer) drawHelpOverlay(screen *ebiten.Image) {
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	padding := 40.0

	DrawFilledRect(screen, padding, padding, w-padding*2, h-padding*2, bgColorDark)

	font := v.overlayFont()
	lineHeight := overlayFontSize * 1.5

	keybindings := v.km.GetKeybindings()
	descriptions := GetActionDescriptions()

	actions := make([]string, 0, len(keybindings))
	for action := range keybindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	y := padding + 30
	DrawText(screen, "HELP", font, padding+20, y, colorWhite)
	y += lineHeight * 1.5

	for _, action := range actions {
		keys := keybindings[action]
		if len(keys) == 0 {
			continue
		}
		if y > h-padding-lineHeight {
			break
		}
		DrawText(screen, strings.Join(keys, ", "), font, padding+20, y, colorYellow)
		DrawText(screen, descriptions[action], font, padding+240, y, colorGray)
		y += lineHeight
	}
}

func (v *Viewer) drawOverlayMessage(screen *ebiten.Image) {
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	font := v.overlayFont()

	msgW, msgH := text.Measure(v.overlayMessage, font, 0)
	x := w/2 - msgW/2
	y := h - msgH - 40

	DrawFilledRect(screen, x-10, y-5, msgW+20, msgH+10, bgColorMedium)
	DrawText(screen, v.overlayMessage, font, x, y, colorWhite)
}

// Layout implements ebiten.Game.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
