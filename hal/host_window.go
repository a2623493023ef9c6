//go:build !tinygo && cgo

package hal

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/marf41/3keys-1knob/internal/buildinfo"
)

const (
	windowTickHz = 200 // one update per firmware tick (5 ms cadence)
	screenW      = 240
	screenH      = 170
)

// RunWindow opens the simulator window: three indicator swatches, keys on
// Z/X/C, rotation on the arrow keys and the encoder switch on Enter or S.
// It blocks until the window closes or step returns an error.
func RunWindow(h *Host, step func() error) error {
	g := &hostGame{h: h, step: step, swatch: ebiten.NewImage(1, 1)}
	g.swatch.Fill(color.White)
	ebiten.SetWindowTitle("3keys-1knob (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(screenW*3, screenH*3)
	ebiten.SetTPS(windowTickHz)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h      *Host
	step   func() error
	swatch *ebiten.Image
}

func (g *hostGame) Update() error {
	g.h.SetKey(0, ebiten.IsKeyPressed(ebiten.KeyZ))
	g.h.SetKey(1, ebiten.IsKeyPressed(ebiten.KeyX))
	g.h.SetKey(2, ebiten.IsKeyPressed(ebiten.KeyC))
	g.h.SetEncoderSwitch(ebiten.IsKeyPressed(ebiten.KeyEnter) || ebiten.IsKeyPressed(ebiten.KeyS))
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.h.Spin(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.h.Spin(-1)
	}

	g.h.step()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	px := g.h.PixelSnapshot()
	for i, c := range px {
		frame := &ebiten.DrawImageOptions{}
		frame.GeoM.Scale(60, 60)
		frame.GeoM.Translate(float64(10+i*76), 10)
		frame.ColorScale.Scale(0.25, 0.25, 0.25, 1)
		screen.DrawImage(g.swatch, frame)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(56, 56)
		op.GeoM.Translate(float64(12+i*76), 12)
		op.ColorScale.Scale(float32(c[0])/255, float32(c[1])/255, float32(c[2])/255, 1)
		screen.DrawImage(g.swatch, op)
	}

	ebitenutil.DebugPrintAt(screen, "keys: Z X C  turn: Left/Right  switch: Enter/S", 8, 78)
	y := 90
	for _, line := range g.h.RecentEmissions() {
		ebitenutil.DebugPrintAt(screen, line, 8, y)
		y += 12
	}
	if g.h.BootloaderRequested() {
		ebitenutil.DebugPrintAt(screen, "bootloader entry requested", 8, screenH-16)
	}
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}
