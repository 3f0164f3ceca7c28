//go:build !tinygo && cgo

package hal

import (
	"image"
	"sync/atomic"

	"epsilon/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window frontend.
type WindowConfig struct {
	Scale int
}

// RunWindow starts a desktop window that displays the simulated screen and
// forwards keyboard input. run is the app body; it executes on its own
// goroutine. RunWindow blocks until the window closes or run returns.
func RunWindow(cfg HostConfig, wcfg WindowConfig, run func(HAL)) error {
	if wcfg.Scale <= 0 {
		wcfg.Scale = 2
	}
	h := newHostHAL(cfg)

	g := &hostGame{h: h}
	go func() {
		defer g.done.Store(true)
		run(h)
	}()

	ebiten.SetWindowTitle(buildinfo.AppName + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*wcfg.Scale, h.fb.height*wcfg.Scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	done    atomic.Bool
}

func (g *hostGame) Update() error {
	if g.done.Load() {
		return ebiten.Termination
	}
	g.h.kbd.poll()
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGB565(g.scratch)
	rgb565ToRGBA(g.img.Pix, g.scratch, g.h.light.Brightness())

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
