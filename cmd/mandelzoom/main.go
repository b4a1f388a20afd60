// mandelzoom opens a window showing a continuously zooming view of the
// Mandelbrot set. A left click moves the zoom target to the point under
// the cursor.
package main

import (
	"fmt"
	"log"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/kernel"
	"github.com/marben/mandelzoom/render"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

type game struct {
	view     mandelzoom.Viewport
	renderer *render.Renderer
	fb       *render.Framebuffer
	frame    *ebiten.Image
}

func newGame() (*game, error) {
	pix := make([]byte, screenWidth*screenHeight*4)
	fb, err := render.NewFramebuffer(pix, screenWidth, screenHeight, screenWidth*4)
	if err != nil {
		return nil, fmt.Errorf("render.NewFramebuffer: %w", err)
	}

	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	log.Printf("using %d workers for rendering", workers)

	return &game{
		view:     mandelzoom.NewViewport(mandelzoom.SpiralMinibrot),
		renderer: render.New(workers, kernel.DefaultWidth),
		fb:       fb,
		frame:    ebiten.NewImage(screenWidth, screenHeight),
	}, nil
}

// Update consumes input, advances the zoom and renders the next frame into
// the framebuffer.
func (g *game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		px, py := ebiten.CursorPosition()
		g.view.ClickAt(px, py, screenWidth, screenHeight)
		log.Printf("new center: (%f, %f)", g.view.CenterR, g.view.CenterI)
	}

	g.view.Advance()

	if err := g.renderer.Frame(g.fb, g.view); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}
	g.frame.WritePixels(g.fb.RGBA().Pix)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.frame, nil)

	status := fmt.Sprintf("FPS: %0.1f\ncenter: (%.15f, %.15f)\nzoom: %.3e",
		ebiten.ActualFPS(), g.view.CenterR, g.view.CenterI, g.view.Zoom)
	ebitenutil.DebugPrint(screen, status)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	g, err := newGame()
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Mandelbrot - click to change zoom target")
	return ebiten.RunGame(g)
}
