package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/coder/websocket"

	"github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/kernel"
	"github.com/marben/mandelzoom/render"
)

const (
	frameWidth    = 960
	frameHeight   = 540
	frameInterval = 33 * time.Millisecond
)

// session renders the zooming view for one connected viewer.
type session struct {
	view     mandelzoom.Viewport
	renderer *render.Renderer
	fb       *render.Framebuffer

	// frame message reused across frames: big-endian width and height,
	// then tightly packed RGBA pixels
	msg []byte
}

func newSession() (*session, error) {
	pix := make([]byte, frameWidth*frameHeight*4)
	fb, err := render.NewFramebuffer(pix, frameWidth, frameHeight, frameWidth*4)
	if err != nil {
		return nil, fmt.Errorf("render.NewFramebuffer: %w", err)
	}

	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}

	return &session{
		view:     mandelzoom.NewViewport(mandelzoom.SpiralMinibrot),
		renderer: render.New(workers, kernel.DefaultWidth),
		fb:       fb,
		msg:      make([]byte, 8+frameWidth*frameHeight*4),
	}, nil
}

// stream pushes rendered frames to the viewer at a fixed pace and applies
// incoming clicks between frames, until the connection drops.
func (s *session) stream(ctx context.Context, c *websocket.Conn) error {
	clicks := make(chan [2]int, 4)
	go readClicks(ctx, c, clicks)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return context.Cause(ctx)
		case click := <-clicks:
			s.view.ClickAt(click[0], click[1], frameWidth, frameHeight)
			log.Printf("new center: (%f, %f)", s.view.CenterR, s.view.CenterI)
		case <-ticker.C:
			s.view.Advance()
			if err := s.renderer.Frame(s.fb, s.view); err != nil {
				return fmt.Errorf("render frame: %w", err)
			}
			if err := s.writeFrame(ctx, c); err != nil {
				return fmt.Errorf("write frame: %w", err)
			}
		}
	}
}

func (s *session) writeFrame(ctx context.Context, c *websocket.Conn) error {
	binary.BigEndian.PutUint32(s.msg[0:], frameWidth)
	binary.BigEndian.PutUint32(s.msg[4:], frameHeight)
	copy(s.msg[8:], s.fb.RGBA().Pix)
	return c.Write(ctx, websocket.MessageBinary, s.msg)
}

// readClicks decodes 8-byte click messages (big-endian x, y) until the
// connection closes.
func readClicks(ctx context.Context, c *websocket.Conn, clicks chan<- [2]int) {
	for {
		_, data, err := c.Read(ctx)
		if err != nil {
			return
		}
		if len(data) != 8 {
			log.Printf("dropping %d-byte message from viewer", len(data))
			continue
		}
		x := int(binary.BigEndian.Uint32(data[0:]))
		y := int(binary.BigEndian.Uint32(data[4:]))
		select {
		case clicks <- [2]int{x, y}:
		default: // viewer clicks faster than we render
		}
	}
}
