// webclient.go is the WASM browser client for the zooming Mandelbrot
// renderer. It receives rendered frames over a websocket, draws them onto
// a canvas and reports canvas clicks back to the server.
//go:build js && wasm

package main

import (
	"encoding/binary"
	"syscall/js"
)

func main() {
	logScreenf("Starting WASM web client...")

	// Figure out the server address to open the WebSocket
	loc := js.Global().Get("window").Get("location")
	host := loc.Get("host").String()
	proto := "ws"
	if loc.Get("protocol").String() == "https:" {
		proto = "wss"
	}
	websocketUrl := proto + "://" + host + "/ws"

	logScreenf("Connecting to Mandelbrot server at %s...", websocketUrl)
	ws := js.Global().Get("WebSocket").New(websocketUrl)
	ws.Set("binaryType", "arraybuffer")

	frames := make(chan []byte, 1)
	ws.Set("onmessage", js.FuncOf(func(this js.Value, args []js.Value) any {
		buf := js.Global().Get("Uint8Array").New(args[0].Get("data"))
		b := make([]byte, buf.Get("length").Int())
		js.CopyBytesToGo(b, buf)
		select {
		case frames <- b:
		default: // still drawing the previous frame, drop this one
		}
		return nil
	}))
	ws.Set("onclose", js.FuncOf(func(js.Value, []js.Value) any {
		logScreenf("connection closed")
		close(frames)
		return nil
	}))

	canvasOnClick(func(x, y int) {
		click := make([]byte, 8)
		binary.BigEndian.PutUint32(click[0:], uint32(x))
		binary.BigEndian.PutUint32(click[4:], uint32(y))
		sendBinary(ws, click)
		logScreenf("new zoom target at (%d, %d)", x, y)
	})

	sized := false
	for frame := range frames {
		if len(frame) < 8 {
			logScreenf("short frame message: %d bytes", len(frame))
			continue
		}
		width := int(binary.BigEndian.Uint32(frame[0:]))
		height := int(binary.BigEndian.Uint32(frame[4:]))
		if !sized {
			initCanvas(width, height, "#3a3a6e")
			logScreenf("streaming %dx%d frames", width, height)
			sized = true
		}
		drawFrame(width, height, frame[8:])
	}
}
