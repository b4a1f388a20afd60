//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"
)

// initCanvas sizes the canvas and fills it with a placeholder color until
// the first frame arrives.
func initCanvas(width, height int, color string) {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "myCanvas")

	canvas.Set("width", width)
	canvas.Set("height", height)

	ctx := canvas.Call("getContext", "2d")

	ctx.Set("fillStyle", color)
	ctx.Call("fillRect", 0, 0, width, height)
}

// drawFrame puts one tightly packed RGBA frame onto the canvas.
func drawFrame(width, height int, pix []byte) {
	document := js.Global().Get("document")
	canvas := document.Call("getElementById", "myCanvas")
	ctx := canvas.Call("getContext", "2d")

	// Copy the Go byte slice into a JS TypedArray for ImageData
	jsData := js.Global().Get("Uint8ClampedArray").New(len(pix))
	js.CopyBytesToJS(jsData, pix)

	imageData := js.Global().Get("ImageData").New(jsData, width, height)
	ctx.Call("putImageData", imageData, 0, 0)
}

// canvasOnClick reports clicks on the canvas in canvas coordinates.
func canvasOnClick(fn func(x, y int)) {
	canvas := js.Global().Get("document").Call("getElementById", "myCanvas")
	canvas.Set("onclick", js.FuncOf(func(this js.Value, args []js.Value) any {
		e := args[0]
		rect := canvas.Call("getBoundingClientRect")
		x := e.Get("clientX").Int() - rect.Get("left").Int()
		y := e.Get("clientY").Int() - rect.Get("top").Int()
		fn(x, y)
		return nil
	}))
}

// sendBinary copies b into a JS TypedArray and sends it over the websocket.
func sendBinary(ws js.Value, b []byte) {
	buf := js.Global().Get("Uint8Array").New(len(b))
	js.CopyBytesToJS(buf, b)
	ws.Call("send", buf)
}

// logScreenf appends a formatted message to the log element in the DOM.
func logScreenf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)

	doc := js.Global().Get("document")
	logElem := doc.Call("getElementById", "log")
	logElem.Set("textContent", logElem.Get("textContent").String()+msg+"\n")
}
