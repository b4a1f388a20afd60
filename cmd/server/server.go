// server hosts the web frontend of the zooming Mandelbrot renderer: it
// serves the browser client from ./static and streams rendered frames to
// each connected viewer over a websocket. All rendering happens in this
// process; the browser only displays frames and reports clicks.
package main

import (
	"log"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	srv := webServer(8080)

	log.Printf("mandelzoom server waiting for websocket viewers")
	return srv.ListenAndServe()
}
