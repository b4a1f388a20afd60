package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
)

// webServer creates the server serving files in the ./static folder along
// with the websocket endpoint viewers stream frames from.
func webServer(port int) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler)
	mux.Handle("/", http.FileServer(http.Dir("./static")))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost:%d", port)
	return srv
}

// websocketHandler upgrades the connection and runs one rendering session
// for its lifetime. Every viewer gets its own viewport, so a click only
// retargets that viewer's stream.
func websocketHandler(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // TODO: tighten in prod
	})
	if err != nil {
		log.Println(err)
		return
	}

	log.Printf("viewer connected from %s", r.RemoteAddr)

	sess, err := newSession()
	if err != nil {
		log.Printf("err: new session for %s: %v", r.RemoteAddr, err)
		c.Close(websocket.StatusInternalError, "session setup failed")
		return
	}

	if err := sess.stream(r.Context(), c); err != nil {
		log.Printf("viewer %s gone: %v", r.RemoteAddr, err)
	}
	c.Close(websocket.StatusNormalClosure, "")
}
