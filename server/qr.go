package server

import (
	"fmt"
	"net/http"

	qr "github.com/skip2/go-qrcode"
)

// JoinURL is the websocket address a companion device connects to.
func JoinURL(r *http.Request) string {
	scheme := "ws"
	if r.TLS != nil {
		scheme = "wss"
	}
	return fmt.Sprintf("%s://%s/ws", scheme, r.Host)
}

// handleQR serves a PNG QR code of the join URL.
func (s *Server) handleQR(w http.ResponseWriter, r *http.Request) {
	png, err := qr.Encode(JoinURL(r), qr.Medium, 256)
	if err != nil {
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
