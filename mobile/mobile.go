package mobile

import (
	"net/http"

	"github.com/apex/log"
	httpserver "shogilegal/internal/server/http"
)

// StartServer starts the legality API on 127.0.0.1:port in the background,
// so it doesn't block the Android UI thread. port is e.g. "2888".
func StartServer(port string) {
	srv := httpserver.NewServer()
	go func() {
		addr := "127.0.0.1:" + port
		log.WithField("addr", addr).Info("mobile server listening")
		if err := http.ListenAndServe(addr, srv); err != nil {
			log.WithError(err).Error("mobile server stopped")
		}
	}()
}
