package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/apex/log"
	"shogilegal/internal/logging"
	httpserver "shogilegal/internal/server/http"
)

func main() {
	addr := flag.String("addr", ":2888", "listen address")
	level := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	logJSON := flag.Bool("log-json", false, "log as JSON lines")
	flag.Parse()

	if err := logging.Setup(*level, *logJSON); err != nil {
		log.WithError(err).Error("bad log level")
		os.Exit(2)
	}

	log.WithField("addr", *addr).Info("listening")
	if err := http.ListenAndServe(*addr, httpserver.NewServer()); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
