// Package logging configures the apex/log default logger for the commands.
package logging

import (
	"io"
	"os"

	"github.com/apex/log"
	jsonhandler "github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"
)

// Setup 设置级别与输出格式；jsonOut 为 true 时每行一个 JSON 对象。
func Setup(level string, jsonOut bool) error {
	return SetupWriter(os.Stderr, level, jsonOut)
}

func SetupWriter(w io.Writer, level string, jsonOut bool) error {
	lv, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	if jsonOut {
		log.SetHandler(jsonhandler.New(w))
	} else {
		log.SetHandler(text.New(w))
	}
	log.SetLevel(lv)
	return nil
}
