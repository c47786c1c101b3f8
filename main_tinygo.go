//go:build tinygo

package main

import (
	"watchface/app"
	"watchface/face"
	"watchface/hal"
)

func main() {
	h := hal.New()
	f, err := face.New(face.Options{Shape: app.DefaultShape, Date: true})
	if err != nil {
		h.Logger().WriteLineString(err.Error())
		select {}
	}
	if err := app.Run(h, f); err != nil {
		h.Logger().WriteLineString(err.Error())
	}
	select {}
}
