//go:build tinygo

package main

import (
	"epsilon/app"
	"epsilon/hal"
)

func main() {
	app.Run(hal.New())
}
