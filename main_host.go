//go:build !tinygo

package main

import (
	"epsilon/app"
	"epsilon/internal/simcli"
)

func main() {
	simcli.Execute(app.New)
}
