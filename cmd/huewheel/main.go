// Huewheel - A hue ring colour picker engine
//
// Huewheel rasterises a colour wheel, maps clicks on the ring to hues and
// keeps the picker state in step with colours supplied from outside.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/huewheel/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
