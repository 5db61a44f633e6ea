package main

import (
	dentabook "github.com/dentabookhq/core"
	"github.com/dentabookhq/core/config"
)

func main() {
	c := config.LoadConfig()

	if len(c.Port) == 0 {
		c.Port = "8099"
	}

	config.Current = c

	dentabook.Start(c)
}
