package main

import (
	"log"

	"github.com/Badsnus/prettyqr/cmd/app"
	"github.com/Badsnus/prettyqr/internal/adapters/config"
)

func main() {
	cfg := config.Get()
	a, err := app.New(cfg)
	if err != nil {
		log.Panic(err)
	}

	if err = a.Run(); err != nil {
		log.Panic(err)
	}
}
