package main

import (
	"github.com/SpookyBoy99/chroma/internal/app"
	"github.com/SpookyBoy99/chroma/internal/configs"
)

func main() {
	config := configs.LoadConfig()
	application := app.NewGalleryApplication(config)
	if err := application.Start(); err != nil {
		return
	}
}
