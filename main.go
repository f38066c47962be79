package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/portfolio-backdrop/internal/audio"
	"github.com/iburimskiy/portfolio-backdrop/internal/config"
	"github.com/iburimskiy/portfolio-backdrop/internal/game"
)

func main() {
	settingsPath := flag.String("settings", "settings.json", "path to a JSON settings file")
	width := flag.Int("width", 0, "window width (overrides settings)")
	height := flag.Int("height", 0, "window height (overrides settings)")
	theme := flag.String("theme", "", "dark or light (overrides settings)")
	mute := flag.Bool("mute", false, "disable the confirmation chime")
	chime := flag.String("chime", "", "wav, mp3 or flac file to use as the confirmation chime")
	flag.Parse()

	s, err := config.Load(*settingsPath)
	if err != nil {
		log.Fatalf("[MAIN] %v", err)
	}
	if *width > 0 {
		s.Window.Width = *width
	}
	if *height > 0 {
		s.Window.Height = *height
	}
	if *theme != "" {
		s.Theme = *theme
	}
	if *mute {
		s.Audio.Enabled = false
	}
	if *chime != "" {
		s.Audio.ChimeFile = *chime
	}
	if err := s.Validate(); err != nil {
		log.Fatalf("[MAIN] %v", err)
	}

	var player *audio.Player
	if s.Audio.Enabled {
		player, err = audio.NewPlayer(s.Audio.Volume, s.Audio.ChimeFile)
		if err != nil {
			// the page works without sound
			log.Printf("[MAIN] audio disabled: %v", err)
			player = nil
		} else {
			defer player.Close()
		}
	}

	ebiten.SetWindowSize(s.Window.Width, s.Window.Height)
	ebiten.SetWindowTitle("Portfolio - wheel to scroll, T: theme, Enter: contact, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	ebiten.SetTPS(s.Window.TPS)

	g := game.New(s, player, game.NewPrompter())
	log.Printf("[MAIN] starting %dx%d at %d tps", s.Window.Width, s.Window.Height, s.Window.TPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
