package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/blob-background/internal/applog"
	"github.com/iburimskiy/blob-background/internal/config"
	"github.com/iburimskiy/blob-background/internal/game"
)

func main() {
	applog.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.NewGame()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		g.Stop()
	}()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(fmt.Errorf("run window: %w", err))
	}
}

// fatal reports err in a native dialog and exits.
func fatal(err error) {
	applog.Logger().Error("blob background stopped", "err", err)
	if derr := zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon); derr != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}
