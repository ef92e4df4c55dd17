package main

import (
	"context"
	"log"

	"laptimer/internal/core/session"
	"laptimer/internal/logger"
	"laptimer/internal/storage"
	"laptimer/internal/tui"
)

const appName = "LapTimer"

func main() {
	ctx, cancelCtx := context.WithCancel(context.Background())
	defer cancelCtx()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}
	l, f, err := logger.NewFile("laptimer.log", logger.ParseLevel(settings.LogLevel))
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	controller := session.New(settings.SessionConfig(), session.WithLogger(l))
	defer controller.Close()
	events := controller.Subscribe(64)

	program := tui.NewStopwatch(controller, tui.WithContext(ctx), tui.WithLogger(l))
	// forward session events until the controller closes
	go func() {
		for event := range events {
			program.Send(tui.EventMsg(event))
		}
	}()

	if _, err := program.Run(); err != nil {
		l.Error("tui exited with error", "err", err)
		return
	}
	l.Debug("tui exited")
}
