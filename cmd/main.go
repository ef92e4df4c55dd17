package main

import (
	"log"
	"os"

	"laptimer/internal/core/model"
	"laptimer/internal/core/session"
	"laptimer/internal/logger"
	"laptimer/internal/platform"
	"laptimer/internal/storage"
	"laptimer/internal/ui/board"
	"laptimer/internal/ui/preferences"
	"laptimer/internal/ui/tray"
	"laptimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "LapTimer"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}
	l := logger.New(os.Stderr, logger.ParseLevel(settings.LogLevel))

	fyneApp := app.NewWithID("com.laptimer.app")
	runningIcon := resources.MustLogo(resources.IconRunning)
	idleIcon := resources.MustLogo(resources.IconIdle)
	fyneApp.SetIcon(runningIcon)

	controller := session.New(settings.SessionConfig(), session.WithLogger(l))
	boardWindow := board.New(fyneApp, controller)
	boardWindow.Render(controller.View())

	prefsWindow := preferences.New(fyneApp, settings, func(updated model.Settings) {
		settings = updated
		controller.UpdateConfig(settings.SessionConfig())
		if err := storage.SaveSettings(appName, settings); err != nil {
			l.Error("save settings", "err", err)
		}
		boardWindow.Update()
	})

	quit := func() {
		boardWindow.Stop()
		controller.Close()
		fyneApp.Quit()
	}

	var trayManager *tray.Manager
	desktopApp, hasTray := fyneApp.(desktop.App)
	if hasTray {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        boardWindow.Show,
			OnPreferences: prefsWindow.Show,
			OnMode:        controller.SwitchMode,
			OnStop:        controller.StopAllInMode,
			OnReset:       controller.ResetEverything,
			OnQuit:        quit,
		})
		trayManager.SetMode(controller.Mode())
		desktopApp.SetSystemTrayIcon(idleIcon)
		boardWindow.SetOnClose(boardWindow.Hide)
	} else {
		l.Info("system tray unsupported on this platform")
		boardWindow.SetOnClose(quit)
	}

	events := controller.Subscribe(16)
	go func() {
		running := false
		for event := range events {
			boardWindow.Update()
			if event.Type == session.EventLap {
				boardWindow.FlashLastLap(event.Slot)
			}
			if trayManager == nil || event.Type == session.EventTick {
				continue
			}
			view := controller.View()
			nowRunning := tray.Running(view) > 0
			fyne.Do(func() {
				trayManager.SetMode(view.Mode)
				trayManager.SetStatus(tray.Status(view))
				if nowRunning != running {
					if nowRunning {
						desktopApp.SetSystemTrayIcon(runningIcon)
					} else {
						desktopApp.SetSystemTrayIcon(idleIcon)
					}
				}
			})
			running = nowRunning
		}
	}()

	boardWindow.Show()
	fyneApp.Run()
}
