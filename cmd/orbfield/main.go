package main

import (
	"flag"
	"runtime"

	"github.com/orbfield/orbfield"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 720, "window height")
	flag.Parse()

	logger := orbfield.NewDefaultLogger("orbfield", *debug)
	scene := orbfield.NewMemoryScene()
	viewer := orbfield.NewViewer(*width, *height)

	app := orbfield.NewAppBuilder().
		UseModule(
			orbfield.ClockModule{},
			orbfield.OrbModule{
				Scene:  scene,
				Viewer: viewer,
				Logger: logger,
				OnActivate: func(record *orbfield.PayloadRecord) {
					if record != nil {
						logger.Infof("open %s (%s)", record.Title, record.URL)
					}
				},
			},
			orbfield.NewPlatformWindow(*width, *height, "Orbfield"),
			snapshotLogModule{logger: logger},
		).
		Build()

	app.Run()
}

// snapshotLogModule stands in for the lighting consumer: it reads the
// aggregated snapshot each tick and reports it at debug level.
type snapshotLogModule struct {
	logger orbfield.Logger
}

func (m snapshotLogModule) Install(app *orbfield.App, cmd *orbfield.Commands) {
	log := m.logger
	cmd.UseSystem(
		orbfield.System(func(clock *orbfield.Clock, mgr *orbfield.OrbManager) {
			snap := mgr.Snapshot(clock.Frame)
			if len(snap.Positions) > 0 && log.DebugEnabled() {
				log.Debugf("lighting snapshot: %d orbs, intensities %v", len(snap.Positions), snap.Intensities)
			}
		}).InStage(orbfield.PostUpdate),
	)
}
