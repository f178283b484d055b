package orbfield

import (
	"time"
)

// Clock provides monotonic millisecond timestamps measured from engine start.
// Frame holds the timestamp taken at the top of the current tick so every
// system in the tick sees the same time.
type Clock struct {
	start time.Time
	Frame int64
}

func NewClock() *Clock {
	return &Clock{start: time.Now()}
}

func (c *Clock) Now() int64 {
	return time.Since(c.start).Milliseconds()
}

type ClockModule struct{}

func (mod ClockModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewClock())
	app.UseSystem(
		System(clockSystem).
			InStage(PreUpdate),
	)
}

func clockSystem(clock *Clock) {
	clock.Frame = clock.Now()
}
