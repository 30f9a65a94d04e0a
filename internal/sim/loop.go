package sim

import (
	"context"
	"log"
	"time"

	"github.com/san-kum/galaxsim/internal/dynamo"
)

// Pacer decides how long to wait between frames. elapsed is the time the
// frame took to compute and render.
type Pacer interface {
	Wait(ctx context.Context, elapsed time.Duration) error
}

// SleepPacer sleeps for whatever is left of the frame, scaled by Speed.
// A Speed above 1 slows playback down.
type SleepPacer struct {
	Frame time.Duration
	Speed float64
}

func NewSleepPacer(dt, speed float64) *SleepPacer {
	return &SleepPacer{
		Frame: time.Duration(dt * float64(time.Second)),
		Speed: speed,
	}
}

func (p *SleepPacer) Wait(ctx context.Context, elapsed time.Duration) error {
	remaining := time.Duration(float64(p.Frame-elapsed) * p.Speed)
	if remaining <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(remaining)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoPacer runs frames back to back.
type NoPacer struct{}

func (NoPacer) Wait(ctx context.Context, _ time.Duration) error { return ctx.Err() }

type Stats struct {
	Frames  int
	Elapsed time.Duration
}

func (s Stats) FPS() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Frames) / s.Elapsed.Seconds()
}

// Loop drives a Simulation: step, render, pace, clear.
type Loop struct {
	Sim   *Simulation
	Sink  dynamo.Sink
	Pacer Pacer
	// MaxFrames stops the loop after that many frames; zero runs until ctx
	// is done.
	MaxFrames int
	// LogEvery logs the frame rate every N frames; zero disables it.
	LogEvery int
}

func (l *Loop) Run(ctx context.Context) (Stats, error) {
	pacer := l.Pacer
	if pacer == nil {
		pacer = NoPacer{}
	}

	var stats Stats
	start := time.Now()
	window := start

	for l.MaxFrames == 0 || stats.Frames < l.MaxFrames {
		if err := ctx.Err(); err != nil {
			stats.Elapsed = time.Since(start)
			return stats, err
		}

		frameStart := time.Now()

		if err := l.Sim.Step(); err != nil {
			stats.Elapsed = time.Since(start)
			return stats, err
		}
		if err := l.Sim.Render(l.Sink); err != nil {
			stats.Elapsed = time.Since(start)
			return stats, err
		}

		waitErr := pacer.Wait(ctx, time.Since(frameStart))
		l.Sim.ClearFrame()
		stats.Frames++

		if l.LogEvery > 0 && stats.Frames%l.LogEvery == 0 {
			now := time.Now()
			fps := float64(l.LogEvery) / now.Sub(window).Seconds()
			window = now
			log.Printf("frame %d t=%.2f fps=%.1f", stats.Frames, l.Sim.Time(), fps)
		}

		if waitErr != nil {
			stats.Elapsed = time.Since(start)
			return stats, waitErr
		}
	}

	stats.Elapsed = time.Since(start)
	return stats, nil
}
