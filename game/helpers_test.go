package game

import (
	"io"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/breakout/config"
	"github.com/lixenwraith/breakout/engine"
	"github.com/lixenwraith/breakout/events"
)

// testConfig returns the default configuration, loaded from an empty
// directory so no developer-local properties file leaks into tests
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("load default config: %v", err)
	}
	return cfg
}

// testRig bundles a controller with the plumbing the tests drive directly
type testRig struct {
	cfg   *config.Config
	clock *engine.Clock
	sched *engine.Scheduler
	queue *events.Queue
	ctrl  *Controller
}

func newTestRig(t *testing.T, cfg *config.Config) *testRig {
	t.Helper()
	clock := engine.NewClock()
	sched := engine.NewScheduler(clock)
	queue := events.NewQueue()

	log := logrus.New()
	log.SetOutput(io.Discard)

	rng := rand.New(rand.NewSource(42))
	return &testRig{
		cfg:   cfg,
		clock: clock,
		sched: sched,
		queue: queue,
		ctrl:  NewController(cfg, clock, sched, queue, log, rng),
	}
}

// drainEvents consumes the queue into a per-type count
func (r *testRig) drainEvents() map[events.EventType]int {
	counts := make(map[events.EventType]int)
	for _, ev := range r.queue.Consume() {
		counts[ev.Type]++
	}
	return counts
}

// dropBall forces the ball below the bottom wall, drifting further down,
// so the next tick registers a fall without any collision on the way
func (r *testRig) dropBall() {
	b := r.ctrl.Ball()
	b.X = 0
	b.Y = r.cfg.Walls.Bottom - 10
	b.VX = 0
	b.VY = -1
}
