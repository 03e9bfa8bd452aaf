package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/breakout/audio"
	"github.com/lixenwraith/breakout/config"
	"github.com/lixenwraith/breakout/engine"
	"github.com/lixenwraith/breakout/events"
	"github.com/lixenwraith/breakout/game"
	"github.com/lixenwraith/breakout/input"
	"github.com/lixenwraith/breakout/render"
)

var (
	configDirFlag = flag.String("config", ".", "Directory searched for breakout.properties")
	muteFlag      = flag.Bool("mute", false, "Start with sound muted")
	seedFlag      = flag.Int64("seed", 0, "RNG seed, 0 = time-based")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configDirFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg)

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite))

	// Panic recovery: restore the terminal before the stack trace so the
	// crash is readable
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nBREAKOUT CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	audioEngine := audio.NewEngine()
	if err := audioEngine.Initialize(); err != nil {
		// Non-fatal, the game runs silent
		log.WithError(err).Warn("audio initialization failed, continuing without sound")
	}
	defer audioEngine.Close()
	if *muteFlag {
		audioEngine.ToggleMute()
	}

	clock := engine.NewClock()
	sched := engine.NewScheduler(clock)
	queue := events.NewQueue()
	router := events.NewRouter(queue)

	ctrl := game.NewController(cfg, clock, sched, queue, log, rng)
	renderer := render.NewRenderer(screen, cfg, ctrl)
	repeater := input.NewRepeater(ctrl.Paddle(), input.DefaultHoldWindow)

	router.Register(audio.NewHandler(audioEngine))
	router.Register(renderer)
	router.Register(&eventLogger{log: log})

	log.WithFields(logrus.Fields{
		"seed":  seed,
		"lives": cfg.InitialLives,
		"rows":  cfg.BaseBlockRows,
	}).Info("game starting")

	run(screen, cfg, ctrl, renderer, repeater, sched, router, audioEngine)
	log.Info("game exiting")
}

// run owns the tick loop. A poll goroutine feeds terminal events over a
// channel; each tick drains pending input, advances the simulation and
// draws the frame. All state mutation happens on the loop goroutine.
func run(
	screen tcell.Screen,
	cfg *config.Config,
	ctrl *game.Controller,
	renderer *render.Renderer,
	repeater *input.Repeater,
	sched *engine.Scheduler,
	router *events.Router,
	player audio.Player,
) {
	eventCh := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			eventCh <- ev
		}
	}()

	var loop *engine.Loop
	loop = engine.NewLoop(cfg.TickInterval, func() {
		for {
			select {
			case ev := <-eventCh:
				switch action := input.Map(ev); action {
				case input.ActionQuit:
					loop.Stop()
					return
				case input.ActionMoveLeft, input.ActionMoveRight:
					repeater.Press(action, time.Now())
				case input.ActionStartTurn:
					ctrl.StartTurn()
				case input.ActionTogglePause:
					ctrl.TogglePause()
				case input.ActionToggleMute:
					player.ToggleMute()
				case input.ActionResize:
					renderer.Sync()
				}

			default:
				repeater.Tick(time.Now())
				sched.RunDue()
				ctrl.Tick()
				router.DispatchAll()
				renderer.Frame()
				return
			}
		}
	})
	loop.Run()
}

// newLogger routes structured logs to a rotating file; stdout belongs to
// the terminal screen
func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(&lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
	})

	switch cfg.LogLevel {
	case "Trace":
		log.SetLevel(logrus.TraceLevel)
	case "Debug":
		log.SetLevel(logrus.DebugLevel)
	case "Warn":
		log.SetLevel(logrus.WarnLevel)
	case "Error":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}

// eventLogger records gameplay milestones for post-game inspection
type eventLogger struct {
	log logrus.FieldLogger
}

func (l *eventLogger) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventBlockHit,
		events.EventTurnHandoff,
	}
}

func (l *eventLogger) HandleEvent(ev events.GameEvent) {
	switch payload := ev.Payload.(type) {
	case *events.BlockHitPayload:
		l.log.WithFields(logrus.Fields{
			"variant": payload.Variant,
			"player":  payload.Player,
			"row":     payload.Row,
		}).Debug("block destroyed")
	case *events.TurnHandoffPayload:
		l.log.WithField("player", payload.Next).Info("turn handoff")
	}
}
