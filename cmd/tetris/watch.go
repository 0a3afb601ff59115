package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	engine "github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	flagWatchBotInterval time.Duration
	flagWatchRate        float64
	flagWatchDuration    time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the engine play itself",
	Long: `Run the engine on a wall clock and let a random bot play it.
Frames are printed to stdout as the game advances. The run ends at game
over, after --duration, or on Ctrl+C.

Examples:
  tetris watch
  tetris watch --seed 42 --bot-interval 100ms
  tetris watch --duration 30s --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&flagWatchBotInterval, "bot-interval", 150*time.Millisecond, "Delay between bot decisions")
	watchCmd.Flags().Float64Var(&flagWatchRate, "input-rate", 0.8, "Probability the bot moves at each decision (0..1)")
	watchCmd.Flags().DurationVar(&flagWatchDuration, "duration", 0, "Stop after this long (0 = until game over)")
}

// bot submits random commands until ctx is done.
func bot(ctx context.Context, r *engine.Runner, rng *rand.Rand, every time.Duration, rate float64) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if c, ok := randomCommand(rng, rate); ok {
				r.Submit(c)
			}
		}
	}
}

func runWatch(_ *cobra.Command, _ []string) error {
	if flagWatchBotInterval <= 0 {
		return errors.New("--bot-interval must be positive")
	}
	if flagWatchRate < 0 || flagWatchRate > 1 {
		return errors.New("--input-rate must be between 0 and 1")
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := cfg.EngineOptions()
	opts.Source = rand.NewSource(seed)
	opts.Logger = logger.WithPrefix("engine")
	e, err := engine.New(opts)
	if err != nil {
		return err
	}
	shapes := e.Board().Shapes()

	interval := cfg.TickInterval()
	if flagFPS > 0 {
		interval = time.Second / time.Duration(flagFPS)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if flagWatchDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flagWatchDuration)
		defer cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	runner := engine.NewRunner(e, interval)
	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx) }()
	go bot(ctx, runner, rand.New(rand.NewSource(seed^0x5eed)), flagWatchBotInterval, flagWatchRate)

	// Redraw in place on a terminal, append frames otherwise
	redraw := term.IsTerminal(int(os.Stdout.Fd()))
	logger.Info("watching", "seed", seed, "interval", interval)

	var last engine.Frame
	for f := range runner.Frames() {
		last = f
		if redraw {
			fmt.Print("\x1b[H\x1b[2J")
		}
		fmt.Println(renderFrame(f.Snapshot, shapes, f.Tick))
		if f.Snapshot.GameOver() {
			cancel()
		}
	}

	if err := <-done; err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	fmt.Printf("\nseed %d  final score %d  lines %d  pieces %d\n",
		seed, last.Snapshot.Score, last.Snapshot.LinesCleared, last.Snapshot.PiecesLocked)
	return nil
}
