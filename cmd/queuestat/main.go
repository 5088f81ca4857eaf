// Command queuestat floods a cyclic queue and reports how its capacity grows.
//
// Usage:
//
//	go run ./cmd/queuestat -n 100000 -capacity 1 -factor 1.5
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	cyclicqueue "github.com/jonoton/go-cyclicqueue"
)

func init() {
	w := os.Stderr
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.TimeOnly,
		}),
	))
}

func main() {
	n := flag.Int("n", 100_000, "number of items to push")
	capacity := flag.Int("capacity", 1, "initial capacity")
	factor := flag.Float64("factor", cyclicqueue.DefaultGrowthFactor, "growth factor in [1.1, 2.0]")
	flag.Parse()

	q, err := cyclicqueue.New[int](
		cyclicqueue.WithInitialCapacity(*capacity),
		cyclicqueue.WithGrowthFactor(*factor),
	)
	if err != nil {
		slog.Error("failed to create queue", "err", err)
		os.Exit(1)
	}

	start := time.Now()
	lastCapacity := q.Capacity()
	for i := 0; i < *n; i++ {
		q.Push(i)
		if c := q.Capacity(); c != lastCapacity {
			slog.Debug("capacity increased", "from", lastCapacity, "to", c, "size", q.Size())
			lastCapacity = c
		}
	}
	pushElapsed := time.Since(start)

	slog.Info("push complete",
		"items", *n,
		"capacity", q.Capacity(),
		"increments", q.CapacityIncrements(),
		"elapsed", pushElapsed,
		"ns_per_push", float64(pushElapsed.Nanoseconds())/float64(*n),
	)

	start = time.Now()
	for !q.IsEmpty() {
		if _, err := q.Pop(); err != nil {
			slog.Error("pop failed", "err", err)
			os.Exit(1)
		}
	}
	drainElapsed := time.Since(start)

	slog.Info("drain complete",
		"size", q.Size(),
		"capacity", q.Capacity(),
		"elapsed", drainElapsed,
	)
}
