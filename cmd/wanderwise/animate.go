package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ensigniasec/wanderwise/internal/brochure"
	"github.com/ensigniasec/wanderwise/internal/catalog"
	"github.com/ensigniasec/wanderwise/internal/clock"
	"github.com/ensigniasec/wanderwise/internal/config"
	"github.com/ensigniasec/wanderwise/internal/counter"
)

type statUpdate struct {
	index  int
	update counter.Update
}

// animateStats runs the statistics counters on c and writes one line per
// frame, once every counter has produced it.
func animateStats(ctx context.Context, w io.Writer, cat *catalog.Catalog, cfg config.Config, c clock.Clock) error {
	n := len(cat.Stats)
	if n == 0 {
		return nil
	}
	steps := max(cfg.CounterSteps, 1)

	specs := make([]counter.Spec, n)
	for i, s := range cat.Stats {
		specs[i] = counter.Spec{Target: s.Value, Duration: cfg.CounterDuration(), Steps: steps, Decimal: s.Decimal}
	}

	// Sized for every update of the run so timer callbacks never block.
	updates := make(chan statUpdate, n*steps)
	panel := counter.NewPanel(c, specs, func(i int, u counter.Update) {
		updates <- statUpdate{index: i, update: u}
	})
	defer panel.Stop()
	panel.Start()

	frames := make(map[int][]string)
	filled := make(map[int]int)
	for done := 0; done < n; {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case up := <-updates:
			step := up.update.Step
			if frames[step] == nil {
				frames[step] = make([]string, n)
			}
			s := cat.Stats[up.index]
			frames[step][up.index] = s.Label + " " + brochure.StatDisplay(s, up.update.Value)
			filled[step]++
			if filled[step] == n {
				if _, err := fmt.Fprintln(w, strings.Join(frames[step], " | ")); err != nil {
					return err
				}
				delete(frames, step)
				delete(filled, step)
			}
			if up.update.Done {
				done++
			}
		}
	}
	return nil
}
