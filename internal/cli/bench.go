package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/tmorgal/blokus-go/internal/model"
	"github.com/tmorgal/blokus-go/internal/sim"
)

func newBenchCmd() *cobra.Command {
	var (
		difficulties []string
		boardSize    int
		games        int
		parallel     int
		seed         uint64
		timeLimit    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Aggregate controller diagnostics over a series of games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			simCfg := sim.Config{
				BoardSize:    boardSize,
				Difficulties: difficulties,
				TimeLimit:    timeLimit,
				Seed:         seed,
			}

			results, err := app.Runner.RunMany(cmd.Context(), simCfg, games, parallel)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(benchReport(simCfg, results))
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&difficulties, "difficulties", "d", nil, "Four seat difficulties, e.g. easy,medium,hard,easy (default all easy)")
	cmd.Flags().IntVar(&boardSize, "board-size", model.BoardSize, "Board edge length")
	cmd.Flags().IntVarP(&games, "games", "n", 10, "Number of games to play")
	cmd.Flags().IntVar(&parallel, "parallel", 4, "Games run concurrently")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for reproducible games (0 = random)")
	cmd.Flags().DurationVar(&timeLimit, "time-limit", 0, "Per-move budget (0 = tier default)")

	return cmd
}

func benchReport(simCfg sim.Config, results []*sim.Result) BenchReport {
	labels := seatDifficulties(simCfg.Difficulties)

	size := simCfg.BoardSize
	if size <= 0 {
		size = model.BoardSize
	}
	report := BenchReport{Games: len(results), BoardSize: size}

	for player := model.MinPlayer; player <= model.MaxPlayer; player++ {
		seat := SeatBench{
			Player:     int(player),
			Difficulty: labels[int(player-model.MinPlayer)],
		}
		var meanSum time.Duration
		sampled := 0
		for _, result := range results {
			diag := result.Diagnostics[player]
			seat.Moves += diag.Moves
			seat.Passes += diag.Passes
			seat.Timeouts += diag.Timeouts
			seat.Fallbacks += diag.Fallbacks
			if len(diag.Durations) > 0 {
				meanSum += diag.AverageDuration()
				sampled++
			}
		}
		mean := time.Duration(0)
		if sampled > 0 {
			mean = meanSum / time.Duration(sampled)
		}
		seat.MeanDuration = mean.String()
		report.Seats = append(report.Seats, seat)
	}
	return report
}
