package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/tmorgal/blokus-go/internal/model"
	"github.com/tmorgal/blokus-go/internal/services/ai"
	"github.com/tmorgal/blokus-go/internal/sim"
)

func newSelfplayCmd() *cobra.Command {
	var (
		difficulties []string
		boardSize    int
		games        int
		parallel     int
		seed         uint64
		timeLimit    time.Duration
		maxTurns     int
		showBoard    bool
		showHistory  bool
	)

	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Play complete games between the AI tiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			simCfg := sim.Config{
				BoardSize:    boardSize,
				Difficulties: difficulties,
				TimeLimit:    timeLimit,
				MaxTurns:     maxTurns,
				Seed:         seed,
			}

			out := NewOutput(cfg.Output)

			if games <= 1 {
				result, err := app.Runner.Run(simCfg)
				if err != nil {
					return err
				}
				out.Print(gameReport(simCfg, result, showBoard, showHistory))
				return nil
			}

			results, err := app.Runner.RunMany(cmd.Context(), simCfg, games, parallel)
			if err != nil {
				return err
			}
			out.Print(seriesReport(simCfg, results))
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&difficulties, "difficulties", "d", nil, "Four seat difficulties, e.g. easy,medium,hard,easy (default all easy)")
	cmd.Flags().IntVar(&boardSize, "board-size", model.BoardSize, "Board edge length")
	cmd.Flags().IntVarP(&games, "games", "n", 1, "Number of games to play")
	cmd.Flags().IntVar(&parallel, "parallel", 1, "Games run concurrently")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for reproducible games (0 = random)")
	cmd.Flags().DurationVar(&timeLimit, "time-limit", 0, "Per-move budget (0 = tier default)")
	cmd.Flags().IntVar(&maxTurns, "max-turns", 0, "Turn guard (0 = default)")
	cmd.Flags().BoolVar(&showBoard, "show-board", false, "Render the final board")
	cmd.Flags().BoolVar(&showHistory, "show-history", false, "Include the move history")

	return cmd
}

// seatDifficulties resolves the per-seat difficulty labels the runner will
// play with
func seatDifficulties(difficulties []string) []string {
	if len(difficulties) == 0 {
		return []string{ai.DifficultyEasy, ai.DifficultyEasy, ai.DifficultyEasy, ai.DifficultyEasy}
	}
	return difficulties
}

func gameReport(simCfg sim.Config, result *sim.Result, showBoard, showHistory bool) GameReport {
	labels := seatDifficulties(simCfg.Difficulties)

	report := GameReport{
		Turns:         result.Turns,
		Placements:    result.Placements,
		Substitutions: result.Substitutions,
	}
	for _, standing := range result.Standings {
		report.Standings = append(report.Standings, PlayerResult{
			Player:     int(standing.Player),
			Difficulty: labels[int(standing.Player-model.MinPlayer)],
			Cells:      standing.PlacedCells,
			Remaining:  standing.UnplacedCells,
			Bonus:      standing.Bonus,
			Score:      standing.Score,
		})
	}
	for _, winner := range result.Winners {
		report.Winners = append(report.Winners, int(winner))
	}
	if showBoard {
		report.Board = boardRows(result.Board, nil)
	}
	if showHistory {
		for _, move := range result.History {
			report.History = append(report.History, move.String())
		}
	}
	return report
}

func seriesReport(simCfg sim.Config, results []*sim.Result) SeriesReport {
	labels := seatDifficulties(simCfg.Difficulties)

	report := SeriesReport{Games: len(results)}
	for player := model.MinPlayer; player <= model.MaxPlayer; player++ {
		tally := SeatTally{
			Player:     int(player),
			Difficulty: labels[int(player-model.MinPlayer)],
		}
		score, cells := 0, 0
		for _, result := range results {
			cells += result.Scores[player]
			for _, standing := range result.Standings {
				if standing.Player == player {
					score += standing.Score
				}
			}
			for _, winner := range result.Winners {
				if winner == player {
					tally.Wins++
				}
			}
		}
		if len(results) > 0 {
			tally.MeanScore = float64(score) / float64(len(results))
			tally.MeanCells = float64(cells) / float64(len(results))
		}
		report.Seats = append(report.Seats, tally)
	}
	return report
}
