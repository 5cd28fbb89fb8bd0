package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tmorgal/blokus-go/internal/model"
	"github.com/tmorgal/blokus-go/internal/sim"
)

func newMovesCmd() *cobra.Command {
	var (
		player    int
		rotation  int
		flip      bool
		boardSize int
		plays     []string
		explain   bool
	)

	cmd := &cobra.Command{
		Use:   "moves <piece>",
		Short: "Map the legal anchors for a piece",
		Long: `moves renders the board with a '+' on every anchor where the oriented
piece could legally be placed, optionally after replaying a sequence of
moves to set up the position.

Replayed moves use the notation PLAYER:PIECE@ROW,COL with optional :rDEG
and :f suffixes, for example 1:I2@0,0 or 2:L5@0,16:r90:f.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.ToUpper(args[0])
			if _, ok := model.ShapeByName(name); !ok {
				return fmt.Errorf("unknown piece %q", name)
			}

			pid := model.PlayerID(player)
			if !pid.IsValid() {
				return fmt.Errorf("player must be 1-4, got %d", player)
			}

			board := model.NewBoard(boardSize)
			inventories := make(map[model.PlayerID]*model.Inventory)
			for p := model.MinPlayer; p <= model.MaxPlayer; p++ {
				inventories[p] = model.NewInventory(p)
			}

			for _, spec := range plays {
				move, err := parseMoveSpec(spec)
				if err != nil {
					return err
				}
				if !move.Player.IsValid() {
					return fmt.Errorf("invalid move %q: player must be 1-4", spec)
				}
				verdict := app.RulesService.ValidateMove(board, inventories[move.Player], move)
				if !verdict.Valid {
					return fmt.Errorf("replayed move %q is illegal: %s", spec, verdict.Detail)
				}
				if err := sim.Apply(board, inventories[move.Player], move); err != nil {
					return fmt.Errorf("replaying move %q: %w", spec, err)
				}
			}

			piece, ok := inventories[pid].Piece(name)
			if !ok {
				return fmt.Errorf("player %d no longer holds piece %s", player, name)
			}
			oriented, err := piece.Oriented(rotation, flip)
			if err != nil {
				return fmt.Errorf("rotation must be 0, 90, 180 or 270")
			}

			anchors := app.RulesService.ValidAnchors(board, inventories[pid], pid, oriented)

			report := AnchorReport{
				Player:    player,
				Piece:     name,
				Rotation:  rotation,
				Flip:      flip,
				BoardSize: board.Size(),
			}

			marks := make(map[model.Position]byte, len(anchors))
			for _, anchor := range anchors {
				report.Anchors = append(report.Anchors, Cell{Row: anchor.Row, Col: anchor.Col})
				marks[anchor] = '+'
			}

			if explain {
				report.Rejected = make(map[string]int)
				for _, result := range app.RulesService.InvalidAnchors(board, inventories[pid], pid, oriented) {
					report.Rejected[result.Category.String()]++
				}
			}

			report.Board = boardRows(board, marks)

			out := NewOutput(cfg.Output)
			out.Print(report)
			return nil
		},
	}

	cmd.Flags().IntVarP(&player, "player", "p", 1, "Player seat: 1-4")
	cmd.Flags().IntVarP(&rotation, "rotation", "r", 0, "Clockwise rotation in degrees: 0, 90, 180, 270")
	cmd.Flags().BoolVarP(&flip, "flip", "f", false, "Mirror across the column axis (applied after rotation)")
	cmd.Flags().IntVar(&boardSize, "board-size", model.BoardSize, "Board edge length")
	cmd.Flags().StringArrayVar(&plays, "play", nil, "Move to replay before mapping (repeatable)")
	cmd.Flags().BoolVar(&explain, "explain", false, "Tally rejected anchors by the rule that failed")

	return cmd
}

// parseMoveSpec parses the PLAYER:PIECE@ROW,COL[:rDEG][:f] move notation
func parseMoveSpec(spec string) (model.Move, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 {
		return model.Move{}, fmt.Errorf("invalid move %q: want PLAYER:PIECE@ROW,COL", spec)
	}

	player, err := strconv.Atoi(parts[0])
	if err != nil {
		return model.Move{}, fmt.Errorf("invalid move %q: bad player: %w", spec, err)
	}

	name, at, found := strings.Cut(parts[1], "@")
	if !found {
		return model.Move{}, fmt.Errorf("invalid move %q: missing @ROW,COL anchor", spec)
	}
	rowStr, colStr, found := strings.Cut(at, ",")
	if !found {
		return model.Move{}, fmt.Errorf("invalid move %q: anchor wants ROW,COL", spec)
	}
	row, err := strconv.Atoi(rowStr)
	if err != nil {
		return model.Move{}, fmt.Errorf("invalid move %q: bad row: %w", spec, err)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil {
		return model.Move{}, fmt.Errorf("invalid move %q: bad col: %w", spec, err)
	}

	rotation := 0
	flip := false
	for _, modifier := range parts[2:] {
		switch {
		case modifier == "f":
			flip = true
		case strings.HasPrefix(modifier, "r"):
			rotation, err = strconv.Atoi(modifier[1:])
			if err != nil {
				return model.Move{}, fmt.Errorf("invalid move %q: bad rotation: %w", spec, err)
			}
		default:
			return model.Move{}, fmt.Errorf("invalid move %q: unknown modifier %q", spec, modifier)
		}
	}

	anchor := model.Position{Row: row, Col: col}
	return model.NewMove(model.PlayerID(player), strings.ToUpper(name), anchor, rotation, flip), nil
}
