package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tmorgal/blokus-go/internal/model"
)

func newPiecesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pieces",
		Short: "Piece catalogue commands",
	}

	cmd.AddCommand(newPiecesListCmd())
	cmd.AddCommand(newPiecesShowCmd())

	return cmd
}

func newPiecesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the 21 canonical pieces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := PieceList{}
			for _, shape := range model.Shapes() {
				list.Pieces = append(list.Pieces, PieceSummary{
					Name: shape.Name,
					Size: shape.Size(),
				})
				list.Cells += shape.Size()
			}

			out := NewOutput(cfg.Output)
			out.Print(list)
			return nil
		},
	}
}

func newPiecesShowCmd() *cobra.Command {
	var (
		rotation int
		flip     bool
	)

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Render a piece in a chosen orientation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.ToUpper(args[0])

			shape, ok := model.ShapeByName(name)
			if !ok {
				return fmt.Errorf("unknown piece %q", name)
			}

			oriented, err := shape.Oriented(rotation, flip)
			if err != nil {
				return fmt.Errorf("rotation must be 0, 90, 180 or 270")
			}

			out := NewOutput(cfg.Output)
			out.Print(PieceView{
				Name:     shape.Name,
				Size:     shape.Size(),
				Rotation: rotation,
				Flip:     flip,
				Grid:     shapeGrid(oriented),
			})
			return nil
		},
	}

	cmd.Flags().IntVarP(&rotation, "rotation", "r", 0, "Clockwise rotation in degrees: 0, 90, 180, 270")
	cmd.Flags().BoolVarP(&flip, "flip", "f", false, "Mirror across the column axis (applied after rotation)")

	return cmd
}

// shapeGrid renders a shape's cells as '#' on a '.' grid just large enough
// to hold them, translating negative offsets into view
func shapeGrid(shape model.Shape) []string {
	minRow, minCol := 0, 0
	maxRow, maxCol := 0, 0
	for _, c := range shape.Cells {
		minRow = min(minRow, c.Row)
		minCol = min(minCol, c.Col)
		maxRow = max(maxRow, c.Row)
		maxCol = max(maxCol, c.Col)
	}

	grid := make([][]byte, maxRow-minRow+1)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(".", maxCol-minCol+1))
	}
	for _, c := range shape.Cells {
		grid[c.Row-minRow][c.Col-minCol] = '#'
	}

	rows := make([]string, len(grid))
	for i, row := range grid {
		rows[i] = string(row)
	}
	return rows
}
