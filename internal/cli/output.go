package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tmorgal/blokus-go/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case PieceList:
		o.printPieceList(v)
	case PieceView:
		o.printPieceView(v)
	case AnchorReport:
		o.printAnchorReport(v)
	case GameReport:
		o.printGameReport(v)
	case SeriesReport:
		o.printSeriesReport(v)
	case BenchReport:
		o.printBenchReport(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// PieceSummary describes one canonical piece
type PieceSummary struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

// PieceList holds the canonical piece table
type PieceList struct {
	Pieces []PieceSummary `json:"pieces"`
	Cells  int            `json:"cells"`
}

// PieceView is one piece rendered in a chosen orientation
type PieceView struct {
	Name     string   `json:"name"`
	Size     int      `json:"size"`
	Rotation int      `json:"rotation"`
	Flip     bool     `json:"flip"`
	Grid     []string `json:"grid"`
}

// Cell is a board coordinate
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// AnchorReport maps the legal anchors for one oriented piece on a position
type AnchorReport struct {
	Player    int            `json:"player"`
	Piece     string         `json:"piece"`
	Rotation  int            `json:"rotation"`
	Flip      bool           `json:"flip"`
	BoardSize int            `json:"board_size"`
	Anchors   []Cell         `json:"anchors"`
	Rejected  map[string]int `json:"rejected,omitempty"`
	Board     []string       `json:"board"`
}

// PlayerResult is one seat's final standing in a game. Score follows the
// official convention: remaining cells count against the player, plus the
// all-pieces and monomino-last bonuses.
type PlayerResult struct {
	Player     int    `json:"player"`
	Difficulty string `json:"difficulty"`
	Cells      int    `json:"cells"`
	Remaining  int    `json:"remaining"`
	Bonus      int    `json:"bonus,omitempty"`
	Score      int    `json:"score"`
}

// GameReport summarizes one self-play game
type GameReport struct {
	Turns         int            `json:"turns"`
	Placements    int            `json:"placements"`
	Substitutions int            `json:"substitutions"`
	Standings     []PlayerResult `json:"standings"`
	Winners       []int          `json:"winners"`
	Board         []string       `json:"board,omitempty"`
	History       []string       `json:"history,omitempty"`
}

// SeatTally is one seat's aggregate over a series of games
type SeatTally struct {
	Player     int     `json:"player"`
	Difficulty string  `json:"difficulty"`
	Wins       int     `json:"wins"`
	MeanScore  float64 `json:"mean_score"`
	MeanCells  float64 `json:"mean_cells"`
}

// SeriesReport aggregates a multi-game self-play run
type SeriesReport struct {
	Games int         `json:"games"`
	Seats []SeatTally `json:"seats"`
}

// SeatBench is one seat's controller counters summed over a series
type SeatBench struct {
	Player       int    `json:"player"`
	Difficulty   string `json:"difficulty"`
	Moves        int    `json:"moves"`
	Passes       int    `json:"passes"`
	Timeouts     int    `json:"timeouts"`
	Fallbacks    int    `json:"fallbacks"`
	MeanDuration string `json:"mean_duration"`
}

// BenchReport aggregates controller diagnostics over a series of games
type BenchReport struct {
	Games     int         `json:"games"`
	BoardSize int         `json:"board_size"`
	Seats     []SeatBench `json:"seats"`
}

func (o *Output) printPieceList(l PieceList) {
	fmt.Printf("Pieces (%d, %d cells):\n", len(l.Pieces), l.Cells)
	for _, p := range l.Pieces {
		fmt.Printf("  %-3s %d cells\n", p.Name, p.Size)
	}
}

func (o *Output) printPieceView(v PieceView) {
	flipStr := ""
	if v.Flip {
		flipStr = ", flipped"
	}
	fmt.Printf("Piece: %s (%d cells, rotation %d%s)\n", v.Name, v.Size, v.Rotation, flipStr)
	for _, row := range v.Grid {
		fmt.Printf("  %s\n", spaced(row))
	}
}

func (o *Output) printAnchorReport(r AnchorReport) {
	flipStr := ""
	if r.Flip {
		flipStr = ", flipped"
	}
	fmt.Printf("Piece: %s (rotation %d%s)\n", r.Piece, r.Rotation, flipStr)
	fmt.Printf("Player: %d\n", r.Player)
	fmt.Printf("Legal anchors: %d\n", len(r.Anchors))

	if len(r.Rejected) > 0 {
		fmt.Println("Rejected by rule:")
		for _, category := range ruleOrder {
			if count, ok := r.Rejected[category]; ok {
				fmt.Printf("  %-16s %d\n", category, count)
			}
		}
	}

	fmt.Println()
	o.printBoardRows(r.Board)
}

// ruleOrder fixes the display order of rejection categories to match the
// validator's check order
var ruleOrder = []string{
	"ownership",
	"bounds",
	"overlap",
	"edge adjacency",
	"starting corner",
	"diagonal contact",
}

func (o *Output) printGameReport(g GameReport) {
	fmt.Printf("Turns: %d\n", g.Turns)
	fmt.Printf("Placements: %d\n", g.Placements)
	fmt.Printf("Substitutions: %d\n", g.Substitutions)

	fmt.Println("Standings:")
	for _, p := range g.Standings {
		bonus := ""
		if p.Bonus > 0 {
			bonus = fmt.Sprintf(", bonus %d", p.Bonus)
		}
		fmt.Printf("  player %d (%s): score %d (%d cells placed, %d remaining%s)\n",
			p.Player, p.Difficulty, p.Score, p.Cells, p.Remaining, bonus)
	}

	winners := make([]string, len(g.Winners))
	for i, w := range g.Winners {
		winners[i] = fmt.Sprintf("player %d", w)
	}
	fmt.Printf("Winner: %s\n", strings.Join(winners, ", "))

	if len(g.History) > 0 {
		fmt.Println("\nHistory:")
		for i, move := range g.History {
			fmt.Printf("  %3d. %s\n", i+1, move)
		}
	}

	if len(g.Board) > 0 {
		fmt.Println()
		o.printBoardRows(g.Board)
	}
}

func (o *Output) printSeriesReport(s SeriesReport) {
	fmt.Printf("Games: %d\n", s.Games)
	for _, seat := range s.Seats {
		fmt.Printf("  player %d (%s): %d wins, mean score %.1f, mean cells %.1f\n",
			seat.Player, seat.Difficulty, seat.Wins, seat.MeanScore, seat.MeanCells)
	}
}

func (o *Output) printBenchReport(b BenchReport) {
	fmt.Printf("Games: %d (board %dx%d)\n", b.Games, b.BoardSize, b.BoardSize)
	for _, seat := range b.Seats {
		fmt.Printf("  player %d (%s): %d moves, %d passes, %d timeouts, %d fallbacks, mean %s\n",
			seat.Player, seat.Difficulty,
			seat.Moves, seat.Passes, seat.Timeouts, seat.Fallbacks, seat.MeanDuration)
	}
}

// boardRows renders a board one character per cell: '.' for empty, the
// owner's digit otherwise, with marks overriding both
func boardRows(board *model.Board, marks map[model.Position]byte) []string {
	size := board.Size()
	rows := make([]string, size)
	var sb strings.Builder
	for row := 0; row < size; row++ {
		sb.Reset()
		for col := 0; col < size; col++ {
			pos := model.Position{Row: row, Col: col}
			if mark, ok := marks[pos]; ok {
				sb.WriteByte(mark)
				continue
			}
			if player := board.At(pos); player != model.NoPlayer {
				sb.WriteByte('0' + byte(player))
			} else {
				sb.WriteByte('.')
			}
		}
		rows[row] = sb.String()
	}
	return rows
}

func (o *Output) printBoardRows(rows []string) {
	if len(rows) == 0 {
		return
	}

	size := len(rows[0])

	// Print column headers
	fmt.Print("    ")
	for col := 0; col < size; col++ {
		fmt.Printf("%2d ", col)
	}
	fmt.Println()

	// Print top border
	fmt.Print("   +")
	for col := 0; col < size; col++ {
		fmt.Print("---")
	}
	fmt.Println("+")

	// Print rows
	for row, cells := range rows {
		fmt.Printf("%2d |", row)
		for i := 0; i < len(cells); i++ {
			fmt.Printf(" %c ", cells[i])
		}
		fmt.Println("|")
	}

	// Print bottom border
	fmt.Print("   +")
	for col := 0; col < size; col++ {
		fmt.Print("---")
	}
	fmt.Println("+")
}

// spaced widens a grid row for readability: "#.#" -> "# . #"
func spaced(row string) string {
	return strings.Join(strings.Split(row, ""), " ")
}
