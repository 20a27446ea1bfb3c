package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"planter/game"
)

// GameRecord summarises one simulated game. The final holdings are those of
// each seat at the end of the last round.
type GameRecord struct {
	ID        int
	Seed      uint64
	Rounds    int
	YouPolicy string
	OppPolicy string
	You       BoardSummary
	Opponent  BoardSummary
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

type BoardSummary struct {
	Resources int
	Distinct  int
	Tokens    int
	Buildings int
	Money     int
}

// Summarize condenses a board into the columns written per game.
func Summarize(b game.Board) BoardSummary {
	return BoardSummary{
		Resources: 1 + len(b.ExtraResources),
		Distinct:  b.DistinctResources(),
		Tokens:    b.DiscountTokens,
		Buildings: len(b.OwnedBuildings),
		Money:     b.Money,
	}
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of root named by the current timestamp.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir is the directory the CSV files are written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{
		"id", "seed", "rounds", "you_policy", "opponent_policy",
		"you_resources", "you_distinct", "you_tokens", "you_buildings", "you_money",
		"opponent_resources", "opponent_distinct", "opponent_tokens", "opponent_buildings", "opponent_money",
		"start_time", "end_time", "duration",
	}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.FormatUint(record.Seed, 10),
			strconv.Itoa(record.Rounds),
			record.YouPolicy,
			record.OppPolicy,
		}
		row = append(row, record.You.columns()...)
		row = append(row, record.Opponent.columns()...)
		row = append(row,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		)
		rows = append(rows, row)
	}
	return w.write("games.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "round", "turn", "player", "role", "resource", "building", "score", "rank"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Round),
			strconv.Itoa(record.Turn),
			record.Player.String(),
			record.Role.String(),
			string(record.Resource),
			string(record.Building),
			strconv.FormatFloat(record.Score, 'f', 2, 64),
			strconv.Itoa(record.Rank),
		})
	}
	return w.write("moves.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}

func (b BoardSummary) columns() []string {
	return []string{
		strconv.Itoa(b.Resources),
		strconv.Itoa(b.Distinct),
		strconv.Itoa(b.Tokens),
		strconv.Itoa(b.Buildings),
		strconv.Itoa(b.Money),
	}
}
