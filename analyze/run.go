package analyze

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"gonum.org/v1/gonum/stat"
	_ "modernc.org/sqlite"
)

// RunQuery executes the 0-indexed query against db and returns its
// column headers alongside every row, stringified for display.
func RunQuery(ctx context.Context, db *sql.DB, index int) (headers []string, rows [][]string, err error) {
	if index < 0 || index >= len(Queries) {
		return nil, nil, fmt.Errorf("analyze: query number must be between 1 and %d", len(Queries))
	}

	result, err := db.QueryContext(ctx, Queries[index].SQL)
	if err != nil {
		return nil, nil, fmt.Errorf("analyze: query %q: %w", Queries[index].Title, err)
	}
	defer result.Close()

	headers, err = result.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("analyze: columns: %w", err)
	}

	for result.Next() {
		vals := make([]interface{}, len(headers))
		ptrs := make([]interface{}, len(headers))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := result.Scan(ptrs...); err != nil {
			return nil, nil, fmt.Errorf("analyze: scan: %w", err)
		}
		row := make([]string, len(vals))
		for i, v := range vals {
			row[i] = stringify(v)
		}
		rows = append(rows, row)
	}
	if err := result.Err(); err != nil {
		return nil, nil, fmt.Errorf("analyze: row iteration: %w", err)
	}
	return headers, rows, nil
}

func stringify(v interface{}) string {
	if v == nil {
		return "NULL"
	}
	switch t := v.(type) {
	case []byte:
		return string(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// FormatTable renders headers and rows as an aligned, space-padded text
// table, matching the layout diagnostics elsewhere use.
func FormatTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return "  (no data)\n"
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, v := range row {
			if len(v) > widths[i] {
				widths[i] = len(v)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("  ")
		for i, c := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(c)
			b.WriteString(strings.Repeat(" ", widths[i]-len(c)))
		}
		b.WriteString("\n")
	}
	writeRow(headers)
	seps := make([]string, len(headers))
	for i, w := range widths {
		seps[i] = strings.Repeat("-", w)
	}
	writeRow(seps)
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}

// ListQueries renders the catalog's titles and descriptions, 1-indexed.
func ListQueries() string {
	var b strings.Builder
	b.WriteString("\nAvailable queries:\n\n")
	for i, q := range Queries {
		fmt.Fprintf(&b, "  %2d. %s - %s\n", i+1, q.Title, q.Description)
	}
	b.WriteString("\n")
	return b.String()
}

// BoardIndexGuide renders the fixed 4x4 cell-index reference grid.
func BoardIndexGuide() string {
	return "" +
		"  Board Index Reference:\n" +
		"  +----+----+----+----+\n" +
		"  |  0 |  1 |  2 |  3 |\n" +
		"  +----+----+----+----+\n" +
		"  |  4 |  5 |  6 |  7 |\n" +
		"  +----+----+----+----+\n" +
		"  |  8 |  9 | 10 | 11 |\n" +
		"  +----+----+----+----+\n" +
		"  | 12 | 13 | 14 | 15 |\n" +
		"  +----+----+----+----+\n\n"
}

// CheckDB reports how many boards are solved, and how many carry full P2
// data, or an error if the file is missing or has no solutions table.
func CheckDB(ctx context.Context, path string) (solved, withP2 int64, err error) {
	if _, statErr := os.Stat(path); statErr != nil {
		return 0, 0, fmt.Errorf("analyze: database not found at %s: run the solver first", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return 0, 0, fmt.Errorf("analyze: open %s: %w", path, err)
	}
	defer db.Close()

	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM solutions`).Scan(&solved); err != nil {
		return 0, 0, fmt.Errorf("analyze: database exists but has no solutions table: run the solver first: %w", err)
	}
	if solved == 0 {
		return 0, 0, fmt.Errorf("analyze: database is empty: run the solver first")
	}
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM solutions WHERE has_p2_data = 1`).Scan(&withP2); err != nil {
		return solved, 0, fmt.Errorf("analyze: count p2 data: %w", err)
	}
	return solved, withP2, nil
}

// DepthStats returns the mean and standard deviation of game_depth across
// every solved board, as supplementary descriptive statistics alongside
// the fixed query catalog.
func DepthStats(ctx context.Context, db *sql.DB) (mean, stddev float64, err error) {
	rows, err := db.QueryContext(ctx, `SELECT game_depth FROM solutions`)
	if err != nil {
		return 0, 0, fmt.Errorf("analyze: depth stats query: %w", err)
	}
	defer rows.Close()

	var depths []float64
	for rows.Next() {
		var d float64
		if err := rows.Scan(&d); err != nil {
			return 0, 0, fmt.Errorf("analyze: depth stats scan: %w", err)
		}
		depths = append(depths, d)
	}
	if err := rows.Err(); err != nil {
		return 0, 0, fmt.Errorf("analyze: depth stats iteration: %w", err)
	}
	if len(depths) == 0 {
		return 0, 0, nil
	}

	mean, stddev = stat.MeanStdDev(depths, nil)
	return mean, stddev, nil
}
