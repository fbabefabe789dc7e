// Package analyze runs a fixed catalog of heuristic SQL queries against
// a solved-boards database and formats the results for display.
package analyze

// Query is one named, described, ready-to-run SQL statement.
type Query struct {
	Title       string
	Description string
	SQL         string
}

// Queries is the fixed catalog, in display order. Index i corresponds to
// 1-indexed query number i+1.
var Queries = []Query{
	{
		"Game Balance",
		"Overall P1 win % vs P2 win % vs draw %",
		`SELECT
			SUM(CASE WHEN p1_win = 1 THEN 1 ELSE 0 END) AS p1_wins,
			SUM(CASE WHEN is_draw = 1 THEN 1 ELSE 0 END) AS draws,
			SUM(CASE WHEN p1_win = 0 AND is_draw = 0 THEN 1 ELSE 0 END) AS p2_wins,
			COUNT(*) AS total,
			ROUND(100.0 * SUM(CASE WHEN p1_win = 1 THEN 1 ELSE 0 END) / COUNT(*), 2) AS p1_win_pct,
			ROUND(100.0 * SUM(CASE WHEN is_draw = 1 THEN 1 ELSE 0 END) / COUNT(*), 2) AS draw_pct,
			ROUND(100.0 * SUM(CASE WHEN p1_win = 0 AND is_draw = 0 THEN 1 ELSE 0 END) / COUNT(*), 2) AS p2_win_pct
		FROM solutions`,
	},
	{
		"First-Mover Advantage",
		"How often P1 dominates all openings vs contested boards (P2 data only)",
		`WITH categories(board_type, sort_order) AS (
			VALUES
				('P1 dominates all openings', 1),
				('P2 dominates all openings', 2),
				('All draws', 3),
				('Mixed (contested)', 4)
		),
		classified AS (
			SELECT
				CASE
					WHEN p2_wins_count = 0 AND draws_count = 0 THEN 'P1 dominates all openings'
					WHEN p1_wins_count = 0 AND draws_count = 0 THEN 'P2 dominates all openings'
					WHEN draws_count = p1_wins_count + p2_wins_count + draws_count THEN 'All draws'
					ELSE 'Mixed (contested)'
				END AS board_type
			FROM solutions
			WHERE has_p2_data = 1
		)
		SELECT
			c.board_type,
			COUNT(cl.board_type) AS count,
			ROUND(100.0 * COUNT(cl.board_type) / MAX((SELECT COUNT(*) FROM classified), 1), 2) AS pct
		FROM categories c
		LEFT JOIN classified cl ON cl.board_type = c.board_type
		GROUP BY c.board_type, c.sort_order
		ORDER BY c.sort_order`,
	},
	{
		"Strongest Opening Moves",
		"Which board positions are P1's best openings?",
		`SELECT
			best_move AS move,
			best_move_position AS position,
			COUNT(*) AS times_chosen,
			SUM(CASE WHEN p1_win = 1 THEN 1 ELSE 0 END) AS wins,
			ROUND(100.0 * SUM(CASE WHEN p1_win = 1 THEN 1 ELSE 0 END) / COUNT(*), 2) AS win_pct
		FROM solutions
		WHERE best_move >= 0
		GROUP BY best_move
		ORDER BY win_pct DESC`,
	},
	{
		"Corner vs Edge Openings",
		"Does opening on a corner vs edge matter?",
		`SELECT
			best_move_position AS position_type,
			COUNT(*) AS total,
			SUM(CASE WHEN p1_win = 1 THEN 1 ELSE 0 END) AS wins,
			ROUND(100.0 * SUM(CASE WHEN p1_win = 1 THEN 1 ELSE 0 END) / COUNT(*), 2) AS win_pct
		FROM solutions
		WHERE best_move >= 0
		GROUP BY best_move_position`,
	},
	{
		"Win Method Distribution",
		"How do games end? Row vs Column vs Diagonal vs Square vs Blockade",
		`SELECT
			outcome,
			COUNT(*) AS frequency,
			ROUND(100.0 * COUNT(*) / (SELECT COUNT(*) FROM solutions), 2) AS pct
		FROM solutions
		GROUP BY outcome
		ORDER BY frequency DESC`,
	},
	{
		"Game Length Distribution",
		"How many moves until the game ends?",
		`SELECT
			game_depth AS depth,
			COUNT(*) AS frequency,
			ROUND(100.0 * COUNT(*) / (SELECT COUNT(*) FROM solutions), 2) AS pct
		FROM solutions
		GROUP BY game_depth
		ORDER BY game_depth`,
	},
	{
		"Game Length by Outcome",
		"Average game length per win method",
		`SELECT
			outcome,
			ROUND(AVG(game_depth), 1) AS avg_depth,
			MIN(game_depth) AS shortest,
			MAX(game_depth) AS longest,
			COUNT(*) AS count
		FROM solutions
		GROUP BY outcome
		ORDER BY avg_depth`,
	},
	{
		"P2 Counter-Strategies",
		"Top P2 responses that flip P1-favored boards (P1 wins overall, but P2 wins specific openings)",
		`SELECT
			r.p1_move,
			r.p2_best_move,
			r.outcome,
			COUNT(*) AS frequency
		FROM p2_responses r
		JOIN solutions s ON s.rank = r.rank
		WHERE s.p1_win = 1 AND r.is_p1_win = 0 AND r.outcome != 'Draw'
		GROUP BY r.p1_move, r.p2_best_move, r.outcome
		ORDER BY frequency DESC
		LIMIT 20`,
	},
	{
		"Blockade Frequency (P2 Responses)",
		"How important is the blockade mechanic across all openings?",
		`SELECT
			outcome,
			COUNT(*) AS frequency,
			ROUND(100.0 * COUNT(*) / (SELECT COUNT(*) FROM p2_responses), 2) AS pct
		FROM p2_responses
		GROUP BY outcome
		ORDER BY frequency DESC`,
	},
	{
		"Decisive vs Contested Boards",
		"How many boards have a unanimous result vs mixed across openings? (P2 data only)",
		`WITH categories(board_class, sort_order) AS (
			VALUES
				('P1 wins all', 1),
				('P2 wins all', 2),
				('All draws', 3),
				('Contested', 4)
		),
		classified AS (
			SELECT
				CASE
					WHEN p1_wins_count = p1_wins_count + p2_wins_count + draws_count THEN 'P1 wins all'
					WHEN p2_wins_count = p1_wins_count + p2_wins_count + draws_count THEN 'P2 wins all'
					WHEN draws_count = p1_wins_count + p2_wins_count + draws_count THEN 'All draws'
					ELSE 'Contested'
				END AS board_class
			FROM solutions
			WHERE has_p2_data = 1
		)
		SELECT
			c.board_class,
			COUNT(cl.board_class) AS count,
			ROUND(100.0 * COUNT(cl.board_class) / MAX((SELECT COUNT(*) FROM classified), 1), 2) AS pct
		FROM categories c
		LEFT JOIN classified cl ON cl.board_class = c.board_class
		GROUP BY c.board_class, c.sort_order
		ORDER BY c.sort_order`,
	},
	{
		"P2's Best Win Methods",
		"When P2 wins, how do they do it?",
		`SELECT
			outcome,
			COUNT(*) AS frequency,
			ROUND(100.0 * COUNT(*) / SUM(COUNT(*)) OVER(), 2) AS pct
		FROM p2_responses
		WHERE is_p1_win = 0 AND outcome != 'Draw'
		GROUP BY outcome
		ORDER BY frequency DESC`,
	},
}
