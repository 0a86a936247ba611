package stats

import "time"

// Entry is one recorded computation.
type Entry struct {
	At      time.Time
	Command string
	Input   string
	Summary string
}

// CommandCount pairs a command name with its invocation count.
type CommandCount struct {
	Command string
	Count   int
}

// Record logs one computation. Callers treat failures as best-effort:
// a broken session log must never block a math reply.
func (d *DB) Record(command, input, summary string) error {
	_, err := d.Exec(
		`INSERT INTO computations (at, command, input, summary) VALUES (?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), command, input, summary,
	)
	return err
}

// CommandCounts returns per-command totals, busiest first.
func (d *DB) CommandCounts() ([]CommandCount, error) {
	rows, err := d.Query(
		`SELECT command, COUNT(*) FROM computations GROUP BY command ORDER BY COUNT(*) DESC, command`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CommandCount
	for rows.Next() {
		var cc CommandCount
		if err := rows.Scan(&cc.Command, &cc.Count); err != nil {
			return nil, err
		}
		out = append(out, cc)
	}
	return out, rows.Err()
}

// Recent returns the last n computations, newest first.
func (d *DB) Recent(n int) ([]Entry, error) {
	rows, err := d.Query(
		`SELECT at, command, input, summary FROM computations ORDER BY id DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var at string
		if err := rows.Scan(&at, &e.Command, &e.Input, &e.Summary); err != nil {
			return nil, err
		}
		e.At, _ = time.Parse(time.RFC3339, at)
		out = append(out, e)
	}
	return out, rows.Err()
}
