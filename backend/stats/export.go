package stats

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"taskbar/backend/apperr"
	"taskbar/backend/models"
)

// ExportCSV writes the summaries of the last days days to path, newest
// first. The header row is the table's column names. It returns the
// number of data rows written.
func (s *Store) ExportCSV(path string, days int) (int, error) {
	if path == "" {
		return 0, apperr.Validation("export csv", "path required")
	}
	cutoff, err := s.since(days)
	if err != nil {
		return 0, err
	}

	rows, err := s.db.Model(&models.DailySummary{}).
		Where("date >= ?", cutoff).
		Order("date DESC").
		Rows()
	if err != nil {
		return 0, apperr.IO("export csv", err)
	}
	defer rows.Close()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, apperr.IO("export csv", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, apperr.IO("export csv", err)
	}
	defer f.Close()

	n, err := writeCSV(csv.NewWriter(f), rows)
	if err != nil {
		return 0, apperr.IO("export csv", err)
	}
	if err := f.Close(); err != nil {
		return 0, apperr.IO("export csv", err)
	}
	s.logger.Printf("stats: exported %d summaries to %s", n, path)
	return n, nil
}

func writeCSV(w *csv.Writer, rows *sql.Rows) (int, error) {
	cols, err := rows.Columns()
	if err != nil {
		return 0, err
	}
	if err := w.Write(cols); err != nil {
		return 0, err
	}

	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	record := make([]string, len(cols))

	n := 0
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return n, err
		}
		for i, v := range values {
			record[i] = cell(v)
		}
		if err := w.Write(record); err != nil {
			return n, err
		}
		n++
	}
	if err := rows.Err(); err != nil {
		return n, err
	}
	w.Flush()
	return n, w.Error()
}

func cell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprint(v)
	}
}
