// Package stats keeps the per-day history: one summary row per date and
// one progress row per (date, item).
package stats

import (
	"database/sql"
	"log"
	"math"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskbar/backend/apperr"
	"taskbar/backend/models"
)

// DateLayout is the format of every date column.
const DateLayout = "2006-01-02"

// streakWindow bounds how far back a streak walk looks.
const streakWindow = 365

// Store is the history store. Writes are serialized behind mu, one
// transaction per upsert.
type Store struct {
	db     *gorm.DB
	mu     sync.Mutex
	logger *log.Logger
	now    func() time.Time
}

func NewStore(db *gorm.DB, logger *log.Logger) *Store {
	return &Store{db: db, logger: logger, now: time.Now}
}

// WithClock replaces the clock that defines "today" for reads.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Today returns the current calendar date.
func (s *Store) Today() string {
	return s.now().Format(DateLayout)
}

// PercentOf converts a progress fraction to the stored percentage.
func PercentOf(progress float64) float64 {
	return math.Round(progress*1000) / 10
}

// SaveDailySummary upserts the summary for date and recomputes its streak
// in the same transaction.
func (s *Store) SaveDailySummary(date string, itemsDone, itemsCompleted, timeSeconds int) (models.DailySummary, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return models.DailySummary{}, apperr.Validation("save daily summary", "date must be YYYY-MM-DD")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	summary := models.DailySummary{
		Date:             date,
		TotalItemsDone:   itemsDone,
		TotalTimeSeconds: timeSeconds,
		ItemsCompleted:   itemsCompleted,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		dates, err := datesUpTo(tx, date)
		if err != nil {
			return err
		}
		summary.StreakDays = ComputeStreak(date, dates)

		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"total_items_done", "total_time_seconds", "items_completed", "streak_days", "updated_at",
			}),
		}).Create(&summary).Error
	})
	if err != nil {
		return models.DailySummary{}, apperr.IO("save daily summary", err)
	}
	return summary, nil
}

// SaveItemHistory upserts the row for (entry.Date, entry.ItemID).
// ProgressPercent is stored as given.
func (s *Store) SaveItemHistory(entry models.ItemHistory) error {
	if _, err := time.Parse(DateLayout, entry.Date); err != nil {
		return apperr.Validation("save item history", "date must be YYYY-MM-DD")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "date"}, {Name: "item_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"item_name", "due_start", "done", "progress_percent", "completed",
			}),
		}).Create(&entry).Error
	})
	if err != nil {
		return apperr.IO("save item history", err)
	}
	return nil
}

func datesUpTo(tx *gorm.DB, date string) ([]string, error) {
	var dates []string
	err := tx.Model(&models.DailySummary{}).
		Where("date <= ?", date).
		Order("date DESC").
		Limit(streakWindow).
		Pluck("date", &dates).Error
	return dates, err
}

// StreakAsOf computes the streak ending at date from the stored dates,
// whether or not date itself has a row.
func (s *Store) StreakAsOf(date string) (int, error) {
	dates, err := datesUpTo(s.db, date)
	if err != nil {
		return 0, apperr.IO("streak", err)
	}
	return ComputeStreak(date, dates), nil
}

func (s *Store) since(days int) (string, error) {
	if days < 1 {
		return "", apperr.Validation("stats", "days must be positive")
	}
	return s.now().AddDate(0, 0, -days).Format(DateLayout), nil
}

// DailyStats returns the summaries of the last days days, newest first.
func (s *Store) DailyStats(days int) ([]models.DailySummary, error) {
	cutoff, err := s.since(days)
	if err != nil {
		return nil, err
	}
	rows := []models.DailySummary{}
	if err := s.db.Where("date >= ?", cutoff).Order("date DESC").Find(&rows).Error; err != nil {
		return nil, apperr.IO("daily stats", err)
	}
	return rows, nil
}

// ItemHistory returns one item's rows for the last days days, newest first.
func (s *Store) ItemHistory(itemID int64, days int) ([]models.ItemHistory, error) {
	cutoff, err := s.since(days)
	if err != nil {
		return nil, err
	}
	rows := []models.ItemHistory{}
	err = s.db.Where("item_id = ? AND date >= ?", itemID, cutoff).
		Order("date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, apperr.IO("item history", err)
	}
	return rows, nil
}

// CurrentStreak returns the stored streak of today's summary, or 0 when
// nothing has been recorded today.
func (s *Store) CurrentStreak() (int, error) {
	var summary models.DailySummary
	err := s.db.Where("date = ?", s.Today()).Limit(1).Find(&summary).Error
	if err != nil {
		return 0, apperr.IO("current streak", err)
	}
	if summary.Date == "" {
		return 0, nil
	}
	return summary.StreakDays, nil
}

// TotalStats aggregates every summary row.
func (s *Store) TotalStats() (models.TotalStats, error) {
	var row struct {
		TotalDays           int64
		TotalItemsDone      int64
		TotalItemsCompleted int64
		AvgItemsPerDay      sql.NullFloat64
		LongestStreak       int
	}
	err := s.db.Model(&models.DailySummary{}).Select(
		"COUNT(*) AS total_days, " +
			"COALESCE(SUM(total_items_done), 0) AS total_items_done, " +
			"COALESCE(SUM(items_completed), 0) AS total_items_completed, " +
			"AVG(total_items_done) AS avg_items_per_day, " +
			"COALESCE(MAX(streak_days), 0) AS longest_streak",
	).Scan(&row).Error
	if err != nil {
		return models.TotalStats{}, apperr.IO("total stats", err)
	}

	current, err := s.CurrentStreak()
	if err != nil {
		return models.TotalStats{}, err
	}

	total := models.TotalStats{
		TotalDays:           row.TotalDays,
		TotalItemsDone:      row.TotalItemsDone,
		TotalItemsCompleted: row.TotalItemsCompleted,
		LongestStreak:       row.LongestStreak,
		CurrentStreak:       current,
	}
	if row.AvgItemsPerDay.Valid {
		total.AvgItemsPerDay = math.Round(row.AvgItemsPerDay.Float64*10) / 10
	}
	return total, nil
}
