package models

import "time"

// DailySummary is one row per calendar date.
type DailySummary struct {
	Date             string    `gorm:"primaryKey;size:10" json:"date"`
	TotalItemsDone   int       `gorm:"not null;default:0" json:"total_items_done"`
	TotalTimeSeconds int       `gorm:"default:0" json:"total_time_seconds"`
	ItemsCompleted   int       `gorm:"not null;default:0" json:"items_completed"`
	StreakDays       int       `gorm:"default:1" json:"streak_days"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (DailySummary) TableName() string { return "daily_summary" }

// ItemHistory is one row per (date, item).
type ItemHistory struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	Date            string    `gorm:"size:10;not null;uniqueIndex:idx_item_history_date_item;index:idx_item_history_date,sort:desc" json:"date"`
	ItemID          int64     `gorm:"not null;uniqueIndex:idx_item_history_date_item" json:"item_id"`
	ItemName        string    `gorm:"not null" json:"item_name"`
	DueStart        int       `gorm:"not null;default:0" json:"due_start"`
	Done            int       `gorm:"not null;default:0" json:"done"`
	ProgressPercent float64   `gorm:"not null;default:0" json:"progress_percent"`
	Completed       bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt       time.Time `json:"created_at"`
}

func (ItemHistory) TableName() string { return "item_history" }

// TotalStats aggregates the whole summary table.
type TotalStats struct {
	TotalDays           int64   `json:"total_days"`
	TotalItemsDone      int64   `json:"total_items_done"`
	TotalItemsCompleted int64   `json:"total_items_completed"`
	AvgItemsPerDay      float64 `json:"avg_items_per_day"`
	LongestStreak       int     `json:"longest_streak"`
	CurrentStreak       int     `json:"current_streak"`
}
