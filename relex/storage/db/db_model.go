package db

import "time"

// Run is one pipeline execution: its stage cursor, configuration
// fingerprint and final metrics.
type Run struct {
	ID            string    `gorm:"primaryKey;column:id;type:varchar(64)"`
	StageProgress int       `gorm:"column:stage_progress;not null;default:0"`
	Seed          int64     `gorm:"column:seed;not null;default:0"`
	MaxLen        int       `gorm:"column:max_len;not null;default:0"`
	Epochs        int       `gorm:"column:epochs;not null;default:0"`
	BatchSize     int       `gorm:"column:batch_size;not null;default:0"`
	Accuracy      float64   `gorm:"column:accuracy;type:decimal(10,4);not null;default:0"`
	Precision     float64   `gorm:"column:precision;type:decimal(10,4);not null;default:0"`
	Recall        float64   `gorm:"column:recall;type:decimal(10,4);not null;default:0"`
	F1            float64   `gorm:"column:f1;type:decimal(10,4);not null;default:0"`
	GmtCreate     time.Time `gorm:"column:gmt_create;autoCreateTime"`
	GmtModified   time.Time `gorm:"column:gmt_modified;autoUpdateTime"`
}

// Candidate is one stored relation candidate row, prediction included for
// scored splits.
type Candidate struct {
	ID          int64     `gorm:"primaryKey;column:id;autoIncrement"`
	RunID       string    `gorm:"column:run_id;type:varchar(64);not null;index"`
	Split       string    `gorm:"column:split;type:varchar(16);not null"`
	DocID       string    `gorm:"column:doc_id;type:varchar(64);not null"`
	SentID      int       `gorm:"column:sent_id;not null"`
	QuantityID  string    `gorm:"column:quantity_id;type:varchar(64);not null"`
	OtherID     string    `gorm:"column:other_id;type:varchar(64);not null"`
	Sentence    string    `gorm:"column:sentence;type:text"`
	Label       bool      `gorm:"column:label;not null"`
	Prediction  *bool     `gorm:"column:prediction"`
	GmtCreate   time.Time `gorm:"column:gmt_create;autoCreateTime"`
	GmtModified time.Time `gorm:"column:gmt_modified;autoUpdateTime"`
}
