package model

import (
	"time"
)

// CaloriesRecord represents the database model for workout records.
// Username references users by value; the source schema deliberately
// carries no foreign key constraint.
type CaloriesRecord struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	Username      string    `gorm:"not null;index;size:30"`
	DurationCenti int64     `gorm:"not null"`
	CaloriesCenti int64     `gorm:"not null"`
	Date          time.Time `gorm:"not null;type:date"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for CaloriesRecord
func (CaloriesRecord) TableName() string {
	return "calories_records"
}
