// Package entity defines the domain models for the symbollist feature.
package entity

import (
	"time"

	legendentity "schedule_backend/internal/feature/symbollegend/domain/entity"
)

// Symbol represents a course symbol found on the saved timetable.
// It records how the symbol decodes and how often it was seen on the last ingest.
type Symbol struct {
	ID             uint      `gorm:"primaryKey"`
	Code           string    `gorm:"size:20;not null;uniqueIndex"`
	DayCodes       string    `gorm:"size:20;not null"`
	Marks          string    `gorm:"size:20;not null"`
	DaysFilter     string    `gorm:"size:64;not null"` // comma separated DayType values
	FirstDeparture string    `gorm:"size:5;not null"`  // earliest HH:MM the symbol appears at
	Occurrences    int       `gorm:"not null"`
	IsActive       bool      `gorm:"not null;default:true"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

// SymbolDetail is a symbol together with its decoded legend markings.
type SymbolDetail struct {
	Symbol   Symbol
	Markings []legendentity.Marking
}
