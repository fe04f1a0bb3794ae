package models

import (
	"time"
)

// IndicatorType classifies what kind of observable an IOC value is.
type IndicatorType string

const (
	TypeIP     IndicatorType = "IP"
	TypeHash   IndicatorType = "Hash"
	TypeURL    IndicatorType = "URL"
	TypeDomain IndicatorType = "Domain"
)

// IndicatorTypes lists every allowed IOC type, in display order.
func IndicatorTypes() []IndicatorType {
	return []IndicatorType{TypeIP, TypeHash, TypeURL, TypeDomain}
}

// Valid reports whether t is a member of the closed type enum.
func (t IndicatorType) Valid() bool {
	switch t {
	case TypeIP, TypeHash, TypeURL, TypeDomain:
		return true
	}
	return false
}

// Severity rates how urgent a threat is.
type Severity string

const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
	SeverityLow    Severity = "Low"
)

// Severities lists every allowed severity level, highest first.
func Severities() []Severity {
	return []Severity{SeverityHigh, SeverityMedium, SeverityLow}
}

// Valid reports whether s is a member of the closed severity enum.
func (s Severity) Valid() bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// Threat represents a single Indicator of Compromise (IOC).
// Records are immutable after creation; the only mutation is a hard delete.
type Threat struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	Type         IndicatorType `json:"type" gorm:"size:20;not null;index;index:idx_threats_type_severity,priority:1"`
	Value        string        `json:"value" gorm:"size:500;not null;uniqueIndex"`
	Severity     Severity      `json:"severity" gorm:"size:10;not null;index;index:idx_threats_type_severity,priority:2"`
	DateDetected time.Time     `json:"date_detected" gorm:"not null;index"`
	Source       *string       `json:"source" gorm:"size:100"`
}

// TableName pins the table name independent of GORM pluralization rules.
func (Threat) TableName() string {
	return "threats"
}
