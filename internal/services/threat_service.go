package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/blueteamlabs/argus/internal/metrics"
	"github.com/blueteamlabs/argus/internal/models"
)

var (
	ErrThreatNotFound       = errors.New("threat not found")
	ErrDuplicateValue       = errors.New("threat value already exists")
	ErrInvalidIndicatorType = errors.New("invalid indicator type")
	ErrInvalidSeverity      = errors.New("invalid severity level")
	ErrEmptyValue           = errors.New("value must not be empty")
)

const (
	// DefaultListLimit applies when the caller does not request a page size.
	DefaultListLimit = 100
	// MaxListLimit caps the page size regardless of what the caller asks for.
	MaxListLimit = 1000
)

// CreateThreatInput carries the caller-supplied fields for a new IOC record.
// ID and detection time are always assigned server-side.
type CreateThreatInput struct {
	Type     string
	Value    string
	Severity string
	Source   *string
}

// ThreatFilter narrows list and count operations. Empty fields mean no
// restriction; both filters present mean logical AND. Values outside the
// enums are passed through and simply match nothing.
type ThreatFilter struct {
	Type     string
	Severity string
	Skip     int
	Limit    int
}

// ThreatStatistics aggregates record counts for the dashboard. Every enum
// member is present in the maps, with explicit zeros for empty buckets.
type ThreatStatistics struct {
	Total      int64                          `json:"total"`
	ByType     map[models.IndicatorType]int64 `json:"by_type"`
	BySeverity map[models.Severity]int64      `json:"by_severity"`
}

// ThreatService validates and applies IOC record mutations and resolves
// filtered reads. There is deliberately no update operation.
type ThreatService struct {
	db *gorm.DB
}

func NewThreatService(db *gorm.DB) *ThreatService {
	return &ThreatService{db: db}
}

// Create validates the input, assigns the detection timestamp and persists
// the record. Uniqueness of the value is arbitrated by the storage engine:
// the insert is a single statement, and a duplicate-key error from a
// concurrent or earlier insert comes back as ErrDuplicateValue.
func (s *ThreatService) Create(input CreateThreatInput) (*models.Threat, error) {
	value := strings.TrimSpace(input.Value)
	if value == "" {
		return nil, ErrEmptyValue
	}

	indicatorType := models.IndicatorType(input.Type)
	if !indicatorType.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIndicatorType, input.Type)
	}

	severity := models.Severity(input.Severity)
	if !severity.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSeverity, input.Severity)
	}

	threat := &models.Threat{
		Type:         indicatorType,
		Value:        value,
		Severity:     severity,
		DateDetected: time.Now().UTC(),
		Source:       input.Source,
	}

	if err := s.db.Create(threat).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			metrics.IncThreatConflict()
			return nil, fmt.Errorf("%w: %s", ErrDuplicateValue, value)
		}
		return nil, err
	}

	metrics.IncThreatCreated()
	return threat, nil
}

// GetByID retrieves a single threat record.
func (s *ThreatService) GetByID(id uint) (*models.Threat, error) {
	var threat models.Threat
	if err := s.db.First(&threat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrThreatNotFound
		}
		return nil, err
	}
	return &threat, nil
}

// GetByValue retrieves a threat record by its indicator value.
func (s *ThreatService) GetByValue(value string) (*models.Threat, error) {
	var threat models.Threat
	if err := s.db.Where("value = ?", value).First(&threat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrThreatNotFound
		}
		return nil, err
	}
	return &threat, nil
}

// List retrieves records matching the filter, newest detection first with the
// id as tiebreak so the ordering stays deterministic across refreshes.
func (s *ThreatService) List(filter ThreatFilter) ([]models.Threat, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	skip := filter.Skip
	if skip < 0 {
		skip = 0
	}

	threats := make([]models.Threat, 0)
	err := s.scoped(filter).
		Order("date_detected DESC, id DESC").
		Offset(skip).
		Limit(limit).
		Find(&threats).Error
	if err != nil {
		return nil, err
	}
	return threats, nil
}

// Count returns the number of records matching the filter.
func (s *ThreatService) Count(filter ThreatFilter) (int64, error) {
	var count int64
	if err := s.scoped(filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Delete hard-deletes a record by id. A miss is reported as
// ErrThreatNotFound rather than a silent success.
func (s *ThreatService) Delete(id uint) error {
	result := s.db.Delete(&models.Threat{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrThreatNotFound
	}
	metrics.IncThreatDeleted()
	return nil
}

// Statistics aggregates total and per-type/per-severity counts. Buckets with
// no records report zero so the dashboard can render a fixed set of cards.
func (s *ThreatService) Statistics() (*ThreatStatistics, error) {
	stats := &ThreatStatistics{
		ByType:     make(map[models.IndicatorType]int64, 4),
		BySeverity: make(map[models.Severity]int64, 3),
	}
	for _, t := range models.IndicatorTypes() {
		stats.ByType[t] = 0
	}
	for _, sev := range models.Severities() {
		stats.BySeverity[sev] = 0
	}

	if err := s.db.Model(&models.Threat{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	type bucket struct {
		Key   string
		Count int64
	}

	var byType []bucket
	if err := s.db.Model(&models.Threat{}).
		Select("type AS key, COUNT(*) AS count").
		Group("type").
		Scan(&byType).Error; err != nil {
		return nil, err
	}
	for _, b := range byType {
		stats.ByType[models.IndicatorType(b.Key)] = b.Count
	}

	var bySeverity []bucket
	if err := s.db.Model(&models.Threat{}).
		Select("severity AS key, COUNT(*) AS count").
		Group("severity").
		Scan(&bySeverity).Error; err != nil {
		return nil, err
	}
	for _, b := range bySeverity {
		stats.BySeverity[models.Severity(b.Key)] = b.Count
	}

	return stats, nil
}

// IsValidationError reports whether err is one of the field-level input
// errors that map to an HTTP 400.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidIndicatorType) ||
		errors.Is(err, ErrInvalidSeverity) ||
		errors.Is(err, ErrEmptyValue)
}

func (s *ThreatService) scoped(filter ThreatFilter) *gorm.DB {
	query := s.db.Model(&models.Threat{})
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Severity != "" {
		query = query.Where("severity = ?", filter.Severity)
	}
	return query
}
