// Package report provides the moderation queue operations on Wo_Reports.
package report

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/models"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/legacy"
)

const (
	// DefaultPerPage is used when a filter does not set PerPage.
	DefaultPerPage = 20
	// MaxPerPage caps PerPage.
	MaxPerPage = 100

	idQueryPattern = "id = ?"
)

var (
	// ErrReportNotFound is returned when a report is not found.
	ErrReportNotFound = errors.New("report not found")
	// ErrUnknownType is returned when a filter names a report type that does not exist.
	ErrUnknownType = errors.New("unknown report type")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Filter selects and paginates reports.
type Filter struct {
	// Seen limits the result to seen (true) or unseen (false) reports when set.
	Seen *bool
	// Type limits the result to one report type. Empty means every type.
	Type models.ReportType
	// Page is 1-based.
	Page    int
	PerPage int
}

// Result is one page of reports, newest first.
type Result struct {
	Reports []models.Report
	Total   int64
	Page    int
	PerPage int
}

func (f Filter) normalized() Filter {
	if f.Page < 1 {
		f.Page = 1
	}

	switch {
	case f.PerPage < 1:
		f.PerPage = DefaultPerPage
	case f.PerPage > MaxPerPage:
		f.PerPage = MaxPerPage
	}

	return f
}

// List returns the reports matching f with their reporter and target loaded.
func List(db *gorm.DB, f Filter) (*Result, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	f = f.normalized()

	query := db.Model(&models.Report{})

	if f.Seen != nil {
		query = query.Where("seen = ?", legacy.NewFlag(*f.Seen))
	}

	if f.Type != "" {
		scope, err := typeScope(f.Type)
		if err != nil {
			return nil, err
		}

		query = query.Scopes(scope)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count reports: %w", err)
	}

	var reports []models.Report

	err := query.Scopes(withTargets).
		Order("id DESC").
		Offset((f.Page - 1) * f.PerPage).
		Limit(f.PerPage).
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	return &Result{Reports: reports, Total: total, Page: f.Page, PerPage: f.PerPage}, nil
}

// Get retrieves a report by its ID with reporter and target loaded.
func Get(db *gorm.DB, id uint64) (*models.Report, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var report models.Report

	result := db.Scopes(withTargets).First(&report, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}

		return nil, result.Error
	}

	return &report, nil
}

// MarkSeen sets the seen flag of a report.
func MarkSeen(db *gorm.DB, id uint64, seen bool) error {
	if db == nil {
		return ErrDBNil
	}

	var report models.Report

	result := db.Select("id").First(&report, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrReportNotFound
		}

		return result.Error
	}

	return db.Model(&models.Report{}).Where(idQueryPattern, id).Update("seen", legacy.NewFlag(seen)).Error
}

// Delete deletes a report by ID. The reported content is left alone.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Report{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}

	return nil
}

// CountUnseen counts the reports nobody looked at yet.
func CountUnseen(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64

	err := db.Model(&models.Report{}).Where("seen = ?", legacy.FlagOff).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unseen reports: %w", err)
	}

	return count, nil
}

// ParseType maps a query value to a report type.
func ParseType(s string) (models.ReportType, error) {
	t := models.ReportType(s)
	if t == models.ReportUnknown || models.ReportTypeLabels.Known(t) {
		return t, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// typeScope selects the reports Report.Type classifies as t: the column of t
// is set and every column of a higher priority type is zero.
func typeScope(t models.ReportType) (func(*gorm.DB) *gorm.DB, error) {
	if _, err := ParseType(string(t)); err != nil {
		return nil, err
	}

	return func(tx *gorm.DB) *gorm.DB {
		for _, prior := range models.ReportTypes {
			if prior == t {
				return tx.Where(prior.Column()+" > ?", 0)
			}

			tx = tx.Where(prior.Column()+" = ?", 0)
		}

		return tx
	}, nil
}

func withTargets(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Reporter").
		Preload("Post").
		Preload("Profile").
		Preload("Page").
		Preload("Group").
		Preload("Comment")
}
