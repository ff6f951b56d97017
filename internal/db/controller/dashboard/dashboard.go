// Package dashboard aggregates the numbers shown on the back-office start page.
package dashboard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/controller/report"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/models"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/legacy"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// Totals are the headline counters.
type Totals struct {
	Users         int64 `json:"users"`
	ActiveUsers   int64 `json:"activeUsers"`
	Posts         int64 `json:"posts"`
	Groups        int64 `json:"groups"`
	Pages         int64 `json:"pages"`
	UnseenReports int64 `json:"unseenReports"`
}

// Monthly holds one counter per calendar month, January first.
type Monthly [12]int

// GetTotals counts the legacy tables.
func GetTotals(db *gorm.DB) (Totals, error) {
	var t Totals

	if db == nil {
		return t, ErrDBNil
	}

	counters := []struct {
		name  string
		model any
		where []any
		dst   *int64
	}{
		{name: "users", model: &models.User{}, dst: &t.Users},
		{name: "active users", model: &models.User{}, where: []any{"active = ?", legacy.UserActive}, dst: &t.ActiveUsers},
		{name: "posts", model: &models.Post{}, dst: &t.Posts},
		{name: "groups", model: &models.Group{}, dst: &t.Groups},
		{name: "pages", model: &models.Page{}, dst: &t.Pages},
	}

	for _, c := range counters {
		q := db.Model(c.model)
		if len(c.where) > 0 {
			q = q.Where(c.where[0], c.where[1:]...)
		}

		if err := q.Count(c.dst).Error; err != nil {
			return t, fmt.Errorf("failed to count %s: %w", c.name, err)
		}
	}

	unseen, err := report.CountUnseen(db)
	if err != nil {
		return t, err //nolint:wrapcheck
	}

	t.UnseenReports = unseen

	return t, nil
}

// MonthlyUsers counts the users who joined in each month of year (UTC).
func MonthlyUsers(db *gorm.DB, year int) (Monthly, error) {
	return monthly(db, &models.User{}, "joined", year)
}

// MonthlyPosts counts the posts created in each month of year (UTC).
func MonthlyPosts(db *gorm.DB, year int) (Monthly, error) {
	return monthly(db, &models.Post{}, "time", year)
}

// monthly plucks the epochs of year and buckets them in Go. The column is
// text, so the database only narrows the candidates by inYear.
func monthly(db *gorm.DB, model any, column string, year int) (Monthly, error) {
	var m Monthly

	if db == nil {
		return m, ErrDBNil
	}

	var stamps []legacy.Epoch
	if err := db.Model(model).Scopes(inYear(column, year)).Pluck(column, &stamps).Error; err != nil {
		return m, fmt.Errorf("failed to load %s: %w", column, err)
	}

	return Bucket(stamps, year), nil
}

// inYear keeps the rows whose column holds a decimal epoch of year (UTC).
// Digit strings of equal length order like their numbers, so the range is split
// per length. Years before 1970 are not narrowed.
func inYear(column string, year int) func(*gorm.DB) *gorm.DB {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	end := time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC).Unix() - 1

	return func(db *gorm.DB) *gorm.DB {
		if start < 0 {
			return db
		}

		col := clause.Column{Name: column}

		var (
			parts []string
			args  []any
		)

		for n := digits(start); n <= digits(end); n++ {
			lo, hi := max(start, smallest(n)), min(end, smallest(n+1)-1)
			parts = append(parts, "(LENGTH(?) = ? AND ? BETWEEN ? AND ?)")
			args = append(args, col, n, col, strconv.FormatInt(lo, 10), strconv.FormatInt(hi, 10))
		}

		return db.Where("("+strings.Join(parts, " OR ")+")", args...)
	}
}

func digits(n int64) int {
	return len(strconv.FormatInt(n, 10))
}

// smallest returns the smallest non-negative number with n digits.
func smallest(n int) int64 {
	if n <= 1 {
		return 0
	}

	v := int64(1)
	for range n - 1 {
		v *= 10
	}

	return v
}

// Bucket counts the epochs that fall into each month of year (UTC).
// Values that are not numeric are skipped.
func Bucket(stamps []legacy.Epoch, year int) Monthly {
	var m Monthly

	for _, e := range stamps {
		s, ok := e.Seconds()
		if !ok {
			continue
		}

		t := time.Unix(s, 0).UTC()
		if t.Year() == year {
			m[t.Month()-1]++
		}
	}

	return m
}
