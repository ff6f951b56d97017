package models

import (
	"gorm.io/gorm"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/legacy"
)

// Page is a public page (Wo_Pages).
type Page struct {
	PageID   uint64       `gorm:"column:page_id;primaryKey"`
	UserID   uint64       `gorm:"column:user_id"`
	Name     string       `gorm:"column:page_name;size:32;unique"`
	Title    string       `gorm:"column:page_title;size:32"`
	Avatar   string       `gorm:"column:avatar;size:255"`
	Cover    string       `gorm:"column:cover;size:255"`
	About    string       `gorm:"column:page_description;type:text"`
	Category string       `gorm:"column:page_category;size:11"`
	Verified legacy.Flag  `gorm:"column:verified;size:1"`
	Active   legacy.Flag  `gorm:"column:active;size:1"`
	Time     legacy.Epoch `gorm:"column:time;size:50"`
	Owner    *User        `gorm:"foreignKey:UserID;references:UserID"`
}

// TableName specifies the database table name for the Page model.
func (Page) TableName() string {
	return "Wo_Pages"
}

// BeforeCreate stamps the page.
func (p *Page) BeforeCreate(*gorm.DB) error {
	p.Time = legacy.NewEpoch(p.Time.Raw())
	p.Verified = legacy.NewFlag(p.Verified.Raw())

	if p.Active == "" {
		p.Active = legacy.FlagOn
	}

	return nil
}

// PageLike is a like of a page (Wo_Pages_Likes).
type PageLike struct {
	ID     uint64       `gorm:"column:id;primaryKey"`
	UserID uint64       `gorm:"column:user_id;index"`
	PageID uint64       `gorm:"column:page_id;index"`
	Time   legacy.Epoch `gorm:"column:time;size:50"`
}

// TableName specifies the database table name for the PageLike model.
func (PageLike) TableName() string {
	return "Wo_Pages_Likes"
}

// BeforeCreate stamps the like.
func (l *PageLike) BeforeCreate(*gorm.DB) error {
	l.Time = legacy.NewEpoch(l.Time.Raw())

	return nil
}
