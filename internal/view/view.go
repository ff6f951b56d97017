// Package view projects legacy rows into the JSON shapes of the admin API.
// Everything here is computed from loaded state; the only reads are the
// related row counts of groups and pages.
package view

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/models"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/legacy"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/site"
)

// UnknownContent is the title of a report target that no longer exists.
const UnknownContent = "Unknown content"

// Presenter builds views.
type Presenter struct {
	Links *site.Links
	// DB is used for related row counts. Counts are 0 without it.
	DB *gorm.DB
	// Now is the clock of the time-ago strings.
	Now func() time.Time
}

// New returns a Presenter on the wall clock.
func New(links *site.Links, db *gorm.DB) *Presenter {
	return &Presenter{Links: links, DB: db, Now: time.Now}
}

func (p *Presenter) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}

	return p.Now()
}

// Stamp is the dual form of an epoch column.
type Stamp struct {
	Raw string    `json:"raw"`
	At  time.Time `json:"at"`
	Ago string    `json:"ago"`
}

func (p *Presenter) stamp(e legacy.Epoch) Stamp {
	now := p.now()

	return Stamp{Raw: e.Raw(), At: e.TimeAt(now), Ago: e.Ago(now)}
}

// Coded is the dual form of a coded column.
type Coded struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// User is the admin view of a Wo_Users row.
type User struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	URL      string `json:"url"`
	Avatar   string `json:"avatar"`
	Cover    string `json:"cover"`
	Active   Coded  `json:"active"`
	Verified Coded  `json:"verified"`
	Joined   Stamp  `json:"joined"`
	LastSeen Stamp  `json:"lastSeen"`
}

// User projects u. A nil u yields nil.
func (p *Presenter) User(u *models.User) *User {
	if u == nil {
		return nil
	}

	return &User{
		ID:       u.UserID,
		Username: u.Username,
		Name:     u.Name(),
		Email:    u.Email,
		URL:      p.Links.Profile(u.Username),
		Avatar:   p.Links.Media(u.Avatar, site.KindUser),
		Cover:    p.Links.Media(u.Cover, site.KindCover),
		Active:   Coded{Code: string(u.Active), Label: u.ActiveLabel()},
		Verified: Coded{Code: u.Verified.Raw(), Label: legacy.Verification.Label(u.Verified)},
		Joined:   p.stamp(u.Joined),
		LastSeen: p.stamp(u.LastSeen),
	}
}

// Post is the admin view of a Wo_Posts row.
type Post struct {
	ID       uint64 `json:"id"`
	Text     string `json:"text"`
	URL      string `json:"url"`
	Image    string `json:"image"`
	Privacy  Coded  `json:"privacy"`
	Time     Stamp  `json:"time"`
	Comments int    `json:"comments"`
	Author   *User  `json:"author,omitempty"`
}

// Post projects post. Comments counts the loaded comments.
func (p *Presenter) Post(post *models.Post) *Post {
	if post == nil {
		return nil
	}

	return &Post{
		ID:       post.ID,
		Text:     post.Text,
		URL:      p.Links.Post(post.ID),
		Image:    p.Links.Media(post.File, site.KindPost),
		Privacy:  Coded{Code: string(post.Privacy), Label: post.PrivacyLabel()},
		Time:     p.stamp(post.Time),
		Comments: len(post.Comments),
		Author:   p.User(post.Author),
	}
}

// Group is the admin view of a Wo_Groups row.
type Group struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Avatar  string `json:"avatar"`
	Privacy Coded  `json:"privacy"`
	Members int64  `json:"members"`
	Time    Stamp  `json:"time"`
}

// Group projects g and counts its active members.
func (p *Presenter) Group(g *models.Group) *Group {
	if g == nil {
		return nil
	}

	return &Group{
		ID:      g.ID,
		Name:    g.Name,
		Title:   g.Title,
		URL:     p.Links.Group(g.Name),
		Avatar:  p.Links.Media(g.Avatar, site.KindGroup),
		Privacy: Coded{Code: string(g.Privacy), Label: g.PrivacyLabel()},
		Members: p.count(&models.GroupMember{}, "group_id = ? AND active = ?", g.ID, legacy.FlagOn),
		Time:    p.stamp(g.Time),
	}
}

// Page is the admin view of a Wo_Pages row.
type Page struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Avatar   string `json:"avatar"`
	Verified Coded  `json:"verified"`
	Likes    int64  `json:"likes"`
	Time     Stamp  `json:"time"`
}

// Page projects pg and counts its likes.
func (p *Presenter) Page(pg *models.Page) *Page {
	if pg == nil {
		return nil
	}

	return &Page{
		ID:       pg.PageID,
		Name:     pg.Name,
		Title:    pg.Title,
		URL:      p.Links.Page(pg.Name),
		Avatar:   p.Links.Media(pg.Avatar, site.KindPage),
		Verified: Coded{Code: pg.Verified.Raw(), Label: legacy.Verification.Label(pg.Verified)},
		Likes:    p.count(&models.PageLike{}, "page_id = ?", pg.PageID),
		Time:     p.stamp(pg.Time),
	}
}

// count returns 0 when there is no DB or the count fails.
func (p *Presenter) count(model any, query string, args ...any) int64 {
	if p.DB == nil {
		return 0
	}

	var n int64
	if err := p.DB.Model(model).Where(query, args...).Count(&n).Error; err != nil {
		log.Warn().Err(err).Msg("related row count failed")

		return 0
	}

	return n
}
