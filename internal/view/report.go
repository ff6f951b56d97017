package view

import (
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/models"
)

// Target is the reported content.
type Target struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

// Report is the admin view of a Wo_Reports row.
type Report struct {
	ID       uint64 `json:"id"`
	Type     Coded  `json:"type"`
	Target   Target `json:"target"`
	Reason   Coded  `json:"reason"`
	Text     string `json:"text"`
	Seen     bool   `json:"seen"`
	Time     Stamp  `json:"time"`
	Reporter *User  `json:"reporter,omitempty"`

	// Ambiguous is set when the row names more than one target.
	Ambiguous bool `json:"ambiguous,omitempty"`
}

// Report projects r. The target title falls back to UnknownContent when the
// target row was not loaded or is gone.
func (p *Presenter) Report(r *models.Report) *Report {
	if r == nil {
		return nil
	}

	t := r.Type()

	if r.Ambiguous() {
		log.Warn().Uint64("report", r.ID).Str("type", string(t)).Msg("report names more than one target")
	}

	return &Report{
		ID:       r.ID,
		Type:     Coded{Code: string(t), Label: models.ReportTypeLabels.Label(t)},
		Target:   p.target(r, t),
		Reason:   Coded{Code: string(r.Reason), Label: r.ReasonDisplay()},
		Text:     r.Text,
		Seen:     r.Seen.Bool(),
		Time:     p.stamp(r.Time),
		Reporter: p.User(r.Reporter),

		Ambiguous: r.Ambiguous(),
	}
}

// Reports projects rs.
func (p *Presenter) Reports(rs []models.Report) []*Report {
	out := make([]*Report, 0, len(rs))
	for i := range rs {
		out = append(out, p.Report(&rs[i]))
	}

	return out
}

func (p *Presenter) target(r *models.Report, t models.ReportType) Target {
	target := Target{ID: r.TargetID(), Title: UnknownContent}

	switch {
	case t == models.ReportPost && r.Post != nil:
		target.Title = excerpt(r.Post.Text)
		target.URL = p.Links.Post(r.Post.ID)
	case t == models.ReportProfile && r.Profile != nil:
		target.Title = r.Profile.Name()
		target.URL = p.Links.Profile(r.Profile.Username)
	case t == models.ReportPage && r.Page != nil:
		target.Title = r.Page.Title
		target.URL = p.Links.Page(r.Page.Name)
	case t == models.ReportGroup && r.Group != nil:
		target.Title = r.Group.Title
		target.URL = p.Links.Group(r.Group.Name)
	case t == models.ReportComment && r.Comment != nil:
		target.Title = excerpt(r.Comment.Text)
		target.URL = p.Links.Post(r.Comment.PostID)
	}

	// the row exists but has nothing to show
	if target.Title == "" {
		target.Title = models.ReportTypeLabels.Label(t) + " #" + strconv.FormatUint(target.ID, 10)
	}

	return target
}

const excerptRunes = 80

func excerpt(s string) string {
	r := []rune(s)
	if len(r) <= excerptRunes {
		return s
	}

	return string(r[:excerptRunes]) + "…"
}
