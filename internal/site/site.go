// Package site builds the public URLs of the social network the back-office links to.
package site

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/config"
)

// Placeholder kinds.
const (
	KindUser  = "user"
	KindCover = "cover"
	KindPost  = "post"
	KindGroup = "group"
	KindPage  = "page"
)

// ErrInvalidBaseURL is returned when Site.BaseURL is not an absolute http(s) URL.
var ErrInvalidBaseURL = errors.New("site base url must be an absolute http(s) url")

var defaultPlaceholders = map[string]string{
	KindUser:  "upload/photos/d-avatar.jpg",
	KindCover: "upload/photos/d-cover.jpg",
	KindPost:  "upload/photos/d-post.jpg",
	KindGroup: "upload/photos/d-group.jpg",
	KindPage:  "upload/photos/d-page.jpg",
}

// Links joins paths onto the site base URL.
type Links struct {
	base         *url.URL
	placeholders map[string]string
}

// New returns Links for cfg. Configured placeholders override the defaults per kind.
func New(cfg config.Site) (*Links, error) {
	base, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	if (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, cfg.BaseURL)
	}

	base.Path = strings.TrimSuffix(base.Path, "/") + "/"
	base.RawQuery = ""
	base.Fragment = ""

	placeholders := make(map[string]string, len(defaultPlaceholders))
	for kind, p := range defaultPlaceholders {
		placeholders[kind] = p
	}

	for kind, p := range cfg.Placeholders {
		if p = strings.TrimSpace(p); p != "" {
			placeholders[strings.ToLower(kind)] = p
		}
	}

	return &Links{base: base, placeholders: placeholders}, nil
}

// Base is the site root, always ending in a slash.
func (l *Links) Base() string {
	return l.base.String()
}

// URL joins p onto the site root. Absolute http(s) URLs are returned as they are.
func (l *Links) URL(p string) string {
	p = strings.TrimSpace(p)
	if isAbsolute(p) {
		return p
	}

	return l.base.JoinPath(strings.TrimPrefix(p, "/")).String()
}

// Post is the permalink of a post.
func (l *Links) Post(id uint64) string {
	return l.URL("post/" + strconv.FormatUint(id, 10))
}

// Profile is the profile page of a user.
func (l *Links) Profile(username string) string {
	return l.URL(url.PathEscape(username))
}

// Group is the page of a group.
func (l *Links) Group(name string) string {
	return l.URL("g/" + url.PathEscape(name))
}

// Page is the public page of a Wo_Pages row.
func (l *Links) Page(name string) string {
	return l.URL("p/" + url.PathEscape(name))
}

// Placeholder is the image shown when nothing is stored for kind.
// Unknown kinds get the user placeholder.
func (l *Links) Placeholder(kind string) string {
	p, ok := l.placeholders[strings.ToLower(kind)]
	if !ok {
		p = l.placeholders[KindUser]
	}

	return l.URL(p)
}

// Media resolves a stored upload reference, falling back to the placeholder of kind.
func (l *Links) Media(stored, kind string) string {
	if strings.TrimSpace(stored) == "" {
		return l.Placeholder(kind)
	}

	return l.URL(stored)
}

func isAbsolute(p string) bool {
	lower := strings.ToLower(p)

	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
