package jobcard

import (
	"strings"
	"time"

	"isbuldum/internal/domain/job"
)

const (
	LabelAddFavorite    = "Favorilere ekle"
	LabelRemoveFavorite = "Favorilerden çıkar"
)

// View is everything a layout needs to draw one card.
type View struct {
	ID              string
	Title           string
	Company         string
	CompanyInitial  string
	ColorClass      string
	Location        string
	Type            string
	ExperienceLevel string
	Salary          string
	PostedAgo       string
	CreatedAt       int64
	URL             string
	Premium         bool
	Favorite        bool
	FavoriteLabel   string
}

// Build derives the card view of a listing. favorite must already be false
// for anonymous visitors.
func Build(l job.Listing, favorite bool, now time.Time, jobURL func(job.Listing) string) View {
	v := View{
		ID:             l.ID,
		Title:          l.Title,
		Company:        l.Company,
		CompanyInitial: CompanyInitial(l.Company),
		ColorClass:     ColorClass(l.ID),
		Location:       l.Location,
		Type:           l.Type,
		Salary:         strings.TrimSpace(l.Salary),
		PostedAgo:      TimeAgo(l.CreatedTime(), now),
		CreatedAt:      l.CreatedAt,
		Premium:        l.EffectivePremium(now),
		Favorite:       favorite,
		FavoriteLabel:  LabelAddFavorite,
	}
	if lvl := strings.TrimSpace(l.ExperienceLevel); lvl != "" && lvl != job.ExperienceNone {
		v.ExperienceLevel = lvl
	}
	if favorite {
		v.FavoriteLabel = LabelRemoveFavorite
	}
	if jobURL != nil {
		v.URL = jobURL(l)
	}
	return v
}
