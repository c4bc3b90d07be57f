package job

import "time"

// CollectionPath is the document collection holding listings.
const CollectionPath = "jobs"

// ExperienceNone is the entry-level label the card does not display.
const ExperienceNone = "Deneyimsiz"

// Listing is a job posting as stored by the listings service. Timestamps are
// epoch milliseconds.
type Listing struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Company         string `json:"company"`
	Location        string `json:"location"`
	Type            string `json:"type"`
	ExperienceLevel string `json:"experienceLevel,omitempty"`
	Salary          string `json:"salary,omitempty"`
	CreatedAt       int64  `json:"createdAt"`
	IsPremium       bool   `json:"isPremium"`
	PremiumEndDate  *int64 `json:"premiumEndDate,omitempty"`
}

// EffectivePremium reports whether the paid prominence is still running at now.
func (l Listing) EffectivePremium(now time.Time) bool {
	if !l.IsPremium || l.PremiumEndDate == nil {
		return false
	}
	return *l.PremiumEndDate > now.UnixMilli()
}

func (l Listing) CreatedTime() time.Time {
	return time.UnixMilli(l.CreatedAt)
}
