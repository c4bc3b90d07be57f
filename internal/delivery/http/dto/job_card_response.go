package dto

import "isbuldum/internal/jobcard"

type JobCardResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Company         string `json:"company"`
	CompanyInitial  string `json:"company_initial"`
	ColorClass      string `json:"color_class"`
	Location        string `json:"location"`
	Type            string `json:"type"`
	ExperienceLevel string `json:"experience_level,omitempty"`
	Salary          string `json:"salary,omitempty"`
	PostedAgo       string `json:"posted_ago"`
	CreatedAt       int64  `json:"created_at"`
	URL             string `json:"url"`
	Premium         bool   `json:"premium"`
	Favorite        bool   `json:"favorite"`
	FavoriteLabel   string `json:"favorite_label"`
}

func NewJobCardResponse(v jobcard.View) JobCardResponse {
	return JobCardResponse{
		ID:              v.ID,
		Title:           v.Title,
		Company:         v.Company,
		CompanyInitial:  v.CompanyInitial,
		ColorClass:      v.ColorClass,
		Location:        v.Location,
		Type:            v.Type,
		ExperienceLevel: v.ExperienceLevel,
		Salary:          v.Salary,
		PostedAgo:       v.PostedAgo,
		CreatedAt:       v.CreatedAt,
		URL:             v.URL,
		Premium:         v.Premium,
		Favorite:        v.Favorite,
		FavoriteLabel:   v.FavoriteLabel,
	}
}

func NewJobCardResponses(views []jobcard.View) []JobCardResponse {
	out := make([]JobCardResponse, 0, len(views))
	for _, v := range views {
		out = append(out, NewJobCardResponse(v))
	}
	return out
}

type FavoriteToggleResponse struct {
	JobID    string `json:"job_id"`
	Favorite bool   `json:"favorite"`
	Label    string `json:"label"`
}

type SessionRestoreResponse struct {
	ScrollY      *int   `json:"scroll_y"`
	PreviousPath string `json:"previous_path,omitempty"`
}
