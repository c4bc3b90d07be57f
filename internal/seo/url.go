package seo

import (
	"net/url"
	"strings"

	"isbuldum/internal/domain/job"
)

const jobPathPrefix = "/is-ilani/"

// GenerateJobURL returns the canonical detail path of a listing:
// /is-ilani/<title-company slug>-<id>.
func GenerateJobURL(l job.Listing) string {
	slug := GenerateSlug(strings.TrimSpace(l.Title + " " + l.Company))
	id := url.PathEscape(strings.TrimSpace(l.ID))
	switch {
	case slug == "":
		return jobPathPrefix + id
	case id == "":
		return jobPathPrefix + slug
	default:
		return jobPathPrefix + slug + "-" + id
	}
}
