package jobcard

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FallbackInitial is shown when a listing has no company name.
const FallbackInitial = "İ"

// CompanyInitial returns the first letter of the company, uppercased with
// Turkish casing rules. Leading spaces are skipped, so " acme" gives "A" and
// "istanbul" gives "İ".
func CompanyInitial(company string) string {
	company = strings.TrimSpace(company)
	if company == "" {
		return FallbackInitial
	}
	first := firstRunes(company, 1)
	return cases.Upper(language.Turkish).String(first)
}

// TimeAgo renders the age of a listing the way the site shows it.
func TimeAgo(t, now time.Time) string {
	d := now.Sub(t)
	if d < time.Minute {
		return "az önce"
	}
	switch {
	case d < time.Hour:
		return fmt.Sprintf("%d dakika önce", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d saat önce", int(d/time.Hour))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%d gün önce", int(d/(24*time.Hour)))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%d hafta önce", int(d/(7*24*time.Hour)))
	case d < 365*24*time.Hour:
		return fmt.Sprintf("%d ay önce", int(d/(30*24*time.Hour)))
	default:
		return fmt.Sprintf("%d yıl önce", int(d/(365*24*time.Hour)))
	}
}
