package blog

import (
	"errors"
	"strings"
	"unicode/utf8"

	domainblog "isbuldum/internal/domain/blog"
)

const (
	MinTitleLen   = 10
	MaxTitleLen   = 100
	MinContentLen = 800
	MaxExcerptLen = 200
	MaxTags       = 10
	MaxTagLen     = 20

	// submitEnableContentLen is the length at which the publish button turns
	// on. It is lower than MinContentLen; Submit still enforces MinContentLen.
	submitEnableContentLen = 200
)

var ErrUnknownCategory = errors.New("unknown category")

// Draft is the state of the authoring form. Lengths are counted in
// characters (runes), the unit the form counters show.
type Draft struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Excerpt  string   `json:"excerpt"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	TagInput string   `json:"tag_input"`
}

func NewDraft() *Draft {
	return &Draft{Category: domainblog.DefaultCategory, Tags: []string{}}
}

// AddTag appends the trimmed input when there is room and clears the pending
// input either way. Input longer than MaxTagLen is cut like the form field
// cuts pasted text. Duplicates are accepted.
func (d *Draft) AddTag(input string) bool {
	d.TagInput = ""

	tag := strings.TrimSpace(input)
	if utf8.RuneCountInString(tag) > MaxTagLen {
		tag = strings.TrimSpace(string([]rune(tag)[:MaxTagLen]))
	}
	if tag == "" || len(d.Tags) >= MaxTags {
		return false
	}
	d.Tags = append(d.Tags, tag)
	return true
}

// CommitTagInput adds whatever is pending in TagInput.
func (d *Draft) CommitTagInput() bool {
	return d.AddTag(d.TagInput)
}

// RemoveTag drops every entry equal to tag.
func (d *Draft) RemoveTag(tag string) {
	out := d.Tags[:0]
	for _, t := range d.Tags {
		if t != tag {
			out = append(out, t)
		}
	}
	d.Tags = out
}

func (d *Draft) SetCategory(id string) error {
	if !domainblog.IsCategory(id) {
		return ErrUnknownCategory
	}
	d.Category = id
	return nil
}

// CanSubmit mirrors the publish button: it only looks at the looser
// enablement threshold, not at MinContentLen.
func (d *Draft) CanSubmit() bool {
	return utf8.RuneCountInString(d.Title) >= MinTitleLen &&
		utf8.RuneCountInString(d.Content) >= submitEnableContentLen
}

// CanAddTag mirrors the tag button.
func (d *Draft) CanAddTag() bool {
	return strings.TrimSpace(d.TagInput) != "" && len(d.Tags) < MaxTags
}

type Stats struct {
	TitleLen   int
	ContentLen int
	ExcerptLen int
	ReadTime   int
	CanSubmit  bool
	CanAddTag  bool
}

func (d *Draft) Stats() Stats {
	return Stats{
		TitleLen:   utf8.RuneCountInString(d.Title),
		ContentLen: utf8.RuneCountInString(d.Content),
		ExcerptLen: utf8.RuneCountInString(d.Excerpt),
		ReadTime:   ReadTime(d.Content),
		CanSubmit:  d.CanSubmit(),
		CanAddTag:  d.CanAddTag(),
	}
}
