package user

import (
	"strings"

	"github.com/google/uuid"
)

const DefaultAuthorName = "Kullanıcı"

// Identity is the authenticated caller. A nil *Identity means nobody is
// signed in.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// AuthorName is the part of the email before '@', or DefaultAuthorName.
func (i *Identity) AuthorName() string {
	if i == nil {
		return DefaultAuthorName
	}
	local, _, _ := strings.Cut(strings.TrimSpace(i.Email), "@")
	if local == "" {
		return DefaultAuthorName
	}
	return local
}
