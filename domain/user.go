package domain

import (
	"time"

	"github.com/samber/lo"
)

// User is the credential-free view of an account. Everything the realtime
// layer broadcasts about a user lives here; passwords never cross this layer.
type User struct {
	ID          string    `json:"id" validate:"required"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	ProfilePic  string    `json:"profilepic"`
	Bio         string    `json:"bio"`
	AccountType string    `json:"accountType"`
	Followers   []string  `json:"followers"`
	Following   []string  `json:"following"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (u User) IsFollowing(targetID string) bool {
	return lo.Contains(u.Following, targetID)
}
