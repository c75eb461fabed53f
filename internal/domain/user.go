package domain

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleStudent      Role = "STUDENT"
	RoleTutor        Role = "TUTOR"
	RoleTeacher      Role = "TEACHER"
	RoleEventLeader  Role = "EVENT_LEADER"
	RoleEventManager Role = "EVENT_MANAGER"
	RoleAdmin        Role = "ADMIN"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleStudent, RoleTutor, RoleTeacher, RoleEventLeader, RoleEventManager, RoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", ErrValidation, s)
	}
}

type User struct {
	ID             string    `json:"id"`
	GivenName      string    `json:"given_name"`
	FamilyName     string    `json:"family_name"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	EmailVerified  bool      `json:"email_verified"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	Deleted        bool      `json:"deleted"`
	CreatedAt      time.Time `json:"created_at"`
}

func (u *User) FullName() string {
	return u.GivenName + " " + u.FamilyName
}

type CreateUserInput struct {
	GivenName      string
	FamilyName     string
	Email          string
	Role           Role
	EmailVerified  bool
	TelegramChatID *int64
}

// Group is the user group an event's association token points to.
type Group struct {
	ID      string
	Name    string
	OwnerID string
}
