package domain

import (
	"strings"
	"time"
)

// User — пользователь, созданный при первом входе через Steam.
// Идентификаторы неизменяемы, профиль обновляется при каждом входе.
type User struct {
	id        UserID
	steamID   SteamID
	username  string
	avatar    string
	createdAt time.Time
	updatedAt time.Time
}

// NewUser создаёт пользователя, проверяя что имя не пустое после обрезки пробелов
func NewUser(id UserID, steamID SteamID, username, avatar string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, &ValidationError{Field: "username", Reason: "cannot be empty"}
	}
	now := time.Now()
	return &User{
		id:        id,
		steamID:   steamID,
		username:  username,
		avatar:    avatar,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstituteUser восстанавливает пользователя из хранилища без повторной валидации
func ReconstituteUser(id UserID, steamID SteamID, username, avatar string, createdAt, updatedAt time.Time) *User {
	return &User{
		id:        id,
		steamID:   steamID,
		username:  username,
		avatar:    avatar,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// UpdateProfile заменяет имя и аватар; при пустом имени состояние не меняется
func (u *User) UpdateProfile(username, avatar string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return &ValidationError{Field: "username", Reason: "cannot be empty"}
	}
	u.username = username
	u.avatar = avatar
	u.updatedAt = time.Now()
	return nil
}

func (u *User) ID() UserID { return u.id }

func (u *User) SteamID() SteamID { return u.steamID }

func (u *User) Username() string { return u.username }

func (u *User) Avatar() string { return u.avatar }

func (u *User) CreatedAt() time.Time { return u.createdAt }

func (u *User) UpdatedAt() time.Time { return u.updatedAt }
