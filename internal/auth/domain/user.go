package domain

import (
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Profile defaults applied at signup when the client leaves a field out.
const (
	DefaultName   = "Jacques-Yves Cousteau"
	DefaultAbout  = "Explorer"
	DefaultAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

var avatarPattern = regexp.MustCompile(`^https?://(www\.)?[a-zA-Z0-9\-._~:/?#\[\]@!$&'()*+,;=]+#?$`)

type User struct {
	ID        string    `json:"_id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"size:30;not null"`
	About     string    `json:"about" gorm:"size:30;not null"`
	Avatar    string    `json:"avatar" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password  string    `json:"-" gorm:"not null"` // Never return password in JSON
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// PublicUser is the only shape a user is ever sent to clients in.
type PublicUser struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	About  string `json:"about"`
	Avatar string `json:"avatar"`
	Email  string `json:"email"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:     u.ID,
		Name:   u.Name,
		About:  u.About,
		Avatar: u.Avatar,
		Email:  u.Email,
	}
}

// PublicUsers projects a slice, never returning nil.
func PublicUsers(users []User) []PublicUser {
	out := make([]PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return out
}

// ApplyDefaults fills empty profile fields.
func (u *User) ApplyDefaults() {
	if u.Name == "" {
		u.Name = DefaultName
	}
	if u.About == "" {
		u.About = DefaultAbout
	}
	if u.Avatar == "" {
		u.Avatar = DefaultAvatar
	}
}

// NormalizeEmail lower-cases and trims an address so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate checks every stored field. The store calls it before each write.
func (u User) Validate() error {
	return validation.Errors{
		"name":     validation.Validate(u.Name, NameRules()...),
		"about":    validation.Validate(u.About, AboutRules()...),
		"avatar":   validation.Validate(u.Avatar, AvatarRules()...),
		"email":    validation.Validate(u.Email, validation.Required, is.Email),
		"password": validation.Validate(u.Password, validation.Required),
	}.Filter()
}

func NameRules() []validation.Rule {
	return []validation.Rule{validation.Required, validation.RuneLength(2, 30)}
}

func AboutRules() []validation.Rule {
	return []validation.Rule{validation.Required, validation.RuneLength(2, 30)}
}

func AvatarRules() []validation.Rule {
	return []validation.Rule{validation.Required, validation.Match(avatarPattern).Error("must be an http(s) link")}
}
