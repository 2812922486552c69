package domain

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

// Ограничения длины в символах; совпадают с VARCHAR колонками в migrations/
const (
	MaxUsernameLength    = 255
	MaxEmailLength       = 320
	MaxProjectNameLength = 255
	MaxTitleLength       = 255
)

func tooLong(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}

// User представляет зарегистрированного пользователя трекера
type User struct {
	UserID    string     `json:"user_id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// NewUser проверяет имя и email и возвращает пользователя без идентификатора.
// Email приводится к нижнему регистру, чтобы уникальность не зависела от регистра.
func NewUser(username, email string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}
	if tooLong(username, MaxUsernameLength) {
		return nil, ErrUsernameTooLong
	}

	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	return &User{
		Username: username,
		Email:    normalized,
	}, nil
}

// NormalizeEmail проверяет адрес и возвращает его в нижнем регистре.
// Адреса с отображаемым именем ("Bob <bob@x.io>") не принимаются.
func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrInvalidEmail
	}
	if tooLong(email, MaxEmailLength) {
		return "", ErrEmailTooLong
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return "", ErrInvalidEmail
	}

	return strings.ToLower(addr.Address), nil
}

// CreateTask создает задачу в проекте от имени пользователя
func (u *User) CreateTask(title string, project *Project) (*Task, error) {
	return project.CreateTask(title, u)
}
