package domain

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Client клиент салона
type Client struct {
	ID          int64
	Name        string
	Phone       string
	Email       *string
	Pronouns    *string
	DateOfBirth *time.Time
	CreatedAt   time.Time
}

// Initial первая буква имени в верхнем регистре (для аватара)
func (c *Client) Initial() string {
	return initialOf(c.Name)
}

// Matches проверяет, подходит ли клиент под поисковую строку (имя или телефон)
func (c *Client) Matches(search string) bool {
	search = strings.TrimSpace(search)
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), strings.ToLower(search)) ||
		strings.Contains(c.Phone, search)
}

func initialOf(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}
