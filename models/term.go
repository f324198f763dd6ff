package models

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

type Term struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Term        string    `json:"term" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Letter      string    `json:"letter" gorm:"type:varchar(8);index;not null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FirstLetter returns the upper-cased first rune of s, or "" for blank input.
func FirstLetter(s string) string {
	s = strings.TrimSpace(s)
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}
