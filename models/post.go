package models

import "time"

type Post struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Title       string    `json:"title" gorm:"not null"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null"`
	Category    Category  `json:"category" gorm:"type:varchar(32);index;not null"`
	Content     string    `json:"content" gorm:"type:text"`
	Image       string    `json:"image"`
	Tags        []Tag     `json:"tags" gorm:"many2many:post_tags;constraint:OnDelete:CASCADE"`
	Highlighted bool      `json:"highlighted" gorm:"index;default:false"`
	Views       int       `json:"views" gorm:"default:0"`
	CreatedAt   time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PostPage is one slice of the newest-first feed.
type PostPage struct {
	Posts   []Post `json:"posts"`
	HasMore bool   `json:"hasMore"`
}
