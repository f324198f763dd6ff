package models

import (
	"time"

	"github.com/lib/pq"
)

type Author struct {
	ID           uint           `json:"id" gorm:"primarykey"`
	FullName     string         `json:"fullName" gorm:"not null"`
	BirthDate    string         `json:"birthDate"`
	BirthPlace   string         `json:"birthPlace"`
	Education    string         `json:"education" gorm:"type:text"`
	Achievements pq.StringArray `json:"achievements" gorm:"type:text[]"`
	Website      string         `json:"website"`
	Image        string         `json:"image" gorm:"not null"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}
