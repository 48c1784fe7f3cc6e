package models

import (
	"time"

	"gorm.io/gorm"
)

// PrivateJob is a job listing at a private company, created either through
// the CRUD endpoints or by the AI intake flow.
type PrivateJob struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint `gorm:"index" json:"user_id"`

	CompanyName string `gorm:"not null" json:"company_name"`
	JobTitle    string `gorm:"not null" json:"job_title"`
	Email       string `json:"email"`
	Location    string `json:"location"`
	Description string `gorm:"type:text" json:"description"`
	URL         string `json:"url"`
	Comment     string `gorm:"type:text" json:"comment"`
}

// GovernmentJob is a public-sector vacancy. Application window dates are
// nullable: the intake flow stores NULL when the posting did not state them.
type GovernmentJob struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint `gorm:"index" json:"user_id"`

	Organization string     `gorm:"not null" json:"organization"`
	JobTitle     string     `gorm:"not null" json:"job_title"`
	JobTitleEn   string     `json:"job_title_en"`
	Description  string     `gorm:"type:text" json:"description"`
	ApplyStart   *time.Time `json:"apply_start"`
	ApplyEnd     *time.Time `json:"apply_end"`
	URL          string     `json:"url"`
	FileLink     string     `json:"file_link"`
	Comment      string     `gorm:"type:text" json:"comment"`
}
