package coverletter

import (
	"time"

	"github.com/google/uuid"
)

type CoverLetter struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CompanyName    string    `gorm:"not null" json:"company_name"`
	JobTitle       string    `gorm:"not null" json:"job_title"`
	JobDescription string    `gorm:"type:text" json:"job_description,omitempty"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	Status         string    `gorm:"not null;default:completed" json:"status"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
