package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	GoogleID     string    `gorm:"uniqueIndex;not null" json:"-"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Name         string    `json:"name"`
	ImageURL     string    `json:"image_url,omitempty"`
	Industry     string    `json:"industry,omitempty"`
	Experience   int       `gorm:"not null;default:0" json:"experience"`
	Bio          string    `gorm:"type:text" json:"bio,omitempty"`
	Skills       string    `gorm:"type:text" json:"skills,omitempty"`
	RefreshToken string    `gorm:"type:text" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
