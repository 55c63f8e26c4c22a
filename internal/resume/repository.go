package resume

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	FindByUser(userID uuid.UUID) (*Resume, error)
	Create(r *Resume) error
	Update(r *Resume) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByUser(userID uuid.UUID) (*Resume, error) {
	var resume Resume
	if err := r.db.First(&resume, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &resume, nil
}

func (r *repository) Create(resume *Resume) error {
	return r.db.Create(resume).Error
}

func (r *repository) Update(resume *Resume) error {
	return r.db.Save(resume).Error
}
