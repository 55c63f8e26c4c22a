package assessment

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(a *Assessment) error
	FindByIDAndUser(id, userID uuid.UUID) (*Assessment, error)
	Update(a *Assessment) error
	Delete(id, userID uuid.UUID) (bool, error)
	ListByUser(userID uuid.UUID) ([]*Assessment, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(a *Assessment) error {
	return r.db.Create(a).Error
}

func (r *repository) FindByIDAndUser(id, userID uuid.UUID) (*Assessment, error) {
	var a Assessment
	if err := r.db.First(&a, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *repository) Update(a *Assessment) error {
	return r.db.Save(a).Error
}

func (r *repository) Delete(id, userID uuid.UUID) (bool, error) {
	result := r.db.Delete(&Assessment{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *repository) ListByUser(userID uuid.UUID) ([]*Assessment, error) {
	var assessments []*Assessment
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}
