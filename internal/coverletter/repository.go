package coverletter

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(c *CoverLetter) error
	FindByIDAndUser(id, userID uuid.UUID) (*CoverLetter, error)
	Update(c *CoverLetter) error
	Delete(id, userID uuid.UUID) (bool, error)
	ListByUser(userID uuid.UUID) ([]*CoverLetter, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(c *CoverLetter) error {
	return r.db.Create(c).Error
}

func (r *repository) FindByIDAndUser(id, userID uuid.UUID) (*CoverLetter, error) {
	var c CoverLetter
	if err := r.db.First(&c, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) Update(c *CoverLetter) error {
	return r.db.Save(c).Error
}

func (r *repository) Delete(id, userID uuid.UUID) (bool, error) {
	result := r.db.Delete(&CoverLetter{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *repository) ListByUser(userID uuid.UUID) ([]*CoverLetter, error) {
	var letters []*CoverLetter
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&letters).Error; err != nil {
		return nil, err
	}
	return letters, nil
}
