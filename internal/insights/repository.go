package insights

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	FindByIndustry(industry string) (*IndustryInsight, error)
	Create(insight *IndustryInsight) error
	Update(insight *IndustryInsight) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByIndustry(industry string) (*IndustryInsight, error) {
	var insight IndustryInsight
	if err := r.db.First(&insight, "industry = ?", industry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &insight, nil
}

func (r *repository) Create(insight *IndustryInsight) error {
	return r.db.Create(insight).Error
}

func (r *repository) Update(insight *IndustryInsight) error {
	return r.db.Save(insight).Error
}
