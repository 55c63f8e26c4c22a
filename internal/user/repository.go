package user

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(u *User) error
	FindByID(id uuid.UUID) (*User, error)
	FindByGoogleID(googleID string) (*User, error)
	FindByEmail(email string) (*User, error)
	Update(u *User) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(u *User) error {
	return r.db.Create(u).Error
}

func (r *repository) FindByID(id uuid.UUID) (*User, error) {
	return r.findOne("id = ?", id)
}

func (r *repository) FindByGoogleID(googleID string) (*User, error) {
	return r.findOne("google_id = ?", googleID)
}

func (r *repository) FindByEmail(email string) (*User, error) {
	return r.findOne("email = ?", email)
}

func (r *repository) Update(u *User) error {
	return r.db.Save(u).Error
}

func (r *repository) findOne(query string, arg interface{}) (*User, error) {
	var u User
	if err := r.db.First(&u, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
