package repositories

import (
	"context"

	"news-cms/models"

	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	GetAll(ctx context.Context) ([]models.Contact, error)
	GetByID(ctx context.Context, id uint) (*models.Contact, error)
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, contact *models.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *contactRepository) GetAll(ctx context.Context) ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&contacts).Error
	return contacts, err
}

func (r *contactRepository) GetByID(ctx context.Context, id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.WithContext(ctx).First(&contact, id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}
