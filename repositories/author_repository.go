package repositories

import (
	"context"

	"news-cms/models"

	"gorm.io/gorm"
)

type AuthorRepository interface {
	Create(ctx context.Context, author *models.Author) error
	GetAll(ctx context.Context) ([]models.Author, error)
	GetByID(ctx context.Context, id uint) (*models.Author, error)
	Update(ctx context.Context, author *models.Author) error
	Delete(ctx context.Context, id uint) (*models.Author, error)
}

type authorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) AuthorRepository {
	return &authorRepository{db: db}
}

func (r *authorRepository) Create(ctx context.Context, author *models.Author) error {
	return r.db.WithContext(ctx).Create(author).Error
}

func (r *authorRepository) GetAll(ctx context.Context) ([]models.Author, error) {
	var authors []models.Author
	err := r.db.WithContext(ctx).Order("id asc").Find(&authors).Error
	return authors, err
}

func (r *authorRepository) GetByID(ctx context.Context, id uint) (*models.Author, error) {
	var author models.Author
	if err := r.db.WithContext(ctx).First(&author, id).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *authorRepository) Update(ctx context.Context, author *models.Author) error {
	return r.db.WithContext(ctx).Save(author).Error
}

func (r *authorRepository) Delete(ctx context.Context, id uint) (*models.Author, error) {
	var author models.Author
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&author, id).Error; err != nil {
			return err
		}
		return tx.Delete(&author).Error
	})
	if err != nil {
		return nil, err
	}
	return &author, nil
}
