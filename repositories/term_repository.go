package repositories

import (
	"context"

	"news-cms/models"

	"gorm.io/gorm"
)

type TermRepository interface {
	Create(ctx context.Context, term *models.Term) error
	GetAll(ctx context.Context) ([]models.Term, error)
	GetByID(ctx context.Context, id uint) (*models.Term, error)
	GetByLetter(ctx context.Context, letter string) ([]models.Term, error)
	Letters(ctx context.Context) ([]string, error)
	Update(ctx context.Context, term *models.Term) error
	Delete(ctx context.Context, id uint) (*models.Term, error)
}

type termRepository struct {
	db *gorm.DB
}

func NewTermRepository(db *gorm.DB) TermRepository {
	return &termRepository{db: db}
}

func (r *termRepository) Create(ctx context.Context, term *models.Term) error {
	return r.db.WithContext(ctx).Create(term).Error
}

func (r *termRepository) GetAll(ctx context.Context) ([]models.Term, error) {
	var terms []models.Term
	err := r.db.WithContext(ctx).Order("term asc").Find(&terms).Error
	return terms, err
}

func (r *termRepository) GetByID(ctx context.Context, id uint) (*models.Term, error) {
	var term models.Term
	if err := r.db.WithContext(ctx).First(&term, id).Error; err != nil {
		return nil, err
	}
	return &term, nil
}

func (r *termRepository) GetByLetter(ctx context.Context, letter string) ([]models.Term, error) {
	var terms []models.Term
	err := r.db.WithContext(ctx).Where("letter = ?", letter).Order("term asc").Find(&terms).Error
	return terms, err
}

func (r *termRepository) Letters(ctx context.Context) ([]string, error) {
	var letters []string
	err := r.db.WithContext(ctx).Model(&models.Term{}).
		Distinct("letter").Order("letter asc").Pluck("letter", &letters).Error
	return letters, err
}

func (r *termRepository) Update(ctx context.Context, term *models.Term) error {
	return r.db.WithContext(ctx).Save(term).Error
}

func (r *termRepository) Delete(ctx context.Context, id uint) (*models.Term, error) {
	var term models.Term
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&term, id).Error; err != nil {
			return err
		}
		return tx.Delete(&term).Error
	})
	if err != nil {
		return nil, err
	}
	return &term, nil
}
