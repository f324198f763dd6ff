package repositories

import (
	"context"

	"news-cms/models"

	"gorm.io/gorm"
)

type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	GetByNames(ctx context.Context, names []string) ([]models.Tag, error)
	GetAll(ctx context.Context) ([]models.Tag, error)
	Rename(ctx context.Context, id uint, name string) (*models.Tag, error)
	Delete(ctx context.Context, id uint) (*models.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

func (r *tagRepository) GetByNames(ctx context.Context, names []string) ([]models.Tag, error) {
	var tags []models.Tag
	if len(names) == 0 {
		return tags, nil
	}
	err := r.db.WithContext(ctx).Where("name IN ?", names).Order("id asc").Find(&tags).Error
	return tags, err
}

func (r *tagRepository) GetAll(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.WithContext(ctx).Order("id asc").Find(&tags).Error
	return tags, err
}

// Rename returns gorm.ErrDuplicatedKey when another tag holds name.
func (r *tagRepository) Rename(ctx context.Context, id uint, name string) (*models.Tag, error) {
	res := r.db.WithContext(ctx).Model(&models.Tag{}).Where("id = ?", id).Update("name", name)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.Tag{ID: id, Name: name}, nil
}

// Delete drops the tag together with its post links.
func (r *tagRepository) Delete(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&tag, id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM post_tags WHERE tag_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&tag).Error
	})
	if err != nil {
		return nil, err
	}
	return &tag, nil
}
