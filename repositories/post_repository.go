package repositories

import (
	"context"
	"strings"

	"news-cms/models"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	IncrementViews(ctx context.Context, id uint) error
	Update(ctx context.Context, post *models.Post, replaceTags bool) error
	DeleteBySlug(ctx context.Context, slug string) error
	Count(ctx context.Context) (int64, error)
	ListNewest(ctx context.Context, offset, limit int) ([]models.Post, error)
	ListHighlighted(ctx context.Context) ([]models.Post, error)
	ListMostViewed(ctx context.Context, limit int) ([]models.Post, error)
	ListByTag(ctx context.Context, tagID uint) ([]models.Post, error)
	ListByCategory(ctx context.Context, category models.Category) ([]models.Post, error)
	SearchByTitle(ctx context.Context, query string) ([]models.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts the post and its post_tags links; tag rows must already exist.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Omit("Tags.*").Create(post).Error
}

func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).Preload("Tags").Where("slug = ?", slug).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// IncrementViews bumps the counter in a single statement.
func (r *postRepository) IncrementViews(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post, replaceTags bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(post).Select("Title", "Category", "Content", "Image", "Highlighted").
			Updates(post).Error
		if err != nil {
			return err
		}
		if !replaceTags {
			return nil
		}
		return tx.Model(post).Association("Tags").Replace(post.Tags)
	})
}

func (r *postRepository) DeleteBySlug(ctx context.Context, slug string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Where("slug = ?", slug).First(&post).Error; err != nil {
			return err
		}
		return tx.Select("Tags").Delete(&post).Error
	})
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&total).Error
	return total, err
}

func (r *postRepository) ListNewest(ctx context.Context, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.newest(ctx).Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListHighlighted(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := r.newest(ctx).Where("highlighted = ?", true).Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListMostViewed(ctx context.Context, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).Preload("Tags").
		Order("views desc").Order("created_at desc").
		Limit(limit).Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListByTag(ctx context.Context, tagID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.newest(ctx).
		Where("id IN (?)", r.db.Table("post_tags").Select("post_id").Where("tag_id = ?", tagID)).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListByCategory(ctx context.Context, category models.Category) ([]models.Post, error) {
	var posts []models.Post
	err := r.newest(ctx).Where("category = ?", category).Find(&posts).Error
	return posts, err
}

// SearchByTitle matches query as a literal, case-insensitive substring.
func (r *postRepository) SearchByTitle(ctx context.Context, query string) ([]models.Post, error) {
	var posts []models.Post
	pattern := "%" + escapeLike(query) + "%"
	err := r.newest(ctx).Where("title ILIKE ?", pattern).Find(&posts).Error
	return posts, err
}

func (r *postRepository) newest(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Tags").Order("created_at desc").Order("id desc")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
