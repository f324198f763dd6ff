package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"news-cms/helper"
	"news-cms/models"
	"news-cms/repositories"
	"news-cms/storage"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	initialPageSize  = 5
	loadMorePageSize = 10
	mostViewedLimit  = 10
	maxSlugAttempts  = 50
)

type PostService interface {
	ListInitial(ctx context.Context) (*models.PostPage, error)
	LoadMore(ctx context.Context, skip int) (*models.PostPage, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	Create(ctx context.Context, form models.PostForm) (*models.Post, error)
	Update(ctx context.Context, slug string, form models.PostForm) (*models.Post, error)
	Delete(ctx context.Context, slug string) error
	ListHighlighted(ctx context.Context) ([]models.Post, error)
	MostViewed(ctx context.Context) ([]models.Post, error)
	Search(ctx context.Context, query string) ([]models.Post, error)
}

type postService struct {
	postRepo repositories.PostRepository
	tagRepo  repositories.TagRepository
	images   storage.Storage
}

func NewPostService(postRepo repositories.PostRepository, tagRepo repositories.TagRepository, images storage.Storage) PostService {
	return &postService{
		postRepo: postRepo,
		tagRepo:  tagRepo,
		images:   images,
	}
}

func (s *postService) ListInitial(ctx context.Context) (*models.PostPage, error) {
	posts, err := s.postRepo.ListNewest(ctx, 0, initialPageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &models.PostPage{Posts: posts, HasMore: int64(len(posts)) < total}, nil
}

func (s *postService) LoadMore(ctx context.Context, skip int) (*models.PostPage, error) {
	if skip < 0 {
		skip = 0
	}
	posts, err := s.postRepo.ListNewest(ctx, skip, loadMorePageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &models.PostPage{Posts: posts, HasMore: int64(skip) < total-loadMorePageSize}, nil
}

// GetBySlug counts every successful fetch as one view.
func (s *postService) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	post, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, notFoundOr(err, models.MsgPostNotFound)
	}

	if err := s.postRepo.IncrementViews(ctx, post.ID); err != nil {
		return nil, notFoundOr(err, models.MsgPostNotFound)
	}
	post.Views++

	return post, nil
}

func (s *postService) Create(ctx context.Context, form models.PostForm) (*models.Post, error) {
	if form.Image == nil {
		return nil, models.NewBadRequest(models.MsgImageMissing)
	}

	title := strings.TrimSpace(deref(form.Title))
	content := deref(form.Content)
	if title == "" || strings.TrimSpace(content) == "" {
		return nil, models.NewBadRequest(models.MsgPostFieldsMissing)
	}

	category := models.Category(deref(form.Category))
	if !category.Valid() {
		return nil, models.NewBadRequest(models.MsgInvalidCategory)
	}

	tags, err := resolveTags(ctx, s.tagRepo, form.Tags)
	if err != nil {
		return nil, err
	}

	imagePath, err := s.images.Save(ctx, form.Image)
	if err != nil {
		return nil, fmt.Errorf("save post image: %w", err)
	}

	post := &models.Post{
		Title:       title,
		Category:    category,
		Content:     content,
		Image:       imagePath,
		Tags:        tags,
		Highlighted: form.Highlighted != nil && *form.Highlighted,
	}

	if err := s.insertWithUniqueSlug(ctx, post); err != nil {
		return nil, err
	}

	log.Info().Str("slug", post.Slug).Msg("Post created")
	return post, nil
}

// insertWithUniqueSlug lets the unique index arbitrate between concurrent
// writers and moves on to the next numbered slug on conflict.
func (s *postService) insertWithUniqueSlug(ctx context.Context, post *models.Post) error {
	base := helper.GenerateSlug(post.Title)
	if base == "" {
		base = "post"
	}

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		post.ID = 0
		post.Slug = base
		if attempt > 0 {
			post.Slug = fmt.Sprintf("%s-%d", base, attempt)
		}

		err := s.postRepo.Create(ctx, post)
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}

	return fmt.Errorf("no free slug for %q after %d attempts", base, maxSlugAttempts)
}

func (s *postService) Update(ctx context.Context, slug string, form models.PostForm) (*models.Post, error) {
	post, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, notFoundOr(err, models.MsgPostNotFound)
	}

	if form.Category != nil && *form.Category != "" {
		category := models.Category(*form.Category)
		if !category.Valid() {
			return nil, models.NewBadRequest(models.MsgInvalidCategory)
		}
		post.Category = category
	}

	replaceTags := len(normalizeTagNames(form.Tags)) > 0
	if replaceTags {
		tags, err := resolveTags(ctx, s.tagRepo, form.Tags)
		if err != nil {
			return nil, err
		}
		post.Tags = tags
	}

	if title := strings.TrimSpace(deref(form.Title)); title != "" {
		post.Title = title
	}
	if content := deref(form.Content); strings.TrimSpace(content) != "" {
		post.Content = content
	}
	if form.Highlighted != nil {
		post.Highlighted = *form.Highlighted
	}

	if form.Image != nil {
		imagePath, err := s.images.Save(ctx, form.Image)
		if err != nil {
			return nil, fmt.Errorf("save post image: %w", err)
		}
		post.Image = imagePath
	}

	if err := s.postRepo.Update(ctx, post, replaceTags); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *postService) Delete(ctx context.Context, slug string) error {
	if err := s.postRepo.DeleteBySlug(ctx, slug); err != nil {
		return notFoundOr(err, models.MsgPostNotFound)
	}
	log.Info().Str("slug", slug).Msg("Post deleted")
	return nil
}

func (s *postService) ListHighlighted(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.ListHighlighted(ctx)
}

func (s *postService) MostViewed(ctx context.Context) ([]models.Post, error) {
	posts, err := s.postRepo.ListMostViewed(ctx, mostViewedLimit)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, models.NewNotFound(models.MsgNoPostsYet)
	}
	return posts, nil
}

func (s *postService) Search(ctx context.Context, query string) ([]models.Post, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, models.NewBadRequest(models.MsgSearchEmpty)
	}

	posts, err := s.postRepo.SearchByTitle(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, models.NewNotFound(models.MsgSearchNoMatch)
	}
	return posts, nil
}
