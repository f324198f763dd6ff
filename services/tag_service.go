package services

import (
	"context"
	"strings"

	"news-cms/models"
	"news-cms/repositories"

	"github.com/rs/zerolog/log"
)

type TagService interface {
	GetTags(ctx context.Context) ([]models.Tag, error)
	PostsByTag(ctx context.Context, id uint) ([]models.Post, error)
	CreateTag(ctx context.Context, req models.TagRequest) (*models.Tag, error)
	UpdateTag(ctx context.Context, id uint, req models.TagRequest) (*models.Tag, error)
	DeleteTag(ctx context.Context, id uint) (*models.Tag, error)
}

type tagService struct {
	tagRepo  repositories.TagRepository
	postRepo repositories.PostRepository
}

func NewTagService(tagRepo repositories.TagRepository, postRepo repositories.PostRepository) TagService {
	return &tagService{
		tagRepo:  tagRepo,
		postRepo: postRepo,
	}
}

func (s *tagService) GetTags(ctx context.Context) ([]models.Tag, error) {
	return s.tagRepo.GetAll(ctx)
}

func (s *tagService) PostsByTag(ctx context.Context, id uint) ([]models.Post, error) {
	posts, err := s.postRepo.ListByTag(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, models.NewNotFound(models.MsgTagNoPosts)
	}
	return posts, nil
}

// CreateTag leaves duplicate detection to the unique name index.
func (s *tagService) CreateTag(ctx context.Context, req models.TagRequest) (*models.Tag, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, models.NewBadRequest(models.MsgTagNameRequired)
	}

	tag := &models.Tag{Name: name}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, conflictOr(err, models.MsgTagNameTaken)
	}

	log.Info().Uint("tag_id", tag.ID).Str("name", tag.Name).Msg("Tag created")
	return tag, nil
}

func (s *tagService) UpdateTag(ctx context.Context, id uint, req models.TagRequest) (*models.Tag, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, models.NewBadRequest(models.MsgTagNameRequired)
	}

	tag, err := s.tagRepo.Rename(ctx, id, name)
	if err != nil {
		return nil, notFoundOr(conflictOr(err, models.MsgTagNameTaken), models.MsgTagNotFound)
	}
	return tag, nil
}

func (s *tagService) DeleteTag(ctx context.Context, id uint) (*models.Tag, error) {
	tag, err := s.tagRepo.Delete(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, models.MsgTagNotFound)
	}
	return tag, nil
}
