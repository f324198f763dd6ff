package services

import (
	"context"

	"news-cms/models"
	"news-cms/repositories"
)

type CategoryService interface {
	GetCategories() []models.Category
	PostsByCategory(ctx context.Context, category string) ([]models.Post, error)
}

type categoryService struct {
	postRepo repositories.PostRepository
}

func NewCategoryService(postRepo repositories.PostRepository) CategoryService {
	return &categoryService{postRepo: postRepo}
}

func (s *categoryService) GetCategories() []models.Category {
	return models.AllCategories()
}

func (s *categoryService) PostsByCategory(ctx context.Context, category string) ([]models.Post, error) {
	c := models.Category(category)
	if !c.Valid() {
		return nil, models.NewBadRequest(models.MsgInvalidCategory)
	}

	posts, err := s.postRepo.ListByCategory(ctx, c)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, models.NewNotFound(models.MsgCategoryNoPosts)
	}
	return posts, nil
}
