package services

import (
	"context"
	"fmt"
	"strings"

	"news-cms/models"
	"news-cms/repositories"
	"news-cms/storage"
)

type AuthorService interface {
	GetAuthors(ctx context.Context) ([]models.Author, error)
	CreateAuthor(ctx context.Context, form models.AuthorForm) (*models.Author, error)
	UpdateAuthor(ctx context.Context, id uint, form models.AuthorForm) (*models.Author, error)
	DeleteAuthor(ctx context.Context, id uint) (*models.Author, error)
}

type authorService struct {
	authorRepo repositories.AuthorRepository
	images     storage.Storage
}

func NewAuthorService(authorRepo repositories.AuthorRepository, images storage.Storage) AuthorService {
	return &authorService{
		authorRepo: authorRepo,
		images:     images,
	}
}

func (s *authorService) GetAuthors(ctx context.Context) ([]models.Author, error) {
	return s.authorRepo.GetAll(ctx)
}

func (s *authorService) CreateAuthor(ctx context.Context, form models.AuthorForm) (*models.Author, error) {
	if form.Image == nil {
		return nil, models.NewBadRequest(models.MsgImageMissing)
	}

	fullName := strings.TrimSpace(deref(form.FullName))
	if fullName == "" {
		return nil, models.NewBadRequest(models.MsgAuthorNameMissing)
	}

	imagePath, err := s.images.Save(ctx, form.Image)
	if err != nil {
		return nil, fmt.Errorf("save author image: %w", err)
	}

	author := &models.Author{
		FullName:     fullName,
		BirthDate:    deref(form.BirthDate),
		BirthPlace:   deref(form.BirthPlace),
		Education:    deref(form.Education),
		Website:      deref(form.Website),
		Achievements: normalizeList(form.Achievements),
		Image:        imagePath,
	}

	if err := s.authorRepo.Create(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}

// UpdateAuthor overwrites only the non-empty fields of form.
func (s *authorService) UpdateAuthor(ctx context.Context, id uint, form models.AuthorForm) (*models.Author, error) {
	author, err := s.authorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, models.MsgAuthorNotFound)
	}

	setIfPresent(&author.FullName, form.FullName)
	setIfPresent(&author.BirthDate, form.BirthDate)
	setIfPresent(&author.BirthPlace, form.BirthPlace)
	setIfPresent(&author.Education, form.Education)
	setIfPresent(&author.Website, form.Website)
	if achievements := normalizeList(form.Achievements); len(achievements) > 0 {
		author.Achievements = achievements
	}

	if form.Image != nil {
		imagePath, err := s.images.Save(ctx, form.Image)
		if err != nil {
			return nil, fmt.Errorf("save author image: %w", err)
		}
		author.Image = imagePath
	}

	if err := s.authorRepo.Update(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}

func (s *authorService) DeleteAuthor(ctx context.Context, id uint) (*models.Author, error) {
	author, err := s.authorRepo.Delete(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, models.MsgAuthorNotFound)
	}
	return author, nil
}

func setIfPresent(dst *string, value *string) {
	if value == nil {
		return
	}
	if v := strings.TrimSpace(*value); v != "" {
		*dst = v
	}
}

// normalizeList trims and drops blank entries. A single field is read as a
// comma-separated list, so "A, B" and repeated fields give the same result.
func normalizeList(items []string) []string {
	if len(items) == 1 {
		items = strings.Split(items[0], ",")
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
