package services

import (
	"context"
	"strings"

	"news-cms/models"
	"news-cms/repositories"
)

type TermService interface {
	Alphabet(ctx context.Context) ([]string, error)
	GetByLetter(ctx context.Context, letter string) ([]models.Term, error)
	GetTerms(ctx context.Context) ([]models.Term, error)
	CreateTerm(ctx context.Context, req models.TermRequest) (*models.Term, error)
	UpdateTerm(ctx context.Context, id uint, req models.TermRequest) (*models.Term, error)
	DeleteTerm(ctx context.Context, id uint) (*models.Term, error)
}

type termService struct {
	termRepo repositories.TermRepository
}

func NewTermService(termRepo repositories.TermRepository) TermService {
	return &termService{termRepo: termRepo}
}

// Alphabet lists the letters that currently have at least one term.
func (s *termService) Alphabet(ctx context.Context) ([]string, error) {
	return s.termRepo.Letters(ctx)
}

func (s *termService) GetByLetter(ctx context.Context, letter string) ([]models.Term, error) {
	letter = models.FirstLetter(letter)
	if letter == "" {
		return nil, models.NewNotFound(models.MsgTermLetterEmpty)
	}

	terms, err := s.termRepo.GetByLetter(ctx, letter)
	if err != nil {
		return nil, err
	}
	if len(terms) == 0 {
		return nil, models.NewNotFound(models.MsgTermLetterEmpty)
	}
	return terms, nil
}

func (s *termService) GetTerms(ctx context.Context) ([]models.Term, error) {
	return s.termRepo.GetAll(ctx)
}

func (s *termService) CreateTerm(ctx context.Context, req models.TermRequest) (*models.Term, error) {
	text, description, err := validateTerm(req)
	if err != nil {
		return nil, err
	}

	term := &models.Term{
		Term:        text,
		Description: description,
		Letter:      models.FirstLetter(text),
	}
	if err := s.termRepo.Create(ctx, term); err != nil {
		return nil, err
	}
	return term, nil
}

func (s *termService) UpdateTerm(ctx context.Context, id uint, req models.TermRequest) (*models.Term, error) {
	text, description, err := validateTerm(req)
	if err != nil {
		return nil, err
	}

	term, err := s.termRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, models.MsgTermNotFound)
	}

	term.Term = text
	term.Description = description
	term.Letter = models.FirstLetter(text)

	if err := s.termRepo.Update(ctx, term); err != nil {
		return nil, err
	}
	return term, nil
}

func (s *termService) DeleteTerm(ctx context.Context, id uint) (*models.Term, error) {
	term, err := s.termRepo.Delete(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, models.MsgTermNotFound)
	}
	return term, nil
}

func validateTerm(req models.TermRequest) (string, string, error) {
	text := strings.TrimSpace(req.Term)
	description := strings.TrimSpace(req.Description)
	if text == "" || description == "" {
		return "", "", models.NewBadRequest(models.MsgTermFieldsMissing)
	}
	return text, description, nil
}
