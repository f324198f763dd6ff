package services

import (
	"context"
	"strings"

	"news-cms/models"
	"news-cms/repositories"

	"github.com/rs/zerolog/log"
)

type ContactService interface {
	CreateContact(ctx context.Context, req models.ContactRequest) (*models.Contact, error)
	GetContacts(ctx context.Context) ([]models.Contact, error)
	GetContact(ctx context.Context, id uint) (*models.Contact, error)
}

type contactService struct {
	contactRepo repositories.ContactRepository
}

func NewContactService(contactRepo repositories.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo}
}

// CreateContact expects req to have passed binding validation already.
func (s *contactService) CreateContact(ctx context.Context, req models.ContactRequest) (*models.Contact, error) {
	if !req.Subject.Valid() {
		return nil, models.NewBadRequest(models.MsgInvalidBody)
	}

	contact := &models.Contact{
		Name:    strings.TrimSpace(req.Name),
		Phone:   strings.TrimSpace(req.Phone),
		Email:   strings.TrimSpace(req.Email),
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	log.Info().Uint("contact_id", contact.ID).Str("subject", string(contact.Subject)).Msg("Contact received")
	return contact, nil
}

func (s *contactService) GetContacts(ctx context.Context) ([]models.Contact, error) {
	return s.contactRepo.GetAll(ctx)
}

func (s *contactService) GetContact(ctx context.Context, id uint) (*models.Contact, error) {
	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, models.MsgContactNotFound)
	}
	return contact, nil
}
