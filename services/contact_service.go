package services

import (
	"context"

	"github.com/diyahomestylist/poppyandteal/backend"
	"github.com/diyahomestylist/poppyandteal/logger"
	"github.com/diyahomestylist/poppyandteal/models"
	"github.com/diyahomestylist/poppyandteal/utils"
)

// WhatsApp link kinds accepted by ContactService.Link.
const (
	LinkGeneral = "general"
	LinkCustom  = "custom"
	LinkQuick   = "quick"
)

type ContactService struct {
	client       *backend.Client
	email        *EmailService
	catalog      *CatalogService
	orderPhone   string
	contactPhone string
	log          *logger.Logger
}

// NewContactService builds the service. client and email may be nil.
func NewContactService(client *backend.Client, email *EmailService, catalog *CatalogService, orderPhone, contactPhone string, log *logger.Logger) *ContactService {
	if log == nil {
		log = logger.NewNop()
	}
	return &ContactService{
		client:       client,
		email:        email,
		catalog:      catalog,
		orderPhone:   orderPhone,
		contactPhone: contactPhone,
		log:          log.With("service", "contact"),
	}
}

// Submit records the message with the backend and mails the seller when those are
// available. Neither is required: the caller always gets a WhatsApp link to follow up on.
func (s *ContactService) Submit(ctx context.Context, req models.ContactRequest) *models.ContactResult {
	result := &models.ContactResult{
		WhatsAppURL: utils.WhatsAppLink(s.contactPhone, utils.ContactFormMessage(req.Name, req.Email, req.Message)),
	}

	if s.client != nil {
		contact, err := s.client.SubmitContact(ctx, req)
		if err != nil {
			s.log.Warn("failed to submit contact to backend", "email", req.Email, "error", err)
		} else {
			result.Contact = contact
		}
	}

	if s.email != nil {
		if err := s.email.NotifyContact(req); err != nil {
			s.log.Warn("failed to email contact notification", "email", req.Email, "error", err)
		}
	}
	return result
}

func (s *ContactService) ProductLink(ctx context.Context, id models.ProductID) (string, error) {
	product, err := s.catalog.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return utils.WhatsAppLink(s.orderPhone, utils.ProductEnquiryMessage(product.Name, product.Price)), nil
}

func (s *ContactService) Link(kind string) (string, error) {
	switch kind {
	case LinkGeneral, "":
		return utils.WhatsAppLink(s.orderPhone, utils.GeneralEnquiryMessage), nil
	case LinkCustom:
		return utils.WhatsAppLink(s.orderPhone, utils.CustomPieceMessage), nil
	case LinkQuick:
		return utils.WhatsAppLink(s.contactPhone, utils.QuickContactMessage), nil
	default:
		return "", ErrUnknownLinkKind
	}
}
