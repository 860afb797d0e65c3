package service

import (
	"context"
	"time"

	"pawhaven-be/internal/dto"
	"pawhaven-be/internal/entity"
	"pawhaven-be/internal/pkg/logger"
	"pawhaven-be/internal/pkg/serverutils"
	"pawhaven-be/internal/repository/memory"
	"pawhaven-be/internal/repository/specification"
	"pawhaven-be/internal/repository/unitofwork"
	"pawhaven-be/pkg/events"
	pkgNats "pawhaven-be/pkg/nats"

	"github.com/google/uuid"
)

type IContentService interface {
	GetSettings(ctx context.Context) (map[string]string, error)
	GetTeamMembers(ctx context.Context, activeOnly bool) ([]*dto.TeamMemberResponse, error)
	GetHistoryEvents(ctx context.Context, activeOnly bool) ([]*dto.HistoryEventResponse, error)
	GetCategories(ctx context.Context) ([]*dto.CategoryResponse, error)
	SubmitContact(ctx context.Context, req *dto.ContactRequest) (*dto.ContactResponse, error)
}

type contentService struct {
	uowFactory     unitofwork.RepositoryFactory
	cache          *memory.SettingsCache
	eventPublisher *pkgNats.Publisher
	mailQueue      IPublisherService
	logger         logger.ILogger
}

func NewContentService(uowFactory unitofwork.RepositoryFactory, cache *memory.SettingsCache, eventPublisher *pkgNats.Publisher, mailQueue IPublisherService, log logger.ILogger) IContentService {
	return &contentService{
		uowFactory:     uowFactory,
		cache:          cache,
		eventPublisher: eventPublisher,
		mailQueue:      mailQueue,
		logger:         log,
	}
}

func (s *contentService) GetSettings(ctx context.Context) (map[string]string, error) {
	if cached, found := s.cache.GetSettings(); found {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.ContentRepository().FindSettings(ctx)
	if err != nil {
		return nil, err
	}

	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}
	s.cache.SetSettings(settings)

	return settings, nil
}

func (s *contentService) GetTeamMembers(ctx context.Context, activeOnly bool) ([]*dto.TeamMemberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "display_order"},
	}
	if activeOnly {
		specs = append(specs, specification.ActiveOnly{})
	}

	members, err := uow.ContentRepository().FindTeamMembers(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TeamMemberResponse, len(members))
	for i, m := range members {
		result[i] = &dto.TeamMemberResponse{
			Id:       m.Id,
			Name:     m.Name,
			Role:     m.Role,
			Bio:      m.Bio,
			ImageURL: m.ImageURL,
		}
	}
	return result, nil
}

func (s *contentService) GetHistoryEvents(ctx context.Context, activeOnly bool) ([]*dto.HistoryEventResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "display_order"},
	}
	if activeOnly {
		specs = append(specs, specification.ActiveOnly{})
	}

	eventsRows, err := uow.ContentRepository().FindHistoryEvents(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.HistoryEventResponse, len(eventsRows))
	for i, e := range eventsRows {
		result[i] = &dto.HistoryEventResponse{
			Id:          e.Id,
			Year:        e.Year,
			Title:       e.Title,
			Description: e.Description,
		}
	}
	return result, nil
}

func (s *contentService) GetCategories(ctx context.Context) ([]*dto.CategoryResponse, error) {
	if cached, found := s.cache.GetCategories(); found {
		if result, ok := cached.([]*dto.CategoryResponse); ok {
			return result, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	categories, err := uow.ContentRepository().FindCategories(ctx,
		specification.ActiveOnly{},
		specification.OrderBy{Field: "display_order"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CategoryResponse, len(categories))
	for i, c := range categories {
		result[i] = &dto.CategoryResponse{
			Id:          c.Id,
			Name:        c.Name,
			Slug:        c.Slug,
			Description: c.Description,
			ImageURL:    c.ImageURL,
		}
	}
	s.cache.SetCategories(result)

	return result, nil
}

func (s *contentService) SubmitContact(ctx context.Context, req *dto.ContactRequest) (*dto.ContactResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	submission := &entity.ContactSubmission{
		Id:        uuid.New(),
		Name:      serverutils.SanitizeString(req.Name),
		Email:     serverutils.SanitizeString(req.Email),
		Message:   serverutils.SanitizeString(req.Message),
		CreatedAt: time.Now(),
	}
	if req.Subject != nil {
		subject := serverutils.SanitizeString(*req.Subject)
		submission.Subject = &subject
	}

	if err := uow.ContentRepository().CreateContactSubmission(ctx, submission); err != nil {
		return nil, err
	}

	// The submission is durable at this point. Event and ack email are
	// best effort.
	if s.eventPublisher != nil {
		subject := ""
		if submission.Subject != nil {
			subject = *submission.Subject
		}
		event := events.NewContactSubmittedEvent(submission.Id.String(), submission.Name, submission.Email, subject)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("ContentService", "Failed to publish contact submitted event", map[string]interface{}{"error": err.Error()})
		}
	}

	if s.mailQueue != nil {
		mailErr := s.mailQueue.QueueEmail(ctx, dto.SendEmailMessage{
			Kind: dto.EmailKindContactAck,
			To:   submission.Email,
			Name: submission.Name,
		})
		if mailErr != nil {
			s.logger.Warn("ContentService", "Failed to queue contact ack email", map[string]interface{}{"error": mailErr.Error()})
		}
	}

	return &dto.ContactResponse{
		Id:      submission.Id,
		Message: "Thank you for contacting us. We will get back to you soon.",
	}, nil
}
