package mapper

import (
	"pawhaven-be/internal/entity"
	"pawhaven-be/internal/model"
)

type ContentMapper struct{}

func NewContentMapper() *ContentMapper {
	return &ContentMapper{}
}

func (m *ContentMapper) TeamMemberToEntity(t *model.TeamMember) *entity.TeamMember {
	if t == nil {
		return nil
	}
	return &entity.TeamMember{
		Id:           t.Id,
		Name:         t.Name,
		Role:         t.Role,
		Bio:          t.Bio,
		ImageURL:     t.ImageURL,
		DisplayOrder: t.DisplayOrder,
		IsActive:     t.IsActive,
		CreatedAt:    t.CreatedAt,
	}
}

func (m *ContentMapper) TeamMembersToEntities(members []*model.TeamMember) []*entity.TeamMember {
	entities := make([]*entity.TeamMember, len(members))
	for i, t := range members {
		entities[i] = m.TeamMemberToEntity(t)
	}
	return entities
}

func (m *ContentMapper) HistoryEventToEntity(h *model.HistoryEvent) *entity.HistoryEvent {
	if h == nil {
		return nil
	}
	return &entity.HistoryEvent{
		Id:           h.Id,
		Year:         h.Year,
		Title:        h.Title,
		Description:  h.Description,
		DisplayOrder: h.DisplayOrder,
		IsActive:     h.IsActive,
		CreatedAt:    h.CreatedAt,
	}
}

func (m *ContentMapper) HistoryEventsToEntities(events []*model.HistoryEvent) []*entity.HistoryEvent {
	entities := make([]*entity.HistoryEvent, len(events))
	for i, h := range events {
		entities[i] = m.HistoryEventToEntity(h)
	}
	return entities
}

func (m *ContentMapper) CategoryToEntity(c *model.Category) *entity.Category {
	if c == nil {
		return nil
	}
	return &entity.Category{
		Id:           c.Id,
		Name:         c.Name,
		Slug:         c.Slug,
		Description:  c.Description,
		ImageURL:     c.ImageURL,
		DisplayOrder: c.DisplayOrder,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
	}
}

func (m *ContentMapper) CategoriesToEntities(categories []*model.Category) []*entity.Category {
	entities := make([]*entity.Category, len(categories))
	for i, c := range categories {
		entities[i] = m.CategoryToEntity(c)
	}
	return entities
}

func (m *ContentMapper) SettingToEntity(s *model.Setting) *entity.Setting {
	if s == nil {
		return nil
	}
	return &entity.Setting{
		Key:       s.Key,
		Value:     s.Value,
		UpdatedAt: s.UpdatedAt,
	}
}

func (m *ContentMapper) ContactSubmissionToEntity(c *model.ContactSubmission) *entity.ContactSubmission {
	if c == nil {
		return nil
	}
	return &entity.ContactSubmission{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ContentMapper) ContactSubmissionToModel(c *entity.ContactSubmission) *model.ContactSubmission {
	if c == nil {
		return nil
	}
	return &model.ContactSubmission{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}
