package contract

import (
	"context"

	"pawhaven-be/internal/entity"
	"pawhaven-be/internal/repository/specification"
)

type ContentRepository interface {
	FindTeamMembers(ctx context.Context, specs ...specification.Specification) ([]*entity.TeamMember, error)
	FindHistoryEvents(ctx context.Context, specs ...specification.Specification) ([]*entity.HistoryEvent, error)
	FindCategories(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error)
	FindSettings(ctx context.Context) ([]*entity.Setting, error)
	CreateContactSubmission(ctx context.Context, submission *entity.ContactSubmission) error
}
