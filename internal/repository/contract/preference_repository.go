package contract

import (
	"context"

	"pawhaven-be/internal/entity"

	"github.com/google/uuid"
)

type PreferenceRepository interface {
	FindByUser(ctx context.Context, userId uuid.UUID) (*entity.UserPreferences, error)
	Create(ctx context.Context, prefs *entity.UserPreferences) error
	Update(ctx context.Context, prefs *entity.UserPreferences) error
}
