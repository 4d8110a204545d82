package contract

import (
	"context"

	"qrcapture-be/internal/entity"
	"qrcapture-be/internal/repository/specification"

	"github.com/google/uuid"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	UpdateNotes(ctx context.Context, id uuid.UUID, notes string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Lead, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lead, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
