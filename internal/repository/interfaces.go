package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/hrpulse/internal/domain"
)

var ErrEmptySnapshot = errors.New("snapshot has no employees")

// DatasetRepo persists a whole dataset. Save replaces any previous content.
type DatasetRepo interface {
	Load(ctx context.Context) ([]*domain.Employee, []domain.Course, error)
	Save(ctx context.Context, employees []*domain.Employee, courses []domain.Course) error
}
