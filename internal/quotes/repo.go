package quotes

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/greenvista/landscaping-backend/pkg/db"
	"github.com/greenvista/landscaping-backend/pkg/db/models"
	pkgerrors "github.com/greenvista/landscaping-backend/pkg/errors"
)

// GormRepository stores quotes through the shared GORM client.
type GormRepository struct {
	client *db.Client
}

// NewGormRepository wraps the shared client.
func NewGormRepository(client *db.Client) (*GormRepository, error) {
	if client == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &GormRepository{client: client}, nil
}

// Create inserts a quote row.
func (r *GormRepository) Create(ctx context.Context, quote *models.Quote) error {
	if err := r.client.DB().WithContext(ctx).Create(quote).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "saving quote")
	}
	return nil
}

// FindByID loads a quote row, mapping missing rows to a not-found error.
func (r *GormRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Quote, error) {
	var quote models.Quote
	err := r.client.DB().WithContext(ctx).First(&quote, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "quote not found").
				WithDetails(map[string]any{"id": id.String()})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading quote")
	}
	return &quote, nil
}
