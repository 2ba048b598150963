package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/shiftyhq/shifty-backend-go/internal/domain/business"
	"github.com/shiftyhq/shifty-backend-go/internal/pkg/database"
)

type businessRepositoryImpl struct {
	db *database.DB
}

func NewBusinessRepository(db *database.DB) business.BusinessRepository {
	return &businessRepositoryImpl{db: db}
}

// Create implements business.BusinessRepository.
func (r *businessRepositoryImpl) Create(ctx context.Context, b business.Business) (business.Business, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO businesses (id, name)
		VALUES ($1, $2)
		RETURNING id, name, created_at, updated_at
	`

	var created business.Business
	err := q.QueryRow(ctx, query, uuid.NewString(), b.Name).Scan(
		&created.ID,
		&created.Name,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return business.Business{}, err
	}

	return created, nil
}

// GetByID implements business.BusinessRepository.
func (r *businessRepositoryImpl) GetByID(ctx context.Context, id string) (business.Business, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM businesses
		WHERE id = $1
	`

	var found business.Business
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.Name,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return business.Business{}, business.ErrBusinessNotFound
		}
		return business.Business{}, err
	}

	return found, nil
}
