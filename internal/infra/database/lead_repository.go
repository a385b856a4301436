package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fisiomuv/preventa-api/internal/entity"
	"github.com/fisiomuv/preventa-api/pkg/logging"
)

const uniqueViolation = "23505"

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Create inserts the lead and fills in the id generated by the database.
// The unique index on (email, interest) is the authoritative duplicate guard:
// a 23505 here means a concurrent submission won the race.
func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO preventa_leads
			(email, name, phone, interest, origin, ts, utm, referer, consent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	utmJSON, err := marshalUTM(lead.UTM)
	if err != nil {
		return fmt.Errorf("failed to encode utm block: %w", err)
	}

	err = r.DB.QueryRowContext(ctx, query,
		lead.Email,
		nullString(lead.Name),
		nullString(lead.Phone),
		lead.Interest,
		lead.Origin,
		lead.Timestamp,
		utmJSON,
		nullString(lead.Referer),
		lead.Consent,
		lead.CreatedAt,
		lead.UpdatedAt,
	).Scan(&lead.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return entity.ErrLeadAlreadyExists
		}

		logging.GetLogger().WithError(err).Error("lead insert failed")
		return err
	}

	return nil
}

func (r *LeadRepository) ExistsByEmailAndInterest(ctx context.Context, email, interest string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM preventa_leads WHERE email = $1 AND interest = $2)`

	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, email, interest).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `
		SELECT id, email, name, phone, interest, origin, ts, utm, referer, consent, created_at, updated_at
		FROM preventa_leads
		WHERE id = $1
	`

	var (
		lead        entity.Lead
		name, phone sql.NullString
		referer     sql.NullString
		utmJSON     []byte
	)

	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&lead.ID,
		&lead.Email,
		&name,
		&phone,
		&lead.Interest,
		&lead.Origin,
		&lead.Timestamp,
		&utmJSON,
		&referer,
		&lead.Consent,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}

	lead.Name = name.String
	lead.Phone = phone.String
	lead.Referer = referer.String

	if len(utmJSON) > 0 {
		var utm entity.UTM
		if err := json.Unmarshal(utmJSON, &utm); err != nil {
			return nil, fmt.Errorf("failed to decode utm block: %w", err)
		}
		lead.UTM = &utm
	}

	return &lead, nil
}

func marshalUTM(utm *entity.UTM) ([]byte, error) {
	if utm.IsEmpty() {
		return nil, nil
	}
	return json.Marshal(utm)
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
