package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lawfirm/site-api/internal/domain"
)

const contactColumns = `id, name, email, phone, inquiry_type, message, status, admin_notes, created_at, updated_at`

type contactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository returns a Postgres-backed implementation.
func NewContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &contactRepository{pool: pool}
}

func (r *contactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	const query = `
        INSERT INTO contacts (id, name, email, phone, inquiry_type, message, status, admin_notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING created_at, updated_at`

	id := uuid.NewString()
	if err := r.pool.QueryRow(ctx, query,
		id,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.InquiryType,
		contact.Message,
		string(contact.Status),
		contact.AdminNotes,
	).Scan(&contact.CreatedAt, &contact.UpdatedAt); err != nil {
		return err
	}
	contact.ID = id
	return nil
}

func (r *contactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts ORDER BY created_at DESC, id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Contact{}
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *contact)
	}
	return result, rows.Err()
}

func (r *contactRepository) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id=$1`
	contact, err := scanContact(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return contact, err
}

func (r *contactRepository) Update(ctx context.Context, id string, patch domain.ContactPatch) (*domain.Contact, error) {
	query := `
        UPDATE contacts SET
            status = COALESCE($2, status),
            admin_notes = CASE WHEN $3::boolean THEN NULLIF($4::text, '') ELSE admin_notes END,
            updated_at = NOW()
        WHERE id=$1
        RETURNING ` + contactColumns

	var status *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}
	notes := ""
	if patch.AdminNotes != nil {
		notes = *patch.AdminNotes
	}

	contact, err := scanContact(r.pool.QueryRow(ctx, query, id, status, patch.AdminNotes != nil, notes))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return contact, err
}

func (r *contactRepository) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func scanContact(row pgx.Row) (*domain.Contact, error) {
	var (
		contact domain.Contact
		status  string
	)
	if err := row.Scan(
		&contact.ID,
		&contact.Name,
		&contact.Email,
		&contact.Phone,
		&contact.InquiryType,
		&contact.Message,
		&status,
		&contact.AdminNotes,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	); err != nil {
		return nil, err
	}
	contact.Status = domain.ContactStatus(status)
	return &contact, nil
}
