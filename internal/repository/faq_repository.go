package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lawfirm/site-api/internal/domain"
)

const faqColumns = `id, question, answer, category, sort_order, status, created_at, updated_at`

type faqRepository struct {
	pool *pgxpool.Pool
}

// NewFAQRepository returns a Postgres-backed implementation.
func NewFAQRepository(pool *pgxpool.Pool) FAQRepository {
	return &faqRepository{pool: pool}
}

func (r *faqRepository) Create(ctx context.Context, faq *domain.FAQ) error {
	const query = `
        INSERT INTO faqs (id, question, answer, category, sort_order, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at, updated_at`

	id := uuid.NewString()
	if err := r.pool.QueryRow(ctx, query,
		id,
		faq.Question,
		faq.Answer,
		faq.Category,
		faq.Order,
		string(faq.Status),
	).Scan(&faq.CreatedAt, &faq.UpdatedAt); err != nil {
		return err
	}
	faq.ID = id
	return nil
}

func (r *faqRepository) List(ctx context.Context) ([]domain.FAQ, error) {
	return r.list(ctx, `SELECT `+faqColumns+` FROM faqs ORDER BY category, sort_order, created_at, id`)
}

func (r *faqRepository) ListActive(ctx context.Context) ([]domain.FAQ, error) {
	return r.list(ctx, `SELECT `+faqColumns+` FROM faqs WHERE status='active' ORDER BY category, sort_order, created_at, id`)
}

func (r *faqRepository) list(ctx context.Context, query string) ([]domain.FAQ, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.FAQ{}
	for rows.Next() {
		faq, err := scanFAQ(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *faq)
	}
	return result, rows.Err()
}

// CreateAtEnd holds a lock that conflicts with itself and with every write
// to faqs, so the count and the insert see the same table.
func (r *faqRepository) CreateAtEnd(ctx context.Context, faq *domain.FAQ) error {
	const query = `
        INSERT INTO faqs (id, question, answer, category, sort_order, status)
        SELECT $1, $2, $3, $4, COUNT(*), $5 FROM faqs
        RETURNING sort_order, created_at, updated_at`

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `LOCK TABLE faqs IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return err
	}
	id := uuid.NewString()
	if err := tx.QueryRow(ctx, query,
		id,
		faq.Question,
		faq.Answer,
		faq.Category,
		string(faq.Status),
	).Scan(&faq.Order, &faq.CreatedAt, &faq.UpdatedAt); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}
	faq.ID = id
	return nil
}

func (r *faqRepository) GetByID(ctx context.Context, id string) (*domain.FAQ, error) {
	faq, err := scanFAQ(r.pool.QueryRow(ctx, `SELECT `+faqColumns+` FROM faqs WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return faq, err
}

func (r *faqRepository) Update(ctx context.Context, id string, patch domain.FAQPatch) (*domain.FAQ, error) {
	query := `
        UPDATE faqs SET
            question = COALESCE($2, question),
            answer = COALESCE($3, answer),
            category = COALESCE($4, category),
            sort_order = COALESCE($5, sort_order),
            status = COALESCE($6, status),
            updated_at = NOW()
        WHERE id=$1
        RETURNING ` + faqColumns

	var status *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}

	faq, err := scanFAQ(r.pool.QueryRow(ctx, query,
		id,
		patch.Question,
		patch.Answer,
		patch.Category,
		patch.Order,
		status,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return faq, err
}

func (r *faqRepository) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM faqs WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func scanFAQ(row pgx.Row) (*domain.FAQ, error) {
	var (
		faq    domain.FAQ
		status string
	)
	if err := row.Scan(
		&faq.ID,
		&faq.Question,
		&faq.Answer,
		&faq.Category,
		&faq.Order,
		&status,
		&faq.CreatedAt,
		&faq.UpdatedAt,
	); err != nil {
		return nil, err
	}
	faq.Status = domain.FAQStatus(status)
	return &faq, nil
}
