package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/complaint-service/internal/domain"
)

// ComplaintFilter captures listing parameters. Filters are conjunctive.
type ComplaintFilter struct {
	TextContains *string
	Status       *string
	Category     *string
}

// ComplaintRepository encapsulates complaint persistence.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) error
	Update(ctx context.Context, complaint *domain.Complaint) error
	GetByID(ctx context.Context, id int64) (*domain.Complaint, error)
	Delete(ctx context.Context, id int64) error
	ListWithFilter(ctx context.Context, filter ComplaintFilter) ([]domain.Complaint, error)
}

type complaintRepository struct {
	pool *pgxpool.Pool
}

// NewComplaintRepository instantiates repository.
func NewComplaintRepository(pool *pgxpool.Pool) ComplaintRepository {
	return &complaintRepository{pool: pool}
}

func (r *complaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	const query = `
        INSERT INTO complaints (complaint, address, category, status, seriousness_score)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		complaint.Complaint,
		complaint.Address,
		complaint.Category,
		complaint.Status,
		complaint.SeriousnessScore,
	).Scan(&complaint.ID, &complaint.CreatedAt, &complaint.UpdatedAt)
}

func (r *complaintRepository) Update(ctx context.Context, complaint *domain.Complaint) error {
	const query = `
        UPDATE complaints SET complaint=$1, address=$2, category=$3, status=$4,
            seriousness_score=$5, updated_at=NOW()
        WHERE id=$6
        RETURNING updated_at`
	if err := r.pool.QueryRow(ctx, query,
		complaint.Complaint,
		complaint.Address,
		complaint.Category,
		complaint.Status,
		complaint.SeriousnessScore,
		complaint.ID,
	).Scan(&complaint.UpdatedAt); err != nil {
		return err
	}
	return nil
}

func (r *complaintRepository) GetByID(ctx context.Context, id int64) (*domain.Complaint, error) {
	const query = `
        SELECT id, complaint, address, category, status, seriousness_score, created_at, updated_at
        FROM complaints WHERE id=$1`

	var complaint domain.Complaint
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&complaint.ID,
		&complaint.Complaint,
		&complaint.Address,
		&complaint.Category,
		&complaint.Status,
		&complaint.SeriousnessScore,
		&complaint.CreatedAt,
		&complaint.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (r *complaintRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM complaints WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *complaintRepository) ListWithFilter(ctx context.Context, filter ComplaintFilter) ([]domain.Complaint, error) {
	base := `SELECT id, complaint, address, category, status, seriousness_score, created_at, updated_at
             FROM complaints`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.TextContains != nil && strings.TrimSpace(*filter.TextContains) != "" {
		args = append(args, "%"+*filter.TextContains+"%")
		clauses = append(clauses, fmt.Sprintf("complaint LIKE $%d", len(args)))
	}
	if filter.Status != nil && strings.TrimSpace(*filter.Status) != "" {
		args = append(args, strings.TrimSpace(*filter.Status))
		clauses = append(clauses, fmt.Sprintf("LOWER(status)=LOWER($%d)", len(args)))
	}
	if filter.Category != nil && strings.TrimSpace(*filter.Category) != "" {
		args = append(args, strings.TrimSpace(*filter.Category))
		clauses = append(clauses, fmt.Sprintf("category=$%d", len(args)))
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY created_at DESC`,
		base, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComplaints(rows)
}

func scanComplaints(rows pgx.Rows) ([]domain.Complaint, error) {
	var result []domain.Complaint
	for rows.Next() {
		var complaint domain.Complaint
		if err := rows.Scan(
			&complaint.ID,
			&complaint.Complaint,
			&complaint.Address,
			&complaint.Category,
			&complaint.Status,
			&complaint.SeriousnessScore,
			&complaint.CreatedAt,
			&complaint.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, complaint)
	}
	return result, rows.Err()
}
