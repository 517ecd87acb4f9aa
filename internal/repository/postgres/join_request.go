package postgres

import (
	"context"
	"database/sql"
	"time"

	"propertypulse-backend/internal/domain"
	"propertypulse-backend/internal/repository"
)

type joinRequestRepository struct {
	db *sql.DB
}

func NewJoinRequestRepository(db *sql.DB) repository.JoinRequestRepository {
	return &joinRequestRepository{db: db}
}

const joinRequestColumns = `id, email, name, requested_role, COALESCE(message, ''), status, reviewed_by, reviewed_on, family_size, created_on, updated_on`

func (r *joinRequestRepository) Create(ctx context.Context, req *domain.JoinRequest) error {
	query := `INSERT INTO join_requests (email, name, requested_role, message, status, family_size, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $7) RETURNING id, created_on, updated_on`
	return r.db.QueryRowContext(ctx, query,
		req.Email, req.Name, req.RequestedRole, req.Message, req.Status, req.FamilySize, time.Now(),
	).Scan(&req.ID, &req.CreatedOn, &req.UpdatedOn)
}

func (r *joinRequestRepository) GetByID(ctx context.Context, id int32) (*domain.JoinRequest, error) {
	query := `SELECT ` + joinRequestColumns + ` FROM join_requests WHERE id = $1`
	return scanJoinRequest(r.db.QueryRowContext(ctx, query, id))
}

func (r *joinRequestRepository) GetPendingByEmail(ctx context.Context, email string) (*domain.JoinRequest, error) {
	query := `SELECT ` + joinRequestColumns + ` FROM join_requests WHERE LOWER(email) = LOWER($1) AND status = $2`
	return scanJoinRequest(r.db.QueryRowContext(ctx, query, email, domain.JoinRequestStatusPending))
}

func (r *joinRequestRepository) List(ctx context.Context, status domain.JoinRequestStatus) ([]domain.JoinRequest, error) {
	query := `SELECT ` + joinRequestColumns + ` FROM join_requests`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_on DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.JoinRequest
	for rows.Next() {
		req, err := scanJoinRequest(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, *req)
	}
	return reqs, rows.Err()
}

// ApplyDecision is the concurrency guard for the review workflow: the status
// predicate makes check-then-write a single conditional update, so two
// racing reviewers cannot both succeed.
func (r *joinRequestRepository) ApplyDecision(ctx context.Context, req *domain.JoinRequest) (bool, error) {
	query := `UPDATE join_requests SET status = $1, message = $2, reviewed_by = $3, reviewed_on = $4, updated_on = $4
	          WHERE id = $5 AND status = $6`
	res, err := r.db.ExecContext(ctx, query,
		req.Status, req.Message, req.ReviewedBy, req.ReviewedOn, req.ID, domain.JoinRequestStatusPending)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *joinRequestRepository) Revert(ctx context.Context, id int32) error {
	query := `UPDATE join_requests SET status = $1, reviewed_by = NULL, reviewed_on = NULL, updated_on = $2
	          WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, domain.JoinRequestStatusPending, time.Now(), id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJoinRequest(row rowScanner) (*domain.JoinRequest, error) {
	req := &domain.JoinRequest{}
	var reviewedOn sql.NullTime
	err := row.Scan(&req.ID, &req.Email, &req.Name, &req.RequestedRole, &req.Message,
		&req.Status, &req.ReviewedBy, &reviewedOn, &req.FamilySize, &req.CreatedOn, &req.UpdatedOn)
	if err != nil {
		return nil, err
	}
	if reviewedOn.Valid {
		req.ReviewedOn = &reviewedOn.Time
	}
	return req, nil
}
