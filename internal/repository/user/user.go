package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"quickship/internal/entities"
	"quickship/internal/repository"
	userservice "quickship/internal/service/user"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, userModifyEntity entities.UserModify) (int64, error) {
	userModifyModel := FromDomainModify(&userModifyEntity)
	query := `INSERT INTO users (name, phone, email, role)
		VALUES ($1, $2, COALESCE($3, ''), $4)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		userModifyModel.Name,
		userModifyModel.Phone,
		userModifyModel.Email,
		userModifyModel.Role,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, userservice.ErrConflict
		}
		return 0, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	query := `SELECT id, name, phone, email, role, created_at, updated_at
		FROM users
		WHERE id = $1`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&userModel.ID,
			&userModel.Name,
			&userModel.Phone,
			&userModel.Email,
			&userModel.Role,
			&userModel.CreatedAt,
			&userModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, userservice.ErrUserNotFound
		}

		return nil, fmt.Errorf("unexpected user repository getbyid error: %w", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.User, error) {
	query := `
	SELECT id, name, phone, email, role, created_at, updated_at
	FROM users
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0, 8)
	for rows.Next() {
		var userModel UserDB
		err := rows.Scan(
			&userModel.ID,
			&userModel.Name,
			&userModel.Phone,
			&userModel.Email,
			&userModel.Role,
			&userModel.CreatedAt,
			&userModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected user repository getall scan error: %w", err)
		}
		users = append(users, *ToDomain(&userModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected user repository getall rows error: %w", err)
	}

	return users, nil
}
