package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/model"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo { // Конструктор
	return &UserRepo{
		pool: pool,
	}
}

func (r *UserRepo) Create(ctx context.Context, u model.User) (model.User, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, password, name, surname)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, password, name, surname
	`, u.Email, u.Password, u.Name, u.Surname).Scan(
		&u.ID, &u.Email, &u.Password, &u.Name, &u.Surname,
	)
	return u, mapError(err) // email с уникальным индексом -> возможен конфликт
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, password, name, surname
		FROM users
		WHERE email = $1
	`, email).Scan(
		&u.ID, &u.Email, &u.Password, &u.Name, &u.Surname,
	)

	if err == pgx.ErrNoRows {
		return u, ErrorNotFound
	}
	return u, err
}
