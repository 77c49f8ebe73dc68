package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"quicknotes/model"
	"quicknotes/utils"

	"github.com/jmoiron/sqlx"
)

type UsersRepo struct {
	DB *sqlx.DB
}

func GetUsersRepo(db *sqlx.DB) *UsersRepo {
	return &UsersRepo{DB: db}
}

// CreateUser inserts the user and populates its ID. Returns ErrDuplicate
// when the username is taken.
func (r *UsersRepo) CreateUser(ctx context.Context, user *model.User) error {
	timer := utils.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	user.CreatedAt = time.Now()
	result, err := r.DB.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, role, is_staff, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		user.Username, user.PasswordHash, user.Role, user.IsStaff, user.CreatedAt)
	if err != nil {
		return translate(err)
	}
	user.ID, err = result.LastInsertId()
	return err
}

func (r *UsersRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.DB.GetContext(ctx, &user,
		`SELECT id, username, password_hash, role, is_staff, created_at
		 FROM users WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UsersRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.DB.GetContext(ctx, &user,
		`SELECT id, username, password_hash, role, is_staff, created_at
		 FROM users WHERE username = ?`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UsersRepo) ListUsers(ctx context.Context) ([]*model.User, error) {
	timer := utils.TrackDBOperation("list", "users")
	defer timer.ObserveDuration()

	var users []*model.User
	err := r.DB.SelectContext(ctx, &users,
		`SELECT id, username, password_hash, role, is_staff, created_at
		 FROM users ORDER BY id`)
	return users, err
}

// UpdateUsername renames the user. Returns ErrNotFound when the id does not
// resolve and ErrDuplicate when the new name is taken.
func (r *UsersRepo) UpdateUsername(ctx context.Context, id int64, username string) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	result, err := r.DB.ExecContext(ctx,
		`UPDATE users SET username = ? WHERE id = ?`, username, id)
	if err != nil {
		return translate(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUser removes the user; the user's notes go with it (FK cascade).
func (r *UsersRepo) DeleteUser(ctx context.Context, id int64) error {
	timer := utils.TrackDBOperation("delete", "users")
	defer timer.ObserveDuration()

	result, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UsersRepo) CountUsers(ctx context.Context) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`)
	return count, err
}
