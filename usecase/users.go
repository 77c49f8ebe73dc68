package usecase

import (
	"context"
	"errors"

	"quicknotes/model"
	"quicknotes/repository"
	"quicknotes/services"
	"quicknotes/utils"
)

type UserService struct {
	UsersRepo *repository.UsersRepo
}

// Register creates a simple_user account. A taken username surfaces as
// ErrAlreadyExists rather than a silently unsaved entity.
func (svc *UserService) Register(ctx context.Context, username, password string) (*model.User, error) {
	hash, err := services.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hash,
		Role:         model.RoleSimpleUser,
	}
	if err := svc.UsersRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

// Authenticate verifies a username+password pair. Unknown username and
// wrong password return the identical ErrUnauthenticated.
func (svc *UserService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := svc.UsersRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.TrackAuthAttempt("failure", "basic")
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	match, err := services.VerifyPassword(user.PasswordHash, password)
	if err != nil || !match {
		utils.TrackAuthAttempt("failure", "basic")
		return nil, ErrUnauthenticated
	}

	utils.TrackAuthAttempt("success", "basic")
	return user, nil
}

func (svc *UserService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	user, err := svc.UsersRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (svc *UserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	return svc.UsersRepo.ListUsers(ctx)
}

// RenameUser is admin-only; the handler gates the role before calling.
func (svc *UserService) RenameUser(ctx context.Context, id int64, username string) (*model.User, error) {
	err := svc.UsersRepo.UpdateUsername(ctx, id, username)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrAlreadyExists
		}
		return nil, err
	}
	return svc.UsersRepo.FindByID(ctx, id)
}

// DeleteUser removes the account and, by cascade, the user's notes.
func (svc *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := svc.UsersRepo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
