package usecase

import (
	"context"
	"errors"
	"strings"

	"quicknotes/model"
	"quicknotes/repository"
)

type TagService struct {
	TagsRepo *repository.TagsRepo
}

func (svc *TagService) GetTag(ctx context.Context, id int64) (*model.Tag, error) {
	tag, err := svc.TagsRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return tag, nil
}

func (svc *TagService) ListTags(ctx context.Context) ([]*model.Tag, error) {
	return svc.TagsRepo.ListTags(ctx)
}

func (svc *TagService) CreateTag(ctx context.Context, name string) (*model.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	tag := &model.Tag{Name: name}
	if err := svc.TagsRepo.CreateTag(ctx, tag); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}
	return tag, nil
}

func (svc *TagService) RenameTag(ctx context.Context, id int64, name string) (*model.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	if err := svc.TagsRepo.RenameTag(ctx, id, name); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrAlreadyExists
		}
		return nil, err
	}
	return svc.TagsRepo.FindByID(ctx, id)
}

// DeleteTag removes the tag and detaches it from any notes that reference
// it. The notes themselves are never deleted.
func (svc *TagService) DeleteTag(ctx context.Context, id int64) error {
	if err := svc.TagsRepo.DeleteTag(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
