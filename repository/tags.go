package repository

import (
	"context"
	"database/sql"
	"errors"

	"quicknotes/model"
	"quicknotes/utils"

	"github.com/jmoiron/sqlx"
)

type TagsRepo struct {
	DB *sqlx.DB
}

func GetTagsRepo(db *sqlx.DB) *TagsRepo {
	return &TagsRepo{DB: db}
}

// CreateTag inserts the tag and populates its ID. Returns ErrDuplicate when
// the name is taken.
func (r *TagsRepo) CreateTag(ctx context.Context, tag *model.Tag) error {
	timer := utils.TrackDBOperation("insert", "tags")
	defer timer.ObserveDuration()

	result, err := r.DB.ExecContext(ctx, `INSERT INTO tags (name) VALUES (?)`, tag.Name)
	if err != nil {
		return translate(err)
	}
	tag.ID, err = result.LastInsertId()
	return err
}

func (r *TagsRepo) FindByID(ctx context.Context, id int64) (*model.Tag, error) {
	timer := utils.TrackDBOperation("find", "tags")
	defer timer.ObserveDuration()

	var tag model.Tag
	err := r.DB.GetContext(ctx, &tag, `SELECT id, name FROM tags WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tag, nil
}

func (r *TagsRepo) ListTags(ctx context.Context) ([]*model.Tag, error) {
	timer := utils.TrackDBOperation("list", "tags")
	defer timer.ObserveDuration()

	var tags []*model.Tag
	err := r.DB.SelectContext(ctx, &tags, `SELECT id, name FROM tags ORDER BY id`)
	return tags, err
}

func (r *TagsRepo) RenameTag(ctx context.Context, id int64, name string) error {
	timer := utils.TrackDBOperation("update", "tags")
	defer timer.ObserveDuration()

	result, err := r.DB.ExecContext(ctx, `UPDATE tags SET name = ? WHERE id = ?`, name, id)
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

// DeleteTag removes the tag; note associations are detached by the FK
// cascade on note_tags, notes themselves are untouched.
func (r *TagsRepo) DeleteTag(ctx context.Context, id int64) error {
	timer := utils.TrackDBOperation("delete", "tags")
	defer timer.ObserveDuration()

	result, err := r.DB.ExecContext(ctx, `DELETE FROM tags WHERE id = ?`, id)
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

func (r *TagsRepo) CountTags(ctx context.Context) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM tags`)
	return count, err
}
