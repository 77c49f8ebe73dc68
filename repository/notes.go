package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"quicknotes/model"
	"quicknotes/utils"

	"github.com/jmoiron/sqlx"
)

type NotesRepo struct {
	DB *sqlx.DB
}

func GetNotesRepo(db *sqlx.DB) *NotesRepo {
	return &NotesRepo{DB: db}
}

// NoteFilter narrows a listing. Conditions are AND-combined. When Username
// is set the listing switches to that author's notes instead of AuthorID;
// callers force PublicOnly alongside it.
type NoteFilter struct {
	AuthorID        int64
	Username        string
	Tag             string
	Private         *bool
	PublicOnly      bool
	IncludeArchived bool
}

const noteColumns = `id, author_id, text, private, archive, created_at, updated_at`

func (r *NotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	now := time.Now()
	note.CreatedAt = now
	note.UpdatedAt = now

	result, err := r.DB.ExecContext(ctx,
		`INSERT INTO notes (author_id, text, private, archive, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		note.AuthorID, note.Text, note.Private, note.Archive, note.CreatedAt, note.UpdatedAt)
	if err != nil {
		return translate(err)
	}
	note.ID, err = result.LastInsertId()
	return err
}

// GetNote loads a note with its author and tag set. Ownership is not checked
// here; that is the note engine's decision.
func (r *NotesRepo) GetNote(ctx context.Context, id int64) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	err := r.DB.GetContext(ctx, &note,
		`SELECT `+noteColumns+` FROM notes WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := attachNote(ctx, r.DB, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *NotesRepo) ListNotes(ctx context.Context, filter NoteFilter) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("list", "notes")
	defer timer.ObserveDuration()

	query := `SELECT DISTINCT n.id, n.author_id, n.text, n.private, n.archive, n.created_at, n.updated_at
	          FROM notes n`
	var conds []string
	var args []interface{}

	if filter.Tag != "" {
		query += ` JOIN note_tags nt ON nt.note_id = n.id JOIN tags t ON t.id = nt.tag_id`
		conds = append(conds, "t.name = ?")
		args = append(args, filter.Tag)
	}
	if filter.Username != "" {
		query += ` JOIN users u ON u.id = n.author_id`
		conds = append(conds, "u.username = ?")
		args = append(args, filter.Username)
	} else {
		conds = append(conds, "n.author_id = ?")
		args = append(args, filter.AuthorID)
	}
	if filter.PublicOnly {
		conds = append(conds, "n.private = 0")
	} else if filter.Private != nil {
		conds = append(conds, "n.private = ?")
		args = append(args, *filter.Private)
	}
	if !filter.IncludeArchived {
		conds = append(conds, "n.archive = 0")
	}

	query += " WHERE " + strings.Join(conds, " AND ") + " ORDER BY n.id"

	var notes []*model.Note
	if err := r.DB.SelectContext(ctx, &notes, query, args...); err != nil {
		return nil, err
	}
	for _, note := range notes {
		if err := attachNote(ctx, r.DB, note); err != nil {
			return nil, err
		}
	}
	return notes, nil
}

// Mutate runs a single-row read-modify-write on the note inside one
// transaction. The note is loaded with author and tags attached, fn applies
// its checks and changes, and the row is written back before commit. An
// error from fn aborts with nothing persisted; fn returning false skips the
// write and hands back the note as read.
func (r *NotesRepo) Mutate(ctx context.Context, id int64, fn func(note *model.Note) (bool, error)) (*model.Note, error) {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	note, err := getNoteTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	save, err := fn(note)
	if err != nil {
		return nil, err
	}
	if !save {
		return note, nil
	}

	note.UpdatedAt = time.Now()
	if _, err := tx.ExecContext(ctx,
		`UPDATE notes SET text = ?, private = ?, archive = ?, updated_at = ? WHERE id = ?`,
		note.Text, note.Private, note.Archive, note.UpdatedAt, note.ID); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return note, nil
}

// AddTags associates each resolvable tag id with the note, in the same
// transaction as the guard's checks. Ids that do not resolve to a tag match
// nothing in the SELECT and are skipped; duplicate associations are ignored.
func (r *NotesRepo) AddTags(ctx context.Context, noteID int64, tagIDs []int64, guard func(note *model.Note) error) (*model.Note, error) {
	timer := utils.TrackDBOperation("update", "note_tags")
	defer timer.ObserveDuration()

	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	note, err := getNoteTx(ctx, tx, noteID)
	if err != nil {
		return nil, err
	}
	if err := guard(note); err != nil {
		return nil, err
	}

	for _, tagID := range tagIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO note_tags (note_id, tag_id)
			 SELECT ?, id FROM tags WHERE id = ?`, noteID, tagID); err != nil {
			return nil, translate(err)
		}
	}

	if err := attachTags(ctx, tx, note); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return note, nil
}

// RemoveTags detaches the listed associations in one DELETE, with the
// guard's subset check reading the tag set under the same transaction so
// removal stays all-or-nothing.
func (r *NotesRepo) RemoveTags(ctx context.Context, noteID int64, tagIDs []int64, guard func(note *model.Note) error) (*model.Note, error) {
	timer := utils.TrackDBOperation("delete", "note_tags")
	defer timer.ObserveDuration()

	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	note, err := getNoteTx(ctx, tx, noteID)
	if err != nil {
		return nil, err
	}
	if err := guard(note); err != nil {
		return nil, err
	}
	if len(tagIDs) == 0 {
		return note, nil
	}

	query, args, err := sqlx.In(
		`DELETE FROM note_tags WHERE note_id = ? AND tag_id IN (?)`, noteID, tagIDs)
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
		return nil, err
	}

	if err := attachTags(ctx, tx, note); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return note, nil
}

func (r *NotesRepo) CountNotes(ctx context.Context) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM notes`)
	return count, err
}

func (r *NotesRepo) CountArchivedNotes(ctx context.Context) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM notes WHERE archive = 1`)
	return count, err
}

// getNoteTx loads the note with author and tags under the transaction.
func getNoteTx(ctx context.Context, tx *sqlx.Tx, id int64) (*model.Note, error) {
	var note model.Note
	err := tx.GetContext(ctx, &note,
		`SELECT `+noteColumns+` FROM notes WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := attachNote(ctx, tx, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// attachNote loads the author and tag set onto the note.
func attachNote(ctx context.Context, q sqlx.QueryerContext, note *model.Note) error {
	var author model.User
	err := sqlx.GetContext(ctx, q, &author,
		`SELECT id, username, password_hash, role, is_staff, created_at
		 FROM users WHERE id = ?`, note.AuthorID)
	if err != nil {
		return err
	}
	note.Author = &author
	return attachTags(ctx, q, note)
}

func attachTags(ctx context.Context, q sqlx.QueryerContext, note *model.Note) error {
	note.Tags = []model.Tag{}
	return sqlx.SelectContext(ctx, q, &note.Tags,
		`SELECT t.id, t.name FROM tags t
		 JOIN note_tags nt ON nt.tag_id = t.id
		 WHERE nt.note_id = ? ORDER BY t.id`, note.ID)
}
