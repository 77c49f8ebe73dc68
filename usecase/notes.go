package usecase

import (
	"context"
	"errors"
	"strings"

	"quicknotes/model"
	"quicknotes/repository"
	"quicknotes/utils"
)

// NoteService is the note engine: CRUD, the tag association set and the
// archive lifecycle. Every call takes the acting user explicitly; there is
// no ambient request identity.
type NoteService struct {
	NotesRepo *repository.NotesRepo
}

// NoteListOptions narrow a listing; conditions are AND-combined. Username
// switches to the public variant: that author's notes with private forced
// to false, regardless of the Private field.
type NoteListOptions struct {
	Tag             string
	Private         *bool
	Username        string
	IncludeArchived bool
}

// GetNote fetches a note by id. Ownership is enforced on read as well as
// write: another user's note yields ErrForbidden even though it exists.
func (svc *NoteService) GetNote(ctx context.Context, actor *model.User, noteID int64) (*model.Note, error) {
	note, err := svc.loadNote(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(actor, note.AuthorID, ""); err != nil {
		return nil, err
	}
	return note, nil
}

// ListNotes returns the actor's notes narrowed by the options. Archived
// notes are excluded unless explicitly requested.
func (svc *NoteService) ListNotes(ctx context.Context, actor *model.User, opts NoteListOptions) ([]*model.Note, error) {
	filter := repository.NoteFilter{
		AuthorID:        actor.ID,
		Tag:             opts.Tag,
		Private:         opts.Private,
		IncludeArchived: opts.IncludeArchived,
	}
	if opts.Username != "" {
		filter.Username = opts.Username
		filter.PublicOnly = true
	}
	return svc.NotesRepo.ListNotes(ctx, filter)
}

// CreateNote constructs a note owned by the actor. Text is required;
// private defaults to true at the handler.
func (svc *NoteService) CreateNote(ctx context.Context, actor *model.User, text string, private bool) (*model.Note, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}

	note := &model.Note{
		AuthorID: actor.ID,
		Text:     text,
		Private:  private,
	}
	if err := svc.NotesRepo.CreateNote(ctx, note); err != nil {
		return nil, err
	}
	utils.TrackNoteOperation("create")
	return svc.loadNote(ctx, note.ID)
}

// EditNote applies a partial update. The checks and the write run in one
// transaction against the note row. Supplying private equal to the current
// value short-circuits to ErrNotModified with nothing persisted, including
// any text in the same request.
func (svc *NoteService) EditNote(ctx context.Context, actor *model.User, noteID int64, req model.EditNoteRequest) (*model.Note, error) {
	var changed bool
	note, err := svc.mutate(ctx, noteID, func(note *model.Note) (bool, error) {
		if err := Authorize(actor, note.AuthorID, ""); err != nil {
			return false, err
		}
		if note.Archive {
			return false, ErrNoteArchived
		}

		if req.Private != nil && *req.Private == note.Private {
			return false, ErrNotModified
		}
		if req.Text == nil && req.Private == nil {
			return false, nil
		}

		if req.Text != nil {
			if strings.TrimSpace(*req.Text) == "" {
				return false, ErrTextRequired
			}
			note.Text = *req.Text
		}
		if req.Private != nil {
			note.Private = *req.Private
		}
		changed = true
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if changed {
		utils.TrackNoteOperation("edit")
	}
	return note, nil
}

// ArchiveNote is the delete operation: a logical archive, not a physical
// removal. Archiving an already archived note is a no-op.
func (svc *NoteService) ArchiveNote(ctx context.Context, actor *model.User, noteID int64) (*model.Note, error) {
	note, err := svc.mutate(ctx, noteID, func(note *model.Note) (bool, error) {
		if err := Authorize(actor, note.AuthorID, ""); err != nil {
			return false, err
		}
		if note.Archive {
			return false, ErrNotModified
		}
		note.Archive = true
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	utils.TrackNoteOperation("archive")
	return note, nil
}

// RestoreNote clears the archive flag. Idempotent: restoring an active note
// reports ErrNotModified. Only the author may restore.
func (svc *NoteService) RestoreNote(ctx context.Context, actor *model.User, noteID int64) (*model.Note, error) {
	note, err := svc.mutate(ctx, noteID, func(note *model.Note) (bool, error) {
		if err := Authorize(actor, note.AuthorID, ""); err != nil {
			return false, err
		}
		if !note.Archive {
			return false, ErrNotModified
		}
		note.Archive = false
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	utils.TrackNoteOperation("restore")
	return note, nil
}

// AddTags associates the listed tags with the note. Ids that do not resolve
// to an existing tag are skipped; duplicates are ignored.
func (svc *NoteService) AddTags(ctx context.Context, actor *model.User, noteID int64, tagIDs []int64) (*model.Note, error) {
	note, err := svc.NotesRepo.AddTags(ctx, noteID, tagIDs, func(note *model.Note) error {
		if err := Authorize(actor, note.AuthorID, ""); err != nil {
			return err
		}
		if note.Archive {
			return ErrNoteArchived
		}
		return nil
	})
	if err != nil {
		return nil, translateNotFound(err)
	}
	utils.TrackNoteOperation("tag")
	return note, nil
}

// RemoveTags detaches the listed associations, all or nothing: unless every
// id is currently associated the whole call fails and nothing is removed.
// The subset check reads the tag set in the same transaction as the delete.
func (svc *NoteService) RemoveTags(ctx context.Context, actor *model.User, noteID int64, tagIDs []int64) (*model.Note, error) {
	note, err := svc.NotesRepo.RemoveTags(ctx, noteID, tagIDs, func(note *model.Note) error {
		if err := Authorize(actor, note.AuthorID, ""); err != nil {
			return err
		}
		if note.Archive {
			return ErrNoteArchived
		}
		for _, tagID := range tagIDs {
			if !note.HasTag(tagID) {
				return ErrTagNotAttached
			}
		}
		return nil
	})
	if err != nil {
		return nil, translateNotFound(err)
	}
	utils.TrackNoteOperation("untag")
	return note, nil
}

func (svc *NoteService) loadNote(ctx context.Context, noteID int64) (*model.Note, error) {
	return translateNoteErr(svc.NotesRepo.GetNote(ctx, noteID))
}

func (svc *NoteService) mutate(ctx context.Context, noteID int64, fn func(note *model.Note) (bool, error)) (*model.Note, error) {
	return translateNoteErr(svc.NotesRepo.Mutate(ctx, noteID, fn))
}

func translateNoteErr(note *model.Note, err error) (*model.Note, error) {
	if err != nil {
		return nil, translateNotFound(err)
	}
	return note, nil
}

func translateNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
