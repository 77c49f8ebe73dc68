package model

import "time"

// Note is the central entity. The author is fixed at creation and never
// transfers. Archive is a logical-delete flag: archived notes are excluded
// from default listings and accept no edit or tag operations until restored.
type Note struct {
	ID        int64     `db:"id" json:"id"`
	AuthorID  int64     `db:"author_id" json:"-"`
	Text      string    `db:"text" json:"text"`
	Private   bool      `db:"private" json:"private"`
	Archive   bool      `db:"archive" json:"archive"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	// Loaded separately, not columns of the notes table
	Author *User `db:"-" json:"author,omitempty"`
	Tags   []Tag `db:"-" json:"tags"`
}

// HasTag reports whether the tag id is currently associated with the note.
func (n *Note) HasTag(tagID int64) bool {
	for _, t := range n.Tags {
		if t.ID == tagID {
			return true
		}
	}
	return false
}
