package dto

import (
	"fmt"

	"quicknotes/model"
)

type NoteResponse struct {
	ID      int64           `json:"id"`
	Text    string          `json:"text"`
	Private bool            `json:"private"`
	Archive bool            `json:"archive"`
	Author  *UserResponse   `json:"author,omitempty"`
	Tags    []model.Tag     `json:"tags"`
	Links   map[string]Link `json:"_links"` // HAL links
}

func ToNoteResponse(note *model.Note) NoteResponse {
	response := NoteResponse{
		ID:      note.ID,
		Text:    note.Text,
		Private: note.Private,
		Archive: note.Archive,
		Tags:    note.Tags,
		Links: map[string]Link{
			"self":       {Href: fmt.Sprintf("/notes/%d", note.ID)},
			"collection": {Href: "/notes"},
		},
	}
	if response.Tags == nil {
		response.Tags = []model.Tag{}
	}
	if note.Author != nil {
		author := ToUserResponse(note.Author)
		response.Author = &author
	}
	return response
}

func ToNoteResponses(notes []*model.Note) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i, note := range notes {
		responses[i] = ToNoteResponse(note)
	}
	return responses
}
