package model

// Request payloads bound by gin/validator.

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=32"`
	Password string `json:"password" binding:"required,password"`
}

type RenameUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=32"`
}

type CreateNoteRequest struct {
	Text    string `json:"text" binding:"required"`
	Private *bool  `json:"private"`
}

// EditNoteRequest carries a partial update: nil means "not supplied".
type EditNoteRequest struct {
	Text    *string `json:"text"`
	Private *bool   `json:"private"`
}

type NoteTagsRequest struct {
	Tags []int64 `json:"tags" binding:"required"`
}

type TagRequest struct {
	Name string `json:"name" binding:"required"`
}
