package dto

import (
	"fmt"

	"quicknotes/model"
)

type TagResponse struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Links map[string]Link `json:"_links"`
}

func ToTagResponse(tag *model.Tag) TagResponse {
	return TagResponse{
		ID:   tag.ID,
		Name: tag.Name,
		Links: map[string]Link{
			"self":       {Href: fmt.Sprintf("/tags/%d", tag.ID)},
			"collection": {Href: "/tags"},
		},
	}
}

func ToTagResponses(tags []*model.Tag) []TagResponse {
	responses := make([]TagResponse, len(tags))
	for i, tag := range tags {
		responses[i] = ToTagResponse(tag)
	}
	return responses
}
