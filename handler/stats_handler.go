package handler

import (
	"log"
	"net/http"

	"quicknotes/repository"
	"quicknotes/utils"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	usersRepo *repository.UsersRepo
	notesRepo *repository.NotesRepo
	tagsRepo  *repository.TagsRepo
}

func NewStatsHandler(usersRepo *repository.UsersRepo, notesRepo *repository.NotesRepo, tagsRepo *repository.TagsRepo) *StatsHandler {
	return &StatsHandler{usersRepo: usersRepo, notesRepo: notesRepo, tagsRepo: tagsRepo}
}

// GetStats reports entity counts and host load. Admin-only route.
func (h *StatsHandler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.usersRepo.CountUsers(ctx)
	if err != nil {
		log.Printf("Error counting users: %v", err)
		utils.InternalError(c, "Failed to count users")
		return
	}
	notes, err := h.notesRepo.CountNotes(ctx)
	if err != nil {
		log.Printf("Error counting notes: %v", err)
		utils.InternalError(c, "Failed to count notes")
		return
	}
	archived, err := h.notesRepo.CountArchivedNotes(ctx)
	if err != nil {
		log.Printf("Error counting archived notes: %v", err)
		utils.InternalError(c, "Failed to count notes")
		return
	}
	tags, err := h.tagsRepo.CountTags(ctx)
	if err != nil {
		log.Printf("Error counting tags: %v", err)
		utils.InternalError(c, "Failed to count tags")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":          users,
		"notes":          notes,
		"archived_notes": archived,
		"tags":           tags,
		"system": gin.H{
			"cpu_percent":    utils.GetCPUUsage(),
			"memory_percent": utils.GetMemoryUsage(),
		},
	})
}
