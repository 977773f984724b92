package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/studyboard/internal/common"
	"github.com/dmitrijs2005/studyboard/internal/server/services"
)

type ProfileHandler struct {
	profiles *services.ProfileService
}

func NewProfileHandler(profiles *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// GET /api/profile/note
func (h *ProfileHandler) GetNote(c *gin.Context) {
	s := currentSession(c)
	note, err := h.profiles.GetNote(c.Request.Context(), s.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"content": note})
}

type setNoteReq struct {
	Content string `json:"content"`
}

// PUT /api/profile/note
func (h *ProfileHandler) SetNote(c *gin.Context) {
	var req setNoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, common.ErrorValidation)
		return
	}

	s := currentSession(c)
	if err := h.profiles.SetNote(c.Request.Context(), s.Username, req.Content); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"content": req.Content})
}

// GET /api/profile/class
func (h *ProfileHandler) GetClass(c *gin.Context) {
	s := currentSession(c)
	class, err := h.profiles.GetClass(c.Request.Context(), s.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"class_grade": class})
}

type setClassReq struct {
	ClassGrade string `json:"class_grade"`
}

// PUT /api/profile/class
func (h *ProfileHandler) SetClass(c *gin.Context) {
	var req setClassReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, common.ErrorValidation)
		return
	}

	s := currentSession(c)
	if err := h.profiles.SetClass(c.Request.Context(), s.Username, req.ClassGrade); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"class_grade": req.ClassGrade})
}
