package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/studyboard/internal/server/services"
)

type AdminHandler struct {
	users *services.UserService
}

func NewAdminHandler(users *services.UserService) *AdminHandler {
	return &AdminHandler{users: users}
}

// DELETE /api/admin/users
//
// Global wipe of all five tables. The service rejects any session
// without the stored admin role.
func (h *AdminHandler) WipeAll(c *gin.Context) {
	if err := h.users.WipeAll(c.Request.Context(), currentSession(c)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"status": "wiped"})
}
