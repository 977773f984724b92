package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/studyboard/internal/common"
	"github.com/dmitrijs2005/studyboard/internal/server/services"
)

type AuthHandler struct {
	users *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, common.ErrorValidation)
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"username": user.Username})
}

// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, common.ErrorValidation)
		return
	}

	session, err := h.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"session_id": session.ID, "username": session.Username, "role": session.Role})
}

// POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.users.Logout(c.GetHeader(SessionHeader))
	respondOK(c, gin.H{"status": "logged out"})
}

// GET /api/session
func (h *AuthHandler) Session(c *gin.Context) {
	s := currentSession(c)
	respondOK(c, gin.H{"username": s.Username, "role": s.Role, "created_at": s.CreatedAt})
}

// DELETE /api/account/data
//
// Clears the user's study log, class label and note but keeps the
// credentials, so the account can log back in with an empty profile.
func (h *AuthHandler) DeleteProfileData(c *gin.Context) {
	s := currentSession(c)
	if err := h.users.DeleteProfileData(c.Request.Context(), s.Username); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"status": "profile data deleted"})
}

// DELETE /api/account
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	s := currentSession(c)
	if err := h.users.DeleteAccount(c.Request.Context(), s.Username); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"status": "account deleted"})
}
