// Package httpapi exposes the persistence core over HTTP. Every
// operation of the board is an explicit handler keyed by method and
// path; session identity travels in the X-Session-ID header and is
// resolved once per request by the auth middleware.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/studyboard/internal/logging"
	"github.com/dmitrijs2005/studyboard/internal/server/services"
	"github.com/dmitrijs2005/studyboard/internal/server/sessions"
)

type Server struct {
	address string
	logger  logging.Logger
	engine  *gin.Engine
}

func NewServer(
	address string,
	logger logging.Logger,
	sm *sessions.Manager,
	users *services.UserService,
	profiles *services.ProfileService,
	studyLog *services.StudyLogService,
	chat *services.ChatService,
) *Server {
	gin.SetMode(gin.ReleaseMode)

	log := logger.With("module", "httpapi")

	engine := gin.New()
	engine.Use(gin.Recovery(), RequestLog(log))

	auth := NewAuthHandler(users)
	profile := NewProfileHandler(profiles)
	study := NewStudyHandler(studyLog)
	chatH := NewChatHandler(chat)
	admin := NewAdminHandler(users)

	api := engine.Group("/api")
	api.POST("/signup", auth.Signup)
	api.POST("/login", auth.Login)

	authed := api.Group("", RequireAuth(sm))
	authed.POST("/logout", auth.Logout)
	authed.GET("/session", auth.Session)

	authed.GET("/profile/note", profile.GetNote)
	authed.PUT("/profile/note", profile.SetNote)
	authed.GET("/profile/class", profile.GetClass)
	authed.PUT("/profile/class", profile.SetClass)

	authed.POST("/study/records", study.AppendRecord)
	authed.GET("/study/records", study.ListRecords)

	authed.POST("/chat/messages", chatH.PostMessage)
	authed.GET("/chat/messages", chatH.ListMessages)

	authed.DELETE("/account/data", auth.DeleteProfileData)
	authed.DELETE("/account", auth.DeleteAccount)

	authed.DELETE("/admin/users", admin.WipeAll)

	return &Server{address: address, logger: log, engine: engine}
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.engine,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
