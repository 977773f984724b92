package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/studyboard/internal/common"
	"github.com/dmitrijs2005/studyboard/internal/server/models"
	"github.com/dmitrijs2005/studyboard/internal/server/repositories/chatmessages"
	"github.com/dmitrijs2005/studyboard/internal/server/repositories/repomanager"
)

// ChatService appends and lists the shared chat log.
type ChatService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
	now   func() time.Time
}

func NewChatService(db *sql.DB, repos repomanager.RepositoryManager) *ChatService {
	return &ChatService{db: db, repos: repos, now: time.Now}
}

// Post stores one message for the given user. An empty message is
// rejected with common.ErrorValidation. When timestamp is empty the
// server stamps the message with the current UTC time.
func (s *ChatService) Post(ctx context.Context, username string, text string, timestamp string) (*models.ChatMessage, error) {
	if text == "" {
		return nil, common.ErrorValidation
	}
	if timestamp == "" {
		timestamp = s.now().UTC().Format(time.RFC3339)
	}

	message := &models.ChatMessage{
		Username:  username,
		Message:   text,
		Timestamp: timestamp,
	}
	if err := s.repos.ChatMessages(s.db).Append(ctx, message); err != nil {
		return nil, fmt.Errorf("error saving message: %w", err)
	}
	return message, nil
}

// List returns every message in the requested direction. The default
// for an empty order is ascending, reading like a conversation thread.
func (s *ChatService) List(ctx context.Context, order chatmessages.Order) ([]models.ChatMessage, error) {
	if order == "" {
		order = chatmessages.OrderAsc
	}
	if !order.Valid() {
		return nil, common.ErrorValidation
	}

	messages, err := s.repos.ChatMessages(s.db).List(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("error listing messages: %w", err)
	}
	return messages, nil
}
