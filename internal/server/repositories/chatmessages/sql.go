package chatmessages

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/studyboard/internal/dbx"
	"github.com/dmitrijs2005/studyboard/internal/server/models"
)

// SQLRepository works against SQLite and MySQL, which share the `?`
// placeholder style.
type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Append(ctx context.Context, message *models.ChatMessage) error {
	query := `INSERT INTO chat_messages (username, message, timestamp) VALUES (?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, message.Username, message.Message, message.Timestamp)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	message.ID = id
	return nil
}

func (r *SQLRepository) List(ctx context.Context, order Order) ([]models.ChatMessage, error) {
	query :=
		`SELECT id, username, message, timestamp FROM chat_messages
		 ORDER BY timestamp ASC, id ASC
		 `
	if order == OrderDesc {
		query =
			`SELECT id, username, message, timestamp FROM chat_messages
			 ORDER BY timestamp DESC, id DESC
			 `
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var messages []models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.Username, &m.Message, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return messages, nil
}

func (r *SQLRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM chat_messages`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
