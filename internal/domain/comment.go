package domain

import (
	"strings"
	"time"
)

// Comment представляет комментарий к задаче
type Comment struct {
	CommentID string     `json:"comment_id"`
	TaskID    string     `json:"task_id"`
	AuthorID  string     `json:"author_id"`
	Content   string     `json:"content"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Edit заменяет текст комментария. Редактировать может только автор.
func (c *Comment) Edit(editorID, content string) error {
	if c.AuthorID != editorID {
		return ErrForbidden
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return ErrEmptyContent
	}

	now := time.Now().UTC()
	c.Content = content
	c.UpdatedAt = &now
	return nil
}

// IsEdited возвращает true если комментарий редактировался
func (c *Comment) IsEdited() bool {
	return c.UpdatedAt != nil
}
