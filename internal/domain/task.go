package domain

import (
	"strings"
	"time"
)

// TaskStatus представляет статус задачи
type TaskStatus string

// Возможные статусы задачи
const (
	StatusTodo       TaskStatus = "TODO"        // Задача создана, работа не начата
	StatusInProgress TaskStatus = "IN_PROGRESS" // Задача в работе
	StatusDone       TaskStatus = "DONE"        // Задача выполнена
)

// ParseTaskStatus разбирает статус без учета регистра
func ParseTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// IsValid проверяет, что статус входит в допустимый набор
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// Task представляет задачу внутри проекта
type Task struct {
	TaskID      string     `json:"task_id"`
	ProjectID   string     `json:"project_id"`
	CreatorID   string     `json:"creator_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	AssigneeID  *string    `json:"assignee_id"`
	Comments    []Comment  `json:"comments"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// TaskShort представляет сокращенную информацию о задаче (используется в списках)
type TaskShort struct {
	TaskID     string     `json:"task_id"`
	ProjectID  string     `json:"project_id"`
	Title      string     `json:"title"`
	Status     TaskStatus `json:"status"`
	AssigneeID *string    `json:"assignee_id"`
}

// ChangeStatus переводит задачу в новый статус.
// Установка текущего статуса не является ошибкой.
func (t *Task) ChangeStatus(status TaskStatus) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	t.Status = status
	return nil
}

// AssignTo назначает исполнителя. Исполнитель должен состоять в проекте задачи.
func (t *Task) AssignTo(user *User, project *Project) error {
	if project.ProjectID != t.ProjectID || !project.IsMember(user.UserID) {
		return ErrNotMember
	}
	assignee := user.UserID
	t.AssigneeID = &assignee
	return nil
}

// Unassign снимает исполнителя с задачи
func (t *Task) Unassign() {
	t.AssigneeID = nil
}

// IsAssignedTo проверяет, назначен ли пользователь исполнителем задачи
func (t *Task) IsAssignedTo(userID string) bool {
	return t.AssigneeID != nil && *t.AssigneeID == userID
}

// AddComment создает комментарий к задаче от имени участника проекта
func (t *Task) AddComment(author *User, project *Project, content string) (*Comment, error) {
	if project.ProjectID != t.ProjectID || !project.IsMember(author.UserID) {
		return nil, ErrNotMember
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	return &Comment{
		TaskID:   t.TaskID,
		AuthorID: author.UserID,
		Content:  content,
	}, nil
}
