package domain

import (
	"strings"
	"time"
)

// Project представляет проект: владельца, участников и задачи
type Project struct {
	ProjectID string     `json:"project_id"`
	Name      string     `json:"name"`
	OwnerID   string     `json:"owner_id"`
	Members   []User     `json:"members"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// ProjectShort представляет сокращенную информацию о проекте (используется в списках)
type ProjectShort struct {
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	OwnerID   string `json:"owner_id"`
}

// NewProject создает проект, в котором владелец сразу является участником
func NewProject(name string, owner *User) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if tooLong(name, MaxProjectNameLength) {
		return nil, ErrNameTooLong
	}

	return &Project{
		Name:    name,
		OwnerID: owner.UserID,
		Members: []User{*owner},
	}, nil
}

// IsOwner проверяет, является ли пользователь владельцем проекта
func (p *Project) IsOwner(userID string) bool {
	return p.OwnerID == userID
}

// IsMember проверяет, состоит ли пользователь в проекте
func (p *Project) IsMember(userID string) bool {
	for _, member := range p.Members {
		if member.UserID == userID {
			return true
		}
	}
	return false
}

// AddMember добавляет пользователя в проект.
// Возвращает false, если пользователь уже был участником (повторный вызов ничего не меняет).
func (p *Project) AddMember(user User) bool {
	if p.IsMember(user.UserID) {
		return false
	}
	p.Members = append(p.Members, user)
	return true
}

// CreateTask создает новую задачу в статусе TODO от имени участника проекта
func (p *Project) CreateTask(title string, creator *User) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if tooLong(title, MaxTitleLength) {
		return nil, ErrTitleTooLong
	}

	if !p.IsMember(creator.UserID) {
		return nil, ErrNotMember
	}

	return &Task{
		ProjectID: p.ProjectID,
		CreatorID: creator.UserID,
		Title:     title,
		Status:    StatusTodo,
		Comments:  []Comment{},
	}, nil
}
