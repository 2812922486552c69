package domain

// UserStats представляет статистику пользователя
type UserStats struct {
	UserID        string `json:"user_id"`
	Username      string `json:"username"`
	OwnedProjects int    `json:"owned_projects"`
	Memberships   int    `json:"memberships"`
	CreatedTasks  int    `json:"created_tasks"`
	AssignedTasks int    `json:"assigned_tasks"`
	OpenAssigned  int    `json:"open_assigned_tasks"`
	Comments      int    `json:"comments"`
}

// TaskStats представляет общую статистику по задачам
type TaskStats struct {
	TotalUsers    int `json:"total_users"`
	TotalProjects int `json:"total_projects"`
	TotalTasks    int `json:"total_tasks"`
	TodoTasks     int `json:"todo_tasks"`
	InProgress    int `json:"in_progress_tasks"`
	DoneTasks     int `json:"done_tasks"`
	Unassigned    int `json:"unassigned_tasks"`
	TotalComments int `json:"total_comments"`
}

// Stats объединяет общую статистику и статистику по пользователям
type Stats struct {
	UserStats []UserStats `json:"user_stats"`
	TaskStats TaskStats   `json:"task_stats"`
}
