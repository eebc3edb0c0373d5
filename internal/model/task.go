package model

// Task идентифицируется составным ключом (projectId, id),
// id выдается последовательно внутри проекта
type Task struct {
	ID int64 `json:"id"`
	ProjectID int64 `json:"projectId"`
	Name string `json:"name"`
	Description *string `json:"description"`
	StatusID int64 `json:"statusId"`
	CreatorID int64 `json:"creatorId"`
	AssigneeID int64 `json:"assigneeId"`
	Status *Status `json:"status,omitempty"`
	Tags []Tag `json:"tags"`
}
