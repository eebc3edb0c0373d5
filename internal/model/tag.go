package model

// Tag идентифицируется составным ключом (projectId, id)
type Tag struct {
	ID int64 `json:"id"`
	ProjectID int64 `json:"projectId"`
	Name string `json:"name"`
}
