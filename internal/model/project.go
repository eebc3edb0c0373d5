package model

type Project struct {
	ID int64 `json:"id"`
	Name string `json:"name"`
	Description string `json:"description"`
	Tasks []Task `json:"tasks,omitempty"`
	Tags []Tag `json:"tags,omitempty"`
}
