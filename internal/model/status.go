package model

// Status глобален: колонки project_id в схеме нет (см. statusService)
type Status struct {
	ID int64 `json:"id"`
	Name string `json:"name"`
}
