package domain

// Project represents a tracked project record.
type Project struct {
	ID          int64  `json:"id" db:"id"`
	ProjectName string `json:"project_name" db:"project_name"`
	Grade       string `json:"grade" db:"grade"`
	StartDate   string `json:"start_date" db:"start_date"`
	Complete    bool   `json:"complete" db:"complete"`
}
