package usecase

import "github.com/admitly/lead-capture-api/internal/entity"

type CaptureLeadInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Course  string `json:"course"`
	College string `json:"college"`
	Year    string `json:"year"`
}

type ListLeadsInput struct {
	Page   int
	Limit  int
	Status string
	Course string
	Search string
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type ListLeadsOutput struct {
	Data       []entity.Lead `json:"data"`
	Pagination Pagination    `json:"pagination"`
}
