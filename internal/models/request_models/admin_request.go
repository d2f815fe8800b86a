package request_models

type CreateLabourRequest struct {
	Name     string   `json:"name" binding:"required,min=2,max=100"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=8"`
	Phone    string   `json:"phone" binding:"omitempty,max=20"`
	Skills   []string `json:"skills"`
}

type UpdateLabourRequest struct {
	Name   string   `json:"name" binding:"omitempty,min=2,max=100"`
	Phone  string   `json:"phone" binding:"omitempty,max=20"`
	Skills []string `json:"skills"`
	Active *bool    `json:"active"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
