package dto

type CreateUserInput struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=admin editor"`
	IsActive *bool  `json:"isActive"`
}

type UpdateUserInput struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=100"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin editor"`
	IsActive *bool   `json:"isActive"`
}
