package request

type LoginRequest struct {
	Token string `json:"token" binding:"required,min=8,max=512"`
}
