package admin

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

type AddBlackoutRequest struct {
	Date     string `json:"date" binding:"required" validate:"required,datetime=2006-01-02"`
	FullDay  bool   `json:"full_day"`
	OpensAt  *int   `json:"opens_at" validate:"omitempty,min=0,max=1440"`
	ClosesAt *int   `json:"closes_at" validate:"omitempty,min=0,max=1440"`
	Reason   string `json:"reason"`
}
