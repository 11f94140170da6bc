package request

type ContactMessage struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,max=32"`
	Subject string `json:"subject" validate:"max=255"`
	Message string `json:"message" validate:"required,max=4000"`
}
