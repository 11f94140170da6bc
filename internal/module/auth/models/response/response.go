package response

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Provider string `json:"provider,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

type Auth struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}
