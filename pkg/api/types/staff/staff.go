package staff

type Role string

const (
	Admin   Role = "super_admin"
	Manager Role = "manager"
)

type UserDetail struct {
	Id          int    `json:"id"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email,omitempty"`
	Role        Role   `json:"role"`
	RoleDisplay string `json:"role_display"`
	IsApproved  bool   `json:"is_approved"`
}

func (u UserDetail) IsAdmin() bool {
	return u.Role == Admin
}

// DisplayName is the name shown for the user: last name first, or username.
func (u UserDetail) DisplayName() string {
	if name := u.LastName + u.FirstName; name != "" {
		return name
	}
	return u.Username
}

type Login struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
