package user

type Role string

const (
	RoleAdmin                Role = "admin"
	RoleGeneralManager       Role = "general_manager"
	RoleDeputyGeneralManager Role = "deputy_general_manager"
	RoleDeveloper            Role = "developer"
)

var Roles = []Role{RoleAdmin, RoleGeneralManager, RoleDeputyGeneralManager, RoleDeveloper}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleGeneralManager, RoleDeputyGeneralManager, RoleDeveloper:
		return true
	}
	return false
}

type User struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Username  string `json:"username"`
	Role      Role   `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}

type CreatePayload struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Role      Role   `json:"role"`
}

type UpdateRolePayload struct {
	Role Role `json:"role"`
}

type LoginPayload struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type RegisterPayload struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	Username  string `json:"username,omitempty"`
}
