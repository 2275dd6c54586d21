package model

// Role of a staff account. The service does not authenticate; roles arrive
// from the upstream session layer and are stored for audit attribution.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleStaff  Role = "STAFF"
	RoleViewer Role = "VIEWER"
)

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// Actor is the authenticated identity attached to a request by the upstream
// auth collaborator. A zero Actor means no attribution is recorded.
type Actor struct {
	ID    string
	Email string
	Name  string
	Role  Role
}

func (a Actor) IsZero() bool {
	return a.ID == "" && a.Email == ""
}
