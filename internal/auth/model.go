package auth

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	ContextKeyIdentity = "identity"
)

// Identity is the public-safe view of an authenticated user. It never
// carries the password hash.
type Identity struct {
	Id        string `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
	Role      string `json:"role"`
}
