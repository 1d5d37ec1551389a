package user

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type RegisterPayload struct {
	Firstname string `json:"firstname" validate:"required"`
	Lastname  string `json:"lastname" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Mobile    string `json:"mobile" validate:"required,e164"`
	Password  string `json:"password" validate:"required,min=8"`
}

type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserPayload struct {
	Id        string `json:"id" validate:"required"`
	Firstname string `json:"firstname" validate:"omitempty"`
	Lastname  string `json:"lastname" validate:"omitempty"`
	Email     string `json:"email" validate:"omitempty,email"`
	Mobile    string `json:"mobile" validate:"omitempty,e164"`
	Role      string `json:"role" validate:"omitempty,oneof=user admin"`
}

type UserDocument struct {
	Id                    string `bson:"_id"`
	Firstname             string `bson:"firstname"`
	Lastname              string `bson:"lastname"`
	Email                 string `bson:"email"`
	Mobile                string `bson:"mobile"`
	Password              string `bson:"password"`
	Role                  string `bson:"role"`
	IsBlocked             bool   `bson:"isBlocked"`
	RefreshToken          string `bson:"refreshToken,omitempty"`
	RefreshTokenExpiresAt int64  `bson:"refreshTokenExpiresAt,omitempty"`
	CreatedAt             int64  `bson:"createdAt"`
	UpdatedAt             int64  `bson:"updatedAt"`
}

type UserResponse struct {
	Id        string `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
	Role      string `json:"role"`
	IsBlocked bool   `json:"isBlocked"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// ToResponse strips credential fields before a document leaves the
// service boundary.
func (d *UserDocument) ToResponse() *UserResponse {
	return &UserResponse{
		Id:        d.Id,
		Firstname: d.Firstname,
		Lastname:  d.Lastname,
		Email:     d.Email,
		Mobile:    d.Mobile,
		Role:      d.Role,
		IsBlocked: d.IsBlocked,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type LoginResult struct {
	*UserResponse
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"-"`
}
