package handler

// User is the registration payload.
type User struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
}

// Login is the login payload.
type Login struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Token is the login response.
type Token struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Claims are the validated fields of a bearer token.
type Claims struct {
	Email string
	Role  string
}

// UserSummary is one row of the user listing.
type UserSummary struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	IsActive  bool   `json:"isActive"`
	Role      string `json:"role"`
}

// UpdateUserAccess is the payload for toggling a user's access or role.
type UpdateUserAccess struct {
	Email    string `json:"email" binding:"required,email"`
	IsActive bool   `json:"isActive"`
	Role     string `json:"role" binding:"required"`
}
