package dto

// RegisterRequest creates a student account plus its profile
type RegisterRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=8"`
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	RollNumber    string `json:"rollNumber" binding:"required"`
	Course        string `json:"course" binding:"required"`
	GuardianName  string `json:"guardianName" binding:"required"`
	GuardianPhone string `json:"guardianPhone" binding:"required"`
}

// LoginRequest authenticates an existing account
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries a fresh session token
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn" example:"3600"`
}

// ProfileResponse is the authenticated user's own view
type ProfileResponse struct {
	ID        int64            `json:"id"`
	Email     string           `json:"email"`
	FirstName string           `json:"firstName"`
	LastName  string           `json:"lastName"`
	RoleType  string           `json:"roleType"`
	Student   *StudentResponse `json:"student,omitempty"`
}
