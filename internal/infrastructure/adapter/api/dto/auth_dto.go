package dto

// LoginRequest is the POST /api/login_data payload
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the successful login reply
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SignupRequest is the POST /api/signup_data payload. Measurements arrive
// as JSON numbers, dates as YYYY-MM-DD strings. Height and weight are
// pointers so an absent key is distinguishable from zero and faults like
// the other required fields.
type SignupRequest struct {
	Name            string   `json:"name"`
	Username        string   `json:"username"`
	Email           string   `json:"email"`
	NewPassword     string   `json:"new_password"`
	ConfirmPassword string   `json:"confirm_password"`
	MobileNumber    string   `json:"mobile_number"`
	DateOfBirth     string   `json:"date_of_birth"`
	Gender          string   `json:"gender"`
	Height          *float64 `json:"height"`
	Weight          *float64 `json:"weight"`
}

// SignupResponse echoes the stored fields. Key casing and the raw
// New_password echo reproduce the existing wire contract.
type SignupResponse struct {
	Name        string  `json:"Name"`
	Username    string  `json:"Username"`
	Email       string  `json:"Email"`
	NewPassword string  `json:"New_password"`
	Password    string  `json:"Password"`
	Mobile      string  `json:"Mobile"`
	DateOfBirth string  `json:"DateOfBirth"`
	Gender      string  `json:"Gender"`
	Height      float64 `json:"Height"`
	Weight      float64 `json:"Weight"`
}

// UpdatePasswordRequest is the POST /updatePassword payload. Password is
// the old password; ConfirmPassword is the candidate new one.
type UpdatePasswordRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}
