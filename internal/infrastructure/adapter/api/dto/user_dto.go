package dto

// UserInfoResponse is the GET /user_info/:username reply. The lowercase
// keys mirror the column names the original contract exposed.
type UserInfoResponse struct {
	Name        string `json:"name"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
	DateOfBirth string `json:"dateofbirth"`
	Gender      string `json:"gender"`
	Height      string `json:"height"`
	Weight      string `json:"weight"`
}

// UpdateMetricsRequest is the POST /update payload. Pointer fields
// distinguish absent values; zero values are rejected the same way the
// original contract treated them (falsy means missing).
type UpdateMetricsRequest struct {
	Username string   `json:"username"`
	Height   *float64 `json:"height"`
	Weight   *float64 `json:"weight"`
}
