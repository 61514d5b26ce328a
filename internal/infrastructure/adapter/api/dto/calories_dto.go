package dto

// InsertCaloriesRequest is the POST /api/insertCaloriesData payload
type InsertCaloriesRequest struct {
	Username          string  `json:"username"`
	TotalExerciseTime float64 `json:"total_exercise_time"`
	CaloriesBurn      float64 `json:"calories_burn"`
	Date              string  `json:"date"`
}

// InsertCaloriesResponse echoes the stored record with the original
// contract's key casing
type InsertCaloriesResponse struct {
	Username            string  `json:"Username"`
	LastWorkoutDuration float64 `json:"LastWorkoutDuration"`
	CaloriesBurn        float64 `json:"CaloriesBurn"`
	Date                string  `json:"Date"`
}
