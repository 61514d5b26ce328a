package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

// SignupPayload represents the signup request body
type SignupPayload struct {
	Name            string  `json:"name"`
	Username        string  `json:"username"`
	Email           string  `json:"email"`
	NewPassword     string  `json:"new_password"`
	ConfirmPassword string  `json:"confirm_password"`
	MobileNumber    string  `json:"mobile_number"`
	DateOfBirth     string  `json:"date_of_birth"`
	Gender          string  `json:"gender"`
	Height          float64 `json:"height"`
	Weight          float64 `json:"weight"`
}

// WorkoutPayload represents the calories insert request body
type WorkoutPayload struct {
	Username          string  `json:"username"`
	TotalExerciseTime float64 `json:"total_exercise_time"`
	CaloriesBurn      float64 `json:"calories_burn"`
	Date              string  `json:"date"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Endpoint     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	EndpointStats      map[string]int
	ErrorCounts        map[string]int
	Lock               sync.Mutex
}

func main() {
	// Define command line flags
	users := flag.Int("users", 5, "Number of users to seed")
	workouts := flag.Int("workouts", 10, "Workout records to insert per user")
	concurrency := flag.Int("c", 3, "Number of concurrent goroutines")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 50, "Delay between requests in milliseconds")
	flag.Parse()

	totalRequests := *users * (*workouts + 2) // signup + workouts + history fetch per user

	fmt.Printf("Seeding %d users with %d workouts each against %s\n", *users, *workouts, *baseURL)
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	// Initialize test statistics
	stats := &TestStats{
		TotalRequests:   totalRequests,
		MinResponseTime: time.Hour, // Start with a high value that will be replaced
		EndpointStats:   make(map[string]int),
		ErrorCounts:     make(map[string]int),
	}

	// Channel to collect results
	results := make(chan TestResult, totalRequests)

	// Channel to distribute work, one job per user
	jobs := make(chan int, *users)

	// Start worker goroutines
	var wg sync.WaitGroup
	runID := rand.Intn(1000000)
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(runID, *baseURL, *workouts, *delayMs, jobs, results)
		}()
	}

	// Fill the jobs channel
	go func() {
		for i := 0; i < *users; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	// Collect results
	go func() {
		for result := range results {
			stats.Lock.Lock()
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}

			stats.EndpointStats[result.Endpoint]++
			stats.TotalResponseTime += result.ResponseTime

			if result.ResponseTime < stats.MinResponseTime {
				stats.MinResponseTime = result.ResponseTime
			}
			if result.ResponseTime > stats.MaxResponseTime {
				stats.MaxResponseTime = result.ResponseTime
			}
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Seeding...")

	wg.Wait()
	close(results)

	stats.TotalTime = time.Since(startTime)

	printResults(stats)
}

func worker(runID int, baseURL string, workouts, delayMs int, jobs <-chan int, results chan<- TestResult) {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	for userIdx := range jobs {
		username := fmt.Sprintf("seeduser-%d-%d", runID, userIdx)

		signup := SignupPayload{
			Name:            fmt.Sprintf("Seed User %d", userIdx),
			Username:        username,
			Email:           fmt.Sprintf("%s@example.com", username),
			NewPassword:     "seedpass123",
			ConfirmPassword: "seedpass123",
			MobileNumber:    fmt.Sprintf("98%08d", userIdx),
			DateOfBirth:     "1995-06-15",
			Gender:          "other",
			Height:          150 + float64(userIdx%50),
			Weight:          50 + float64(userIdx%60),
		}

		results <- doPost(client, delayMs, "signup", baseURL+"/api/signup_data", signup)

		// Spread workout dates over consecutive days so history ordering is visible
		day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < workouts; i++ {
			workout := WorkoutPayload{
				Username:          username,
				TotalExerciseTime: float64(10+rand.Intn(90)) + 0.5,
				CaloriesBurn:      float64(50 + rand.Intn(500)),
				Date:              day.AddDate(0, 0, i).Format("2006-01-02"),
			}
			results <- doPost(client, delayMs, "insertCalories", baseURL+"/api/insertCaloriesData", workout)
		}

		results <- doGet(client, delayMs, "fetchCalories", baseURL+"/fetchCaloriesData/"+username)
	}
}

func doPost(client *http.Client, delayMs int, endpoint, url string, payload any) TestResult {
	if delayMs > 0 {
		time.Sleep(time.Duration(delayMs) * time.Millisecond)
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return TestResult{Endpoint: endpoint, Success: false, Error: err}
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return TestResult{Endpoint: endpoint, Success: false, Error: err}
	}
	req.Header.Set("Content-Type", "application/json")

	return send(client, endpoint, req)
}

func doGet(client *http.Client, delayMs int, endpoint, url string) TestResult {
	if delayMs > 0 {
		time.Sleep(time.Duration(delayMs) * time.Millisecond)
	}

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return TestResult{Endpoint: endpoint, Success: false, Error: err}
	}

	return send(client, endpoint, req)
}

func send(client *http.Client, endpoint string, req *http.Request) TestResult {
	startTime := time.Now()
	resp, err := client.Do(req)
	responseTime := time.Since(startTime)

	result := TestResult{
		Endpoint:     endpoint,
		ResponseTime: responseTime,
	}

	if err != nil {
		result.Success = false
		result.Error = err
		return result
	}

	result.StatusCode = resp.StatusCode
	result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
	if !result.Success {
		result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	resp.Body.Close()

	return result
}

func printResults(stats *TestStats) {
	completed := stats.SuccessfulRequests + stats.FailedRequests

	var avgResponseTime time.Duration
	if completed > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(completed)
	}

	fmt.Println("\n================= SEED RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", completed)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(completed)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(completed)*100)
	fmt.Printf("Total Time:          %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)

	fmt.Println("\n----------------- ENDPOINT DISTRIBUTION -----------------")
	for endpoint, count := range stats.EndpointStats {
		fmt.Printf("%-15s: %d requests\n", endpoint, count)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(completed)*100)
		}
	}
	fmt.Println("================================================")
}
