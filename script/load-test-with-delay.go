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

// RegisterUserRequest is the payload for POST /users
type RegisterUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// CreateProjectRequest is the payload for POST /projects
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerID     string `json:"ownerId"`
}

// AddMemberRequest is the payload for POST /projects/{id}/members
type AddMemberRequest struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// CreateTodoRequest is the payload for POST /projects/{id}/todos
type CreateTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ActorID     string `json:"actorId"`
}

// IDResponse captures the id field of create responses
type IDResponse struct {
	ID string `json:"id"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Scenario     string
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
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	users := flag.Int("users", 3, "Number of users to register during setup")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	// Setup phase: register users and create a shared project with every
	// user as an editor. The load phase only exercises todo traffic.
	fmt.Printf("Registering %d users...\n", *users)
	userIDs, err := setupUsers(client, *baseURL, *users)
	if err != nil {
		fmt.Println("Setup failed:", err)
		return
	}

	projectID, err := setupProject(client, *baseURL, userIDs)
	if err != nil {
		fmt.Println("Setup failed:", err)
		return
	}
	fmt.Printf("Created project %s with %d members\n", projectID, len(userIDs))

	scenarios := []string{"Create Todo", "Complete Todo", "List Todos"}

	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		ScenarioStats:   make(map[string]int),
	}
	for _, s := range scenarios {
		stats.ScenarioStats[s] = 0
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	// Completed todos are fed back so the Complete Todo scenario always
	// has an ID to act on
	todoIDs := &todoPool{}

	var wg sync.WaitGroup
	fmt.Println("Starting worker goroutines...")
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			worker(workerID, *baseURL, *delayMs, projectID, userIDs, scenarios, todoIDs, jobs, results)
		}(i)
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

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
			stats.ScenarioStats[result.Scenario]++

			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
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
	fmt.Println("Test running...")

	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)

	printResults(stats)
}

// todoPool is a concurrency-safe bag of created todo IDs
type todoPool struct {
	mu  sync.Mutex
	ids []string
}

func (p *todoPool) add(id string) {
	p.mu.Lock()
	p.ids = append(p.ids, id)
	p.mu.Unlock()
}

func (p *todoPool) random() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.ids) == 0 {
		return "", false
	}
	return p.ids[rand.Intn(len(p.ids))], true
}

func setupUsers(client *http.Client, baseURL string, count int) ([]string, error) {
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		body := RegisterUserRequest{
			Email: fmt.Sprintf("loadtest-%d-%d@example.com", time.Now().UnixNano(), i),
			Name:  fmt.Sprintf("Load Tester %d", i),
		}
		var resp IDResponse
		if err := postJSON(client, baseURL+"/users", body, &resp); err != nil {
			return nil, fmt.Errorf("register user %d: %w", i, err)
		}
		ids = append(ids, resp.ID)
	}
	return ids, nil
}

func setupProject(client *http.Client, baseURL string, userIDs []string) (string, error) {
	var resp IDResponse
	body := CreateProjectRequest{
		Name:        fmt.Sprintf("Load Test %d", time.Now().Unix()),
		Description: "generated by script/load-test-with-delay.go",
		OwnerID:     userIDs[0],
	}
	if err := postJSON(client, baseURL+"/projects", body, &resp); err != nil {
		return "", fmt.Errorf("create project: %w", err)
	}

	for _, userID := range userIDs[1:] {
		member := AddMemberRequest{UserID: userID, Role: "editor"}
		if err := postJSON(client, fmt.Sprintf("%s/projects/%s/members", baseURL, resp.ID), member, nil); err != nil {
			return "", fmt.Errorf("add member %s: %w", userID, err)
		}
	}
	return resp.ID, nil
}

func postJSON(client *http.Client, url string, body any, out any) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return err
	}
	resp, err := client.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func worker(id int, baseURL string, delayMs int, projectID string, userIDs []string,
	scenarios []string, todoIDs *todoPool, jobs <-chan int, results chan<- TestResult) {

	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	for jobID := range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		scenario := scenarios[rand.Intn(len(scenarios))]
		actorID := userIDs[rand.Intn(len(userIDs))]

		var (
			resp         *http.Response
			err          error
			responseTime time.Duration
		)

		switch scenario {
		case "Create Todo":
			todo := CreateTodoRequest{
				Title:       fmt.Sprintf("load todo %d-%d", id, jobID),
				Description: "generated during load test",
				ActorID:     actorID,
			}
			jsonData, merr := json.Marshal(todo)
			if merr != nil {
				results <- TestResult{Success: false, Scenario: scenario, Error: merr}
				continue
			}
			start := time.Now()
			resp, err = client.Post(fmt.Sprintf("%s/projects/%s/todos", baseURL, projectID),
				"application/json", bytes.NewBuffer(jsonData))
			responseTime = time.Since(start)

			if err == nil && resp.StatusCode == http.StatusCreated {
				var created IDResponse
				if derr := json.NewDecoder(resp.Body).Decode(&created); derr == nil && created.ID != "" {
					todoIDs.add(created.ID)
				}
			}

		case "Complete Todo":
			todoID, ok := todoIDs.random()
			if !ok {
				// Nothing created yet, count it as a list instead
				scenario = "List Todos"
				start := time.Now()
				resp, err = client.Get(fmt.Sprintf("%s/projects/%s/todos", baseURL, projectID))
				responseTime = time.Since(start)
				break
			}
			start := time.Now()
			resp, err = client.Post(fmt.Sprintf("%s/todos/%s/complete", baseURL, todoID),
				"application/json", nil)
			responseTime = time.Since(start)

		case "List Todos":
			start := time.Now()
			resp, err = client.Get(fmt.Sprintf("%s/projects/%s/todos", baseURL, projectID))
			responseTime = time.Since(start)
		}

		result := TestResult{
			ResponseTime: responseTime,
			Scenario:     scenario,
		}

		if err != nil {
			result.Success = false
			result.Error = err
		} else {
			statusCode := resp.StatusCode
			result.StatusCode = statusCode
			result.Success = statusCode >= 200 && statusCode < 300
			if !result.Success {
				result.Error = fmt.Errorf("HTTP status code %d", statusCode)
			}
			resp.Body.Close()
		}

		results <- result
	}
}

func printResults(stats *TestStats) {
	rawTps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	// Calculate percentiles
	var p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		sortedTimes := make([]time.Duration, len(stats.ResponseTimes))
		copy(sortedTimes, stats.ResponseTimes)

		for i := 0; i < len(sortedTimes); i++ {
			for j := i + 1; j < len(sortedTimes); j++ {
				if sortedTimes[i] > sortedTimes[j] {
					sortedTimes[i], sortedTimes[j] = sortedTimes[j], sortedTimes[i]
				}
			}
		}

		p50 = sortedTimes[len(sortedTimes)*50/100]
		p90 = sortedTimes[len(sortedTimes)*90/100]
		p95 = sortedTimes[len(sortedTimes)*95/100]
		p99 = sortedTimes[len(sortedTimes)*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Requests/second:     %.2f\n", rawTps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	totalScenarios := 0
	for _, count := range stats.ScenarioStats {
		totalScenarios += count
	}
	for scenario, count := range stats.ScenarioStats {
		if count > 0 {
			fmt.Printf("%-15s: %d requests (%.1f%%)\n", scenario, count,
				float64(count)/float64(totalScenarios)*100)
		}
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
	fmt.Println("================================================")
}
