package api

// User is one record from the upstream user listing. The wire names are the
// backend's Spanish field names; order is preserved exactly as received.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
}

// greetingResponse is the body of GET /api/hello.
type greetingResponse struct {
	Message string `json:"message"`
}

// healthResponse is the body of GET /api/health.
type healthResponse struct {
	Status string `json:"status"`
}
