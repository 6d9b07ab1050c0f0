package api

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type SolveBody struct {
	Input string `json:"input" description:"raw puzzle input, one entry per line"`
}
