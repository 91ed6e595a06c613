package cache

import "fmt"

// AnalysisKey keys a cached question-analysis result by its request hash
// (question, mood and tags).
func AnalysisKey(requestHash string) string {
	return fmt.Sprintf("analysis:%s", requestHash)
}

// RateLimitKey keys the per-minute request counter for an API key prefix.
func RateLimitKey(keyPrefix string) string {
	return fmt.Sprintf("ratelimit:%s", keyPrefix)
}
