package cache

import "strings"

const (
	GlobalKeyPrefix = "studyplan"

	analysisService = "analysis"
	resultsObject   = "results"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// GlobalAnalysesKey holds every stored analysis across users.
func GlobalAnalysesKey() string {
	return GenerateCacheKey(analysisService, resultsObject, "global")
}

// UserAnalysesKey holds the analyses of a single user.
func UserAnalysesKey(userID string) string {
	return GenerateCacheKey(analysisService, resultsObject, "user", userID)
}
