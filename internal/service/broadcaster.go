package service

// Broadcaster pushes live events to dashboard watchers (avoids an import
// cycle with the ws transport).
type Broadcaster interface {
	BroadcastToWatchers(surveyID string, msgType string, payload interface{})
}
