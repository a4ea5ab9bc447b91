package worker

import "fmt"

// TaskImportProcess is the asynq task type for running an import session.
const TaskImportProcess = "import:process"

type ImportTaskPayload struct {
	SessionID   int    `json:"session_id"`
	SessionCode string `json:"session_code"`
}

// ProgressKey is the Redis key the worker publishes percentage progress
// under while a session runs.
func ProgressKey(sessionID int) string {
	return fmt.Sprintf("import:progress:%d", sessionID)
}
