package actions

import (
	"encoding/json"
	"log"
)

// Recognized action type tokens.
const (
	ActionCreateWorkoutDay = "CREATE_WORKOUT_DAY"
	ActionEditWorkoutDay   = "EDIT_WORKOUT_DAY"
	ActionDeleteWorkoutDay = "DELETE_WORKOUT_DAY"
	ActionUpdateProfile    = "UPDATE_PROFILE"
)

// Action is a decoded mutation request. It lives only long enough to be
// dispatched; it is never persisted or retried.
type Action struct {
	Type string
	Data json.RawMessage
}

// Decode parses one raw action's JSON payload. The model is untrusted and
// occasionally truncates braces or leaves trailing commas, so a parse
// failure drops the action with a warning instead of raising: one bad block
// must never poison the batch.
func Decode(raw RawAction) (Action, bool) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw.JSONText), &probe); err != nil {
		log.Printf("WARN: Dropping %s action, payload is not a valid JSON object: %v", raw.Type, err)
		return Action{}, false
	}
	return Action{Type: raw.Type, Data: json.RawMessage(raw.JSONText)}, true
}

// DecodeAll decodes a scan's raw actions in order, keeping the survivors.
func DecodeAll(raw []RawAction) []Action {
	decoded := make([]Action, 0, len(raw))
	for _, r := range raw {
		if action, ok := Decode(r); ok {
			decoded = append(decoded, action)
		}
	}
	return decoded
}
