package entity

// CallLog is a single voice-AI call record consumed verbatim from the Retell
// API. It is never persisted locally; the dashboard renders it pass-through.
type CallLog struct {
	CallID         string `json:"call_id"`
	AgentID        string `json:"agent_id"`
	CustomerPhone  string `json:"customer_phone"`
	CallStatus     string `json:"call_status"`
	StartTimestamp int64  `json:"start_timestamp"` // Unix milliseconds.
	DurationMs     int64  `json:"duration_ms"`
	Transcript     string `json:"transcript"`
	RecordingURL   string `json:"recording_url"`
	Sentiment      string `json:"sentiment"`
}
