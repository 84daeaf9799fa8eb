package domain

import "time"

const (
	// StreamReportEvents is the Redis stream that report lifecycle
	// events are published to by the API process.
	StreamReportEvents = "stream:reports:events"

	// ChannelReportUpdates is the pub/sub channel the relay worker
	// re-publishes events on for socket gateways.
	ChannelReportUpdates = "reports:updates"
)

// Report event names mirrored to connected clients.
const (
	EventNewReport    = "new_report"
	EventUpdateReport = "update_report"
)

// ReportEvent is the payload broadcast whenever a report is created or
// its trust score/status changes.
type ReportEvent struct {
	Event      string        `json:"event"`
	Report     *HazardReport `json:"report"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// StreamMessage is a raw message read from a Redis stream.
type StreamMessage struct {
	ID   string
	Data string
}
