package constant

const (
	// RequestIDHeader is the response header carrying the per-request xid.
	RequestIDHeader = "X-Motus-Request-ID"

	ContextKeyRequestID = "requestid"

	// DefaultListLimit bounds entity list endpoints when no limit is given.
	DefaultListLimit = 10

	// MaxListLimit is the hard cap for entity list endpoints.
	MaxListLimit = 100

	// TelemetryStreamName is the JetStream stream holding telemetry events.
	TelemetryStreamName = "motus-telemetry"

	// TelemetryIngestedSubject carries one event per accepted ingest batch.
	TelemetryIngestedSubject = "TELEMETRY.INGESTED"
)
