package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Ticket listing pagination
	DefaultTicketLimit = 20
	MaxTicketLimit     = 200

	// Knowledge base search
	DefaultKBSearchLimit = 5
	MaxKBSearchLimit     = 20

	// Intake pipeline
	IntakeKBHitLimit      = 5
	IntakeQueryMaxRunes   = 800
	DefaultReplySubject   = "Support request"
	DefaultTextSearchConf = "russian"

	// HTTP Headers
	HeaderAPIKey     = "X-API-Key"
	HeaderXRequestID = "X-Request-ID"

	// Content Types
	ContentTypeCSV  = "text/csv"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// Context keys
	ContextKeyRequestID = "request_id"

	// Email headers used for threading
	MailHeaderMessageID  = "Message-ID"
	MailHeaderInReplyTo  = "In-Reply-To"
	MailHeaderReferences = "References"
)
