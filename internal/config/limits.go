package config

const (
	// ContextWindowTurns is the maximum number of persisted turns sent to
	// the completion provider per request. Older history is dropped from
	// the prompt (not from storage) to respect the provider's input-size
	// and cost constraints.
	ContextWindowTurns = 20

	// MaxChatTitleLength caps generated chat titles in runes. The column
	// is TEXT, so this is a display bound, not a storage one.
	MaxChatTitleLength = 255

	// TitleFallbackLength is how much of the seed message becomes the title
	// when generation fails.
	TitleFallbackLength = 50

	// ListChatsLimit caps the today/yesterday/seven-days listings.
	ListChatsLimit = 10

	// MinPasswordLength is the minimum accepted password length at
	// registration.
	MinPasswordLength = 8

	// MaxContentLength bounds a single submitted message. Generous, but
	// keeps a runaway client from storing megabytes per turn.
	MaxContentLength = 32768
)
