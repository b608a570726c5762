package bot

// ChatState represents a chat's current interaction state
type ChatState string

const (
	StateIdle               ChatState = "idle"
	StateWaitingEnglishWord ChatState = "waiting_english_word"
	StateWaitingForeignWord ChatState = "waiting_foreign_word"
)

// StateData holds temporary data for a chat's current state
type StateData struct {
	State       ChatState
	EnglishWord string
}
