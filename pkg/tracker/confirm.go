package tracker

// Prompts for the destructive operations.
const (
	DeleteTaskPrompt    = "Are you sure you want to delete this task?"
	DeleteContactPrompt = "Are you sure you want to delete this contact?"
	ImportPrompt        = "This will replace your current tasks. Continue?"
)

// Confirm asks the user a yes/no question.
type Confirm func(prompt string) bool

// Confirmed runs mutation only when confirm approves the prompt; otherwise it returns
// ErrNotConfirmed and nothing changes.
func Confirmed(confirm Confirm, prompt string, mutation func() error) error {
	if confirm == nil || !confirm(prompt) {
		return ErrNotConfirmed
	}

	return mutation()
}
