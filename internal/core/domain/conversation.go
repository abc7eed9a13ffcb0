package domain

// ConversationState marks a pending multi-step operation for a user.
// It is ephemeral: any subsequent inbound text cancels it. No code
// path currently produces one; the tracker exists so future
// multi-step flows keep the cancel-on-next-input contract.
type ConversationState struct {
	Operation string
	Data      map[string]string
}
