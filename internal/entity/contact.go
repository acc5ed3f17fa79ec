package entity

// ContactMessage is a contact form submission. It is transient: it exists
// only to compose the notification email and is never persisted.
type ContactMessage struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// ChatMessage is a single entry of the chatbot conversation history as the
// client keeps it. Sender is either "user" or "bot".
type ChatMessage struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}
