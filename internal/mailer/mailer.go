package mailer

// Message is a single outbound email.
type Message struct {
	To      string `json:"to"`
	ReplyTo string `json:"reply_to,omitempty"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Mailer dispatches a single message. Implementations decide whether the
// send is synchronous (SMTP) or queued; callers only see this interface.
type Mailer interface {
	Send(msg Message) error
}
