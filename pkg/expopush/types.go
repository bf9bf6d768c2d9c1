package expopush

import "encoding/json"

// Message is one push notification addressed to a device token.
type Message struct {
	To    string          `json:"to"`
	Sound string          `json:"sound,omitempty"`
	Title string          `json:"title"`
	Body  string          `json:"body"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Ticket is the delivery receipt returned by the push endpoint.
type Ticket struct {
	Status  string `json:"status"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

type ticketWrapper struct {
	Data Ticket `json:"data"`
}
