package domain

import "time"

// MessageTemplate is a generated ghostwriter message addressed to one employee.
type MessageTemplate struct {
	ID          string      `json:"id"`
	Type        MessageType `json:"type"`
	Tone        MessageTone `json:"tone"`
	RecipientID string      `json:"recipientId"`
	Subject     string      `json:"subject"`
	Body        string      `json:"body"`
	GeneratedAt time.Time   `json:"generatedAt"`
	AIRationale string      `json:"aiRationale"`
}

// MessageContext carries the optional details a message refers to.
type MessageContext struct {
	GapName          string
	CourseName       string
	Progress         *float64
	ReviewDate       string
	IncompleteTracks []string
}
