package dto

import "github.com/jonaspay/jonaspay-bot/internal/core/domain"

// WebhookPayload is the wire shape of a webhook delivery. One
// delivery may batch multiple events.
type WebhookPayload struct {
	Destination string         `json:"destination"`
	Events      []WebhookEvent `json:"events"`
}

// WebhookEvent is a single event inside a delivery.
type WebhookEvent struct {
	Type       string         `json:"type"`
	ReplyToken string         `json:"replyToken"`
	Timestamp  int64          `json:"timestamp"`
	Source     EventSource    `json:"source"`
	Message    *EventMessage  `json:"message,omitempty"`
	Postback   *EventPostback `json:"postback,omitempty"`
}

// EventSource identifies the sender.
type EventSource struct {
	Type   string `json:"type"`
	UserID string `json:"userId"`
}

// EventMessage is the message payload of a message event.
type EventMessage struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// EventPostback is the payload of a button postback.
type EventPostback struct {
	Data string `json:"data"`
}

// ToDomain converts the wire event into the core event model.
func (e WebhookEvent) ToDomain() domain.InboundEvent {
	event := domain.InboundEvent{
		ReplyToken: e.ReplyToken,
		UserID:     e.Source.UserID,
	}

	switch e.Type {
	case "message":
		event.Type = domain.EventMessage
		content := &domain.MessageContent{Type: domain.MessageOther}
		if e.Message != nil {
			switch e.Message.Type {
			case "text":
				content.Type = domain.MessageText
				content.Text = e.Message.Text
			case "sticker":
				content.Type = domain.MessageSticker
			}
		}
		event.Message = content
	case "postback":
		event.Type = domain.EventPostback
		postback := &domain.PostbackContent{}
		if e.Postback != nil {
			postback.Data = e.Postback.Data
		}
		event.Postback = postback
	case "follow":
		event.Type = domain.EventFollow
	case "unfollow":
		event.Type = domain.EventUnfollow
	default:
		event.Type = domain.EventUnknown
	}

	return event
}
