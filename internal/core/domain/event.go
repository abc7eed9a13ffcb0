package domain

// EventType discriminates inbound webhook events.
type EventType string

const (
	EventMessage  EventType = "message"
	EventPostback EventType = "postback"
	EventFollow   EventType = "follow"
	EventUnfollow EventType = "unfollow"
	EventUnknown  EventType = "unknown"
)

// MessageType discriminates message event payloads.
type MessageType string

const (
	MessageText    MessageType = "text"
	MessageSticker MessageType = "sticker"
	MessageOther   MessageType = "other"
)

// NullReplyToken is the sentinel reply token the platform sends on
// redeliveries and verification pings; no reply is possible for it.
const NullReplyToken = "00000000000000000000000000000000"

// MessageContent carries the payload of a message event.
type MessageContent struct {
	Type MessageType
	Text string // set for MessageText only
}

// PostbackContent carries the payload of a postback event as a flat
// key=value query string.
type PostbackContent struct {
	Data string
}

// InboundEvent is a single authenticated, parsed webhook event.
type InboundEvent struct {
	Type       EventType
	ReplyToken string
	UserID     string
	Message    *MessageContent  // non-nil iff Type == EventMessage
	Postback   *PostbackContent // non-nil iff Type == EventPostback
}

// CanReply reports whether the event carries a usable reply token.
func (e InboundEvent) CanReply() bool {
	return e.ReplyToken != "" && e.ReplyToken != NullReplyToken
}

// Profile is the subset of a platform user profile the bot consumes.
type Profile struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
}
