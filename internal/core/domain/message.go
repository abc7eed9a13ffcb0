package domain

import "encoding/json"

// Message is an outbound message descriptor. Implementations marshal
// to the platform's message JSON, including the "type" discriminator.
type Message interface {
	message()
}

// TextMessage is a plain text reply.
type TextMessage struct {
	Text string
}

func (TextMessage) message() {}

func (m TextMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}{Type: "text", Text: m.Text})
}

// FlexMessage is a rich bubble layout with a plain-text fallback.
type FlexMessage struct {
	AltText  string
	Contents *FlexBubble
}

func (FlexMessage) message() {}

func (m FlexMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string      `json:"type"`
		AltText  string      `json:"altText"`
		Contents *FlexBubble `json:"contents"`
	}{Type: "flex", AltText: m.AltText, Contents: m.Contents})
}

// FlexBubble is the single container kind the bot renders.
type FlexBubble struct {
	Styles *BubbleStyles `json:"styles,omitempty"`
	Body   *FlexBox      `json:"body,omitempty"`
	Footer *FlexBox      `json:"footer,omitempty"`
}

func (b FlexBubble) MarshalJSON() ([]byte, error) {
	type alias FlexBubble
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: "bubble", alias: alias(b)})
}

// BubbleStyles carries per-block style overrides.
type BubbleStyles struct {
	Body *BlockStyle `json:"body,omitempty"`
}

// BlockStyle styles one bubble block.
type BlockStyle struct {
	BackgroundColor string `json:"backgroundColor,omitempty"`
}

// FlexComponent is any component nested inside a FlexBox.
type FlexComponent interface {
	flexComponent()
}

// FlexBox lays out child components vertically or along a baseline.
type FlexBox struct {
	Layout   string          `json:"layout"`
	Margin   string          `json:"margin,omitempty"`
	Contents []FlexComponent `json:"contents"`
}

func (FlexBox) flexComponent() {}

func (b FlexBox) MarshalJSON() ([]byte, error) {
	type alias FlexBox
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: "box", alias: alias(b)})
}

// FlexText renders a text line.
type FlexText struct {
	Text   string `json:"text"`
	Weight string `json:"weight,omitempty"`
	Color  string `json:"color,omitempty"`
	Size   string `json:"size,omitempty"`
	Align  string `json:"align,omitempty"`
	Margin string `json:"margin,omitempty"`
	Flex   int    `json:"flex,omitempty"`
	Wrap   bool   `json:"wrap,omitempty"`
}

func (FlexText) flexComponent() {}

func (t FlexText) MarshalJSON() ([]byte, error) {
	type alias FlexText
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: "text", alias: alias(t)})
}

// FlexSeparator renders a horizontal rule.
type FlexSeparator struct {
	Margin string `json:"margin,omitempty"`
}

func (FlexSeparator) flexComponent() {}

func (s FlexSeparator) MarshalJSON() ([]byte, error) {
	type alias FlexSeparator
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: "separator", alias: alias(s)})
}

// FlexButton renders an action button.
type FlexButton struct {
	Style  string         `json:"style,omitempty"`
	Action PostbackAction `json:"action"`
}

func (FlexButton) flexComponent() {}

func (b FlexButton) MarshalJSON() ([]byte, error) {
	type alias FlexButton
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: "button", alias: alias(b)})
}

// PostbackAction is the button action carrying an encoded key=value payload.
type PostbackAction struct {
	Label string `json:"label"`
	Data  string `json:"data"`
}

func (a PostbackAction) MarshalJSON() ([]byte, error) {
	type alias PostbackAction
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{Type: "postback", alias: alias(a)})
}
