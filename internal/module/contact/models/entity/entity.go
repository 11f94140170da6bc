package entity

// Webhook is the Discord-compatible body posted for a contact message.
type Webhook struct {
	Embeds []Embed `json:"embeds"`
}

type Embed struct {
	Title     string       `json:"title"`
	Color     int          `json:"color"`
	Fields    []EmbedField `json:"fields"`
	Footer    EmbedFooter  `json:"footer"`
	Timestamp string       `json:"timestamp"`
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type EmbedFooter struct {
	Text string `json:"text"`
}
