package models

// LeadSourceChatbot is the source recorded when the caller sends none
const LeadSourceChatbot = "chatbot"

// Lead is a captured email address
type Lead struct {
	Email  string  `json:"email" bson:"email" validate:"required"`
	Source *string `json:"source" bson:"source" default:"chatbot"`
	Note   *string `json:"note" bson:"note"`
}

// NewLead returns a lead with its defaults set. Decode request bodies into
// it: a field absent from the body keeps its default, an explicit null
// clears it.
func NewLead() Lead {
	source := LeadSourceChatbot
	return Lead{Source: &source}
}
