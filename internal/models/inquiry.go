package models

// InquiryStatusNew is the status of an inquiry nobody has looked at yet
const InquiryStatusNew = "new"

// Inquiry is a project request sent from the contact form.
// ID is optional and set by the caller; the store assigns its own identifier.
type Inquiry struct {
	ID          *string `json:"id" bson:"id"`
	Name        string  `json:"name" bson:"name" validate:"required"`
	Email       string  `json:"email" bson:"email" validate:"required"`
	ProjectType *string `json:"projectType" bson:"projectType"`
	Budget      *string `json:"budget" bson:"budget"`
	Message     *string `json:"message" bson:"message"`
	Date        *string `json:"date" bson:"date"`
	Status      *string `json:"status" bson:"status" default:"new"`
}

// NewInquiry returns an inquiry with its defaults set. A field absent from
// a decoded body keeps its default, an explicit null clears it.
func NewInquiry() Inquiry {
	status := InquiryStatusNew
	return Inquiry{Status: &status}
}
