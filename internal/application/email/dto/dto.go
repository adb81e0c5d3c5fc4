package dto

// OutboundEmail is a plain-text message handed to the mail transport.
// InReplyTo and References are set only when non-empty.
type OutboundEmail struct {
	To         string
	Subject    string
	BodyText   string
	InReplyTo  string
	References string
}

type SendEmailRequest struct {
	ToEmail    string `json:"to_email" binding:"required,max=320"`
	Subject    string `json:"subject" binding:"max=998"`
	BodyText   string `json:"body_text"`
	InReplyTo  string `json:"in_reply_to,omitempty"`
	References string `json:"references,omitempty"`
}

func (r SendEmailRequest) ToOutbound() OutboundEmail {
	return OutboundEmail{
		To:         r.ToEmail,
		Subject:    r.Subject,
		BodyText:   r.BodyText,
		InReplyTo:  r.InReplyTo,
		References: r.References,
	}
}
