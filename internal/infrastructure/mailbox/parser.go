// Package mailbox pulls customer email from an IMAP folder and turns each
// message into an intake command.
package mailbox

import (
	"fmt"
	"io"
	"mime"
	"strings"

	_ "github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"

	"github.com/helpdesk-ai/helpdesk/internal/shared/constants"
)

const maxAttachmentBytes = 25 << 20

type ParsedAttachment struct {
	Filename string
	MimeType string
	Data     []byte
}

// ParsedEmail is an inbound message reduced to what intake needs.
type ParsedEmail struct {
	Subject     string
	FromEmail   string
	ToEmail     string
	MessageID   string
	Headers     map[string]any
	Text        string
	Attachments []ParsedAttachment
}

// Parse reads an RFC 5322 message. The body is the first text/plain part,
// or the first text/html part converted to text; either way it is cleaned
// of quoted history and signatures.
func Parse(r io.Reader) (*ParsedEmail, error) {
	mr, err := mail.CreateReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read message: %w", err)
	}
	defer mr.Close()

	h := mr.Header
	out := &ParsedEmail{
		Headers: collectHeaders(h),
	}

	if out.Subject, err = h.Subject(); err != nil {
		out.Subject = h.Get("Subject")
	}
	out.FromEmail = firstAddress(h, "From")
	out.ToEmail = firstAddress(h, "To")
	if id := strings.TrimSpace(h.Get(constants.MailHeaderMessageID)); id != "" {
		out.MessageID = id
	}

	var plain, htmlBody string
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read message part: %w", err)
		}

		switch ph := p.Header.(type) {
		case *mail.InlineHeader:
			ct, _, _ := ph.ContentType()
			if ct == "" {
				ct = "text/plain"
			}
			switch {
			case ct == "text/plain" && plain == "":
				b, err := io.ReadAll(p.Body)
				if err != nil {
					return nil, fmt.Errorf("failed to read text part: %w", err)
				}
				plain = string(b)
			case ct == "text/html" && htmlBody == "":
				b, err := io.ReadAll(p.Body)
				if err != nil {
					return nil, fmt.Errorf("failed to read html part: %w", err)
				}
				htmlBody = string(b)
			}
		case *mail.AttachmentHeader:
			att, err := readAttachment(ph, p.Body)
			if err != nil {
				return nil, err
			}
			out.Attachments = append(out.Attachments, att)
		}
	}

	if plain == "" && htmlBody != "" {
		plain = HTMLToText(htmlBody)
	}
	out.Text = CleanText(plain)
	return out, nil
}

func readAttachment(h *mail.AttachmentHeader, body io.Reader) (ParsedAttachment, error) {
	filename, err := h.Filename()
	if err != nil || filename == "" {
		filename = "attachment"
	}
	ct, _, _ := h.ContentType()
	if ct == "" {
		ct = "application/octet-stream"
	}

	data, err := io.ReadAll(io.LimitReader(body, maxAttachmentBytes+1))
	if err != nil {
		return ParsedAttachment{}, fmt.Errorf("failed to read attachment %q: %w", filename, err)
	}
	if len(data) > maxAttachmentBytes {
		return ParsedAttachment{}, fmt.Errorf("attachment %q exceeds %d bytes", filename, maxAttachmentBytes)
	}
	return ParsedAttachment{Filename: filename, MimeType: ct, Data: data}, nil
}

func firstAddress(h mail.Header, key string) string {
	addrs, err := h.AddressList(key)
	if err == nil && len(addrs) > 0 {
		return addrs[0].Address
	}
	return strings.TrimSpace(h.Get(key))
}

// collectHeaders decodes every header field. Repeated fields keep the first value.
func collectHeaders(h mail.Header) map[string]any {
	headers := make(map[string]any)
	dec := new(mime.WordDecoder)

	fields := h.Fields()
	for fields.Next() {
		key := fields.Key()
		if _, seen := headers[key]; seen {
			continue
		}
		value, err := fields.Text()
		if err != nil {
			if decoded, derr := dec.DecodeHeader(fields.Value()); derr == nil {
				value = decoded
			} else {
				value = fields.Value()
			}
		}
		headers[key] = value
	}
	return headers
}
