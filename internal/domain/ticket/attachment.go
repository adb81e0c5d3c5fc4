package ticket

import "fmt"

// Attachment is a file that arrived with a message and was written to local storage.
type Attachment struct {
	id          int64
	messageID   int64
	filename    string
	mimeType    string
	sizeBytes   int64
	storagePath string
}

func NewAttachment(messageID int64, filename, mimeType string, sizeBytes int64, storagePath string) (*Attachment, error) {
	if messageID == 0 {
		return nil, fmt.Errorf("message ID is required")
	}
	if sizeBytes < 0 {
		return nil, fmt.Errorf("size cannot be negative")
	}

	return &Attachment{
		messageID:   messageID,
		filename:    filename,
		mimeType:    mimeType,
		sizeBytes:   sizeBytes,
		storagePath: storagePath,
	}, nil
}

func ReconstructAttachment(id, messageID int64, filename, mimeType string, sizeBytes int64, storagePath string) *Attachment {
	return &Attachment{
		id:          id,
		messageID:   messageID,
		filename:    filename,
		mimeType:    mimeType,
		sizeBytes:   sizeBytes,
		storagePath: storagePath,
	}
}

func (a *Attachment) ID() int64           { return a.id }
func (a *Attachment) MessageID() int64    { return a.messageID }
func (a *Attachment) Filename() string    { return a.filename }
func (a *Attachment) MimeType() string    { return a.mimeType }
func (a *Attachment) SizeBytes() int64    { return a.sizeBytes }
func (a *Attachment) StoragePath() string { return a.storagePath }

func (a *Attachment) SetID(id int64) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	a.id = id
	return nil
}
