package mailbox

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/helpdesk-ai/helpdesk/internal/application/ticket/dto"
)

var unsafeFilenameChars = regexp.MustCompile(`[^\p{L}\p{N}._-]+`)

// maxStoredNameBytes caps the sanitized name; the tail is kept so the
// extension survives.
const maxStoredNameBytes = 128

// AttachmentStore writes attachment bodies under one root directory, one
// subdirectory per day.
type AttachmentStore struct {
	root string
}

func NewAttachmentStore(root string) *AttachmentStore {
	return &AttachmentStore{root: root}
}

func (s *AttachmentStore) Save(att ParsedAttachment) (dto.AttachmentInput, error) {
	dir := filepath.Join(s.root, time.Now().UTC().Format("2006-01-02"))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return dto.AttachmentInput{}, fmt.Errorf("failed to create attachments directory: %w", err)
	}

	path := filepath.Join(dir, uuid.NewString()+"_"+safeFilename(att.Filename))
	if err := os.WriteFile(path, att.Data, 0o640); err != nil {
		return dto.AttachmentInput{}, fmt.Errorf("failed to write attachment: %w", err)
	}

	return dto.AttachmentInput{
		Filename:    att.Filename,
		MimeType:    att.MimeType,
		SizeBytes:   int64(len(att.Data)),
		StoragePath: path,
	}, nil
}

// Remove deletes files written for a message whose intake failed.
func (s *AttachmentStore) Remove(inputs []dto.AttachmentInput) {
	for _, in := range inputs {
		_ = os.Remove(in.StoragePath)
	}
}

func safeFilename(name string) string {
	name = unsafeFilenameChars.ReplaceAllString(filepath.Base(name), "_")
	if name == "" || name == "." || name == ".." {
		return "attachment"
	}
	if len(name) > maxStoredNameBytes {
		cut := len(name) - maxStoredNameBytes
		for cut < len(name) && !utf8.RuneStart(name[cut]) {
			cut++
		}
		name = name[cut:]
	}
	return name
}
