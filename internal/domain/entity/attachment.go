package entity

import (
	"errors"
	"time"
)

// Attachment is a file stored in object storage and linked to a card.
// ObjectKey is the storage key; it never leaves the server.
type Attachment struct {
	ID          string    `bson:"_id" json:"id"`
	CardID      string    `bson:"card_id" json:"card_id"`
	FileName    string    `bson:"file_name" json:"file_name"`
	ContentType string    `bson:"content_type" json:"content_type"`
	Size        int64     `bson:"size" json:"size"`
	ObjectKey   string    `bson:"object_key" json:"-"`
	UploadedBy  string    `bson:"uploaded_by" json:"uploaded_by"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// NewAttachment creates an attachment record for an uploaded object.
func NewAttachment(id, cardID, fileName, contentType, objectKey, uploadedBy string, size int64) (*Attachment, error) {
	if cardID == "" {
		return nil, errors.New("attachment card id is required")
	}
	if fileName == "" || objectKey == "" {
		return nil, errors.New("attachment file name and object key are required")
	}

	return &Attachment{
		ID:          id,
		CardID:      cardID,
		FileName:    fileName,
		ContentType: contentType,
		Size:        size,
		ObjectKey:   objectKey,
		UploadedBy:  uploadedBy,
		CreatedAt:   time.Now(),
	}, nil
}
