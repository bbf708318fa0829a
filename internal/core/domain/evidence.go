package domain

import (
	"errors"
	"strings"
	"time"
)

// Format identifies the file type of an uploaded evidence.
type Format string

const (
	FormatPNG Format = "png"
	FormatJPG Format = "jpg"
	FormatPDF Format = "pdf"
)

// MaxEvidencesPerSubject caps how many evidences a student can upload for
// one subject.
const MaxEvidencesPerSubject = 5

var ErrEvidenceLimit = errors.New("evidence limit for the subject reached")
var ErrInvalidFormat = errors.New("invalid file format, must be png, jpg or pdf")
var ErrNoFile = errors.New("no file uploaded")

// Valid reports whether f is one of the accepted evidence formats.
func (f Format) Valid() bool {
	switch f {
	case FormatPNG, FormatJPG, FormatPDF:
		return true
	}
	return false
}

// FormatFromMIME maps a MIME type to an evidence Format. The "image/jpeg"
// subtype is normalised to jpg.
func FormatFromMIME(mimeType string) (Format, bool) {
	idx := strings.IndexByte(mimeType, '/')
	if idx < 0 {
		return "", false
	}
	sub := strings.ToLower(mimeType[idx+1:])
	if sub == "jpeg" {
		sub = "jpg"
	}
	f := Format(sub)
	return f, f.Valid()
}

// Evidence is a file uploaded by a student as proof of work for a subject.
type Evidence struct {
	ID         string    `json:"id"`
	FileName   string    `json:"file_name"`
	Size       int64     `json:"size"`
	Format     Format    `json:"format"`
	UserID     string    `json:"userId"`
	SubjectID  string    `json:"subjectId"`
	StoredPath string    `json:"-"`
	UploadDate time.Time `json:"upload_date"`
}
