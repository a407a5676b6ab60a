package transport

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"

	"auction-client/internal/models"
)

type formPart struct {
	name  string
	value string
	file  *models.File
}

// Form is a multipart/form-data body. Parts are written in the order they
// were added.
type Form struct {
	parts []formPart
}

// NewForm returns an empty form
func NewForm() *Form {
	return &Form{}
}

// Field appends a text field
func (f *Form) Field(name, value string) *Form {
	f.parts = append(f.parts, formPart{name: name, value: value})
	return f
}

// File appends a file part named name
func (f *Form) File(name string, file models.File) *Form {
	f.parts = append(f.parts, formPart{name: name, file: &file})
	return f
}

// Len returns the number of parts
func (f *Form) Len() int {
	if f == nil {
		return 0
	}
	return len(f.parts)
}

// Encode writes the form and returns it with its content type, boundary included.
func (f *Form) Encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if f != nil {
		for _, p := range f.parts {
			if p.file == nil {
				if err := w.WriteField(p.name, p.value); err != nil {
					return nil, "", fmt.Errorf("form field %s: %w", p.name, err)
				}
				continue
			}
			if p.file.Content == nil {
				return nil, "", fmt.Errorf("form file %s: no content", p.name)
			}
			part, err := w.CreateFormFile(p.name, p.file.Name)
			if err != nil {
				return nil, "", fmt.Errorf("form file %s: %w", p.name, err)
			}
			if _, err := io.Copy(part, p.file.Content); err != nil {
				return nil, "", fmt.Errorf("form file %s: %w", p.name, err)
			}
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
