package infrastructure

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"bizdash/internal/modules/dashboard/domain"
)

// requestBody encodes an outgoing payload and reports its content type.
type requestBody interface {
	encode() (io.Reader, string, error)
}

type jsonBody struct {
	value any
}

func (b jsonBody) encode() (io.Reader, string, error) {
	data, err := json.Marshal(b.value)
	if err != nil {
		return nil, "", fmt.Errorf("marshal request: %w", err)
	}
	return bytes.NewReader(data), "application/json", nil
}

// multipartBody carries text fields plus an optional file part.
type multipartBody struct {
	fields    [][2]string
	fileField string
	file      *domain.Upload
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func (b multipartBody) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, field := range b.fields {
		if err := writer.WriteField(field[0], field[1]); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", field[0], err)
		}
	}

	if b.file != nil && len(b.file.Data) > 0 {
		detected := mimetype.Detect(b.file.Data)
		filename := strings.TrimSpace(b.file.Filename)
		if filename == "" {
			filename = b.fileField + detected.Extension()
		}
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(b.fileField), quoteEscaper.Replace(filename)))
		header.Set("Content-Type", detected.String())
		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("create %s part: %w", b.fileField, err)
		}
		if _, err := part.Write(b.file.Data); err != nil {
			return nil, "", fmt.Errorf("write %s part: %w", b.fileField, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return &buf, writer.FormDataContentType(), nil
}
