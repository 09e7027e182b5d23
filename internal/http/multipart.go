package http

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// MultipartField is one ordinary form value. Fields are written before
// any file parts, in slice order, so servers that parse the form
// incrementally see metadata before the payload.
type MultipartField struct {
	Name  string
	Value string
}

// MultipartFile is one streamed file part. Content is consumed exactly
// once while the request is in flight.
type MultipartFile struct {
	Name        string
	Filename    string
	ContentType string
	Content     io.Reader
}

// MultipartBody is an ordered multipart/form-data payload.
type MultipartBody struct {
	Fields []MultipartField
	Files  []MultipartFile
}

// streamMultipart returns a reader producing the encoded form and its
// content type. Encoding happens in a goroutine writing into a pipe, so
// memory use stays bounded by the pipe's chunk size regardless of file
// size, and transport back-pressure propagates to the source reader.
// A source read failure aborts the request through CloseWithError.
func streamMultipart(body *MultipartBody) (io.ReadCloser, string) {
	reader, pipeWriter := io.Pipe()
	writer := multipart.NewWriter(pipeWriter)

	go func() {
		err := writeParts(writer, body)
		if err != nil {
			_ = pipeWriter.CloseWithError(err)

			return
		}

		_ = pipeWriter.CloseWithError(writer.Close())
	}()

	return reader, writer.FormDataContentType()
}

func writeParts(writer *multipart.Writer, body *MultipartBody) error {
	for _, field := range body.Fields {
		err := writer.WriteField(field.Name, field.Value)
		if err != nil {
			return fmt.Errorf("writing form field %q: %w", field.Name, err)
		}
	}

	for _, file := range body.Files {
		part, err := createFilePart(writer, file)
		if err != nil {
			return fmt.Errorf("creating file part %q: %w", file.Name, err)
		}

		_, err = io.Copy(part, file.Content)
		if err != nil {
			return fmt.Errorf("streaming file part %q: %w", file.Name, err)
		}
	}

	return nil
}

func createFilePart(writer *multipart.Writer, file MultipartFile) (io.Writer, error) {
	if file.ContentType == "" {
		return writer.CreateFormFile(file.Name, file.Filename)
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		escapeQuotes(file.Name), escapeQuotes(file.Filename)))
	header.Set("Content-Type", file.ContentType)

	return writer.CreatePart(header)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
