package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/paperstack-io/paperless-client/internal/http"
	"github.com/paperstack-io/paperless-client/pkg/paperless"
)

func newTestDocumentsClient(serverURL string) *DocumentsClient {
	return NewDocumentsClient(internalhttp.NewClient(serverURL, nil))
}

func documentPage(count int, next *string, documents ...paperless.Document) paperless.Page[paperless.Document] {
	return paperless.Page[paperless.Document]{
		Count:   count,
		Next:    next,
		Results: documents,
	}
}

func TestDocumentsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/documents/", request.URL.Path)
		assert.Equal(t, "invoice", request.URL.Query().Get("search"))

		page := documentPage(1, nil, paperless.Document{ID: 1, Title: "Invoice"})
		_ = json.NewEncoder(writer).Encode(page)
	}))
	defer server.Close()

	documents := newTestDocumentsClient(server.URL)

	page, err := documents.List(context.Background(), paperless.NewQueryParams().WithSearch("invoice"))
	require.NoError(t, err)
	assert.Equal(t, 1, page.Count)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Invoice", page.Results[0].Title)
}

func TestDocumentsClient_Iter(t *testing.T) {
	t.Parallel()

	var server *httptest.Server

	server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Query().Get("page") {
		case "2":
			page := documentPage(3, nil, paperless.Document{ID: 3, Title: "c"})
			_ = json.NewEncoder(writer).Encode(page)
		default:
			next := server.URL + "/api/documents/?page=2"
			page := documentPage(3, &next,
				paperless.Document{ID: 1, Title: "a"},
				paperless.Document{ID: 2, Title: "b"})
			_ = json.NewEncoder(writer).Encode(page)
		}
	}))
	defer server.Close()

	documents := newTestDocumentsClient(server.URL)

	all, err := documents.Iter(context.Background(), nil).All()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{all[0].ID, all[1].ID, all[2].ID})
}

func TestDocumentsClient_Get(t *testing.T) {
	t.Parallel()
	t.Run("found", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/documents/42/", request.URL.Path)
			_ = json.NewEncoder(writer).Encode(paperless.Document{ID: 42, Title: "Contract"})
		}))
		defer server.Close()

		documents := newTestDocumentsClient(server.URL)

		document, err := documents.Get(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, 42, document.ID)
		assert.Equal(t, "Contract", document.Title)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"detail":"Not found."}`))
		}))
		defer server.Close()

		documents := newTestDocumentsClient(server.URL)

		_, err := documents.Get(context.Background(), 42)
		require.Error(t, err)
		assert.True(t, paperless.IsNotFound(err))
	})
}

func TestDocumentsClient_Update(t *testing.T) {
	t.Parallel()

	title := "Renamed"

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/documents/42/", request.URL.Path)
		assert.Equal(t, "PATCH", request.Method)

		var body map[string]interface{}

		err := json.NewDecoder(request.Body).Decode(&body)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", body["title"])
		// PATCH semantics: unset fields are absent, not null.
		assert.NotContains(t, body, "correspondent")

		_ = json.NewEncoder(writer).Encode(paperless.Document{ID: 42, Title: title})
	}))
	defer server.Close()

	documents := newTestDocumentsClient(server.URL)

	document, err := documents.Update(context.Background(), 42, &paperless.DocumentUpdateRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", document.Title)
}

func TestDocumentsClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/documents/42/", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	documents := newTestDocumentsClient(server.URL)

	err := documents.Delete(context.Background(), 42)
	require.NoError(t, err)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestDocumentsClient_Upload(t *testing.T) {
	t.Parallel()
	t.Run("streams file with metadata fields", func(t *testing.T) {
		t.Parallel()

		taskID := uuid.New()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/documents/post_document/", request.URL.Path)
			assert.Equal(t, "POST", request.Method)

			err := request.ParseMultipartForm(1 << 20)
			require.NoError(t, err)

			assert.Equal(t, "Invoice March", request.FormValue("title"))
			assert.Equal(t, "2024-03-01", request.FormValue("created"))
			assert.Equal(t, "7", request.FormValue("correspondent"))
			assert.Equal(t, []string{"1", "2"}, request.MultipartForm.Value["tags"])

			file, header, err := request.FormFile("document")
			require.NoError(t, err)

			defer func() {
				_ = file.Close()
			}()

			assert.Equal(t, "invoice.pdf", header.Filename)

			_ = json.NewEncoder(writer).Encode(taskID.String())
		}))
		defer server.Close()

		documents := newTestDocumentsClient(server.URL)

		created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		correspondent := 7

		got, err := documents.Upload(context.Background(), &paperless.DocumentUpload{
			Filename:      "invoice.pdf",
			ContentType:   "application/pdf",
			Content:       strings.NewReader("%PDF-1.7 fake"),
			Title:         "Invoice March",
			Created:       &created,
			Correspondent: &correspondent,
			Tags:          []int{1, 2},
		})
		require.NoError(t, err)
		assert.Equal(t, taskID, got)
	})

	t.Run("missing filename rejected before sending", func(t *testing.T) {
		t.Parallel()

		documents := newTestDocumentsClient("http://unreachable.invalid")

		_, err := documents.Upload(context.Background(), &paperless.DocumentUpload{
			Content: strings.NewReader("x"),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validating upload")
	})

	t.Run("non-uuid response is a decode error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode("not-a-uuid")
		}))
		defer server.Close()

		documents := newTestDocumentsClient(server.URL)

		_, err := documents.Upload(context.Background(), &paperless.DocumentUpload{
			Filename: "a.pdf",
			Content:  strings.NewReader("x"),
		})
		require.Error(t, err)

		apiErr := &paperless.Error{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, paperless.ErrorCodeDecode, apiErr.Code)
	})
}

func TestDocumentsClient_Download(t *testing.T) {
	t.Parallel()

	content := []byte("%PDF-1.7 stored bytes")

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/documents/42/download/", request.URL.Path)
		writer.Header().Set("Content-Type", "application/pdf")
		_, _ = writer.Write(content)
	}))
	defer server.Close()

	documents := newTestDocumentsClient(server.URL)

	got, err := documents.Download(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestDocumentsClient_Metadata(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/documents/42/metadata/", request.URL.Path)
		_ = json.NewEncoder(writer).Encode(paperless.DocumentMetadata{
			OriginalChecksum: "abc123",
			OriginalSize:     2048,
			OriginalMimeType: "application/pdf",
		})
	}))
	defer server.Close()

	documents := newTestDocumentsClient(server.URL)

	metadata, err := documents.Metadata(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "abc123", metadata.OriginalChecksum)
	assert.Equal(t, int64(2048), metadata.OriginalSize)
}

func TestDocumentsClient_List_MalformedItemFailsPage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		// The second document has a non-numeric id.
		_, _ = writer.Write([]byte(`{
			"count": 2,
			"next": null,
			"results": [
				{"id": 1, "title": "ok"},
				{"id": "broken", "title": "bad"}
			]
		}`))
	}))
	defer server.Close()

	documents := newTestDocumentsClient(server.URL)

	_, err := documents.List(context.Background(), nil)
	require.Error(t, err)

	apiErr := &paperless.Error{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, paperless.ErrorCodeDecode, apiErr.Code)
}
