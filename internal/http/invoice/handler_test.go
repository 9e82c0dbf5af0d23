package invoice

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xyloai/xylo/internal/ingest"
	"github.com/xyloai/xylo/internal/risk"
)

type stubAnalyzer struct {
	result      risk.Result
	err         error
	gotText     string
	gotFilename string
}

func (s *stubAnalyzer) AnalyzeText(_ context.Context, rawText string) (risk.Result, error) {
	s.gotText = rawText
	return s.result, s.err
}

func (s *stubAnalyzer) AnalyzeDocument(_ context.Context, filename string, _ []byte) (risk.Result, error) {
	s.gotFilename = filename
	return s.result, s.err
}

func newRouter(svc Analyzer) http.Handler {
	router := chi.NewRouter()
	NewHandler(svc).Routes(router)

	return router
}

func TestAnalyze(t *testing.T) {
	t.Run("ReturnsResult", func(t *testing.T) {
		svc := &stubAnalyzer{result: risk.Result{Decision: risk.DecisionApproved, ConfidenceScore: 1.0}}

		req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"raw_text":"From: Acme Corp"}`))
		rec := httptest.NewRecorder()

		newRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "From: Acme Corp", svc.gotText)
		assert.Contains(t, rec.Body.String(), `"decision":"APPROVED"`)
	})

	t.Run("EmptyRawTextRejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"raw_text":"   "}`))
		rec := httptest.NewRecorder()

		newRouter(&stubAnalyzer{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "raw_text is required")
	})

	t.Run("MalformedJSONRejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{`))
		rec := httptest.NewRecorder()

		newRouter(&stubAnalyzer{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func multipartUpload(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer

	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)

	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &body, writer.FormDataContentType()
}

func TestAnalyzeFile(t *testing.T) {
	t.Run("ReturnsResult", func(t *testing.T) {
		svc := &stubAnalyzer{result: risk.Result{Decision: risk.DecisionNeedsReview}}

		body, contentType := multipartUpload(t, "invoice.txt", []byte("From: Acme Corp"))
		req := httptest.NewRequest(http.MethodPost, "/analyze-file", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		newRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "invoice.txt", svc.gotFilename)
		assert.Contains(t, rec.Body.String(), `"decision":"NEEDS_REVIEW"`)
	})

	t.Run("MissingFileRejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/analyze-file", strings.NewReader(""))
		rec := httptest.NewRecorder()

		newRouter(&stubAnalyzer{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "file is required")
	})

	t.Run("UnsupportedFormat", func(t *testing.T) {
		svc := &stubAnalyzer{err: ingest.ErrUnsupportedFormat}

		body, contentType := multipartUpload(t, "invoice.docx", []byte("x"))
		req := httptest.NewRequest(http.MethodPost, "/analyze-file", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		newRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})
}
