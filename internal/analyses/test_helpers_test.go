package analyses

import (
	"archive/zip"
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"skillgap-backend/internal/skills"
)

const docxMime = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// resumeParagraphs is a minimal but realistic resume body. It carries enough
// indicator words to pass the resume gate and enough skills to score.
var resumeParagraphs = []string{
	"Jane Doe",
	"Summary",
	"Data scientist with 4 years of experience in machine learning.",
	"Skills",
	"Python, SQL, Machine Learning, Statistics, Pandas",
	"Experience",
	"Built machine learning models in Python for churn prediction.",
	"Education",
	"Bachelor of Science in Computer Science",
}

func buildResumeDocx(t *testing.T, paragraphs []string) []byte {
	t.Helper()
	var body strings.Builder
	body.WriteString(`<?xml version="1.0"?><w:document xmlns:w="ns"><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>`)
		body.WriteString(p)
		body.WriteString(`</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(body.String())); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func newTestService(repo Repo) *Service {
	return NewService(repo, skills.Default())
}

func setupSessionRouter(t *testing.T) (*gin.Engine, *MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := NewMemoryRepo()
	handler := NewHandler(NewService(repo, skills.Default()))

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router, repo
}

// uploadRequest builds a multipart upload. Empty fileName skips the file
// part entirely so the missing-file path can be exercised.
func uploadRequest(t *testing.T, jobRole, fileName, contentType string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if jobRole != "" {
		if err := mw.WriteField("jobRole", jobRole); err != nil {
			t.Fatalf("write jobRole field: %v", err)
		}
	}
	if fileName != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="resume"; filename="`+fileName+`"`)
		header.Set("Content-Type", contentType)
		part, err := mw.CreatePart(header)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := part.Write(data); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func doRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}
