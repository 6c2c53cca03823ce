package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite wraps a bare gin engine that handler tests mount routes on
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest initializes Gin for testing
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Router: gin.New()}
}

// MakeRequest sends body as JSON (when non-nil) and records the response
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	return suite.MakeRequestWithHeaders(method, url, body, nil)
}

// MakeRequestWithHeaders is MakeRequest with extra request headers
func (suite *HTTPTestSuite) MakeRequestWithHeaders(method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reqBody = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return suite.serve(req, headers)
}

// MultipartFile is one file part of a multipart request
type MultipartFile struct {
	Field       string
	Filename    string
	ContentType string
	Content     []byte
}

// MakeMultipartRequest builds and executes a multipart/form-data request
func (suite *HTTPTestSuite) MakeMultipartRequest(method, url string, fields map[string]string, files []MultipartFile) *httptest.ResponseRecorder {
	return suite.MakeMultipartRequestWithHeaders(method, url, fields, files, nil)
}

// MakeMultipartRequestWithHeaders builds and executes a multipart/form-data request with custom headers
func (suite *HTTPTestSuite) MakeMultipartRequestWithHeaders(method, url string, fields map[string]string, files []MultipartFile, headers map[string]string) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		_ = writer.WriteField(key, value)
	}
	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, f.Field, f.Filename))
		if f.ContentType != "" {
			header.Set("Content-Type", f.ContentType)
		}
		part, _ := writer.CreatePart(header)
		_, _ = part.Write(f.Content)
	}
	_ = writer.Close()

	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return suite.serve(req, headers)
}

func (suite *HTTPTestSuite) serve(req *http.Request, headers map[string]string) *httptest.ResponseRecorder {
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// StatusCase is one row of a table of requests that only differ in the status they should get
type StatusCase struct {
	Name   string
	Method string
	URL    string
	Body   interface{}
	// Setup registers the mock expectations the request needs, if any
	Setup  func()
	Status int
	// Error, when set, must appear in the "error" field of the body
	Error string
}

// RunStatusCases sends each case as its own subtest
func (suite *HTTPTestSuite) RunStatusCases(t *testing.T, cases []StatusCase) {
	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			if tc.Setup != nil {
				tc.Setup()
			}

			recorder := suite.MakeRequest(tc.Method, tc.URL, tc.Body)

			if tc.Error != "" {
				AssertErrorResponse(t, recorder, tc.Status, tc.Error)
				return
			}
			assert.Equal(t, tc.Status, recorder.Code)
		})
	}
}

// AssertJSONResponse asserts the response status and unmarshals JSON response
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	if target != nil {
		ParseJSONResponse(t, recorder, target)
	}
}

// AssertErrorResponse asserts an error response with specific message
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	assert.Equal(t, expectedStatus, recorder.Code)

	var body struct {
		Error string `json:"error"`
	}
	ParseJSONResponse(t, recorder, &body)

	if expectedMessage != "" {
		assert.Contains(t, body.Error, expectedMessage)
	}
}

// ParseJSONResponse parses JSON response into target struct
func ParseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
}
