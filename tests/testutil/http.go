package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestCase drives one handler call. Zero values mean GET / with no body.
type HTTPTestCase struct {
	Name           string
	Method         string
	Path           string
	Body           any
	Headers        map[string]string
	UserID         uuid.UUID // uuid.Nil sends the request anonymously
	Params         gin.Params
	ExpectedStatus int
	ExpectedBody   map[string]any // top-level envelope keys
	Setup          func(t *testing.T, tc *TestContext)
	Validate       func(t *testing.T, tc *TestContext)
}

// RunHTTPTestCases runs each case as a subtest
func RunHTTPTestCases(t *testing.T, handler gin.HandlerFunc, cases []HTTPTestCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			RunHTTPTestCase(t, handler, tc)
		})
	}
}

// RunHTTPTestCase calls handler directly, bypassing routing and middleware
func RunHTTPTestCase(t *testing.T, handler gin.HandlerFunc, tc HTTPTestCase) {
	t.Helper()

	method, path := tc.Method, tc.Path
	if method == "" {
		method = http.MethodGet
	}
	if path == "" {
		path = "/"
	}

	var body io.Reader
	if tc.Body != nil {
		raw, err := json.Marshal(tc.Body)
		require.NoError(t, err, "Failed to marshal request body")
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if tc.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range tc.Headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	c, engine := gin.CreateTestContext(w)
	c.Request = req
	c.Params = tc.Params

	ctx := &TestContext{Context: c, Recorder: w, Engine: engine}
	if tc.UserID != uuid.Nil {
		ctx.SetUserID(tc.UserID)
	}
	if tc.Setup != nil {
		tc.Setup(t, ctx)
	}

	handler(c)

	if tc.ExpectedStatus != 0 {
		assert.Equal(t, tc.ExpectedStatus, w.Code, "Unexpected status code: %s", w.Body.String())
	}
	if tc.ExpectedBody != nil {
		got := JSONResponse(t, ctx)
		for key, want := range tc.ExpectedBody {
			assert.Equal(t, want, got[key], "Unexpected value for key: %s", key)
		}
	}
	if tc.Validate != nil {
		tc.Validate(t, ctx)
	}
}

// JSONResponse decodes the body as a generic JSON object
func JSONResponse(t *testing.T, tc *TestContext) map[string]any {
	t.Helper()

	var result map[string]any
	require.NoError(t, json.Unmarshal(tc.ResponseBody(), &result), "Failed to parse JSON response")
	return result
}

// ResponseData decodes the data member of a success envelope into T
func ResponseData[T any](t *testing.T, tc *TestContext) T {
	t.Helper()

	var envelope struct {
		Success bool `json:"success"`
		Data    T    `json:"data"`
	}
	require.NoError(t, json.Unmarshal(tc.ResponseBody(), &envelope), "Failed to parse JSON response")
	require.True(t, envelope.Success, "Expected a success envelope: %s", tc.ResponseBody())
	return envelope.Data
}

// AssertSuccessResponse checks for success=true and no error member
func AssertSuccessResponse(t *testing.T, tc *TestContext) {
	t.Helper()

	resp := JSONResponse(t, tc)
	assert.Equal(t, true, resp["success"])
	assert.Nil(t, resp["error"])
}

// AssertErrorResponse checks for success=false and the given error code
func AssertErrorResponse(t *testing.T, tc *TestContext, expectedCode string) {
	t.Helper()

	resp := JSONResponse(t, tc)
	assert.Equal(t, false, resp["success"])

	errInfo, ok := resp["error"].(map[string]any)
	require.True(t, ok, "Expected error object in response")
	assert.Equal(t, expectedCode, errInfo["code"])
}
