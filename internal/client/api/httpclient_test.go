package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercompass/careercompass/internal/client/models"
	"github.com/careercompass/careercompass/internal/common"
	"github.com/careercompass/careercompass/internal/logging"
)

func newClient(userURL, careerURL string) *HTTPClient {
	return NewHTTPClient(userURL, careerURL, 2*time.Second, 2*time.Second, logging.NewNopLogger())
}

const userEnvelope = `{"data":{"_id":"u1","username":"a@b.com","display_name":"A",
"birth_date":"1990-01-01","consent_data":true,"marketing_consent_data":false}}`

func TestLogin_MapsServerFieldsToCanonicalUser(t *testing.T) {
	var gotBody map[string]any
	var gotReqID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/login", r.URL.Path)
		gotReqID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		io.WriteString(w, userEnvelope)
	}))
	defer srv.Close()

	c := newClient(srv.URL, srv.URL)
	user, err := c.Login(context.Background(), "a@b.com", []byte("secret"))
	require.NoError(t, err)

	assert.Equal(t, &models.User{
		ID:          "u1",
		Email:       "a@b.com",
		DisplayName: "A",
		BirthDate:   "1990-01-01",
		ConsentData: true,
	}, user)
	assert.Equal(t, "a@b.com", gotBody["email"])
	assert.Equal(t, "secret", gotBody["password"])
	assert.NotEmpty(t, gotReqID)
}

func TestLogin_NonSuccessStatus_AuthenticationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"message":"Invalid credentials"}`)
	}))
	defer srv.Close()

	c := newClient(srv.URL, srv.URL)
	_, err := c.Login(context.Background(), "a@b.com", []byte("wrong"))
	require.ErrorIs(t, err, common.ErrAuthentication)
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func TestSignup_Conflict_SignupError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/signup", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"message":"User already exists"}`)
	}))
	defer srv.Close()

	c := newClient(srv.URL, srv.URL)
	_, err := c.Signup(context.Background(), &models.SignupRequest{Email: "a@b.com", Password: "p"})
	require.ErrorIs(t, err, common.ErrSignup)
	assert.Contains(t, err.Error(), "User already exists")
}

func TestUpdateProfile_SendsOnlyChangedFieldsPlusEmail(t *testing.T) {
	var raw map[string]json.RawMessage

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/update-profile", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		io.WriteString(w, `{"data":{"display_name":"X"}}`)
	}))
	defer srv.Close()

	name := "X"
	c := newClient(srv.URL, srv.URL)
	patch, err := c.UpdateProfile(context.Background(), "a@b.com", &models.ProfileUpdate{DisplayName: &name})
	require.NoError(t, err)

	assert.Contains(t, raw, "email")
	assert.Contains(t, raw, "displayName")
	assert.NotContains(t, raw, "birthDate")
	assert.NotContains(t, raw, "password")

	require.NotNil(t, patch.DisplayName)
	assert.Equal(t, "X", *patch.DisplayName)
	assert.Nil(t, patch.BirthDate)
}

func TestDoJSON_Timeout_ClassifiedAsTimeoutError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, srv.URL, 30*time.Millisecond, 30*time.Millisecond, logging.NewNopLogger())
	_, err := c.Login(context.Background(), "a@b.com", []byte("p"))
	require.ErrorIs(t, err, common.ErrTimeout)
	assert.False(t, errors.Is(err, common.ErrUnavailable))
}

func TestDoJSON_ConnectionRefused_ClassifiedAsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := newClient(srv.URL, srv.URL)
	_, err := c.Login(context.Background(), "a@b.com", []byte("p"))
	require.ErrorIs(t, err, common.ErrUnavailable)
}

func TestUploadCV_SendsMultipartForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/upload-cv", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "u1", r.FormValue("username"))
		assert.Equal(t, "current", r.FormValue("stage"))

		f, hdr, err := r.FormFile("cvFile")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "cv.pdf", hdr.Filename)
		data, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "pdf-bytes", string(data))

		io.WriteString(w, `{"message":"ok"}`)
	}))
	defer srv.Close()

	c := newClient("http://unused.invalid", srv.URL)
	err := c.UploadCV(context.Background(), "u1", StageCurrent, "cv.pdf", strings.NewReader("pdf-bytes"))
	require.NoError(t, err)
}

func TestUploadCV_ServerRejection_UploadError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"message":"No file provided"}`)
	}))
	defer srv.Close()

	c := newClient("http://unused.invalid", srv.URL)
	err := c.UploadCV(context.Background(), "u1", StageFuture, "cv.pdf", strings.NewReader("x"))
	require.ErrorIs(t, err, common.ErrUpload)
	assert.Contains(t, err.Error(), "No file provided")
}
