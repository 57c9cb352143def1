package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/careercompass/careercompass/internal/client/models"
	"github.com/careercompass/careercompass/internal/common"
	"github.com/careercompass/careercompass/internal/logging"
)

const requestIDHeader = "X-Request-Id"

// HTTPClient implements Client against the CareerCompass HTTP API: the user
// service (login/signup/update-profile) and the career service (upload-cv).
type HTTPClient struct {
	userBaseURL   string
	careerBaseURL string
	timeout       time.Duration
	uploadTimeout time.Duration
	http          *http.Client
	log           logging.Logger
}

// NewHTTPClient builds an HTTPClient for the two service base URLs.
// timeout bounds the JSON operations; uploadTimeout bounds the multipart
// upload, which moves more data and gets a longer allowance.
func NewHTTPClient(userBaseURL, careerBaseURL string, timeout, uploadTimeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		userBaseURL:   userBaseURL,
		careerBaseURL: careerBaseURL,
		timeout:       timeout,
		uploadTimeout: uploadTimeout,
		http:          &http.Client{},
		log:           log,
	}
}

// serverUser mirrors the user service's response naming.
type serverUser struct {
	ID               string `json:"_id"`
	Username         string `json:"username"`
	DisplayName      string `json:"display_name"`
	BirthDate        string `json:"birth_date"`
	ConsentData      bool   `json:"consent_data"`
	MarketingConsent bool   `json:"marketing_consent_data"`
}

// serverPatch mirrors the update-profile response; the server may omit
// fields it did not change.
type serverPatch struct {
	DisplayName      *string `json:"display_name"`
	BirthDate        *string `json:"birth_date"`
	ConsentData      *bool   `json:"consent_data"`
	MarketingConsent *bool   `json:"marketing_consent_data"`
}

// serverMessage is the error body shape: {"message": "..."}.
type serverMessage struct {
	Message string `json:"message"`
}

func (u *serverUser) toUser() *models.User {
	return &models.User{
		ID:               u.ID,
		Email:            u.Username,
		DisplayName:      u.DisplayName,
		BirthDate:        u.BirthDate,
		ConsentData:      u.ConsentData,
		MarketingConsent: u.MarketingConsent,
	}
}

func (p *serverPatch) toUpdate() *models.ProfileUpdate {
	return &models.ProfileUpdate{
		DisplayName:      p.DisplayName,
		BirthDate:        p.BirthDate,
		ConsentData:      p.ConsentData,
		MarketingConsent: p.MarketingConsent,
	}
}

func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: string(password)}

	var env struct {
		Data serverUser `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodPost, c.userBaseURL+"/api/login", body, &env, common.ErrAuthentication); err != nil {
		return nil, err
	}
	return env.Data.toUser(), nil
}

func (c *HTTPClient) Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error) {
	body := struct {
		Email            string `json:"email"`
		Password         string `json:"password"`
		DisplayName      string `json:"displayName"`
		BirthDate        string `json:"birthDate"`
		ConsentData      bool   `json:"consent_data"`
		MarketingConsent bool   `json:"marketing_consent_data"`
	}{
		Email:            req.Email,
		Password:         req.Password,
		DisplayName:      req.DisplayName,
		BirthDate:        req.BirthDate,
		ConsentData:      req.ConsentData,
		MarketingConsent: req.MarketingConsent,
	}

	var env struct {
		Data serverUser `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodPost, c.userBaseURL+"/api/signup", body, &env, common.ErrSignup); err != nil {
		return nil, err
	}
	return env.Data.toUser(), nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, email string, update *models.ProfileUpdate) (*models.ProfileUpdate, error) {
	body := struct {
		Email string `json:"email"`
		models.ProfileUpdate
	}{Email: email, ProfileUpdate: *update}

	var env struct {
		Data serverPatch `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodPut, c.userBaseURL+"/api/update-profile", body, &env, common.ErrProfileUpdate); err != nil {
		return nil, err
	}
	return env.Data.toUpdate(), nil
}

func (c *HTTPClient) UploadCV(ctx context.Context, userID string, stage Stage, filename string, file io.Reader) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("cvFile", filename)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUpload, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("%w: %v", common.ErrUpload, err)
	}
	if err := mw.WriteField("username", userID); err != nil {
		return fmt.Errorf("%w: %v", common.ErrUpload, err)
	}
	if err := mw.WriteField("stage", string(stage)); err != nil {
		return fmt.Errorf("%w: %v", common.ErrUpload, err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrUpload, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.uploadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.careerBaseURL+"/api/upload-cv", &buf)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUpload, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(requestIDHeader, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return c.transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(resp, common.ErrUpload)
	}
	return nil
}

// doJSON performs one JSON request/response cycle: marshals body, applies
// the configured timeout, sends, classifies transport failures, and decodes
// a 2xx response into out. On a non-2xx status the failure sentinel is
// wrapped with the server's message.
func (c *HTTPClient) doJSON(ctx context.Context, method, url string, body, out any, failure error) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())

	c.log.Debug(ctx, "api request", "method", method, "url", url)

	resp, err := c.http.Do(req)
	if err != nil {
		return c.transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(resp, failure)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// transportError distinguishes a deadline from a generic connectivity
// failure so the UI can say "timed out" rather than "unavailable".
func (c *HTTPClient) transportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", common.ErrTimeout, err)
	}
	var timeout interface{ Timeout() bool }
	if errors.As(err, &timeout) && timeout.Timeout() {
		return fmt.Errorf("%w: %v", common.ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
}

// statusError wraps the operation's failure sentinel with the HTTP status
// and, when present, the server's message body.
func (c *HTTPClient) statusError(resp *http.Response, failure error) error {
	var msg serverMessage
	if b, err := io.ReadAll(io.LimitReader(resp.Body, 4096)); err == nil {
		_ = json.Unmarshal(b, &msg)
	}
	if msg.Message != "" {
		return fmt.Errorf("%w: %s (%s)", failure, msg.Message, resp.Status)
	}
	return fmt.Errorf("%w: %s", failure, resp.Status)
}
