package api

import (
	"context"
	"io"

	"github.com/careercompass/careercompass/internal/client/models"
)

// Stage labels which CV a user is uploading.
type Stage string

const (
	StageCurrent Stage = "current"
	StageFuture  Stage = "future"
)

// Client is the remote-API surface consumed by the session provider. It is
// a pure request/response translator: implementations hold no session state
// and never touch the session store.
//
// Contract:
//   - Login: authenticate and return the canonical user record.
//   - Signup: create an account and return the canonical user record.
//   - UpdateProfile: send only the changed fields plus the immutable email
//     as the lookup key; returns the server-confirmed patch.
//   - UploadCV: multipart upload of a CV document for the given user.
//
// All methods honor context cancellation and apply a bounded timeout.
type Client interface {
	Login(ctx context.Context, email string, password []byte) (*models.User, error)
	Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error)
	UpdateProfile(ctx context.Context, email string, update *models.ProfileUpdate) (*models.ProfileUpdate, error)
	UploadCV(ctx context.Context, userID string, stage Stage, filename string, file io.Reader) error
}
