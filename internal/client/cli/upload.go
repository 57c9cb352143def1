package cli

import (
	"context"
	"fmt"

	"github.com/careercompass/careercompass/internal/client/api"
)

// UploadCV uploads a CV document for the logged-in user:
//
//	uploadcv current ./cv.pdf
//	uploadcv future  ./dream-cv.docx
//
// The file is validated locally (PDF or Word, at most 5 MB) before any
// network traffic.
func (a *App) UploadCV(ctx context.Context, args []string) error {
	if len(args) != 2 {
		printlnFn("Usage: uploadcv <current|future> <file>")
		return nil
	}

	var stage api.Stage
	switch args[0] {
	case string(api.StageCurrent):
		stage = api.StageCurrent
	case string(api.StageFuture):
		stage = api.StageFuture
	default:
		printlnFn("Stage must be 'current' or 'future'.")
		return nil
	}

	if err := a.provider.UploadCV(ctx, stage, args[1]); err != nil {
		printlnFn(userMessage(err))
		return err
	}

	printlnFn(fmt.Sprintf("Your %s CV was uploaded successfully!", stage))
	return nil
}
