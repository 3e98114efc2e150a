package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aiscout/scoutctl/internal/model"
	"github.com/aiscout/scoutctl/internal/scout"
)

// videoContentTypes maps lowercase file extensions to MIME types. An
// extension outside this table resolves to the empty string, which is
// forwarded to the API verbatim.
var videoContentTypes = map[string]string{
	"mp4":  "video/mp4",
	"mpeg": "video/mpeg",
	"mov":  "video/quicktime",
}

// VideoContentType resolves the MIME type for a video file path from its
// extension, case-insensitively.
func VideoContentType(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(strings.ToLower(path)), ".")
	return videoContentTypes[ext]
}

// DrillResult is the outcome of a drill submission. When the submission
// response carried no entry id, Partial is true, Submission holds the
// raw response, and no feedback was fetched.
type DrillResult struct {
	EntryID     int64           `json:"entryId,omitempty"`
	S3ObjectKey string          `json:"s3ObjectKey"`
	Submission  json.RawMessage `json:"submission,omitempty"`
	Feedback    json.RawMessage `json:"feedback,omitempty"`
	Partial     bool            `json:"partial"`
}

// DrillSubmitter runs the player-side drill submission pipeline: login,
// presigned upload, entry submission, and feedback fetch-back.
type DrillSubmitter struct {
	api    *scout.Client
	logger *slog.Logger

	session *model.PlayerSession
}

// NewDrillSubmitter creates a DrillSubmitter.
func NewDrillSubmitter(api *scout.Client, logger *slog.Logger) *DrillSubmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &DrillSubmitter{api: api, logger: logger}
}

// Login authenticates the player whose entries will be submitted.
func (d *DrillSubmitter) Login(ctx context.Context, email, password string) error {
	session, err := d.api.PlayerLogin(ctx, email, password)
	if err != nil {
		return fmt.Errorf("player login: %w", err)
	}
	d.session = session
	return nil
}

// Session returns the logged-in player session, or nil.
func (d *DrillSubmitter) Session() *model.PlayerSession {
	return d.session
}

// Submit uploads a local video and submits it as a drill entry for the
// logged-in player, then fetches the created entry with feedback.
//
// Two deliberate deviations from fail-fast: a submission response with
// no entry id is returned as a partial result rather than an error, and
// a session with no player id at fetch-back time yields a nil result.
func (d *DrillSubmitter) Submit(ctx context.Context, videoPath string, trialID int64, ballSize int) (*DrillResult, error) {
	if d.session == nil || d.session.AccessToken == "" {
		return nil, model.ErrNotLoggedIn
	}

	contentType := VideoContentType(videoPath)
	d.logger.Debug("resolved video content type",
		slog.String("path", videoPath),
		slog.String("content_type", contentType),
	)

	data, err := os.ReadFile(videoPath)
	if err != nil {
		return nil, fmt.Errorf("read video: %w", err)
	}

	upload, err := d.api.PresignedUploadURL(ctx, d.session.AccessToken, 0, 0, contentType)
	if err != nil {
		return nil, fmt.Errorf("presigned upload url: %w", err)
	}

	if err := d.api.UploadVideo(ctx, upload.PreSignedURL, contentType, data); err != nil {
		return nil, fmt.Errorf("upload video: %w", err)
	}

	receipt, err := d.api.SubmitDrillEntry(ctx, d.session.PlayerID, trialID, d.session.AccessToken, upload.S3ObjectKey, ballSize)
	if err != nil {
		return nil, fmt.Errorf("submit drill entry: %w", err)
	}

	if receipt.ID == 0 {
		d.logger.Warn("drill entry submission returned no entry id",
			slog.Int64("trial_id", trialID),
			slog.String("s3_object_key", upload.S3ObjectKey),
		)
		return &DrillResult{
			S3ObjectKey: upload.S3ObjectKey,
			Submission:  receipt.Body,
			Partial:     true,
		}, nil
	}

	if d.session.PlayerID == 0 {
		d.logger.Warn("player id missing from session, skipping feedback fetch",
			slog.Int64("entry_id", receipt.ID),
		)
		return nil, nil
	}

	feedback, err := d.api.GetDrillEntry(ctx, d.session.PlayerID, trialID, receipt.ID, d.session.AccessToken, true)
	if err != nil {
		return nil, fmt.Errorf("get drill entry: %w", err)
	}

	return &DrillResult{
		EntryID:     receipt.ID,
		S3ObjectKey: upload.S3ObjectKey,
		Submission:  receipt.Body,
		Feedback:    feedback,
	}, nil
}
