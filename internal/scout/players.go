package scout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/aiscout/scoutctl/internal/model"
)

// PlayerLogin authenticates a player through the app login endpoint.
func (c *Client) PlayerLogin(ctx context.Context, email, password string) (*model.PlayerSession, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
		"fcmToken": appFCMToken,
	}
	var session model.PlayerSession
	if err := c.do(ctx, "player_login", http.MethodPost, "/api/v2/players/login", "", nil, body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// UserLogin authenticates a coach or other non-player user through the
// app login endpoint.
func (c *Client) UserLogin(ctx context.Context, email, password string) (*model.Session, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
		"fcmToken": appFCMToken,
	}
	var session model.Session
	if err := c.do(ctx, "user_login", http.MethodPost, "/api/v2/users/login", "", nil, body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// RefreshTokens requests new tokens for a user.
func (c *Client) RefreshTokens(ctx context.Context, userID int64) (*model.Session, error) {
	path := fmt.Sprintf("/api/v2/users/%d/refreshtokens", userID)
	var session model.Session
	if err := c.do(ctx, "refresh_tokens", http.MethodPost, path, "", nil, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// PresignedUploadURL requests a time-limited upload URL for one file.
// Zero values for the entity and media type select the video defaults.
func (c *Client) PresignedUploadURL(ctx context.Context, token string, fileEntityType, fileMediaType int, mimeType string) (*model.PresignedUpload, error) {
	if fileEntityType == 0 {
		fileEntityType = defaultFileEntityType
	}
	if fileMediaType == 0 {
		fileMediaType = defaultFileMediaType
	}
	query := url.Values{
		"fileEntityType": {strconv.Itoa(fileEntityType)},
		"fileMediaType":  {strconv.Itoa(fileMediaType)},
		"mimeType":       {mimeType},
	}
	var upload model.PresignedUpload
	if err := c.do(ctx, "presigned_upload_url", http.MethodGet, "/api/v2/files/uploadurl", token, query, nil, &upload); err != nil {
		return nil, err
	}
	return &upload, nil
}

// UploadVideo PUTs raw file bytes to a presigned URL. The URL is
// pre-authorized, so no bearer token is sent; the only header is the
// content type resolved from the file extension.
func (c *Client) UploadVideo(ctx context.Context, presignedURL, contentType string, data []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, presignedURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("upload_video: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record("upload_video", http.MethodPut, 0, time.Since(start))
		return fmt.Errorf("upload_video: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)
	c.record("upload_video", http.MethodPut, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Storage errors are not the platform's JSON shape; report status only
		return &APIError{StatusCode: resp.StatusCode}
	}
	return nil
}

// DrillEntryReceipt is the response to a drill entry submission. Body
// retains the raw response so callers can surface it when the entry id
// is missing and the submission only partially succeeded.
type DrillEntryReceipt struct {
	ID   int64
	Body json.RawMessage
}

// SubmitDrillEntry submits an uploaded video as a drill entry.
func (c *Client) SubmitDrillEntry(ctx context.Context, playerID, trialID int64, token, videoEntryRelativePath string, ballSize int) (*DrillEntryReceipt, error) {
	path := fmt.Sprintf("/api/v2/players/%d/trials/%d/entries", playerID, trialID)
	body := struct {
		VideoEntryRelativePath string `json:"videoEntryRelativePath"`
		MeasurementFactValue   int    `json:"measurementFactValue"`
	}{
		VideoEntryRelativePath: videoEntryRelativePath,
		MeasurementFactValue:   ballSize,
	}

	raw, err := c.doRaw(ctx, "submit_drill_entry", http.MethodPost, path, token, nil, body)
	if err != nil {
		return nil, err
	}

	receipt := &DrillEntryReceipt{Body: raw}
	var decoded struct {
		ID int64 `json:"id"`
	}
	// The entry id may legitimately be absent; the caller decides what
	// a missing id means
	_ = json.Unmarshal(raw, &decoded)
	receipt.ID = decoded.ID
	return receipt, nil
}

// GetDrillEntry fetches a drill entry, optionally with feedback, and
// returns the raw document.
func (c *Client) GetDrillEntry(ctx context.Context, playerID, drillID, entryID int64, token string, includeFeedback bool) (json.RawMessage, error) {
	path := fmt.Sprintf("/api/v3/players/%d/drills/%d/entries/%d", playerID, drillID, entryID)
	query := url.Values{"includeFeedback": {strconv.FormatBool(includeFeedback)}}
	return c.doRaw(ctx, "get_drill_entry", http.MethodGet, path, token, query, nil)
}
