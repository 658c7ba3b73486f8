package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/pharmindex/repurpose/pkg/errors"
)

// maxResponseBytes caps provider response bodies; the bulk feeds are paged so
// nothing legitimate approaches this.
const maxResponseBytes = 16 << 20

// getJSON performs a GET against url and decodes the JSON body into out,
// translating every failure mode into a coded error:
//
//	network failure / 5xx   → SRC_001 (retryable)
//	429                     → SRC_002 (retryable)
//	context deadline        → COMMON_007 timeout (retryable)
//	404 or other non-200    → SRC_005 no match (terminal)
//	undecodable body        → SRC_004 parse error (terminal)
func getJSON(ctx context.Context, client *http.Client, url string, header http.Header, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeInvalidParam, "building request")
	}
	req.Header.Set("Accept", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return apperrors.Wrap(err, apperrors.CodeTimeout, "request timed out")
		}
		return apperrors.Wrap(err, apperrors.ErrCodeSourceUnavailable, "request failed")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests:
		return apperrors.New(apperrors.ErrCodeSourceRateLimited, "rate limited").
			WithDetail(fmt.Sprintf("url=%s", url))
	case resp.StatusCode >= 500:
		return apperrors.New(apperrors.ErrCodeSourceUnavailable,
			fmt.Sprintf("server error %d", resp.StatusCode)).
			WithDetail(fmt.Sprintf("url=%s", url))
	default:
		// Providers signal unknown subjects with 404 (PubChem even wraps a
		// fault document in it).  Any other non-200 is equally terminal.
		return apperrors.New(apperrors.ErrCodeSourceNoMatch,
			fmt.Sprintf("status %d", resp.StatusCode)).
			WithDetail(fmt.Sprintf("url=%s", url))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeSourceUnavailable, "reading response body")
	}
	if err := json.Unmarshal(body, out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeSourceParseError, "decoding response body")
	}
	return nil
}

// noMatch turns a SRC_005 error into the (found=false, nil) outcome; every
// other error passes through.
func noMatch(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if apperrors.IsCode(err, apperrors.ErrCodeSourceNoMatch) {
		return false, nil
	}
	return false, err
}
