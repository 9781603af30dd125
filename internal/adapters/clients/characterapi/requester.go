package characterapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/character-service/internal/platform/httpclient"
)

// requester owns the request lifecycle for one API call: build, send,
// check the status, translate failures, decode, and always close the body.
type requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

func (r *requester) do(ctx context.Context, method, path string, reqBody, respBody any) error {
	req, err := r.client.NewRequest(ctx, method, path, reqBody)
	if err != nil {
		return err
	}

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}
	if err != nil {
		// Retries exhausted on a retryable status still leave a response to
		// translate.
		if resp != nil {
			return TranslateHTTPError(resp)
		}
		r.logger.ErrorContext(ctx, "character API request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.DebugContext(ctx, "character API returned an error status",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return TranslateHTTPError(resp)
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", method, path, err)
		}
	}
	return nil
}

func (r *requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body", slog.String("error", err.Error()))
	}
}
