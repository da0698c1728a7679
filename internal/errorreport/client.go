package errorreport

import (
	"context"
	"fmt"
	"time"

	"websubmit/portal/internal/config"

	"resty.dev/v3"
)

// Sender delivers a report to the site's error endpoint
type Sender interface {
	Send(ctx context.Context, report Report) error
}

type restySender struct {
	endpoint   string
	httpClient *resty.Client
}

func NewSender(cfg config.ErrorReportConfig) Sender {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetHeader("User-Agent", "websubmit-errorreport")

	return &restySender{
		endpoint:   cfg.Endpoint,
		httpClient: client,
	}
}

func (s *restySender) Send(ctx context.Context, report Report) error {
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetFormData(report.FormData()).
		Post(s.endpoint)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return fmt.Errorf("failed to post error report: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("HTTP error: %d %s", resp.StatusCode(), resp.Status())
	}
	return nil
}
