// Package sheet wraps the Google-Apps-Script spreadsheet endpoint behind
// typed calls with bounded retry. The endpoint is a single URL speaking
// action-dispatch JSON-over-HTTP; its one quirk is failing with an HTML
// error page instead of a JSON error when the script throws.
package sheet

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Sheet endpoint actions.
const (
	ActionGetData         = "get_data"
	ActionGetSystemStatus = "get_system_status"
	ActionSetSystemStatus = "set_system_status"
	ActionSubmitScreening = "submit_screening"
	ActionUpdateData      = "update_data"
	ActionLogTraffic      = "log_traffic"
	ActionUploadImage     = "upload_image"
)

// readActions are issued as GET with the action in the query string;
// everything else POSTs a JSON body.
var readActions = map[string]bool{
	ActionGetData:         true,
	ActionGetSystemStatus: true,
}

// Client is the sync/retry client for the sheet endpoint.
type Client struct {
	httpClient *resty.Client
	endpoint   string
	retryDelay time.Duration
	online     func() bool
	now        func() time.Time
	logger     *zap.Logger
}

// NewClient creates a sheet client. Retry is handled here, not by resty:
// the policy is exactly one retry per call, gated on connectivity, and
// only for transport failures.
func NewClient(endpoint string, timeout, retryDelay time.Duration, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetTimeout(timeout).
		// Apps Script answers through a googleusercontent redirect
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(10)).
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
		retryDelay: retryDelay,
		online:     func() bool { return true },
		now:        time.Now,
		logger:     logger,
	}
}

// SetOnlineProbe replaces the connectivity check. The default assumes the
// network is up; deployments behind a captive link can plug in a real
// probe, and tests plug in a constant.
func (c *Client) SetOnlineProbe(probe func() bool) { c.online = probe }

// SetNowFuncForTest pins the cache-buster clock.
func (c *Client) SetNowFuncForTest(now func() time.Time) { c.now = now }

// Call performs one action against the endpoint and returns the raw JSON
// payload after response classification. State machine per call:
// IDLE → IN_FLIGHT → {SUCCESS, RETRYING → IN_FLIGHT, FAILED}, with
// RETRYING entered at most once.
func (c *Client) Call(ctx context.Context, action string, payload map[string]any) (json.RawMessage, error) {
	if !c.online() {
		return nil, &Error{Kind: FailOffline, Action: action, Message: "network connectivity absent"}
	}

	body, err := c.doRequest(ctx, action, payload)
	if err != nil {
		if !c.online() {
			return nil, &Error{Kind: FailOffline, Action: action, Err: err}
		}
		c.logger.Warn("sheet request failed, retrying once",
			zap.String("action", action),
			zap.Duration("delay", c.retryDelay),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			return nil, &Error{Kind: FailTransport, Action: action, Err: ctx.Err()}
		case <-time.After(c.retryDelay):
		}
		body, err = c.doRequest(ctx, action, payload)
		if err != nil {
			return nil, &Error{Kind: FailTransport, Action: action, Err: err}
		}
	}

	return c.classifyResponse(action, body)
}

// doRequest performs a single HTTP exchange. Every URL carries a
// monotonically changing t parameter so intermediate caches never serve a
// stale snapshot.
func (c *Client) doRequest(ctx context.Context, action string, payload map[string]any) ([]byte, error) {
	req := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("t", strconv.FormatInt(c.now().UnixMilli(), 10))

	var resp *resty.Response
	var err error
	if readActions[action] {
		req.SetQueryParam("action", action)
		resp, err = req.Get(c.endpoint)
	} else {
		body := map[string]any{"action": action}
		for k, v := range payload {
			body[k] = v
		}
		encoded, merr := json.Marshal(body)
		if merr != nil {
			return nil, merr
		}
		// text/plain keeps Apps Script from rejecting the preflight;
		// the body is still JSON.
		req.SetHeader("Content-Type", "text/plain;charset=utf-8").SetBody(encoded)
		resp, err = req.Post(c.endpoint)
	}
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// classifyResponse inspects the raw body before any JSON parsing: an HTML
// document is the backend's server-fault sentinel and must not reach the
// JSON decoder.
func (c *Client) classifyResponse(action string, body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, &Error{Kind: FailMalformed, Action: action, Message: "empty response body"}
	}
	if trimmed[0] == '<' {
		c.logger.Error("sheet backend returned HTML fault page", zap.String("action", action))
		return nil, &Error{Kind: FailServerFault, Action: action, Message: "backend returned an HTML error document"}
	}
	if !json.Valid(trimmed) {
		return nil, &Error{Kind: FailMalformed, Action: action, Message: "response is not valid JSON"}
	}
	if trimmed[0] == '{' {
		var probe struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(trimmed, &probe); err != nil {
			return nil, &Error{Kind: FailMalformed, Action: action, Err: err}
		}
		if probe.Status == "error" {
			return nil, &Error{Kind: FailApplication, Action: action, Message: probe.Message}
		}
	}
	return json.RawMessage(trimmed), nil
}
