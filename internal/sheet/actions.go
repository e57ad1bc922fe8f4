package sheet

import (
	"context"
	"encoding/json"

	"lovinamom/internal/normalize"
)

// ScreeningSubmission is the wire shape of one submit_screening payload.
// RiskFactors stays a comma-joined string for sheet-column compatibility.
type ScreeningSubmission struct {
	SubmissionID   string  `json:"submissionId"`
	Name           string  `json:"name"`
	Age            int     `json:"age"`
	PregnancyWeeks int     `json:"pregnancyWeeks"`
	Status         string  `json:"status"`
	RiskFactors    string  `json:"riskFactors"`
	Notes          string  `json:"notes"`
	Lat            float64 `json:"lat,omitempty"`
	Lng            float64 `json:"lng,omitempty"`
	LocationName   string  `json:"locationName,omitempty"`
}

// GetData fetches the full raw dataset (screening, questions, traffic,
// analytics rows as the sheet stores them).
func (c *Client) GetData(ctx context.Context) (normalize.RawDataset, error) {
	var raw normalize.RawDataset
	payload, err := c.Call(ctx, ActionGetData, nil)
	if err != nil {
		return raw, err
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return normalize.RawDataset{}, &Error{Kind: FailMalformed, Action: ActionGetData, Err: err}
	}
	return raw, nil
}

// GetSystemStatus reports whether the public intake form is open.
func (c *Client) GetSystemStatus(ctx context.Context) (bool, error) {
	payload, err := c.Call(ctx, ActionGetSystemStatus, nil)
	if err != nil {
		return false, err
	}
	var resp struct {
		IsActive bool `json:"isActive"`
	}
	if err := json.Unmarshal(payload, &resp); err != nil {
		return false, &Error{Kind: FailMalformed, Action: ActionGetSystemStatus, Err: err}
	}
	return resp.IsActive, nil
}

// SetSystemStatus opens or locks the public intake form, returning the
// state the backend settled on.
func (c *Client) SetSystemStatus(ctx context.Context, isActive bool) (bool, error) {
	payload, err := c.Call(ctx, ActionSetSystemStatus, map[string]any{"isActive": isActive})
	if err != nil {
		return false, err
	}
	var resp struct {
		IsActive bool `json:"isActive"`
	}
	if err := json.Unmarshal(payload, &resp); err != nil {
		return false, &Error{Kind: FailMalformed, Action: ActionSetSystemStatus, Err: err}
	}
	return resp.IsActive, nil
}

// SubmitScreening appends one screening result row. Application errors
// surface as *Error; success needs no payload.
func (c *Client) SubmitScreening(ctx context.Context, submission ScreeningSubmission) error {
	_, err := c.Call(ctx, ActionSubmitScreening, map[string]any{"data": submission})
	return err
}

// UpdateData replaces a sheet's rows wholesale (content management).
func (c *Client) UpdateData(ctx context.Context, sheetName string, rows []map[string]any) error {
	_, err := c.Call(ctx, ActionUpdateData, map[string]any{
		"sheetName": sheetName,
		"data":      rows,
	})
	return err
}

// LogTraffic records one page-open event. Callers treat it as
// fire-and-forget; the error is returned only so the service can log it.
func (c *Client) LogTraffic(ctx context.Context, lat, lng any, userAgent string) error {
	_, err := c.Call(ctx, ActionLogTraffic, map[string]any{
		"lat": lat,
		"lng": lng,
		"ua":  userAgent,
	})
	return err
}

// UploadImage stores a base64-encoded image and returns its public URL.
func (c *Client) UploadImage(ctx context.Context, data, name, mimeType string) (string, error) {
	payload, err := c.Call(ctx, ActionUploadImage, map[string]any{
		"data":     data,
		"name":     name,
		"mimeType": mimeType,
	})
	if err != nil {
		return "", err
	}
	var resp struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(payload, &resp); err != nil {
		return "", &Error{Kind: FailMalformed, Action: ActionUploadImage, Err: err}
	}
	return resp.URL, nil
}
