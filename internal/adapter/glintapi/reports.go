package glintapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"

	"glint-backoffice/internal/domain/report"
)

var _ report.Gateway = (*ReportGateway)(nil)

type ReportGateway struct{ c *Client }

func NewReportGateway(c *Client) *ReportGateway { return &ReportGateway{c: c} }

func (g *ReportGateway) List(ctx context.Context, token string) ([]report.Report, error) {
	var out []report.Report
	if err := g.c.doJSON(ctx, http.MethodGet, "/reports", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create posts the report as multipart form data. Structured fields travel
// as JSON-encoded form values.
func (g *ReportGateway) Create(ctx context.Context, token string, p report.CreatePayload) (*report.Report, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{"title": p.Title}
	if p.Body != "" {
		fields["body"] = p.Body
	}
	if len(p.Content) > 0 {
		b, err := json.Marshal(p.Content)
		if err != nil {
			return nil, fmt.Errorf("encode content: %w", err)
		}
		fields["content"] = string(b)
	}
	if len(p.Attachments) > 0 {
		b, err := json.Marshal(p.Attachments)
		if err != nil {
			return nil, fmt.Errorf("encode attachments: %w", err)
		}
		fields["attachments"] = string(b)
	}
	for _, k := range []string{"title", "body", "content", "attachments"} {
		v, ok := fields[k]
		if !ok {
			continue
		}
		if err := mw.WriteField(k, v); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := g.c.newRequest(ctx, http.MethodPost, "/reports", token, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out report.Report
	if err := g.c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *ReportGateway) SubmitDecision(ctx context.Context, token string, endpoint report.DecisionEndpoint, reportID string, p report.DecisionPayload) error {
	var suffix string
	switch endpoint {
	case report.EndpointGM:
		suffix = "gm-decision"
	case report.EndpointDGM:
		suffix = "dgm-decision"
	default:
		return fmt.Errorf("unknown decision endpoint %q", endpoint)
	}
	path := "/reports/" + url.PathEscape(reportID) + "/" + suffix
	return g.c.doJSON(ctx, http.MethodPost, path, token, p, nil)
}
