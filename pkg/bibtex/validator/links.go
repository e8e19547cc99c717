package validator

import (
	"context"
	"net/http"
	"strings"
	"time"

	"publist-hq/bibcheck/pkg/bibtex/ast"
	"publist-hq/bibcheck/pkg/bibtex/diag"
)

// DefaultLinkTimeout bounds a single PDF probe.
const DefaultLinkTimeout = 3 * time.Second

// LinkChecker probes whether a URL serves a PDF directly.
type LinkChecker interface {
	// CheckPDF reports whether a HEAD request to url answers with a PDF
	// content type.
	CheckPDF(ctx context.Context, url string) bool
}

// HTTPLinkChecker probes URLs over HTTP. Redirects are not followed, so a
// landing page in front of the PDF fails the check.
type HTTPLinkChecker struct {
	client *http.Client
}

// NewHTTPLinkChecker creates a link checker with the given per-probe
// timeout.
func NewHTTPLinkChecker(timeout time.Duration) *HTTPLinkChecker {
	return &HTTPLinkChecker{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// CheckPDF sends a HEAD request and checks the content type. The response
// status does not matter, only whether a PDF sits behind the URL.
func (c *HTTPLinkChecker) CheckPDF(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.Header.Get("Content-Type") == "application/pdf"
}

// LinkValidator checks that entries link to a downloadable PDF. URLs ending
// in ".pdf" and "proceedings:" references pass without a probe; anything
// else is probed only when the caller asks for it.
type LinkValidator struct {
	checker LinkChecker
}

// NewLinkValidator creates a link validator backed by the given checker.
func NewLinkValidator(checker LinkChecker) *LinkValidator {
	return &LinkValidator{checker: checker}
}

// Validate checks a single entry's url field. With probe false, URLs that
// cannot be judged from their text alone are accepted.
func (v *LinkValidator) Validate(ctx context.Context, entry *ast.Entry, probe bool) ([]diag.Message, []diag.Message) {
	urlField := entry.Field("url")
	if urlField == nil {
		return nil, []diag.Message{{
			Code: CodeW001,
			Line: entry.StartLine,
			Text: WarningTexts[CodeW001],
		}}
	}

	url := urlField.Value.Text()
	invalid := diag.Message{
		Code: CodeE004,
		Line: urlField.StartLine,
		Text: ErrorTexts[CodeE004],
	}
	switch {
	case strings.HasSuffix(url, ".pdf") || strings.HasPrefix(url, "proceedings:"):
		return nil, nil
	case url == "":
		return []diag.Message{invalid}, nil
	default:
		if probe && !v.checker.CheckPDF(ctx, url) {
			return []diag.Message{invalid}, nil
		}
		return nil, nil
	}
}
