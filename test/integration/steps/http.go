package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
)

func iSendARequestTo(ctx context.Context, method, path string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.executeRequest(method, tc.replacePlaceholders(path), nil)
}

func iSendARequestToWithBody(ctx context.Context, method, path string, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(tc.replacePlaceholders(body.Content))
	}
	return tc.executeRequest(method, tc.replacePlaceholders(path), payload)
}

func iSetHeaderTo(ctx context.Context, header, value string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return nil
}

func iCaptureTheResponseFieldAs(ctx context.Context, field, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value := tc.responseField(field)
	if value == nil {
		return fmt.Errorf("field %q not found in response: %s", field, string(tc.responseBody))
	}

	tc.vars[name] = fmt.Sprintf("%v", value)
	return nil
}

func (t *TestContext) replacePlaceholders(content string) string {
	for name, value := range t.vars {
		content = strings.ReplaceAll(content, "{{"+name+"}}", value)
	}
	return content
}

func (t *TestContext) executeRequest(method, path string, payload []byte) error {
	url := testServer.URL + path

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.requestHeaders {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	t.responseStatus = resp.StatusCode
	t.responseBody = body
	return nil
}

// responseField resolves a dot-separated path into the response JSON.
// Numeric segments index into arrays.
func (t *TestContext) responseField(dotSeparatedField string) any {
	var body any
	if err := json.Unmarshal(t.responseBody, &body); err != nil {
		return nil
	}

	field := body
	for _, segment := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(segment); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[segment]
	}

	return field
}
