// Package assertions turns API anomalies into test failures with uniform,
// detailed messages.
package assertions

import (
	"errors"
	"sort"
	"strings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/marketprobe/internal/client"
	"github.com/guttosm/marketprobe/internal/domain/models"
	"github.com/guttosm/marketprobe/internal/logger"
	"github.com/guttosm/marketprobe/internal/schema"
)

// bodyExcerpt bounds how much of a response body goes into failure messages.
const bodyExcerpt = 512

// T is the part of *testing.T the helpers rely on.
type T interface {
	require.TestingT
	Helper()
	Logf(format string, args ...any)
}

// AssertStatusCode stops the test when resp carries a different status.
func AssertStatusCode(t T, resp *client.Response, expected int) {
	t.Helper()
	if resp == nil {
		require.Fail(t, "no response received", "expected status %d", expected)
		return
	}
	if resp.StatusCode == expected {
		return
	}
	require.Failf(t, "unexpected status code",
		"expected %d, got %d\nurl: %s\nrequest_id: %s\nbody: %s",
		expected, resp.StatusCode, resp.URL, resp.RequestID, excerpt(resp.Body))
}

// ValidateAndDeserialize decodes body through shape and returns the typed
// record. Any schema violation stops the test with every field error listed.
func ValidateAndDeserialize[R any](t T, body []byte, shape *schema.Shape) R {
	t.Helper()
	out, err := schema.Decode[R](body, shape)
	if err == nil {
		return out
	}

	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		require.Failf(t, "schema validation failed", "%s", formatFieldErrors(verr))
	} else {
		require.Failf(t, "schema validation failed", "%v", err)
	}
	var zero R
	return zero
}

// AssertAPIError checks an error response end to end: status, envelope
// shape, error code, and a fragment of the message.
func AssertAPIError(t T, resp *client.Response, status int, code, messageContains string) models.ErrorResponse {
	t.Helper()
	AssertStatusCode(t, resp, status)
	out := ValidateAndDeserialize[models.ErrorResponse](t, resp.Body, models.ErrorResponseShape)
	require.Equal(t, code, out.Error.Code, "error.code")
	if messageContains != "" {
		require.Contains(t, out.Error.Message, messageContains, "error.message")
	}
	return out
}

// Step runs fn as a named step, logging its start and end.
func Step(t T, name string, fn func()) {
	t.Helper()
	log := logger.Component("step")
	log.Debug().Str("step", name).Msg("step_start")
	t.Logf("step: %s", name)
	fn()
	log.Debug().Str("step", name).Msg("step_done")
}

// Soft returns non-fatal assertions: every failed check is reported and the
// test keeps going.
func Soft(t T) *assert.Assertions {
	return assert.New(t)
}

func formatFieldErrors(verr *schema.ValidationError) string {
	msgs := verr.Messages()
	paths := make([]string, 0, len(msgs))
	for p := range msgs {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var b strings.Builder
	b.WriteString("shape: ")
	b.WriteString(verr.Shape)
	for _, p := range paths {
		b.WriteString("\n  ")
		if p == "" {
			b.WriteString("<root>")
		} else {
			b.WriteString(p)
		}
		b.WriteString(": ")
		b.WriteString(strings.Join(msgs[p], " "))
	}
	return b.String()
}

func excerpt(body []byte) string {
	if len(body) <= bodyExcerpt {
		return string(body)
	}
	return string(body[:bodyExcerpt]) + "..."
}
