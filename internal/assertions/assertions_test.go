package assertions

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/guttosm/marketprobe/internal/client"
	"github.com/guttosm/marketprobe/internal/domain/models"
)

// recorder is a T that records failures instead of aborting.
type recorder struct {
	errors []string
	failed bool
	logs   []string
}

func (r *recorder) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}
func (r *recorder) FailNow() { r.failed = true }
func (r *recorder) Helper()  {}
func (r *recorder) Logf(format string, args ...any) {
	r.logs = append(r.logs, fmt.Sprintf(format, args...))
}
func (r *recorder) joined() string { return strings.Join(r.errors, "\n") }

var _ T = (*recorder)(nil)
var _ T = (*testing.T)(nil)

func TestAssertStatusCode(t *testing.T) {
	cases := []struct {
		name     string
		resp     *client.Response
		expected int
		fail     bool
		contains string
	}{
		{name: "match", resp: &client.Response{StatusCode: 200}, expected: 200},
		{name: "mismatch", resp: &client.Response{StatusCode: 422, Body: []byte(`{"error":{}}`)}, expected: 200, fail: true, contains: "expected 200, got 422"},
		{name: "nil response", resp: nil, expected: 200, fail: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &recorder{}
			AssertStatusCode(rec, tc.resp, tc.expected)
			if rec.failed != tc.fail {
				t.Fatalf("failed=%v, want %v (errors: %s)", rec.failed, tc.fail, rec.joined())
			}
			if tc.contains != "" && !strings.Contains(rec.joined(), tc.contains) {
				t.Fatalf("failure message %q does not mention %q", rec.joined(), tc.contains)
			}
		})
	}
}

func TestValidateAndDeserialize_Success(t *testing.T) {
	rec := &recorder{}
	body := []byte(`{"pagination":{"limit":1,"offset":0,"count":1,"total":3},"data":[{"timezone":"America/New_York","abbr":"EST","abbr_dst":"EDT"}]}`)
	out := ValidateAndDeserialize[models.TimezonesResponse](rec, body, models.TimezonesResponseShape)
	if rec.failed {
		t.Fatalf("unexpected failure: %s", rec.joined())
	}
	if len(out.Data) != 1 || out.Data[0].Abbr != "EST" {
		t.Fatalf("unexpected decode: %+v", out)
	}
}

func TestValidateAndDeserialize_ReportsEveryFieldError(t *testing.T) {
	rec := &recorder{}
	body := []byte(`{"pagination":{"limit":1,"offset":0,"count":1},"data":[{"timezone":"X","abbr":null}]}`)
	out := ValidateAndDeserialize[models.TimezonesResponse](rec, body, models.TimezonesResponseShape)
	if !rec.failed {
		t.Fatalf("expected failure")
	}
	msg := rec.joined()
	for _, want := range []string{"pagination.total", "data[0].abbr", "data[0].abbr_dst", "timezones_response"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("failure message missing %q:\n%s", want, msg)
		}
	}
	if out.Data != nil {
		t.Fatalf("partial record returned: %+v", out)
	}
}

func TestAssertAPIError(t *testing.T) {
	resp := &client.Response{
		StatusCode: http.StatusUnprocessableEntity,
		Body:       []byte(`{"error":{"code":"no_valid_symbols_provided","message":"At least one valid symbol must be provided"}}`),
	}

	rec := &recorder{}
	out := AssertAPIError(rec, resp, http.StatusUnprocessableEntity, models.CodeNoValidSymbols, "valid symbol")
	if rec.failed || out.Error.Code != models.CodeNoValidSymbols {
		t.Fatalf("unexpected failure: %s", rec.joined())
	}

	rec = &recorder{}
	AssertAPIError(rec, resp, http.StatusUnprocessableEntity, models.CodeValidationError, "")
	if !rec.failed {
		t.Fatalf("expected code mismatch failure")
	}
}

func TestStepAndSoft(t *testing.T) {
	rec := &recorder{}
	ran := false
	Step(rec, "verify status", func() { ran = true })
	if !ran || len(rec.logs) != 1 || rec.logs[0] != "step: verify status" {
		t.Fatalf("step not executed or logged: ran=%v logs=%v", ran, rec.logs)
	}

	soft := Soft(rec)
	soft.Equal("EST", "GMT")
	soft.Equal("EDT", "BST")
	if rec.failed || len(rec.errors) != 2 {
		t.Fatalf("soft assertions should record both failures without stopping: failed=%v errors=%d", rec.failed, len(rec.errors))
	}
}
