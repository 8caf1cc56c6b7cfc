package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/blogem/privacy-toolkit/logger"
	"github.com/blogem/privacy-toolkit/models"
	"github.com/blogem/privacy-toolkit/repositories"
	"github.com/blogem/privacy-toolkit/userctx"
)

// maxAuditBody caps how much of a request body is copied into the audit log
const maxAuditBody = 4096

// redacted replaces personal data in audited bodies
const redacted = "[redacted]"

// personalFields are the top-level body fields that never reach the audit log
var personalFields = []string{"subject"}

// AuditLogger middleware logs all POST/PUT/PATCH/DELETE requests.
// The entry is written before the handler runs so a failing handler is still audited.
func AuditLogger(auditRepo repositories.AuditRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isMutation(r.Method) {
				entry := &models.AuditLogEntry{
					ID:        uuid.NewString(),
					Timestamp: time.Now().UTC(),
					UserEmail: userctx.GetUserEmail(r.Context()),
					Method:    r.Method,
					Path:      r.URL.Path,
					UserAgent: r.UserAgent(),
					IPAddress: getIPAddress(r),
					FormData:  redactBody(captureBody(r)),
				}

				if err := auditRepo.Create(r.Context(), entry); err != nil {
					logger.Logger().WithError(err).WithField("path", entry.Path).Error("Failed to create audit log")
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// getIPAddress extracts IP address from request, checking X-Forwarded-For first
func getIPAddress(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		// Take first IP if multiple
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	// Remove port if present
	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}

// captureBody copies up to maxAuditBody bytes of the body and restores it for the handler
func captureBody(r *http.Request) string {
	if r.Body == nil || r.Body == http.NoBody {
		return ""
	}

	head, err := io.ReadAll(io.LimitReader(r.Body, maxAuditBody))
	if err != nil {
		return ""
	}
	r.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(head), r.Body), r.Body}

	return string(head)
}

// redactBody masks personalFields in a JSON object body. A body that cannot be
// parsed but mentions one of them is dropped entirely.
func redactBody(body string) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &fields); err != nil {
		for _, name := range personalFields {
			if strings.Contains(body, `"`+name+`"`) {
				return redacted
			}
		}
		return body
	}

	changed := false
	for _, name := range personalFields {
		if _, ok := fields[name]; ok {
			fields[name] = json.RawMessage(`"` + redacted + `"`)
			changed = true
		}
	}
	if !changed {
		return body
	}

	masked, err := json.Marshal(fields)
	if err != nil {
		return redacted
	}
	return string(masked)
}
