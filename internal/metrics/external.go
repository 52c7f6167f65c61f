package metrics

import (
	"strings"
	"time"
)

// RecordS3Operation records S3 call metrics. Status is synthesized from
// the error since the SDK does not surface HTTP codes uniformly.
func (m *Metrics) RecordS3Operation(operation string, duration time.Duration, err error) {
	m.safeExecute("RecordS3Operation", func() {
		status := "ok"
		if err != nil {
			status = "error"
		}

		m.ExternalAPIRequestsTotal.WithLabelValues("s3", operation, status).Inc()
		m.ExternalAPIRequestDuration.WithLabelValues("s3", status).Observe(duration.Seconds())

		if err != nil {
			m.ExternalAPIErrors.WithLabelValues("s3", getErrorType(err)).Inc()
		}
	})
}

// getErrorType categorizes network-level error types
func getErrorType(err error) string {
	if err == nil {
		return "unknown"
	}
	errMsg := err.Error()

	if strings.Contains(errMsg, "connection refused") {
		return "connection_refused"
	}
	if strings.Contains(errMsg, "no such host") {
		return "dns_error"
	}
	if strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "deadline exceeded") {
		return "timeout"
	}
	if strings.Contains(errMsg, "EOF") || strings.Contains(errMsg, "connection reset") {
		return "connection_reset"
	}
	if strings.Contains(errMsg, "TLS") || strings.Contains(errMsg, "certificate") {
		return "tls_error"
	}
	if strings.Contains(errMsg, "AccessDenied") || strings.Contains(errMsg, "Forbidden") {
		return "access_denied"
	}
	if strings.Contains(errMsg, "NoSuchKey") || strings.Contains(errMsg, "NotFound") {
		return "not_found"
	}

	return "network_error"
}
