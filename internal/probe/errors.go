package probe

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"
)

// Failure categories
const (
	CategoryAuthFailure      = "authentication_failure"
	CategoryModelNotFound    = "model_not_found"
	CategoryRateLimit        = "rate_limit"
	CategoryNetworkError     = "network_error"
	CategoryServerError      = "server_error"
	CategoryEndpointNotFound = "endpoint_not_found"
	CategoryUnknown          = "unknown_error"
)

var userMessages = map[string]string{
	CategoryAuthFailure:      "Authentication failed. Please check your auth token.",
	CategoryModelNotFound:    "Model not found. Please verify the model name.",
	CategoryRateLimit:        "Rate limit exceeded. Please try again later.",
	CategoryNetworkError:     "Network error: unable to connect to the API.",
	CategoryServerError:      "Server error occurred. Please try again later.",
	CategoryEndpointNotFound: "API endpoint not found. Please verify the base URL.",
	CategoryUnknown:          "The server returned an unexpected status.",
}

// CategorizeStatus maps a non-success HTTP status to a category.
// 404 bodies mentioning a model are reported as model_not_found.
func CategorizeStatus(statusCode int, body []byte) string {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return CategoryAuthFailure
	case http.StatusNotFound:
		if strings.Contains(strings.ToLower(string(body)), "model") {
			return CategoryModelNotFound
		}
		return CategoryEndpointNotFound
	case http.StatusTooManyRequests:
		return CategoryRateLimit
	default:
		if statusCode >= http.StatusInternalServerError {
			return CategoryServerError
		}
		return CategoryUnknown
	}
}

// UserMessage returns the advice shown for a category
func UserMessage(category string) string {
	if msg, ok := userMessages[category]; ok {
		return msg
	}
	return userMessages[CategoryUnknown]
}

// describeTransportError turns a client.Do failure into a short explanation
func describeTransportError(err error, timeout time.Duration) string {
	errStr := err.Error()

	var netErr net.Error
	isNetErr := errors.As(err, &netErr)

	switch {
	case isNetErr && netErr.Timeout():
		return fmt.Sprintf("Request timed out (more than %s)", timeout)
	case strings.Contains(errStr, "connection refused"):
		return "Connection refused (server not listening on this port)"
	case strings.Contains(errStr, "network is unreachable"):
		return "Network unreachable"
	case strings.Contains(errStr, "no such host") || strings.Contains(errStr, "NXDOMAIN"):
		return "DNS resolution failed (domain does not exist or network configuration error)"
	case strings.Contains(errStr, "EOF"):
		return "Connection closed unexpectedly (server may not exist or be unresponsive)"
	case isNetErr:
		return fmt.Sprintf("Network error: %v", netErr)
	default:
		return fmt.Sprintf("Request failed: %v", err)
	}
}
