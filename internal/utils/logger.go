package utils

import (
	"log"
	"strings"
)

// LogEvent writes one application log line tied to a request. The module
// tag is upper-cased so booking, auth and docs events line up in output.
// Message should be a short summary, never a raw payload.
func LogEvent(requestID, module, action, message string) {
	log.Printf("[%s] action=%s request_id=%s %s",
		strings.ToUpper(module), action, strings.TrimSpace(requestID), message)
}
