package utils

import (
	"log"
	"strings"
)

// LogEvent writes one structured line per domain event. Module groups the
// lines (booking, rental, payment, docs), action names the operation, and
// message carries a short key=value summary. Keep payload data out of it.
func LogEvent(requestID, module, action, message string) {
	log.Printf("[%s] action=%s request_id=%s msg=%s",
		strings.ToUpper(strings.TrimSpace(module)), action, strings.TrimSpace(requestID), message)
}
