// application/serviceimpl/log.go
package serviceimpl

import "log"

// logBackground records a failed fire-and-forget side effect. Background
// writes (stats, activity) fail silently toward the user.
func logBackground(op string, err error) {
	log.Printf("[Background] %s failed: %v", op, err)
}
