// domain/port/preference_port.go
package port

import "context"

// PreferenceStore is a simple key→string store for per-user UI state that
// must survive reloads, e.g. the last open note id. Read on startup fetch,
// written on note switch, cleared on delete/new-note.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, error) // "" when unset
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
