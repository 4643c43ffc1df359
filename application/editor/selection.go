// application/editor/selection.go
package editor

// ChangeSource - origin of the most recent content change.
type ChangeSource string

const (
	SourceUser         ChangeSource = "user"
	SourceProgrammatic ChangeSource = "programmatic"
)

// Selection - ephemeral cursor range into the rich-text surface. Never
// persisted.
type Selection struct {
	Anchor int `json:"anchor"`
	Focus  int `json:"focus"`
}

// RestoreDecision decides whether the client should put the cursor back
// after a re-render. Restoration happens only when the last change was
// programmatic, the surface still has focus, and a selection was captured;
// a user-originated edit must leave the surface's native cursor handling
// alone.
func RestoreDecision(source ChangeSource, hasFocus bool, saved *Selection) (Selection, bool) {
	if source != SourceProgrammatic || !hasFocus || saved == nil {
		return Selection{}, false
	}
	return *saved, true
}
