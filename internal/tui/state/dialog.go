package state

// DialogKind identifies what a confirmation dialog will do when accepted.
type DialogKind int

const (
	DialogNone DialogKind = iota
	DialogDeleteList
	DialogClearItems
	DialogClearAll
)

// DialogAction is one labeled choice of a dialog.
type DialogAction struct {
	Key   string
	Label string
}

// Dialog is the confirmation dialog collaborator: a title, a message and the
// labeled actions the user can pick from.
type Dialog struct {
	Kind    DialogKind
	Title   string
	Message string
	Actions []DialogAction
	// Destructive dialogs render with the delete color
	Destructive bool
}

// NewConfirmDialog builds a yes/no dialog using the configured keys.
func NewConfirmDialog(kind DialogKind, title, message, confirmKey, cancelKey string) *Dialog {
	return &Dialog{
		Kind:    kind,
		Title:   title,
		Message: message,
		Actions: []DialogAction{
			{Key: confirmKey, Label: "Delete"},
			{Key: cancelKey, Label: "Cancel"},
		},
		Destructive: true,
	}
}
