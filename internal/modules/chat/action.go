package chat

// ActionType enumerates everything the widget can be told to do. The
// dispatch is an exhaustive switch on this tag; free-form "redirect:/x"
// strings are not part of the contract.
type ActionType string

const (
	ActionNone         ActionType = "none"
	ActionRedirect     ActionType = "redirect"
	ActionStartBooking ActionType = "start_booking"
	ActionShowHours    ActionType = "show_hours"
	ActionQuote        ActionType = "quote"
)

// Action is the tagged instruction attached to a reply. Only the fields
// relevant to the Type are set: Path for redirects, Device/Issue for
// quote prefills.
type Action struct {
	Type   ActionType `json:"type"`
	Label  string     `json:"label,omitempty"`
	Path   string     `json:"path,omitempty"`
	Device string     `json:"device,omitempty"`
	Issue  string     `json:"issue,omitempty"`
}

func redirect(label, path string) Action {
	return Action{Type: ActionRedirect, Label: label, Path: path}
}
