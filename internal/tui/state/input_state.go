package state

// InputPurpose says what the text typed in InputMode will become.
type InputPurpose int

const (
	InputNone InputPurpose = iota
	InputNewList
	InputNewItem
)

// InputState tracks the open text prompt. The text itself lives in the
// textinput component.
type InputState struct {
	Purpose InputPurpose
	Prompt  string
}

// NewInputState creates an InputState with no open prompt.
func NewInputState() *InputState {
	return &InputState{}
}

// Open starts a prompt for purpose.
func (s *InputState) Open(purpose InputPurpose, prompt string) {
	s.Purpose = purpose
	s.Prompt = prompt
}

// Clear closes the prompt.
func (s *InputState) Clear() {
	s.Purpose = InputNone
	s.Prompt = ""
}
