package gate

// Action is the outcome of evaluating a navigation attempt.
type Action string

const (
	ActionAllow                Action = "allow"
	ActionRedirectToLogin      Action = "redirect_login"
	ActionRedirectToCompliance Action = "redirect_compliance"
)

// Decision carries the evaluation outcome together with the originally
// requested path, so a login redirect can send the user back afterwards.
type Decision struct {
	Action     Action `json:"decision"`
	TargetPath string `json:"target_path"`
}
