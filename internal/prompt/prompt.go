// Package prompt provides the interactive question and answer layer.
//
// Prompter has two implementations: Terminal asks on a TTY, Scripted answers
// from a pre-collected map (an answers file). Callers describe each question
// with a stable Key so both implementations can serve the same session.
package prompt

// Answer keys. They double as the field names of the answers file.
const (
	KeyRoot            = "root"
	KeyEngineDir       = "engineDir"
	KeyProjectName     = "projectName"
	KeyExtensionDir    = "extensionDir"
	KeyLibraryName     = "libraryName"
	KeyFeatures        = "features"
	KeyGodotExecutable = "godotExecutable"
)

// Question is a free text prompt.
type Question struct {
	// Key identifies the question in an answers file.
	Key string

	// Label is shown to the user.
	Label string

	// Default is returned when the user submits an empty answer.
	Default string

	// Required rejects empty answers. Only meaningful without a Default.
	Required bool
}

// Option is one entry of a multi-select prompt.
type Option struct {
	// Value is returned when the option is selected.
	Value string

	// Label is shown to the user.
	Label string

	// Description is an optional hint shown next to the label.
	Description string
}

// Choice is a multi-select prompt. Selecting nothing is allowed.
type Choice struct {
	// Key identifies the question in an answers file.
	Key string

	// Label is shown to the user.
	Label string

	// Options are offered in order.
	Options []Option
}

// Prompter asks the user for input. Every call blocks until answered.
type Prompter interface {
	// Text asks a free text question.
	Text(q Question) (string, error)

	// MultiSelect asks the user to pick any number of options and returns
	// the selected values.
	MultiSelect(c Choice) ([]string, error)
}

// TextPrompter is the subset of Prompter needed by steps that ask a single question.
type TextPrompter interface {
	Text(q Question) (string, error)
}
