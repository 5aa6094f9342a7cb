// Package guidance selects the review template, system instruction, and
// project guideline rules that shape each prompt sent to the model.
package guidance

// AppType is a coarse classification of a file's owning project technology.
type AppType string

const (
	AppTypeGeneric    AppType = "generic"
	AppTypeGo         AppType = "go"
	AppTypeReact      AppType = "react"
	AppTypeNode       AppType = "node"
	AppTypePython     AppType = "python"
	AppTypeJava       AppType = "java"
	AppTypeRails      AppType = "rails"
	AppTypeRust       AppType = "rust"
	AppTypeTypeScript AppType = "typescript"
)

// Template is the app-type-specific portion of a review prompt.
type Template struct {
	AppType AppType `yaml:"app_type"`
	// Considerations is appended to the prompt as the evaluation checklist
	// for this technology.
	Considerations string `yaml:"considerations"`
}

// GuidelineRule is one entry extracted from a project guideline document.
// Rules are consumed only as prompt text, never executed.
type GuidelineRule struct {
	Title       string
	Description string
	Source      string
}

// Selection is the result of template selection for one file.
type Selection struct {
	AppType           AppType
	Template          Template
	SystemInstruction string
}
