// Where: internal/instructions/steps.go
// What: Step-by-step narration for the guided credential setup.
// Why: Keep the instructional text data-driven so config changes flow into it.
package instructions

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Data feeds the step templates.
type Data struct {
	AppName         string
	ConsoleURL      string
	CredentialsPath string
}

// Step is one rendered instruction.
type Step struct {
	Title  string
	Detail string
}

type stepTemplate struct {
	title  string
	detail string
}

// The templates render against Data with the sprig funcmap, same as the
// rest of the project's text generation.
var stepTemplates = []stepTemplate{
	{
		title:  "Open the credentials page",
		detail: "Go to {{ .ConsoleURL }} and sign in with the account that owns your project.",
	},
	{
		title:  "Pick a project",
		detail: "Select an existing project from the project picker, or create a new one.",
	},
	{
		title:  "Configure the consent screen",
		detail: "If the console asks for an OAuth consent screen first, fill in the app name ({{ .AppName | quote }}) and your email, then come back to the credentials page.",
	},
	{
		title:  "Create an OAuth client ID",
		detail: "Click \"Create credentials\" -> \"OAuth client ID\" and choose \"Desktop app\" as the application type.",
	},
	{
		title:  "Download the credential file",
		detail: "Download the JSON for the new client and save it as {{ .CredentialsPath }}. It must contain both client_id and client_secret at the top level.",
	},
}

// Render produces the instruction steps for the given data. It fails only
// on a broken template, which would be a programming error; callers treat
// the error as fatal.
func Render(data Data) ([]Step, error) {
	steps := make([]Step, 0, len(stepTemplates))
	for i, st := range stepTemplates {
		detail, err := renderTemplate(fmt.Sprintf("step-%d", i+1), st.detail, data)
		if err != nil {
			return nil, err
		}
		steps = append(steps, Step{Title: st.title, Detail: detail})
	}
	return steps, nil
}

func renderTemplate(name, text string, data Data) (string, error) {
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse instruction template %s: %w", name, err)
	}
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render instruction template %s: %w", name, err)
	}
	return buf.String(), nil
}
