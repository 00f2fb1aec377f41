// AngelaMos | 2026
// templates.go

package mailer

import (
	"fmt"
	"html/template"
	"strings"
)

// Template names used by the account services.
const (
	TemplatePasswordReset = "password_reset"
	TemplateWelcome       = "welcome"
	TemplateLoginConfirm  = "login_confirm"
)

var templates = template.Must(template.New("mail").Parse(`
{{define "password_reset"}}
<p>Hi{{if .Name}} {{.Name}}{{end}},</p>
<p>We received a request to reset the password on your account.</p>
<p><a href="{{.ResetLink}}">Click here to confirm your new password.</a></p>
<p>If you did not request this, you can safely ignore this email. The link
expires in six hours.</p>
{{end}}

{{define "welcome"}}
<p>Hi{{if .Name}} {{.Name}}{{end}},</p>
<p>Welcome aboard. Your account has been created.</p>
{{if .ActivationLink}}<p><a href="{{.ActivationLink}}">Activate your account</a> to get started.</p>{{end}}
{{end}}

{{define "login_confirm"}}
<p>Hi{{if .Name}} {{.Name}}{{end}},</p>
<p><a href="{{.ConfirmLink}}">Confirm this login</a> to continue.</p>
<p>If this wasn't you, change your password immediately.</p>
{{end}}
`))

func render(name string, args map[string]any) (string, error) {
	var buf strings.Builder
	if err := templates.ExecuteTemplate(&buf, name, args); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return buf.String(), nil
}
