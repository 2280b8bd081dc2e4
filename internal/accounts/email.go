package accounts

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
)

const recoverySubject = "Recuperação de senha"

var recoveryTemplate = template.Must(template.New("recovery").Parse( //nolint: gochecknoglobals
	`<p>Você solicitou a recuperação de senha.</p>` +
		`<p>Seu token é: <strong>{{.Token}}</strong></p>` +
		`{{if .Link}}<p>Ou clique: <a href="{{.Link}}">{{.Link}}</a></p>{{end}}` +
		`<p>Se você não solicitou, ignore este e-mail.</p>`))

// recoveryHTML renders the recovery email body. When resetURL is set the
// body also links to it with the email and token as query parameters.
func recoveryHTML(resetURL, email, token string) (string, error) {
	data := struct {
		Token string
		Link  string
	}{Token: token}

	if resetURL != "" {
		q := url.Values{}
		q.Set("email", email)
		q.Set("token", token)
		data.Link = resetURL + "?" + q.Encode()
	}

	var buf bytes.Buffer
	if err := recoveryTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("could not render recovery email: %w", err)
	}

	return buf.String(), nil
}
