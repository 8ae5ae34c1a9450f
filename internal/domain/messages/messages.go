// Package messages renders the transactional e-mails sent to account holders.
package messages

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"fiftymais/internal/domain/entities"
)

const (
	WelcomeSubject       = "🎉 Seu acesso ao Fifty+ está pronto!"
	PasswordResetSubject = "Redefinição de senha do Fifty+"
	defaultGreetingName  = "Marceneiro"
)

var welcomeTemplate = template.Must(template.New("welcome").Parse(`<div style="font-family:Arial,sans-serif;max-width:560px;margin:0 auto;color:#1a1a1a">
  <h1 style="color:#c0392b">Olá, {{.Name}}!</h1>
  <p>Seu pagamento foi confirmado e seu acesso ao <strong>Fifty+</strong> já está liberado.</p>
  <p>Use os dados abaixo para entrar:</p>
  <div style="background:#f4f4f4;border-radius:8px;padding:16px">
    <p><strong>E-mail:</strong> {{.Email}}</p>
    <p><strong>Senha:</strong> {{.Password}}</p>
  </div>
  <p style="margin-top:24px"><a href="{{.AppURL}}" style="background:#c0392b;color:#fff;padding:12px 24px;border-radius:6px;text-decoration:none">Acessar o Fifty+</a></p>
  <p style="font-size:12px;color:#777">Recomendamos trocar a senha no primeiro acesso.</p>
</div>`))

var passwordResetTemplate = template.Must(template.New("reset").Parse(`<div style="font-family:Arial,sans-serif;max-width:560px;margin:0 auto;color:#1a1a1a">
  <h1 style="color:#c0392b">Olá, {{.Name}}!</h1>
  <p>Recebemos um pedido para redefinir a senha da sua conta no <strong>Fifty+</strong>.</p>
  <p><a href="{{.Link}}" style="background:#c0392b;color:#fff;padding:12px 24px;border-radius:6px;text-decoration:none">Criar nova senha</a></p>
  <p style="font-size:12px;color:#777">Se você não fez esse pedido, ignore este e-mail.</p>
</div>`))

// Welcome carries the generated credentials to a newly provisioned account.
func Welcome(name, email, password, appURL string) (entities.Email, error) {
	var buf bytes.Buffer
	err := welcomeTemplate.Execute(&buf, map[string]string{
		"Name":     greetingName(name),
		"Email":    email,
		"Password": password,
		"AppURL":   appURL,
	})
	if err != nil {
		return entities.Email{}, fmt.Errorf("render welcome email: %w", err)
	}
	return entities.Email{To: email, Subject: WelcomeSubject, HTML: buf.String()}, nil
}

func PasswordReset(name, email, token, appURL string) (entities.Email, error) {
	link := strings.TrimRight(appURL, "/") + "/redefinir-senha?token=" + url.QueryEscape(token)
	var buf bytes.Buffer
	err := passwordResetTemplate.Execute(&buf, map[string]string{
		"Name": greetingName(name),
		"Link": link,
	})
	if err != nil {
		return entities.Email{}, fmt.Errorf("render password reset email: %w", err)
	}
	return entities.Email{To: email, Subject: PasswordResetSubject, HTML: buf.String()}, nil
}

func greetingName(name string) string {
	if first := entities.FirstName(name); first != "" {
		return first
	}
	return defaultGreetingName
}
