package email

import (
	"fmt"
	"strings"

	"go-contact-relay/internal/domain"
)

// Addresses holds the operator-side settings for composing contact emails.
type Addresses struct {
	From          string
	To            string
	SubjectPrefix string
	Heading       string
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

var lineBreaks = strings.NewReplacer("\r\n", "<br/>", "\n", "<br/>")

// EscapeHTML replaces the five markup-significant characters with entities.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// contactHTML is filled by plain interpolation; every argument must already be escaped.
const contactHTML = `
<div style="font-family:Arial,sans-serif;line-height:1.5">
  <h2>%s</h2>
  <p><b>Name:</b> %s</p>
  <p><b>Email:</b> %s</p>
  <p><b>Subject:</b> %s</p>
  <hr/>
  <p>%s</p>
</div>
`

// ComposeContactEmail builds the outbound email for a validated submission.
// Fields are used exactly as submitted; trimming only applies to validation.
// The text body is left raw; the HTML body never carries unescaped input.
func ComposeContactEmail(sub *domain.ContactSubmission, addr Addresses) domain.OutboundEmail {
	return domain.OutboundEmail{
		From:    addr.From,
		To:      addr.To,
		ReplyTo: sub.Email,
		Subject: addr.SubjectPrefix + sub.Subject,
		Text:    fmt.Sprintf("Name: %s\nEmail: %s\n\n%s", sub.Name, sub.Email, sub.Message),
		HTML: fmt.Sprintf(contactHTML,
			EscapeHTML(addr.Heading),
			EscapeHTML(sub.Name),
			EscapeHTML(sub.Email),
			EscapeHTML(sub.Subject),
			lineBreaks.Replace(EscapeHTML(sub.Message)),
		),
	}
}
