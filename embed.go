package taskboard

import "embed"

// EmailFS carries the email templates so the binary ships self-contained.
//
//go:embed templates/emails
var EmailFS embed.FS
