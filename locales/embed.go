// Package locales embeds the translation tables shipped with the wallet GUI.
package locales

import "embed"

// FS holds every shipped .ts document at its root.
//
//go:embed *.ts
var FS embed.FS

// Pattern matches the shipped documents inside FS.
const Pattern = "*.ts"
