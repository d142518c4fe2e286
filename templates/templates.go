// Package templates embeds the HTML report layouts.
package templates

import "embed"

// FS holds every report template
//
//go:embed *.html
var FS embed.FS
