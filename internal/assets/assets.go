// Package assets holds resources compiled into the binary so the
// application works without an installation directory.
package assets

import _ "embed"

//go:embed styles/preview.css
var previewCSS string

// PreviewCSS returns the stylesheet inlined into generated HTML
// previews.
func PreviewCSS() string { return previewCSS }
