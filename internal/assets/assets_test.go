package assets

import (
	"strings"
	"testing"
)

func TestPreviewCSSEmbedded(t *testing.T) {
	t.Parallel()

	css := PreviewCSS()
	if css == "" {
		t.Fatal("embedded stylesheet is empty")
	}
	for _, want := range []string{"body", "table", "border-collapse"} {
		if !strings.Contains(css, want) {
			t.Errorf("stylesheet misses %q", want)
		}
	}
}
