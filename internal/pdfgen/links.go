package pdfgen

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Link is one footnoted hyperlink extracted from a note.
type Link struct {
	Num   int
	Label string
	URL   string
}

// ExtractLinks scans text left to right for markdown links of the form
// [label](url), replaces each with "label [n]" and collects the triples
// for the footnote section. Numbering starts at start and runs
// continuously across calls via the returned slice length. Non-matching
// '[' characters pass through literally; label and url must both be
// non-empty, and the url ends at the first ')'.
func ExtractLinks(text string, start int) (string, []Link) {
	var out strings.Builder
	var links []Link
	num := start

	for i := 0; i < len(text); {
		if text[i] == '[' {
			if rel := strings.IndexByte(text[i+1:], ']'); rel >= 0 {
				label := text[i+1 : i+1+rel]
				after := i + 1 + rel + 1
				if after < len(text) && text[after] == '(' {
					if end := strings.IndexByte(text[after+1:], ')'); end >= 0 {
						url := text[after+1 : after+1+end]
						if label != "" && url != "" {
							fmt.Fprintf(&out, "%s [%d]", label, num)
							links = append(links, Link{Num: num, Label: label, URL: url})
							num++
							i = after + 1 + end + 1
							continue
						}
					}
				}
			}
			out.WriteByte('[')
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		out.WriteRune(r)
		i += size
	}

	return out.String(), links
}

// wrapURL chunks long URLs at '/' boundaries once a chunk exceeds 100
// bytes, so the footnote section can break them across lines.
func wrapURL(url string) []string {
	var lines []string
	var cur strings.Builder
	for _, ch := range url {
		cur.WriteRune(ch)
		if ch == '/' && cur.Len() > 100 {
			lines = append(lines, cur.String())
			cur.Reset()
		}
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
