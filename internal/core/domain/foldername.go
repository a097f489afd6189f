package domain

import (
	"strings"
	"time"
)

// folderTokens maps the date tokens recognised in folder name
// templates to their layout fragments. Longer tokens are listed first
// so YYYY wins over YY.
var folderTokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
}

// RenderFolderName renders a folder name template against now. Text
// inside square brackets is literal; outside them the tokens YYYY, YY,
// MM, DD, HH, mm and ss expand to zero-padded parts of now, and any
// other character passes through unchanged. An unterminated bracket
// makes the remainder literal. An empty template disables the folder.
func RenderFolderName(template string, now time.Time) string {
	var b strings.Builder
	for i := 0; i < len(template); {
		if template[i] == '[' {
			end := strings.IndexByte(template[i:], ']')
			if end < 0 {
				b.WriteString(template[i+1:])
				break
			}
			b.WriteString(template[i+1 : i+end])
			i += end + 1
			continue
		}
		matched := false
		for _, t := range folderTokens {
			if strings.HasPrefix(template[i:], t.token) {
				b.WriteString(now.Format(t.layout))
				i += len(t.token)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(template[i])
			i++
		}
	}
	return b.String()
}
