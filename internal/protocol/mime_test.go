package protocol

import (
	"testing"

	"github.com/rs/zerolog"
)

// TestTypeByExtension は拡張子からのMIMEタイプ解決をテストする
func TestTypeByExtension(t *testing.T) {
	testCases := []struct {
		name string
		ext  string
		want string
	}{
		{"html", "html", "text/html"},
		{"htm", "htm", "text/html"},
		{"png", "png", "image/png"},
		{"未登録の拡張子はtext/plainに縮退する", "zzz", "text/plain"},
		{"空の拡張子もtext/plainに縮退する", "", "text/plain"},
		{"照合は大文字小文字を区別する", "HTML", "text/plain"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TypeByExtension(tc.ext, zerolog.Nop()); got != tc.want {
				t.Errorf("MIMEタイプが一致しません: got %q, want %q", got, tc.want)
			}
		})
	}
}
