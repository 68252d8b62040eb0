package resource

import "testing"

// TestResolve はリソースパスからファイルシステムパスへの変換をテストする
func TestResolve(t *testing.T) {
	testCases := []struct {
		name     string
		resource string
		webroot  string
		want     string
	}{
		{"通常のパス", "/hello.htm", "webroot", "webroot/hello.htm"},
		{"ルート", "/", "webroot", "webroot/"},
		{"サブディレクトリ", "/css/site.css", "webroot", "webroot/css/site.css"},
		{"取り除く区切りは最初の1つだけ", "//etc/passwd", "webroot", "webroot//etc/passwd"},
		{"親ディレクトリセグメントは正規化しない", "/../secret.txt", "webroot", "webroot/../secret.txt"},
		{"先頭に区切りがない場合もそのまま連結する", "hello.htm", "webroot", "webroot/hello.htm"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Resolve(tc.resource, tc.webroot); got != tc.want {
				t.Errorf("パスが一致しません: got %q, want %q", got, tc.want)
			}
		})
	}
}

// TestExtension は拡張子の抽出をテストする
func TestExtension(t *testing.T) {
	testCases := []struct {
		name string
		path string
		want string
	}{
		{"通常の拡張子", "webroot/hello.htm", "htm"},
		{"複数のドットは最後のものを使う", "webroot/archive.tar.gz", "gz"},
		{"拡張子なし", "webroot/README", ""},
		{"最終セグメント以外のドットは無視する", "web.root/README", ""},
		{"大文字はそのまま返す", "webroot/INDEX.HTM", "HTM"},
		{"末尾がドット", "webroot/file.", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Extension(tc.path); got != tc.want {
				t.Errorf("拡張子が一致しません: got %q, want %q", got, tc.want)
			}
		})
	}
}
