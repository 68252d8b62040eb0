// Package resource は、リクエストのリソースパスをファイルシステム上の
// パスへ対応付けます。
//
// 先頭のパス区切りを1つだけ取り除いてwebrootに連結するだけで、
// `..`セグメントの正規化や絶対パスの拒否は行いません。
// この挙動が持つパストラバーサルの危険はDESIGN.mdに記録してあります。
package resource

import "strings"

// Resolve はリソースパスをwebroot配下のファイルシステムパスへ変換する。
// 取り除くのは最初に出現するパス区切り1つだけ
func Resolve(resourcePath, webroot string) string {
	return webroot + "/" + strings.Replace(resourcePath, "/", "", 1)
}

// Extension はパスの最終セグメントから拡張子を取り出す。
// 最後のドットより後ろの部分文字列で、ドットがなければ空文字列
func Extension(path string) string {
	base := path
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	i := strings.LastIndexByte(base, '.')
	if i < 0 {
		return ""
	}
	return base[i+1:]
}
