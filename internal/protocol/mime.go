package protocol

import "github.com/rs/zerolog"

// defaultMime はテーブルにない拡張子が縮退する先
const defaultMime = "text/plain"

// MimeTable は拡張子（小文字・ドットなし）からMIMEタイプへの
// 読み取り専用テーブル。照合は大文字小文字を区別する完全一致
var MimeTable = map[string]string{
	"htm":   "text/html",
	"html":  "text/html",
	"css":   "text/css",
	"js":    "text/javascript",
	"json":  "application/json",
	"txt":   "text/plain",
	"xml":   "application/xml",
	"csv":   "text/csv",
	"md":    "text/markdown",
	"png":   "image/png",
	"jpg":   "image/jpeg",
	"jpeg":  "image/jpeg",
	"gif":   "image/gif",
	"svg":   "image/svg+xml",
	"ico":   "image/vnd.microsoft.icon",
	"webp":  "image/webp",
	"bmp":   "image/bmp",
	"pdf":   "application/pdf",
	"zip":   "application/zip",
	"gz":    "application/gzip",
	"tar":   "application/x-tar",
	"mp3":   "audio/mpeg",
	"mp4":   "video/mp4",
	"webm":  "video/webm",
	"wasm":  "application/wasm",
	"woff":  "font/woff",
	"woff2": "font/woff2",
	"ttf":   "font/ttf",
	"otf":   "font/otf",
	"eot":   "application/vnd.ms-fontobject",
}

// TypeByExtension は拡張子に対応するMIMEタイプを返す。
// テーブルにない場合は警告を出してtext/plainに縮退する。
// エラー応答にはしない
func TypeByExtension(ext string, log zerolog.Logger) string {
	if m, ok := MimeTable[ext]; ok {
		return m
	}
	log.Warn().Str("extension", ext).Msg("MIMEテーブルにない拡張子のためtext/plainを使用します")
	return defaultMime
}
