package protocol

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// ErrorPageFile は作業ディレクトリから読み込むエラーページのテンプレート名
const ErrorPageFile = "error.html"

// builtinErrorPage はerror.htmlが読めない場合に使う組み込みテンプレート。
// プレースホルダの構造はファイル版と同じ（ステータス×2、詳細×1）
const builtinErrorPage = "<!DOCTYPE html><html lang='en'><head><meta charset='utf-8'><title>{}</title></head><body><h1>{}</h1><p>{}</p></body></html>"

// errorPageMime はエラーページに強制されるMIMEタイプ
const errorPageMime = "text/html"

// Body は応答ボディの2値のタグ付きユニオン。
// TextBodyまたはBinaryBody以外の実装は存在しない
type Body interface {
	isBody()
}

// TextBody はテキストとしてデコードできたボディ。
// エラーページの詳細文字列として流用できるのはこちらだけ
type TextBody string

// BinaryBody はテキストとしてデコードできなかった生のボディ
type BinaryBody []byte

func (TextBody) isBody()   {}
func (BinaryBody) isBody() {}

// Response はワイヤに書き出す直前の応答を保持する構造体。
// パーサ（解析失敗時）か接続ハンドラが作り、Buildで一度だけ消費される。
type Response struct {
	Code uint16 // HTTPステータスコード
	Mime string // 成功応答のContent-Type。エラーページでは無視される
	Body Body   // 応答ボディ。nilは空ボディ
}

// Build は応答をワイヤフォーマットのバイト列に組み立てる。
//
// コードが[200, 300)の外なら、ボディは元の内容にかかわらず
// エラーページのレンダリング結果に差し替えられる。バイナリボディは
// 詳細文字列としては空文字列に縮退する。
func (r *Response) Build(log zerolog.Logger) []byte {
	status := statusLine(r.Code, log)

	mime := r.Mime
	var body []byte
	if r.Code < 200 || r.Code >= 300 {
		body = []byte(renderErrorPage(status, detailText(r.Body), log))
		mime = errorPageMime
	} else {
		body = bodyBytes(r.Body)
	}

	head := fmt.Sprintf("HTTP/1.1 %s\r\nContent-Type: %s;\r\nContent-Length: %d;\r\n\r\n", status, mime, len(body))
	wire := make([]byte, 0, len(head)+len(body))
	wire = append(wire, head...)
	return append(wire, body...)
}

// statusLine は「<コード> <理由句>」の形式のステータス文字列を返す。
// テーブルにないコードは警告を出して "Unknown" に縮退する
func statusLine(code uint16, log zerolog.Logger) string {
	phrase, ok := StatusTable[code]
	if !ok {
		log.Warn().Uint16("code", code).Msg("理由句テーブルにないステータスコードです")
		phrase = "Unknown"
	}
	return fmt.Sprintf("%d %s", code, phrase)
}

// renderErrorPage はエラーページを組み立てる。
// error.htmlは応答のたびに読み直す（キャッシュしない）。
// プレースホルダは出現順に、ステータス文字列が2箇所、詳細が1箇所埋まる
func renderErrorPage(status, detail string, log zerolog.Logger) string {
	page := builtinErrorPage
	data, err := os.ReadFile(ErrorPageFile)
	if err != nil {
		log.Warn().Err(err).Msg("error.htmlが読めないため組み込みテンプレートを使用します")
	} else {
		page = string(data)
	}
	page = strings.Replace(page, "{}", status, 2)
	return strings.Replace(page, "{}", detail, 1)
}

// detailText はエラーページの詳細として使えるテキストを取り出す
func detailText(b Body) string {
	if t, ok := b.(TextBody); ok {
		return string(t)
	}
	return ""
}

// bodyBytes はボディをバイト列として取り出す
func bodyBytes(b Body) []byte {
	switch v := b.(type) {
	case TextBody:
		return []byte(v)
	case BinaryBody:
		return []byte(v)
	default:
		return nil
	}
}
