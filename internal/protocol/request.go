package protocol

import (
	"fmt"
	"unicode/utf8"
)

// Request は解析済みのリクエストラインを保持する構造体。
// 解析後は不変で、1接続の処理が終わると破棄される。
type Request struct {
	Method      string // リクエストメソッド (例: GET)
	Resource    string // リソースパス。デコードや正規化は行わない
	HTTPVersion string // プロトコルバージョン (例: HTTP/1.1)
}

// ParseRequestLine はバッファからリクエストラインを解析する。
// 成功時はRequestを、失敗時はそのまま送出できるエラーResponseを返す。
//
// バッファを左から一度だけ走査し、最初の2つのスペースと最初の
// CRまたはLFの位置を記録する。行末より先は一切解釈しない。
func ParseRequestLine(buf []byte) (*Request, *Response) {
	var endMethod, endResource, endLine int
	for i, b := range buf {
		if b == '\r' || b == '\n' {
			endLine = i
			break
		}
		if b == ' ' {
			if endMethod == 0 {
				endMethod = i
			} else if endResource == 0 {
				endResource = i
			}
		}
	}

	// 行末が見つからない、またはスペース区切りのトークンが2つ未満
	if endLine == 0 || endResource == 0 || endMethod == 0 {
		return nil, &Response{Code: StatusBadRequest, Body: TextBody("Malformed request line")}
	}

	method := buf[:endMethod]
	resource := buf[endMethod+1 : endResource]
	version := buf[endResource+1 : endLine]

	fields := []struct {
		name  string
		token []byte
	}{
		{"method", method},
		{"resource name", resource},
		{"http version", version},
	}
	for _, f := range fields {
		if !utf8.Valid(f.token) {
			detail := fmt.Sprintf("Malformed %s: invalid UTF-8 sequence at byte %d", f.name, invalidUTF8Offset(f.token))
			return nil, &Response{Code: StatusBadRequest, Body: TextBody(detail)}
		}
	}

	// トークンは見つかったままの形で返す（正規化もパーセントデコードもしない）
	return &Request{
		Method:      string(method),
		Resource:    string(resource),
		HTTPVersion: string(version),
	}, nil
}

// invalidUTF8Offset は最初の不正なUTF-8バイトの位置を返す
func invalidUTF8Offset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(b)
}
