package protocol

import "testing"

// TestStatusTableCoversEmittedCodes はサーバーが自分で使うコードすべてに
// 理由句が登録されていることをテストする
func TestStatusTableCoversEmittedCodes(t *testing.T) {
	emitted := []uint16{
		StatusOK,
		StatusBadRequest,
		StatusNotFound,
		StatusPayloadTooLarge,
		StatusNotImplemented,
		StatusHTTPVersionNotSupported,
	}

	for _, code := range emitted {
		phrase, ok := StatusTable[code]
		if !ok {
			t.Errorf("コード %d が理由句テーブルにありません", code)
			continue
		}
		if phrase == "" || phrase == "Unknown" {
			t.Errorf("コード %d の理由句が不正です: %q", code, phrase)
		}
	}
}

// TestStatusTablePhrases は代表的な理由句をテストする
func TestStatusTablePhrases(t *testing.T) {
	testCases := []struct {
		code uint16
		want string
	}{
		{200, "OK"},
		{404, "Not Found"},
		{413, "Payload Too Large"},
		{418, "I'm a teapot"},
		{505, "HTTP Version Not Supported"},
	}

	for _, tc := range testCases {
		if got := StatusTable[tc.code]; got != tc.want {
			t.Errorf("コード %d の理由句が一致しません: got %q, want %q", tc.code, got, tc.want)
		}
	}
}
