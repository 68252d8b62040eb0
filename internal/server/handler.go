package server

import (
	"fmt"
	"net"
	"os"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"c20web/internal/protocol"
	"c20web/internal/resource"
)

// readHalfCloser は読み込み側だけを閉じられる接続。*net.TCPConnが満たす
type readHalfCloser interface {
	CloseRead() error
}

// handle は1接続ぶんのライフサイクルを処理する。
// read → 読み込み側ハーフクローズ → 解析 → ログ → 書き込み の順で、
// 途中の失敗はすべてResponseに変換される。この関数の外へは何も伝播しない
func (s *Server) handle(conn net.Conn) {
	connID := uuid.New().String()
	log := s.log.With().Str("conn_id", connID).Logger()

	defer func() {
		if err := conn.Close(); err != nil {
			log.Debug().Err(err).Msg("接続のクローズに失敗しました")
		}
	}()

	// リクエストは一度のReadで読み切る。上限超過を切り詰めずに検出する
	// ために1バイト余分に確保する
	buf := make([]byte, s.config.RequestMaxBytes+1)
	n, readErr := conn.Read(buf)

	// 応答を組み立てる前に読み込み側をハーフクローズして、残りの入力を
	// 捨てる。未読の入力が残ったままだと応答の書き込みが相手に届かない
	// ことがあるため、この順序を崩してはいけない
	if rc, ok := conn.(readHalfCloser); ok {
		if err := rc.CloseRead(); err != nil {
			log.Debug().Err(err).Msg("読み込み側のクローズに失敗しました")
		}
	}

	resp := s.analyze(buf, n, readErr, log)

	// 接続ごとに1行、ピアアドレスと応答コードを記録する
	peer := "Unknown"
	if addr := conn.RemoteAddr(); addr != nil {
		peer = addr.String()
	}
	s.connLog.Info().
		Str("conn_id", connID).
		Str("peer", peer).
		Uint16("code", resp.Code).
		Msg("リクエストを処理しました")

	// 書き込みの失敗はログに残すだけで、再試行も伝播もしない
	if _, err := conn.Write(resp.Build(log)); err != nil {
		log.Error().Err(err).Msg("応答の書き込みに失敗しました")
	}
}

// analyze は読み込み結果を最終的なResponseへ変換する
func (s *Server) analyze(buf []byte, n int, readErr error, log zerolog.Logger) *protocol.Response {
	switch {
	case readErr != nil:
		detail := fmt.Sprintf("The network stream didn't stay valid long enough for the server to read it: %v", readErr)
		return &protocol.Response{Code: protocol.StatusBadRequest, Body: protocol.TextBody(detail)}
	case n >= s.config.RequestMaxBytes:
		return &protocol.Response{Code: protocol.StatusPayloadTooLarge}
	default:
		return s.respond(buf[:n], log)
	}
}

// respond はリクエストラインを解析し、ファイルを読み込んで応答を作る
func (s *Server) respond(buf []byte, log zerolog.Logger) *protocol.Response {
	req, errResp := protocol.ParseRequestLine(buf)
	if errResp != nil {
		return errResp
	}

	if req.Method != "GET" {
		return &protocol.Response{Code: protocol.StatusNotImplemented, Body: protocol.TextBody("Only GET is supported")}
	}
	if req.HTTPVersion != "HTTP/1.1" {
		return &protocol.Response{Code: protocol.StatusHTTPVersionNotSupported, Body: protocol.TextBody("Only HTTP/1.1 is supported")}
	}

	path := resource.Resolve(req.Resource, s.config.Webroot)
	log.Debug().Str("resource", req.Resource).Str("path", path).Msg("リソースを解決しました")

	data, err := os.ReadFile(path)
	if err != nil {
		return &protocol.Response{Code: protocol.StatusNotFound, Body: protocol.TextBody(err.Error())}
	}

	mime := protocol.TypeByExtension(resource.Extension(path), log)

	// テキストとしてデコードできるかどうかでボディのタグを決める
	if utf8.Valid(data) {
		return &protocol.Response{Code: protocol.StatusOK, Mime: mime, Body: protocol.TextBody(data)}
	}
	return &protocol.Response{Code: protocol.StatusOK, Mime: mime, Body: protocol.BinaryBody(data)}
}
