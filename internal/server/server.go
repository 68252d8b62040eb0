package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog"

	"c20web/internal/config"
)

// Server はTCPリスナーと固定サイズのワーカープールを管理する構造体
type Server struct {
	config  *config.Config
	log     zerolog.Logger
	connLog zerolog.Logger // 接続ごとの記録専用チャンネル

	mu       sync.Mutex
	listener net.Listener

	conns chan net.Conn
	wg    sync.WaitGroup
}

// New は新しいServerインスタンスを作成する
func New(cfg *config.Config, log zerolog.Logger) *Server {
	return &Server{
		config:  cfg,
		log:     log,
		connLog: log.With().Str("channel", "connection").Logger(),
	}
}

// Start はサーバーを起動する。
// バインドに失敗した場合のみエラーを返す（呼び出し側で非ゼロ終了にする）。
// それ以外はコンテキストのキャンセルかシグナルを受けるまでブロックする
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.ListenAddr)
	if err != nil {
		return fmt.Errorf("アドレス %s へのバインドに失敗: %w", s.config.ListenAddr, err)
	}
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	s.log.Info().
		Str("addr", ln.Addr().String()).
		Str("webroot", s.config.Webroot).
		Int("workers", s.config.ThreadsMax).
		Msg("サーバーを起動しました")

	// ワーカープールを起動
	s.conns = make(chan net.Conn)
	for i := 0; i < s.config.ThreadsMax; i++ {
		s.wg.Add(1)
		go s.worker()
	}

	// acceptループを別ゴルーチンで起動
	acceptDone := make(chan struct{})
	go func() {
		defer close(acceptDone)
		s.acceptLoop(ln)
	}()

	// シグナルハンドリング
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	// コンテキストかシグナルを待つ
	select {
	case <-ctx.Done():
		s.log.Info().Msg("コンテキストがキャンセルされました")
	case sig := <-sigCh:
		s.log.Info().Str("signal", sig.String()).Msg("シグナルを受信しました")
	case <-acceptDone:
		// リスナーが外部要因で閉じられた
	}

	return s.shutdown(ln, acceptDone)
}

// Addr はバインド済みのアドレスを返す。未起動なら空文字列
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// acceptLoop は接続を受け付けてワーカープールへ渡す。
// 個々のaccept失敗はログに残してスキップする
func (s *Server) acceptLoop(ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			s.log.Warn().Err(err).Msg("接続の受け付けに失敗しました")
			continue
		}
		s.conns <- conn
	}
}

// worker は接続チャンネルが閉じられるまで1接続ずつ処理する
func (s *Server) worker() {
	defer s.wg.Done()
	for conn := range s.conns {
		s.handle(conn)
	}
}

// shutdown はサーバーをグレースフルにシャットダウンする。
// リスナーを閉じ、処理中の接続が終わるのを待つ
func (s *Server) shutdown(ln net.Listener, acceptDone <-chan struct{}) error {
	s.log.Info().Msg("サーバーをシャットダウンしています...")

	if err := ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		s.log.Error().Err(err).Msg("リスナーのクローズに失敗しました")
	}

	// acceptループの終了を待ってからチャンネルを閉じる
	<-acceptDone
	close(s.conns)
	s.wg.Wait()

	s.log.Info().Msg("サーバーが正常にシャットダウンされました")
	return nil
}
