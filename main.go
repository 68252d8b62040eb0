package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"c20web/internal/config"
	"c20web/internal/server"
)

func main() {
	// ロガーを初期化する
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("設定の読み込みに失敗しました")
	}

	// サーバーを作成
	srv := server.New(cfg, logger)

	// サーバーを起動（バインド失敗時は非ゼロで終了する）
	if err := srv.Start(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("サーバーの起動に失敗しました")
	}
}
