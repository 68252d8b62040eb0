// Package main はc20webサーバーコマンドの実装です
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"c20web/internal/config"
	"c20web/internal/server"
)

func main() {
	// コマンドラインオプション
	var (
		workingDir = flag.String("workingdir", "data", "作業ディレクトリ。設定ファイル(web.toml)とerror.htmlをここから探し、相対パスの基準になる")
		listenAddr = flag.String("listen", "", "リッスンアドレス (デフォルト: 設定ファイルの値)")
		debug      = flag.Bool("debug", false, "デバッグログを出力")
		help       = flag.Bool("help", false, "ヘルプを表示")
	)

	flag.Parse()

	// ヘルプ表示
	if *help {
		fmt.Println("c20web")
		fmt.Println()
		fmt.Println("使用方法:")
		fmt.Println("  server [オプション]")
		fmt.Println()
		fmt.Println("オプション:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	// 作業ディレクトリへ移動してから設定を読み込む
	if err := os.Chdir(*workingDir); err != nil {
		logger.Fatal().Err(err).Str("dir", *workingDir).Msg("作業ディレクトリへの移動に失敗しました")
	}

	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("設定の読み込みに失敗しました")
	}

	// コマンドラインオプションで設定を上書き
	if *listenAddr != "" {
		cfg.ListenAddr = *listenAddr
	}

	// サーバーを起動
	logger.Info().Str("addr", cfg.ListenAddr).Msg("c20webサーバーを起動します")
	srv := server.New(cfg, logger)
	if err := srv.Start(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("サーバーの起動に失敗しました")
	}
}
