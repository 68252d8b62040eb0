package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// FileName は作業ディレクトリから読み込む設定ファイル名
const FileName = "web.toml"

// Config はアプリケーション全体の設定を保持する構造体。
// 起動時に一度だけ構築され、以降は読み取り専用で全接続ハンドラに共有される。
type Config struct {
	ListenAddr      string `toml:"listen_addr"`       // リッスンするアドレス (host:port)
	Webroot         string `toml:"webroot"`           // 配信対象のルートディレクトリ
	ThreadsMax      int    `toml:"threads_max"`       // ワーカー数の上限
	RequestMaxBytes int    `toml:"request_max_bytes"` // リクエストの最大バイト数
}

// Load は設定を読み込む。
// デフォルト値 ← web.toml（存在する場合のみ） ← 環境変数 の順に重ねる
func Load() (*Config, error) {
	// デフォルト設定を作成
	cfg := &Config{
		ListenAddr:      "127.0.0.1:7878",
		Webroot:         "webroot",
		ThreadsMax:      100,
		RequestMaxBytes: 1000,
	}

	// 設定ファイルは任意。読めた場合のみデフォルトを上書きする
	data, err := os.ReadFile(FileName)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// ファイルなしはデフォルト + 環境変数で動作する
	case err != nil:
		return nil, fmt.Errorf("設定ファイルの読み込みに失敗: %w", err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("設定ファイルの解析に失敗: %w", err)
		}
	}

	// 環境変数で上書き
	cfg.ListenAddr = getEnvOrDefault("LISTEN_ADDR", cfg.ListenAddr)
	cfg.Webroot = getEnvOrDefault("WEBROOT", cfg.Webroot)
	cfg.ThreadsMax = getEnvAsIntOrDefault("THREADS_MAX", cfg.ThreadsMax)
	cfg.RequestMaxBytes = getEnvAsIntOrDefault("REQUEST_MAX_BYTES", cfg.RequestMaxBytes)

	// 設定の検証
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗: %w", err)
	}

	return cfg, nil
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.ListenAddr); err != nil {
		return fmt.Errorf("無効なリッスンアドレス %q: %w", c.ListenAddr, err)
	}
	if c.Webroot == "" {
		return fmt.Errorf("webrootが設定されていません")
	}
	if c.ThreadsMax < 1 {
		return fmt.Errorf("無効なワーカー数: %d", c.ThreadsMax)
	}
	if c.RequestMaxBytes < 1 {
		return fmt.Errorf("無効な最大リクエストサイズ: %d", c.RequestMaxBytes)
	}
	return nil
}

// getEnvOrDefault は環境変数を取得し、設定されていない場合はデフォルト値を返す
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault は環境変数を整数として取得し、設定されていない場合はデフォルト値を返す
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
