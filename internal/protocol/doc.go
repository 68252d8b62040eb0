// Package protocol は、HTTP/1.1のワイヤフォーマットを扱います。
//
// このパッケージは、リクエストラインのバイト列解析、ステータスコードと
// MIMEタイプの静的テーブル、応答のシリアライズを担当します。
//
// 責務:
//   - リクエストラインの解析（メソッド・リソース・バージョン）
//   - ステータスコード → 理由句のテーブル
//   - 拡張子 → MIMEタイプのテーブル
//   - 応答バイト列の構築（非2xxはエラーページに差し替え）
//
// 仕様:
//   - ヘッダ行は解釈しない（リクエストラインのみ）
//   - 応答ヘッダはContent-TypeとContent-Lengthの2つのみで、
//     値の末尾にセミコロンが付く歴史的フォーマットをビット単位で維持する
//   - テーブルにないステータス/拡張子は警告ログ付きでデグレードし、
//     エラーにはしない
package protocol
