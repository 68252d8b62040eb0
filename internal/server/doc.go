// Package server は、TCPリスナーと接続処理を管理します。
//
// このパッケージは、リスナーのバインド、固定サイズのワーカープールへの
// 接続の振り分け、1接続ぶんのライフサイクル処理を担当します。
//
// 責務:
//   - リスナーのバインドとacceptループ
//   - ThreadsMax個のワーカーによる接続の処理
//   - 接続ごとの read → 読み込み側ハーフクローズ → 解析 → 応答書き込み
//   - 接続ごとに1行のログ（ピアアドレスと応答コード）
//   - グレースフルシャットダウン
//
// 仕様:
//   - accept失敗はログに残してスキップする（ループは止めない）
//   - ワーカーが全員ふさがっている間のバックプレッシャーは
//     OSのlistenバックログに任せる（独自のキューは持たない）
//   - 読み書きのタイムアウトは設けない。無言のクライアントは
//     ワーカーを1つ占有し続ける（同時接続数の上限で抑えるのみ）
//   - 接続処理中の失敗はすべてResponseに変換され、ハンドラの外へは
//     伝播しない
package server
