// Package main provides localization for the blinkdecode CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Decode a morse-coded message from a blinking light in a video.": "動画内の点滅光からモールス符号のメッセージをデコードします。",

		// Decode command
		"Decode a morse light signal from a video region.": "動画の指定領域からモールス光信号をデコード",

		// Version command
		"Show version information.": "バージョン情報を表示",
		"blinkdecode version %s":    "blinkdecode バージョン %s",

		// Positional arguments
		"Video file to analyze (anything the local OpenCV build decodes).": "解析する動画ファイル（ローカルのOpenCVがデコードできる形式）",
		"Report JSON path, or - for standard output.":                      "レポートJSONのパス（- で標準出力）",
		"First frame to analyze (-1 = from the first frame).":              "解析開始フレーム（-1 = 先頭から）",
		"Last frame to analyze (-1 = to the last frame).":                  "解析終了フレーム（-1 = 末尾まで）",
		"Left edge of the sample region (0.0-1.0).":                        "サンプル領域の左端（0.0-1.0）",
		"Top edge of the sample region (0.0-1.0).":                         "サンプル領域の上端（0.0-1.0）",
		"Right edge of the sample region (0.0-1.0).":                       "サンプル領域の右端（0.0-1.0）",
		"Bottom edge of the sample region (0.0-1.0).":                      "サンプル領域の下端（0.0-1.0）",

		// Configuration flags
		"YAML config file with defaults for tuning options.":    "チューニング既定値を持つYAML設定ファイル",
		"Gaussian smoothing window radius for timing analysis.": "タイミング解析のガウス平滑化ウィンドウ半径",

		// Debug flags
		"Enable debug output.":        "デバッグ出力を有効化",
		"Directory for debug output.": "デバッグ出力のディレクトリ",

		// Logging flags
		"Log level (debug, info, warn, error).": "ログレベル（debug, info, warn, error）",
		"Suppress all log output.":              "全てのログ出力を抑制",

		// Runtime messages
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",
		"Container probe failed: %s":    "コンテナの検査に失敗しました: %s",
		"Detected %s video":             "%s 動画を検出しました",
		"Decoded message: %s":           "デコードしたメッセージ: %s",
		"Report saved to %s":            "レポートを %s に保存しました",
	})
}
