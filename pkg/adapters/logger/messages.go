package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Starting pipeline":               "パイプラインを開始します",
		"Pipeline completed successfully": "パイプラインが正常に完了しました",
		"Sampling %s":                     "%s をサンプリング中",
		"Sampled %d frames":               "%d フレームをサンプリングしました",
		"Brightness threshold: %d":        "輝度しきい値: %d",
		"Segmented %d signal runs":        "%d 個の信号区間に分割しました",
		"Timing peaks: off %v, on %v":     "タイミングピーク: 消灯 %v, 点灯 %v",

		// Errors
		"Failed to sample video: %s":      "動画のサンプリングに失敗しました: %s",
		"Failed to analyze luminance: %s": "輝度の解析に失敗しました: %s",
		"Failed to segment signal: %s":    "信号の分割に失敗しました: %s",
		"Failed to classify timing: %s":   "タイミングの分類に失敗しました: %s",
		"Failed to encode symbols: %s":    "シンボルの符号化に失敗しました: %s",
		"Failed to decode morse: %s":      "モールス符号のデコードに失敗しました: %s",
	})
}
