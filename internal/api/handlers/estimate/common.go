package estimate

import (
	"strings"
)

// getImagePrefix 取得圖片前綴（用於日誌記錄，不輸出內容）
func getImagePrefix(image string) string {
	if strings.HasPrefix(image, "data:image/") {
		if i := strings.Index(image, ";"); i > 0 {
			return "[IMAGE_DATA:" + strings.TrimPrefix(image[:i], "data:") + "]"
		}
		return "[IMAGE_DATA]"
	}
	if strings.HasPrefix(image, "http") {
		return "[IMAGE_URL]"
	}
	return "[UNKNOWN_FORMAT]"
}
