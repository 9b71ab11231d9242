package image

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"net/http"
	"strings"

	_ "image/gif" // 支援 GIF
	_ "image/png" // 支援 PNG

	"foodprint/internal/pkg/common"

	"go.uber.org/zap"
	_ "golang.org/x/image/webp" // 支援 WebP
)

// DefaultMaxSizeBytes 上傳圖片大小上限
const DefaultMaxSizeBytes int64 = 5 * 1024 * 1024

// jpegQuality 送往模型前重新編碼的品質
const jpegQuality = 85

// Payload 送往模型的圖片內容
type Payload struct {
	Data     []byte
	MIMEType string
}

// DataURI 轉為 data:image/...;base64 格式
func (p *Payload) DataURI() string {
	return fmt.Sprintf("data:%s;base64,%s", p.MIMEType, base64.StdEncoding.EncodeToString(p.Data))
}

// Hash 圖片內容的 SHA-256，作為快取鍵的一部分
func (p *Payload) Hash() string {
	if p == nil {
		return ""
	}
	return common.HashBytes(p.Data)
}

// Processor 圖片處理器
type Processor struct {
	maxSizeBytes int64
}

// NewProcessor 創建圖片處理器
func NewProcessor(maxSizeBytes int64) *Processor {
	if maxSizeBytes <= 0 {
		maxSizeBytes = DefaultMaxSizeBytes
	}
	return &Processor{maxSizeBytes: maxSizeBytes}
}

// MaxSizeBytes 回傳大小上限
func (p *Processor) MaxSizeBytes() int64 {
	return p.maxSizeBytes
}

// FromDataURI 處理 data:image/...;base64,... 格式的圖片
func (p *Processor) FromDataURI(dataURI string) (*Payload, error) {
	if !strings.HasPrefix(dataURI, "data:image/") {
		return nil, common.ErrInvalidImageFormat
	}

	parts := strings.SplitN(dataURI, ",", 2)
	if len(parts) != 2 || !strings.HasSuffix(parts[0], ";base64") {
		return nil, common.ErrInvalidImageFormat
	}
	mimeType := strings.TrimSuffix(strings.TrimPrefix(parts[0], "data:"), ";base64")

	// 解碼前先以長度估算大小
	if int64(base64.StdEncoding.DecodedLen(len(parts[1]))) > p.maxSizeBytes+3 {
		return nil, common.ErrInvalidImageSize
	}

	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, common.ErrInvalidImageFormat.Wrap(fmt.Errorf("failed to decode base64 data: %w", err))
	}

	return p.FromBytes(decoded, mimeType)
}

// FromBytes 檢查大小並解碼圖片，統一轉為 JPEG。
// 無法解碼或格式不支援時原樣送出，由模型端決定結果。
func (p *Processor) FromBytes(data []byte, mimeType string) (*Payload, error) {
	if len(data) == 0 {
		return nil, common.ErrImageRequired
	}

	if int64(len(data)) > p.maxSizeBytes {
		common.LogImageProcessing("warn",
			zap.Int64("size", int64(len(data))),
			zap.Int64("max_size", p.maxSizeBytes),
		)
		return nil, common.ErrInvalidImageSize
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		common.LogImageProcessing("warn", zap.Error(err), zap.Int("raw_bytes", len(data)))
		return rawPayload(data, mimeType), nil
	}

	if !isSupportedFormat(format) {
		common.LogImageProcessing("warn", zap.String("format", format), zap.Int("raw_bytes", len(data)))
		return rawPayload(data, mimeType), nil
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode image as JPEG: %w", err)
	}

	bounds := img.Bounds()
	common.LogImageProcessing("info",
		zap.String("format", format),
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()),
		zap.Int("jpeg_bytes", buf.Len()),
	)

	return &Payload{Data: buf.Bytes(), MIMEType: "image/jpeg"}, nil
}

// rawPayload 未經轉檔的原始內容，MIME 以上傳宣告為準，否則依內容判斷
func rawPayload(data []byte, mimeType string) *Payload {
	mimeType = strings.TrimSpace(strings.ToLower(mimeType))
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data)
	}
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	return &Payload{Data: data, MIMEType: mimeType}
}

// isSupportedFormat 檢查圖片格式是否支援
func isSupportedFormat(format string) bool {
	supportedFormats := map[string]bool{
		"jpeg": true,
		"png":  true,
		"gif":  true,
		"webp": true,
	}
	return supportedFormats[format]
}
