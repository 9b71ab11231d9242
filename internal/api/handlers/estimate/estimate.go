package estimate

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"foodprint/internal/api/handlers"
	"foodprint/internal/core/ai/image"
	"foodprint/internal/core/emission"
	estimateService "foodprint/internal/core/estimate"
	"foodprint/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Estimator 碳排估算服務
type Estimator interface {
	EstimateDish(ctx context.Context, dish string, servings float64) (*estimateService.Result, error)
	EstimateImage(ctx context.Context, img *image.Payload, servings float64) (*estimateService.Result, error)
}

// DishRequest 菜名估算請求，servings 可為數字或數字字串
type DishRequest struct {
	Dish     string      `json:"dish"`
	Servings interface{} `json:"servings,omitempty"`
}

// ImageRequest JSON 形式的圖片估算請求
type ImageRequest struct {
	Image    string      `json:"image"` // data:image/...;base64,...
	Servings interface{} `json:"servings,omitempty"`
}

// Handler 估算 API
type Handler struct {
	svc    Estimator
	images *image.Processor
	debug  bool
}

// NewHandler 創建估算處理器
func NewHandler(svc Estimator, images *image.Processor, debug bool) *Handler {
	return &Handler{svc: svc, images: images, debug: debug}
}

// HandleDish 處理 POST /api/estimate
func (h *Handler) HandleDish(c *gin.Context) {
	requestID := handlers.RequestID(c)

	var req DishRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		common.LogWarn("請求格式無效", zap.Error(err), zap.String("request_id", requestID))
		handlers.RespondError(c, common.ErrInvalidRequest.Wrap(err), h.debug)
		return
	}

	servings := emission.ParseServings(req.Servings)
	common.LogInfo("開始處理菜名估算",
		zap.String("request_id", requestID),
		zap.String("dish", req.Dish),
		zap.Float64("servings", servings),
	)

	result, err := h.svc.EstimateDish(c.Request.Context(), req.Dish, servings)
	if err != nil {
		handlers.RespondError(c, err, h.debug)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleImage 處理 POST /api/estimate/image，接受 multipart 的 image 欄位或 JSON data URI
func (h *Handler) HandleImage(c *gin.Context) {
	requestID := handlers.RequestID(c)

	var (
		payload  *image.Payload
		servings float64
		err      error
	)
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		payload, servings, err = h.readMultipart(c)
	} else {
		payload, servings, err = h.readJSON(c)
	}
	if err != nil {
		common.LogWarn("圖片請求無效", zap.Error(err), zap.String("request_id", requestID))
		handlers.RespondError(c, err, h.debug)
		return
	}

	common.LogInfo("開始處理圖片估算",
		zap.String("request_id", requestID),
		zap.Int("jpeg_bytes", len(payload.Data)),
		zap.Float64("servings", servings),
	)

	result, err := h.svc.EstimateImage(c.Request.Context(), payload, servings)
	if err != nil {
		handlers.RespondError(c, err, h.debug)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) readMultipart(c *gin.Context) (*image.Payload, float64, error) {
	file, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, 0, common.ErrImageRequired
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, 0, common.ErrInvalidImageSize.Wrap(err)
		}
		return nil, 0, common.ErrInvalidRequest.Wrap(err)
	}
	if file.Size > h.images.MaxSizeBytes() {
		return nil, 0, common.ErrInvalidImageSize
	}

	f, err := file.Open()
	if err != nil {
		return nil, 0, common.ErrInvalidRequest.Wrap(err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.images.MaxSizeBytes()+1))
	if err != nil {
		return nil, 0, common.ErrInvalidRequest.Wrap(err)
	}

	payload, err := h.images.FromBytes(data, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, 0, err
	}
	return payload, emission.ParseServings(c.PostForm("servings")), nil
}

func (h *Handler) readJSON(c *gin.Context) (*image.Payload, float64, error) {
	var req ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return nil, 0, common.ErrInvalidRequest.Wrap(err)
	}
	if req.Image == "" {
		return nil, 0, common.ErrImageRequired
	}

	common.LogDebug("收到 JSON 圖片", zap.String("prefix", getImagePrefix(req.Image)))

	payload, err := h.images.FromDataURI(req.Image)
	if err != nil {
		return nil, 0, err
	}
	return payload, emission.ParseServings(req.Servings), nil
}
