package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"clipstream/domain/dto"
	"clipstream/infrastructure/logger"
	"clipstream/usecase"
)

type IVideoHandler interface {
	CreateUploadURL(ctx *gin.Context)
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	Resolve(ctx *gin.Context)
	ListMine(ctx *gin.Context)
	ListUser(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type VideoHandler struct {
	videoUsecase     usecase.IVideoUsecase
	ingestionUsecase usecase.IIngestionUsecase
}

func NewVideoHandler(videoUsecase usecase.IVideoUsecase, ingestionUsecase usecase.IIngestionUsecase) IVideoHandler {
	return &VideoHandler{videoUsecase: videoUsecase, ingestionUsecase: ingestionUsecase}
}

func (h *VideoHandler) CreateUploadURL(ctx *gin.Context) {
	session, err := h.videoUsecase.CreateUploadURL(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, session)
}

func (h *VideoHandler) Create(ctx *gin.Context) {
	var req dto.CreateVideoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while unmarshal")
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}
	video, err := h.videoUsecase.Create(ctx.Request.Context(), callerID(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, video)
}

func (h *VideoHandler) List(ctx *gin.Context) {
	videos, err := h.videoUsecase.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, videos)
}

// Resolve reconciles the video with the provider on demand and returns the
// converged record.
func (h *VideoHandler) Resolve(ctx *gin.Context) {
	video, err := h.ingestionUsecase.Resolve(ctx.Request.Context(), strings.TrimSpace(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, video)
}

func (h *VideoHandler) ListMine(ctx *gin.Context) {
	videos, err := h.videoUsecase.ListByUser(ctx.Request.Context(), callerID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, videos)
}

func (h *VideoHandler) ListUser(ctx *gin.Context) {
	videos, err := h.videoUsecase.ListByUser(ctx.Request.Context(), strings.TrimSpace(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, videos)
}

func (h *VideoHandler) Delete(ctx *gin.Context) {
	err := h.ingestionUsecase.Delete(ctx.Request.Context(), strings.TrimSpace(ctx.Param("id")), callerID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Video deleted."})
}
