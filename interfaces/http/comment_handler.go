package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"clipstream/domain/dto"
	"clipstream/infrastructure/logger"
	"clipstream/usecase"
)

type ICommentHandler interface {
	Create(ctx *gin.Context)
	ListByVideo(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type CommentHandler struct {
	commentUsecase usecase.ICommentUsecase
}

func NewCommentHandler(commentUsecase usecase.ICommentUsecase) ICommentHandler {
	return &CommentHandler{commentUsecase: commentUsecase}
}

func (h *CommentHandler) Create(ctx *gin.Context) {
	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while unmarshal")
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}
	comment, err := h.commentUsecase.Create(ctx.Request.Context(), strings.TrimSpace(ctx.Param("videoId")), callerID(ctx), req.Text)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) ListByVideo(ctx *gin.Context) {
	comments, err := h.commentUsecase.ListByVideo(ctx.Request.Context(), strings.TrimSpace(ctx.Param("videoId")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) Delete(ctx *gin.Context) {
	if err := h.commentUsecase.Delete(ctx.Request.Context(), strings.TrimSpace(ctx.Param("commentId")), callerID(ctx)); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Comment deleted."})
}
