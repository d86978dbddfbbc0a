package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"clipstream/usecase"
)

type IEngagementHandler interface {
	ToggleLike(ctx *gin.Context)
	ToggleDislike(ctx *gin.Context)
	ToggleFollow(ctx *gin.Context)
	Relationship(ctx *gin.Context)
	ListFollowers(ctx *gin.Context)
	ListFollowing(ctx *gin.Context)
	ListMyLikes(ctx *gin.Context)
	ListUserLikes(ctx *gin.Context)
	ListMyDislikes(ctx *gin.Context)
}

type EngagementHandler struct {
	engagementUsecase usecase.IEngagementUsecase
}

func NewEngagementHandler(engagementUsecase usecase.IEngagementUsecase) IEngagementHandler {
	return &EngagementHandler{engagementUsecase: engagementUsecase}
}

func (h *EngagementHandler) ToggleLike(ctx *gin.Context) {
	result, err := h.engagementUsecase.ToggleLike(ctx.Request.Context(), callerID(ctx), strings.TrimSpace(ctx.Param("videoId")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (h *EngagementHandler) ToggleDislike(ctx *gin.Context) {
	result, err := h.engagementUsecase.ToggleDislike(ctx.Request.Context(), callerID(ctx), strings.TrimSpace(ctx.Param("videoId")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (h *EngagementHandler) ToggleFollow(ctx *gin.Context) {
	result, err := h.engagementUsecase.ToggleFollow(ctx.Request.Context(), callerID(ctx), strings.TrimSpace(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (h *EngagementHandler) Relationship(ctx *gin.Context) {
	result, err := h.engagementUsecase.Relationship(ctx.Request.Context(), callerID(ctx), strings.TrimSpace(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (h *EngagementHandler) ListFollowers(ctx *gin.Context) {
	profiles, err := h.engagementUsecase.ListFollowers(ctx.Request.Context(), strings.TrimSpace(ctx.Param("id")), callerID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profiles)
}

func (h *EngagementHandler) ListFollowing(ctx *gin.Context) {
	profiles, err := h.engagementUsecase.ListFollowing(ctx.Request.Context(), strings.TrimSpace(ctx.Param("id")), callerID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profiles)
}

func (h *EngagementHandler) ListMyLikes(ctx *gin.Context) {
	videos, err := h.engagementUsecase.ListLikedVideos(ctx.Request.Context(), callerID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, videos)
}

func (h *EngagementHandler) ListUserLikes(ctx *gin.Context) {
	videos, err := h.engagementUsecase.ListLikedVideos(ctx.Request.Context(), strings.TrimSpace(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, videos)
}

func (h *EngagementHandler) ListMyDislikes(ctx *gin.Context) {
	videos, err := h.engagementUsecase.ListDislikedVideos(ctx.Request.Context(), callerID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, videos)
}
