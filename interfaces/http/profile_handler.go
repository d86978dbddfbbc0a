package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clipstream/domain/dto"
	"clipstream/infrastructure/logger"
	"clipstream/usecase"
)

type IProfileHandler interface {
	GetMe(ctx *gin.Context)
	CompleteOnboarding(ctx *gin.Context)
}

type ProfileHandler struct {
	profileUsecase usecase.IProfileUsecase
}

func NewProfileHandler(profileUsecase usecase.IProfileUsecase) IProfileHandler {
	return &ProfileHandler{profileUsecase: profileUsecase}
}

func (h *ProfileHandler) GetMe(ctx *gin.Context) {
	profile, err := h.profileUsecase.GetMe(ctx.Request.Context(), callerID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) CompleteOnboarding(ctx *gin.Context) {
	var req dto.CreateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while unmarshal")
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}
	profile, err := h.profileUsecase.Create(ctx.Request.Context(), callerID(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, profile)
}
