package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/jstittsworth/ninecat-analyzer/internal/analysis"
	"github.com/jstittsworth/ninecat-analyzer/pkg/utils"
)

// sendAnalysisError maps the engine's typed errors onto API responses.
// Validation and configuration errors are the caller's fault; anything else
// is internal.
func sendAnalysisError(c *gin.Context, err error) {
	var validationErr *analysis.ValidationError
	if errors.As(err, &validationErr) {
		utils.SendValidationError(c, "Invalid analysis input", validationErr.Reason)
		return
	}

	var configErr *analysis.ConfigError
	if errors.As(err, &configErr) {
		utils.SendConfigurationError(c, "Unknown category", configErr.Error())
		return
	}

	utils.SendInternalError(c, err.Error())
}
