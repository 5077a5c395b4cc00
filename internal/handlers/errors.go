// internal/handlers/errors.go
package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/shop-admin/internal/i18n"
	"github.com/javajoker/shop-admin/internal/services"
	"github.com/javajoker/shop-admin/internal/utils"
)

// respondError maps a service failure onto the error envelope.
func respondError(c *gin.Context, err error) {
	var notFound *services.NotFoundError
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &notFound):
		utils.NotFoundResponse(c, "", notFoundMessage(utils.GetLangFromContext(c), notFound))
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, "", err.Error())
	case errors.As(err, &validationErrs):
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(validationErrs))
	default:
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("Request failed")
		utils.InternalErrorResponse(c, "")
	}
}

// notFoundMessage keeps the English wording clients match on and localizes
// it for the other catalogs.
func notFoundMessage(lang string, err *services.NotFoundError) string {
	if lang == i18n.DefaultLang {
		return err.Error()
	}

	key := i18n.KeyProductNotFound
	if err.Entity == services.EntityCategory {
		key = i18n.KeyCategoryNotFound
	}
	return fmt.Sprintf("%s: %v", i18n.T(lang, key), err.Key)
}
