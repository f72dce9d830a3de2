package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"bantconfirm/internal/errors"
	"bantconfirm/internal/model"
	"bantconfirm/internal/service"
)

// SettingsHandler handles site settings and trusted vendor logo endpoints.
type SettingsHandler struct {
	settingsService service.SettingsService
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// SettingsRequest carries the full settings form.
type SettingsRequest struct {
	AppName               string `json:"app_name"`
	LogoURL               string `json:"logo_url"`
	FaviconURL            string `json:"favicon_url"`
	ShowAppName           bool   `json:"show_app_name"`
	SocialFacebook        string `json:"social_facebook"`
	SocialTwitter         string `json:"social_twitter"`
	SocialLinkedin        string `json:"social_linkedin"`
	WhatsappAPIKey        string `json:"whatsapp_api_key"`
	WhatsappPhoneNumberID string `json:"whatsapp_phone_number_id"`
}

// TrustedVendorRequest carries a trusted vendor logo entry.
type TrustedVendorRequest struct {
	Name string `json:"name" validate:"required"`
	Logo string `json:"logo"`
}

// Get godoc
// @Summary Read site settings (defaults when none saved yet)
// @Tags settings
// @Produce json
// @Success 200 {object} model.SiteSettings
// @Router /settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.settingsService.Get(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, settings)
}

// Update godoc
// @Summary Save site settings, creating the row on first save
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SettingsRequest true "Settings form"
// @Success 200 {object} model.SiteSettings
// @Router /admin/settings [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	var req SettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	settings, err := h.settingsService.Update(c.Request().Context(), service.SettingsUpdate{
		AppName:               req.AppName,
		LogoURL:               req.LogoURL,
		FaviconURL:            req.FaviconURL,
		ShowAppName:           req.ShowAppName,
		SocialFacebook:        req.SocialFacebook,
		SocialTwitter:         req.SocialTwitter,
		SocialLinkedin:        req.SocialLinkedin,
		WhatsappAPIKey:        req.WhatsappAPIKey,
		WhatsappPhoneNumberID: req.WhatsappPhoneNumberID,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, settings)
}

// ListTrustedVendors godoc
// @Summary List trusted vendor logos
// @Tags settings
// @Produce json
// @Success 200 {array} model.TrustedVendor
// @Router /trusted-vendors [get]
func (h *SettingsHandler) ListTrustedVendors(c echo.Context) error {
	vendors, err := h.settingsService.ListTrustedVendors(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, vendors)
}

// AddTrustedVendor godoc
// @Summary Add a trusted vendor logo
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TrustedVendorRequest true "Logo entry"
// @Success 201 {object} model.TrustedVendor
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/trusted-vendors [post]
func (h *SettingsHandler) AddTrustedVendor(c echo.Context) error {
	var req TrustedVendorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	vendor := &model.TrustedVendor{Name: req.Name, Logo: req.Logo}
	if err := h.settingsService.AddTrustedVendor(c.Request().Context(), vendor); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, vendor)
}

// DeleteTrustedVendor godoc
// @Summary Delete a trusted vendor logo
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trusted vendor ID"
// @Success 200 {object} map[string]string
// @Router /admin/trusted-vendors/{id} [delete]
func (h *SettingsHandler) DeleteTrustedVendor(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid trusted vendor id",
			Code:  "INVALID_UUID",
		})
	}
	if err := h.settingsService.DeleteTrustedVendor(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}
