package handler

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/localbiz/directory-api/internal/core/ports"
)

const imageFormField = "image"

// BusinessHandler handles HTTP requests for business listing operations.
type BusinessHandler struct {
	service ports.BusinessService
}

func NewBusinessHandler(service ports.BusinessService) *BusinessHandler {
	return &BusinessHandler{service: service}
}

// Create handles POST /api/business (multipart form, optional image file).
//
// @Summary      Create a business listing
// @Tags         business
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        name         formData  string  true   "Business name"
// @Param        category     formData  string  true   "Category"
// @Param        location     formData  string  true   "Location"
// @Param        services     formData  string  true   "Offered services"
// @Param        pricing      formData  string  true   "Pricing"
// @Param        description  formData  string  true   "Description"
// @Param        image        formData  file    false  "Listing image"
// @Success      201  {object}  businessResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/business [post]
func (h *BusinessHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var form businessForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	imagePath, cleanup, err := saveUploadedImage(c)
	if err != nil {
		return err
	}
	defer cleanup()

	created, err := h.service.Create(c.Request().Context(), identity.UserID, toBusinessInput(form, imagePath))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toBusinessResponse(created))
}

// List handles GET /api/business — the paginated public listing.
//
// @Summary      List businesses (paginated)
// @Tags         business
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 10)"
// @Success      200  {object}  pagedBusinessesResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/business [get]
func (h *BusinessHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ListBusinessesInput{Page: page, Limit: limit})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPagedResponse(result))
}

// Search handles GET /api/business/search?category=&location=.
//
// @Summary      Search businesses by category and location
// @Tags         business
// @Produce      json
// @Param        category  query     string  true  "Category substring (case-insensitive)"
// @Param        location  query     string  true  "Location substring (case-insensitive)"
// @Success      200  {object}  businessListResponse
// @Failure      400  {object}  errorResponse
// @Router       /api/business/search [get]
func (h *BusinessHandler) Search(c echo.Context) error {
	items, err := h.service.Search(c.Request().Context(), c.QueryParam("category"), c.QueryParam("location"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBusinessListResponse(items))
}

// GetByOwner handles GET /api/business/owner — the caller's own listings.
//
// @Summary      List own businesses
// @Tags         business
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  businessListResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/business/owner [get]
func (h *BusinessHandler) GetByOwner(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	items, err := h.service.GetByOwner(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBusinessListResponse(items))
}

// GetByID handles GET /api/business/:id — public read, no ownership check.
//
// @Summary      Get a business by id
// @Tags         business
// @Produce      json
// @Param        id   path      string  true  "Business id"
// @Success      200  {object}  businessResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/business/{id} [get]
func (h *BusinessHandler) GetByID(c echo.Context) error {
	b, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBusinessResponse(b))
}

// Update handles PUT /api/business/:id (multipart form, optional image file).
// Without a new image the stored image URL is preserved.
//
// @Summary      Update a business listing
// @Tags         business
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      string  true   "Business id"
// @Param        name         formData  string  true   "Business name"
// @Param        category     formData  string  true   "Category"
// @Param        location     formData  string  true   "Location"
// @Param        services     formData  string  true   "Offered services"
// @Param        pricing      formData  string  true   "Pricing"
// @Param        description  formData  string  true   "Description"
// @Param        image        formData  file    false  "Replacement image"
// @Success      200  {object}  businessResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/business/{id} [put]
func (h *BusinessHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var form businessForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	imagePath, cleanup, err := saveUploadedImage(c)
	if err != nil {
		return err
	}
	defer cleanup()

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), identity.UserID, toBusinessInput(form, imagePath))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toBusinessResponse(updated))
}

// Delete handles DELETE /api/business/:id.
//
// @Summary      Delete a business listing
// @Tags         business
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Business id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/business/{id} [delete]
func (h *BusinessHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), identity.UserID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "business deleted"})
}

// saveUploadedImage spools the optional image form part to a temp file and
// returns its path. The path is empty when no file was submitted. The
// returned cleanup removes the temp file after the service call.
func saveUploadedImage(c echo.Context) (string, func(), error) {
	noop := func() {}

	// A missing part (or a non-multipart request) means no image was
	// submitted; that is not an error.
	fh, err := c.FormFile(imageFormField)
	if err != nil {
		return "", noop, nil
	}

	src, err := fh.Open()
	if err != nil {
		return "", noop, echo.NewHTTPError(http.StatusBadRequest, "unreadable image upload")
	}
	defer src.Close()

	dst, err := os.CreateTemp("", "upload-*"+filepath.Ext(fh.Filename))
	if err != nil {
		return "", noop, err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", noop, err
	}
	dst.Close()

	path := dst.Name()
	return path, func() { os.Remove(path) }, nil
}
