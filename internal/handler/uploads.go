package handler

import (
	"io"
	"net/http"
	"strings"

	"smartwarehouse/internal/apierror"
	"smartwarehouse/internal/service"

	"github.com/gin-gonic/gin"
)

// UploadsHandler serves the bulk CSV movement endpoints. Row-level failures
// come back in the response body; only an unreadable upload fails the request.
type UploadsHandler struct{ svc service.InventoryService }

func NewUploadsHandler(svc service.InventoryService) *UploadsHandler {
	return &UploadsHandler{svc: svc}
}

// UploadOutgoing godoc
// @Summary Upload outgoing sales CSV, decrease stock, alert on rows that run low
// @Tags Sales
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} apierror.APIError
// @Router /upload-csv/ [post]
func (h *UploadsHandler) UploadOutgoing(c *gin.Context) {
	data, ok := readCSVUpload(c)
	if !ok {
		return
	}
	resp, err := h.svc.ProcessOutgoingCSV(c.Request.Context(), data)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UploadIncoming godoc
// @Summary Upload incoming stock CSV and increase stock
// @Tags Inventory
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} apierror.APIError
// @Router /upload-income-csv/ [post]
func (h *UploadsHandler) UploadIncoming(c *gin.Context) {
	data, ok := readCSVUpload(c)
	if !ok {
		return
	}
	resp, err := h.svc.ProcessIncomingCSV(c.Request.Context(), data)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// readCSVUpload extracts the "file" form field and enforces the .csv name
// check. Writes the error response itself when returning ok=false.
func readCSVUpload(c *gin.Context) ([]byte, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Missing file upload"))
		return nil, false
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		c.JSON(http.StatusBadRequest, apierror.New("Must be a CSV file"))
		return nil, false
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Failed to read upload"))
		return nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Failed to read upload"))
		return nil, false
	}
	return data, true
}
