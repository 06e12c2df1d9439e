package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mumcuarda/debit/internal/export"
	"github.com/mumcuarda/debit/internal/service"
)

// SlipHandler handles slip upload and debit-note generation endpoints.
type SlipHandler struct {
	slipService service.SlipService
}

// NewSlipHandler creates a new SlipHandler.
func NewSlipHandler(slipService service.SlipService) *SlipHandler {
	return &SlipHandler{slipService: slipService}
}

// Process handles POST /api/v1/slips/process. It accepts a multipart form
// with the slip document and the two user-entered reference suffixes, and
// responds with a zip holding both generated debit notes.
func (h *SlipHandler) Process(c *gin.Context) {
	file, header, err := c.Request.FormFile("slip")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "slip field is required")
		return
	}
	defer func() { _ = file.Close() }()

	refASuffix := c.PostForm("reference_a_suffix")
	refBSuffix := c.PostForm("reference_b_suffix")
	if refASuffix == "" || refBSuffix == "" {
		RespondError(c, http.StatusBadRequest, "MISSING_REFERENCE",
			"reference_a_suffix and reference_b_suffix fields are required")
		return
	}

	result, err := h.slipService.Process(c.Request.Context(), service.ProcessInput{
		FileName:         header.Filename,
		File:             file,
		Size:             header.Size,
		ReferenceASuffix: refASuffix,
		ReferenceBSuffix: refBSuffix,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Data(http.StatusOK, "application/zip", result.Archive)
}

// Extract handles POST /api/v1/slips/extract. It runs the extraction
// pipeline only and returns the parsed fields as JSON.
func (h *SlipHandler) Extract(c *gin.Context) {
	file, header, err := c.Request.FormFile("slip")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "slip field is required")
		return
	}
	defer func() { _ = file.Close() }()

	parsed, err := h.slipService.Extract(c.Request.Context(), service.ExtractInput{
		FileName: header.Filename,
		File:     file,
		Size:     header.Size,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"slip":             parsed,
		"net_premium":      parsed.NetPremium(),
		"due_date_display": parsed.DueDateDisplay(),
	})
}

// Export handles POST /api/v1/slips/export?format=xlsx|csv. It extracts the
// slip and returns its fields as a single-row sheet.
func (h *SlipHandler) Export(c *gin.Context) {
	file, header, err := c.Request.FormFile("slip")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "slip field is required")
		return
	}
	defer func() { _ = file.Close() }()

	parsed, err := h.slipService.Extract(c.Request.Context(), service.ExtractInput{
		FileName: header.Filename,
		File:     file,
		Size:     header.Size,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	format := c.DefaultQuery("format", "xlsx")
	switch format {
	case "xlsx":
		data, err := export.XLSXBytes(parsed)
		if err != nil {
			HandleError(c, err)
			return
		}
		c.Header("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", export.BuildFilename(parsed.SlipNo, "xlsx")))
		c.Data(http.StatusOK,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	case "csv":
		var buf bytes.Buffer
		buf.Write(export.BOM)
		w := export.NewWriter(&buf)
		if err := w.WriteHeader(); err != nil {
			HandleError(c, err)
			return
		}
		if err := w.WriteSlip(parsed); err != nil {
			HandleError(c, err)
			return
		}
		w.Flush()
		if err := w.Error(); err != nil {
			HandleError(c, err)
			return
		}
		c.Header("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", export.BuildFilename(parsed.SlipNo, "csv")))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be xlsx or csv")
	}
}
