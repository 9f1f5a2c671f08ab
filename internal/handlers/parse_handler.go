package handlers

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"hirewise/cv-matcher/internal/models"
	"hirewise/cv-matcher/internal/services"
)

type ParseHandler struct {
	analyzer    services.Analyzer
	model       string
	maxFileSize int64
}

func NewParseHandler(analyzer services.Analyzer, model string, maxFileSize int64) *ParseHandler {
	return &ParseHandler{
		analyzer:    analyzer,
		model:       model,
		maxFileSize: maxFileSize,
	}
}

// HandleParseCV handles POST /api/v1/parse-cv. The upload is accepted under
// either "file" or "cv_file" for compatibility with older clients.
func (h *ParseHandler) HandleParseCV(c *fiber.Ctx) error {
	fileHeader := h.uploadedFile(c)
	if fileHeader == nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "No file provided",
		})
	}

	if fileHeader.Size == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is empty",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	data, err := readAll(fileHeader)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}

	parsed, err := h.analyzer.ParseCV(c.UserContext(), fileHeader.Filename, data)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(models.APIResponse{
		Success: true,
		Data:    parsed,
		Message: "CV parsed successfully",
		Metadata: map[string]any{
			"model":    h.model,
			"filename": fileHeader.Filename,
		},
	})
}

func (h *ParseHandler) uploadedFile(c *fiber.Ctx) *multipart.FileHeader {
	for _, field := range []string{"file", "cv_file"} {
		if fh, err := c.FormFile(field); err == nil && fh != nil {
			return fh
		}
	}
	return nil
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
