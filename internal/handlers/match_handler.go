package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"hirewise/cv-matcher/internal/models"
	"hirewise/cv-matcher/internal/services"
)

type MatchHandler struct {
	analyzer services.Analyzer
	model    string
}

func NewMatchHandler(analyzer services.Analyzer, model string) *MatchHandler {
	return &MatchHandler{
		analyzer: analyzer,
		model:    model,
	}
}

// HandleMatchJobs handles POST /api/v1/match-cv-jobs.
func (h *MatchHandler) HandleMatchJobs(c *fiber.Ctx) error {
	var req models.MatchRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.CVText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cv_text is required",
		})
	}

	if req.CVData.FullName == "" || req.CVData.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cv_data.full_name and cv_data.email are required",
		})
	}

	if len(req.Jobs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "jobs must not be empty",
		})
	}

	seen := make(map[string]struct{}, len(req.Jobs))
	for _, job := range req.Jobs {
		if job.ID == "" || job.Title == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "every job needs an id and a title",
			})
		}
		if _, dup := seen[job.ID]; dup {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("duplicate job id: %s", job.ID),
			})
		}
		seen[job.ID] = struct{}{}
	}

	report, err := h.analyzer.MatchJobs(c.UserContext(), req)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(models.APIResponse{
		Success: true,
		Data:    report,
		Message: "CV-Job matching completed",
		Metadata: map[string]any{
			"model":          h.model,
			"jobs_analyzed":  len(req.Jobs),
			"primary_job_id": req.PrimaryJobID,
		},
	})
}
