package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"hirewise/cv-matcher/internal/models"
	"hirewise/cv-matcher/internal/services"
)

type JobHandler struct {
	analyzer services.Analyzer
	model    string
}

func NewJobHandler(analyzer services.Analyzer, model string) *JobHandler {
	return &JobHandler{
		analyzer: analyzer,
		model:    model,
	}
}

// HandleGenerateDescription handles POST /api/v1/generate-job-description.
func (h *JobHandler) HandleGenerateDescription(c *fiber.Ctx) error {
	var req models.GenerateJobDescriptionRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Title == "" || req.Level == "" || req.Department == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "title, level and department are required",
		})
	}

	generated, err := h.analyzer.GenerateJobDescription(c.UserContext(), req)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(models.APIResponse{
		Success: true,
		Data:    generated,
		Message: "Job description generated successfully",
		Metadata: map[string]any{
			"model":    h.model,
			"language": req.Language,
		},
	})
}

// HandleGenerateQuestions handles POST /api/v1/generate-interview-questions.
func (h *JobHandler) HandleGenerateQuestions(c *fiber.Ctx) error {
	var req models.GenerateInterviewQuestionsRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.JobID == "" || req.JobTitle == "" || req.Department == "" || req.Level == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_id, job_title, department and level are required",
		})
	}

	questions, err := h.analyzer.GenerateInterviewQuestions(c.UserContext(), req)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(models.APIResponse{
		Success: true,
		Data:    questions,
		Message: "Interview questions generated successfully",
		Metadata: map[string]any{
			"model":           h.model,
			"language":        req.Language,
			"question_count":  strings.Count(questions.Questions, "?"),
			"character_count": len(questions.Questions),
		},
	})
}
