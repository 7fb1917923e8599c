package analyses

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillgap-backend/internal/extract"
	"skillgap-backend/internal/shared/server/respond"
	"skillgap-backend/internal/shared/util"
)

// maxUploadBytes caps resume uploads at 5 MiB.
const maxUploadBytes = 5 << 20

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.uploadResume)
	rg.GET("/roles", h.listRoles)
	rg.GET("/sessions/:id/summary", h.sessionView(summaryView))
	rg.GET("/sessions/:id/ats", h.sessionView(atsView))
	rg.GET("/sessions/:id/roles", h.sessionView(rolesView))
	rg.GET("/sessions/:id/courses", h.sessionView(coursesView))
	rg.GET("/sessions/:id/roadmap", h.sessionView(roadmapView))
}

func (h *Handler) uploadResume(c *gin.Context) {
	jobRole := c.PostForm("jobRole")
	if jobRole == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Job role is required", nil)
		return
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Resume file is required", nil)
		return
	}
	if fileHeader.Filename == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "No file selected", nil)
		return
	}
	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid file name", nil)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "Resume must be 5 MB or smaller", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to read uploaded file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to read uploaded file", nil)
		return
	}
	if len(data) > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "Resume must be 5 MB or smaller", nil)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	session, err := h.Svc.Analyze(c.Request.Context(), data, contentType, fileName, jobRole)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownRole):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Unknown job role", nil)
		case errors.Is(err, extract.ErrUnsupportedFormat):
			respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_format", "Please upload a PDF or DOCX resume", nil)
		case errors.Is(err, ErrEmptyText), errors.Is(err, ErrNotAResume):
			respond.Error(c, http.StatusBadRequest, "not_a_resume",
				"This file does not appear to be a resume. Please upload a valid resume (PDF or DOCX) containing sections like Education, Experience, Skills, etc.", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to analyze resume", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{
		"sessionId": session.ID,
		"message":   "Resume analyzed successfully",
	})
}

func (h *Handler) listRoles(c *gin.Context) {
	type roleInfo struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	roles := make([]roleInfo, 0, len(h.Svc.Dict.RoleOrder))
	for _, name := range h.Svc.Dict.RoleOrder {
		role, ok := h.Svc.Dict.Role(name)
		if !ok {
			continue
		}
		roles = append(roles, roleInfo{Name: role.Name, Description: role.Description})
	}
	respond.OK(c, gin.H{"roles": roles})
}

// sessionView adapts a projection over a stored session into a gin handler.
func (h *Handler) sessionView(view func(Session) any) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				respond.Error(c, http.StatusNotFound, "not_found", "Session not found. Please upload a resume first.", nil)
			default:
				respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to fetch session", nil)
			}
			return
		}
		respond.OK(c, view(session))
	}
}

func summaryView(s Session) any {
	analysis := s.Outcome.Analysis
	comparison := analysis.SkillComparison
	parsed := analysis.Profile
	return gin.H{
		"profile":          comparison.Profile,
		"experienceLevel":  comparison.ExperienceLevel,
		"strengths":        comparison.Strengths,
		"weaknesses":       comparison.Weaknesses,
		"technical":        comparison.Technical,
		"soft":             comparison.Soft,
		"projects":         comparison.Projects,
		"foundTechnical":   parsed.FoundTechnical,
		"foundSoft":        parsed.FoundSoft,
		"missingTechnical": parsed.MissingTechnical,
		"missingSoft":      parsed.MissingSoft,
	}
}

func atsView(s Session) any {
	analysis := s.Outcome.Analysis
	return gin.H{
		"atsScore":        analysis.ATSScore,
		"matchLabel":      analysis.MatchLabel,
		"riskAssessment":  analysis.Risk,
		"sectionScores":   analysis.SectionScores,
		"keywordDensity":  analysis.KeywordDensity,
		"missingKeywords": analysis.MissingKeywords,
		"roleMatches":     analysis.RoleMatches,
		"simulator":       analysis.Simulator,
		"aiInsight":       analysis.Insight,
	}
}

func rolesView(s Session) any {
	return s.Outcome.Analysis.RecommendedRole
}

func coursesView(s Session) any {
	return gin.H{"courses": s.Outcome.Courses}
}

func roadmapView(s Session) any {
	return s.Outcome.Analysis.LearningRoadmap
}
