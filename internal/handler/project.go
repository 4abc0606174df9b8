package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/harue/projectboard/internal/domain"
	"github.com/harue/projectboard/internal/repository"
)

// ProjectHandler handles the project CRUD endpoints.
type ProjectHandler struct {
	projects *repository.ProjectRepository
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projects *repository.ProjectRepository) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// Register mounts the project routes on the given echo instance.
func (h *ProjectHandler) Register(e *echo.Echo) {
	e.GET("/projects", h.List)
	e.GET("/projects/:id", h.Get)
	e.POST("/projects", h.Create)
	e.PUT("/projects/:id", h.Update)
	e.DELETE("/projects/:id", h.Delete)
}

// projectRequest is the body shape shared by Create and Update.
type projectRequest struct {
	ProjectName string `json:"project_name" validate:"required"`
	Grade       string `json:"grade" validate:"required"`
	StartDate   string `json:"start_date" validate:"required"`
	Complete    bool   `json:"complete"`
}

func (r projectRequest) toDomain() domain.Project {
	return domain.Project{
		ProjectName: r.ProjectName,
		Grade:       r.Grade,
		StartDate:   r.StartDate,
		Complete:    r.Complete,
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

// List returns all projects in store order.
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.projects.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Get returns a single project by id.
func (h *ProjectHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	project, err := h.projects.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Create inserts a new project from the request body.
func (h *ProjectHandler) Create(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.projects.Create(c.Request().Context(), req.toDomain()); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, messageResponse{Message: "Project added successfully"})
}

// Update overwrites all fields of the project with the given id. An id with
// no matching row affects nothing and still reports success.
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.projects.Update(c.Request().Context(), id, req.toDomain()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Project updated successfully"})
}

// Delete removes the project with the given id, succeeding even when no row
// matched.
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.projects.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Project deleted successfully"})
}

// pathID parses the :id path parameter. A non-numeric segment names no row,
// so it maps to not-found rather than a validation failure.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.ErrNotFound
	}
	return id, nil
}
