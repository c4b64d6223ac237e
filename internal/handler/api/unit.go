package api

import (
	"net/http"

	reqdto "estate-marketplace/internal/handler/dto/request"
	resdto "estate-marketplace/internal/handler/dto/response"
	"estate-marketplace/internal/handler/httperr"
	"estate-marketplace/internal/usecase/commands"
	"estate-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UnitHandler struct {
	inventory commands.InventoryCommands
	queries   queries.UnitQueries
}

func NewUnitHandler(inventory commands.InventoryCommands, unitQueries queries.UnitQueries) *UnitHandler {
	reqdto.RegisterValidators()
	return &UnitHandler{
		inventory: inventory,
		queries:   unitQueries,
	}
}

// @Summary Get unit
// @Description Get a unit by ID and record a view
// @Tags units
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/units/{id} [get]
func (h *UnitHandler) GetUnit(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.GetUnit(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	resp, err := resdto.FromUnitView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	success(c, http.StatusOK, gin.H{"unit": resp})
}

// @Summary List project units
// @Tags units
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param status query string false "Unit status"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/units/project/{id} [get]
func (h *UnitHandler) ListProjectUnits(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var q reqdto.ProjectUnitsQuery
	if !bindQuery(c, &q) {
		return
	}

	views, err := h.queries.ListProjectUnits(c.Request.Context(), projectID, q.StatusFilter())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	units, err := resdto.FromUnitViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	success(c, http.StatusOK, gin.H{
		"units": units,
		"count": len(views),
	})
}

// @Summary Search units
// @Description Filter units across projects with keyset pagination
// @Tags units
// @Produce json
// @Security BearerAuth
// @Param projectId query string false "Project ID"
// @Param status query string false "Unit status"
// @Param type query string false "Unit type"
// @Param minPrice query string false "Minimum price"
// @Param maxPrice query string false "Maximum price"
// @Param minArea query string false "Minimum area"
// @Param maxArea query string false "Maximum area"
// @Param bedrooms query int false "Bedrooms"
// @Param floor query int false "Floor"
// @Param cursor query string false "Opaque cursor from a previous page"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /api/units/search [get]
func (h *UnitHandler) SearchUnits(c *gin.Context) {
	var q reqdto.SearchUnitsQuery
	if !bindQuery(c, &q) {
		return
	}
	filters, err := q.ToFilters()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	views, next, err := h.queries.SearchUnits(c.Request.Context(), filters, q.CursorValue(), q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	units, err := resdto.FromUnitViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	payload := gin.H{
		"units": units,
		"count": len(views),
	}
	if next != nil {
		payload["nextCursor"] = next.After
	}
	success(c, http.StatusOK, payload)
}

// @Summary Project unit statistics
// @Tags units
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} httperr.Response
// @Router /api/units/project/{id}/stats [get]
func (h *UnitHandler) ProjectStats(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}

	stats, err := h.queries.ProjectStats(c.Request.Context(), projectID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	success(c, http.StatusOK, gin.H{"stats": stats})
}

// @Summary Create unit
// @Tags units
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body reqdto.CreateUnitRequest true "Unit"
// @Success 201 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/units/project/{id} [post]
func (h *UnitHandler) CreateUnit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CreateUnitRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.inventory.CreateUnit(c.Request.Context(), projectID, actor, req.ToDetails())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	resp, err := resdto.FromUnit(result.Unit, result.Project)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	success(c, http.StatusCreated, gin.H{
		"unit":    resp,
		"project": resdto.FromProject(result.Project),
	})
}

// @Summary Create units in bulk
// @Description All units are created or none are
// @Tags units
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body reqdto.BulkCreateUnitsRequest true "Units"
// @Success 201 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/units/project/{id}/bulk [post]
func (h *UnitHandler) CreateUnitsBulk(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.BulkCreateUnitsRequest
	if !bindJSON(c, &req) {
		return
	}

	units, p, err := h.inventory.CreateUnitsBulk(c.Request.Context(), projectID, actor, req.ToDetails())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	resp, err := resdto.FromUnits(units, p)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	success(c, http.StatusCreated, gin.H{
		"units":   resp,
		"count":   len(units),
		"project": resdto.FromProject(p),
	})
}

// @Summary Update unit
// @Description Edit descriptive fields; status cannot be changed here
// @Tags units
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Param request body reqdto.UpdateUnitRequest true "Patch"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/units/{id} [put]
// @Router /api/units/{id} [patch]
func (h *UnitHandler) UpdateUnit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateUnitRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.inventory.UpdateUnit(c.Request.Context(), id, actor, req.ToPatch())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	resp, err := resdto.FromUnit(result.Unit, result.Project)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	success(c, http.StatusOK, gin.H{"unit": resp})
}

// @Summary Delete unit
// @Description Only available units can be deleted
// @Tags units
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Success 200 {object} map[string]any
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/units/{id} [delete]
func (h *UnitHandler) DeleteUnit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.inventory.DeleteUnit(c.Request.Context(), id, actor); err != nil {
		httperr.Abort(c, err)
		return
	}

	success(c, http.StatusOK, gin.H{"message": "Unit deleted"})
}
