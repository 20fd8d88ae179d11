package handlers

import (
	"net/http"
	"sort"
	"strings"

	response "gravitas_estimator/internal/adapter/http/dto/response"
	"gravitas_estimator/internal/domain/catalog"
	"gravitas_estimator/internal/domain/entities"
	"gravitas_estimator/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only reference data the frontend builds its
// forms from: materials, regional multipliers, project types and plans. The
// catalog is compiled in, so no use case sits behind this handler.

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListMaterials returns the material catalog, optionally filtered by the
// category query parameter.
func (h *CatalogHandler) ListMaterials(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	if category == "" {
		c.JSON(http.StatusOK, response.FromMaterials(catalog.MaterialDatabase))
		return
	}

	materials := catalog.MaterialsByCategory(category)
	if len(materials) == 0 {
		appErr := pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "No materials in this category", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMaterials(materials))
}

// GetMaterialPrice resolves a material's location-adjusted unit price. The
// location query parameter defaults to metro_manila.
func (h *CatalogHandler) GetMaterialPrice(c *gin.Context) {
	mat, ok := catalog.FindMaterial(c.Param("id"))
	if !ok {
		appErr := pkg.NewDomainErrorSimple("MATERIAL_NOT_FOUND", "Material not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	location := catalog.Location(strings.TrimSpace(c.DefaultQuery("location", "metro_manila")))
	c.JSON(http.StatusOK, response.FromMaterialPrice(mat, location))
}

// ListLocations returns every supported location with its price multiplier.
func (h *CatalogHandler) ListLocations(c *gin.Context) {
	locations := make([]response.LocationResponse, 0, len(catalog.LocationMultipliers))
	for l := range catalog.LocationMultipliers {
		locations = append(locations, response.FromLocation(l))
	}
	sort.Slice(locations, func(i, j int) bool { return locations[i].ID < locations[j].ID })

	c.JSON(http.StatusOK, locations)
}

// ListProjectTypes returns the project-type registry, optionally filtered by
// the category query parameter.
func (h *CatalogHandler) ListProjectTypes(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))

	var out []response.ProjectTypeResponse
	if category != "" {
		for _, id := range catalog.ProjectTypesByCategory(category) {
			def, _ := catalog.FindProjectType(id)
			out = append(out, response.FromProjectType(id, def))
		}
		if len(out) == 0 {
			appErr := pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "No project types in this category", http.StatusNotFound)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	} else {
		out = make([]response.ProjectTypeResponse, 0, len(catalog.ProjectTypeDefinitions))
		for id, def := range catalog.ProjectTypeDefinitions {
			out = append(out, response.FromProjectType(id, def))
		}
		sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	}

	c.JSON(http.StatusOK, out)
}

// ListPlans returns the subscription plan matrix.
func (h *CatalogHandler) ListPlans(c *gin.Context) {
	plans := make([]response.PlanResponse, 0, len(entities.SubscriptionPlans))
	for _, p := range entities.SubscriptionPlans {
		plans = append(plans, response.FromPlan(p))
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].Price < plans[j].Price })

	c.JSON(http.StatusOK, plans)
}
