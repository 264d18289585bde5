package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/saveurlabs/cookbook/internal/models"
	"github.com/saveurlabs/cookbook/internal/repository"
)

type IngredientHandler struct {
	repo *repository.Repository
}

func NewIngredientHandler(repo *repository.Repository) *IngredientHandler {
	return &IngredientHandler{repo: repo}
}

// RegisterRoutes mounts the ingredient routes; mutate middleware (rate
// limiting) is applied to the writing endpoints only.
func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup, mutate ...gin.HandlerFunc) {
	ingredients := router.Group("/ingredients")
	{
		ingredients.GET("", h.ListIngredients)
		ingredients.GET("/:id", h.GetIngredient)
		ingredients.POST("", append(mutate, h.CreateIngredient)...)
		ingredients.PUT("/:id", append(mutate, h.UpdateIngredient)...)
		ingredients.DELETE("/:id", append(mutate, h.DeleteIngredient)...)
	}
}

func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	ingredients, err := h.repo.ListIngredients(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

func (h *IngredientHandler) GetIngredient(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	ingredient, err := h.repo.GetIngredient(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

func (h *IngredientHandler) CreateIngredient(c *gin.Context) {
	var in models.IngredientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if in.Name == nil || *in.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name must be a non-empty string"})
		return
	}
	if in.Price != nil && *in.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
		return
	}

	ingredient, err := h.repo.CreateIngredient(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ingredient)
}

func (h *IngredientHandler) UpdateIngredient(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	var in models.IngredientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if in.Name == nil && in.Price == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "you must provide either a name or a price"})
		return
	}
	if in.Price != nil && *in.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
		return
	}

	ingredient, err := h.repo.UpdateIngredient(c.Request.Context(), in, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

func (h *IngredientHandler) DeleteIngredient(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	success, err := h.repo.DeleteIngredient(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": success})
}
