package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/saveurlabs/cookbook/internal/models"
	"github.com/saveurlabs/cookbook/internal/repository"
)

type RecipeHandler struct {
	repo *repository.Repository
}

func NewRecipeHandler(repo *repository.Repository) *RecipeHandler {
	return &RecipeHandler{repo: repo}
}

// RegisterRoutes mounts the recipe routes; mutate middleware (rate limiting)
// is applied to the writing endpoints only.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, mutate ...gin.HandlerFunc) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", append(mutate, h.CreateRecipe)...)
		recipes.PUT("/:id", append(mutate, h.UpdateRecipe)...)
		recipes.DELETE("/:id", append(mutate, h.DeleteRecipe)...)
		recipes.POST("/:id/ingredients", append(mutate, h.AddIngredient)...)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.repo.ListRecipes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// GetRecipe returns the bare recipe, or the resolved view with ingredients and
// total cost when ?withIngredients=true is given.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if c.Query("withIngredients") == "true" {
		resolved, err := h.repo.ResolveRecipe(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resolved)
		return
	}

	recipe, err := h.repo.GetRecipe(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var in models.RecipeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if in.Name == nil || *in.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name must be a non-empty string"})
		return
	}

	recipe, err := h.repo.CreateRecipe(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var in models.RecipeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if in.Name == nil || *in.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name must be a non-empty string"})
		return
	}

	recipe, err := h.repo.UpdateRecipe(c.Request.Context(), in, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	success, err := h.repo.DeleteRecipe(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": success})
}

type addIngredientRequest struct {
	Ingredient *string  `json:"ingredient"`
	Amount     *float64 `json:"amount"`
}

// AddIngredient links an existing ingredient to the recipe.
func (h *RecipeHandler) AddIngredient(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req addIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Ingredient == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ingredient is required"})
		return
	}
	if _, err := uuid.Parse(*req.Ingredient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}
	if req.Amount != nil && *req.Amount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must not be negative"})
		return
	}

	link, err := h.repo.AddRecipeIngredient(c.Request.Context(), id, *req.Ingredient, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}
