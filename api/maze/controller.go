package mazeapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/amazeing/api/middleware"
	dmn "github.com/beka-birhanu/amazeing/domain"
	"github.com/beka-birhanu/amazeing/maze"
	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Controller handles maze generation and storage requests.
type Controller struct {
	mazeService i.MazeService
}

// NewController creates a maze controller.
func NewController(s i.MazeService) (*Controller, error) {
	if s == nil {
		return nil, errors.New("maze controller needs a maze service")
	}
	return &Controller{
		mazeService: s,
	}, nil
}

// RegisterPublic registers public routes.
func (c *Controller) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/generate", c.generate)
		mazes.GET("/:ID", c.byID)
	}
}

// RegisterProtected registers privileged routes.
func (c *Controller) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", c.save)
	}
}

// generate builds a maze without storing it.
func (c *Controller) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := c.mazeService.Generate(ctx.Request.Context(), request.Options())
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(m))
}

// save builds a maze and stores it for the caller.
func (c *Controller) save(ctx *gin.Context) {
	owner, ok := middleware.Subject(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "token has no subject"})
		return
	}

	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := c.mazeService.Generate(ctx.Request.Context(), request.Options())
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	id, err := c.mazeService.Save(ctx.Request.Context(), m, owner)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	response := newMazeResponse(m)
	response.ID = id.String()
	ctx.JSON(http.StatusCreated, &SavedResponse{ID: id.String(), Maze: response})
}

// byID returns a stored maze.
func (c *Controller) byID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return
	}

	m, err := c.mazeService.ByID(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	response := newMazeResponse(m)
	response.ID = id.String()
	ctx.JSON(http.StatusOK, response)
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, maze.ErrInvalidDimensions),
		errors.Is(err, maze.ErrOutOfBounds),
		errors.Is(err, maze.ErrSameEndpoints):
		return http.StatusBadRequest
	case errors.Is(err, maze.ErrUnsatisfiableMask):
		return http.StatusUnprocessableEntity
	case errors.Is(err, dmn.ErrMazeNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
