package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/povarna/aoc2021/internal/api/middleware"
	"github.com/povarna/aoc2021/internal/models"
)

const OpenAPIPath = "/api/v1/openapi.json"

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.GET("/puzzles").
			To(handler.ListPuzzles).
			Doc("List registered puzzle variants").
			Metadata(restfulspec.KeyOpenAPITags, []string{"puzzles"}).
			Writes(models.PuzzleList{}).
			Returns(200, "OK", models.PuzzleList{}))

	ws.
		Route(ws.POST("/solve/{day}/{part}").
			To(handler.Solve).
			Doc("Solve one part of a day's puzzle").
			Metadata(restfulspec.KeyOpenAPITags, []string{"puzzles"}).
			Param(ws.PathParameter("day", "Puzzle day (1-25)").DataType("integer")).
			Param(ws.PathParameter("part", "Puzzle part (1 or 2)").DataType("integer")).
			Param(ws.QueryParameter("variant", "Implementation variant (default: 'default')").DataType("string").Required(false)).
			Reads(SolveBody{}).
			Writes(models.SolveResult{}).
			Returns(200, "OK", models.SolveResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Puzzle Not Found", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "AoC 2021 Solver API",
			Description: "Advent of Code 2021 puzzle solvers",
			Version:     Version,
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
		{TagProps: spec.TagProps{Name: "puzzles", Description: "Puzzle solving"}},
	}
}

// NewContainer builds a container with filters, routes and the OpenAPI document.
func NewContainer(handler *Handler) *restful.Container {
	container := restful.NewContainer()
	container.Filter(middleware.Logger(handler.logger))
	container.Filter(middleware.RecoverPanic(handler.logger))

	RegisterRoutes(container, handler)

	container.Add(restfulspec.NewOpenAPIService(restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       OpenAPIPath,
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}))
	return container
}
