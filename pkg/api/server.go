package api

import (
	"github.com/busradar/busradar/pkg/api/routes"
	"github.com/gofiber/fiber/v2"
)

func SetupServer(listen string) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.LocationsRouter(group.Group("/bus-locations"))

	return webApp.Listen(listen)
}
