package routes

import (
	"errors"
	"strconv"

	"github.com/busradar/busradar/pkg/tracker"
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
)

// Operator identity is established by the platform gateway and passed
// through on this header. The core only checks assignment, never
// credentials.
const operatorRefHeader = "X-Operator-Ref"

var trackerConfig = tracker.LoadConfig()

func LocationsRouter(router fiber.Router) {
	router.Post("/update", requireOperator, updateLocation)
	router.Post("/status", requireOperator, setOnlineStatus)
	router.Get("/", listLocations)
	router.Get("/nearby", nearbyVehicles)
	router.Get("/:identifier", getLocation)
	router.Get("/:identifier/history", getLocationHistory)
}

func requireOperator(c *fiber.Ctx) error {
	if c.Get(operatorRefHeader) == "" {
		c.SendStatus(fiber.StatusUnauthorized)
		return c.JSON(fiber.Map{
			"error": "Operator identity is required",
		})
	}

	return c.Next()
}

func updateLocation(c *fiber.Ctx) error {
	var input tracker.ReportInput
	if err := c.BodyParser(&input); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Could not parse request body",
		})
	}

	snapshot, err := tracker.ReportPosition(c.Context(), trackerConfig, c.Get(operatorRefHeader), &input)
	if err != nil {
		return renderTrackerError(c, err)
	}

	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, snapshot)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce VehicleSnapshot",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Location updated successfully",
		"vehicle": reduced,
	})
}

func setOnlineStatus(c *fiber.Ctx) error {
	var input struct {
		VehicleID string `json:"vehicleId"`
		IsOnline  *bool  `json:"isOnline"`
	}
	if err := c.BodyParser(&input); err != nil || input.IsOnline == nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "isOnline is required",
		})
	}

	err := tracker.SetOnlineStatus(c.Context(), c.Get(operatorRefHeader), input.VehicleID, *input.IsOnline)
	if err != nil {
		return renderTrackerError(c, err)
	}

	status := "offline"
	if *input.IsOnline {
		status = "online"
	}

	return c.JSON(fiber.Map{
		"message": "Driver status updated to " + status,
	})
}

func listLocations(c *fiber.Ctx) error {
	filter := tracker.ListFilter{
		RouteRef: c.Query("routeId"),
	}

	switch c.Query("isOnline") {
	case "":
	case "true":
		online := true
		filter.IsOnline = &online
	case "false":
		online := false
		filter.IsOnline = &online
	default:
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter isOnline should be true or false",
		})
	}

	snapshots, err := tracker.ListVehicleSnapshots(c.Context(), trackerConfig, filter)
	if err != nil {
		return renderTrackerError(c, err)
	}

	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, snapshots)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce VehicleSnapshots",
		})
	}

	return c.JSON(reduced)
}

func nearbyVehicles(c *fiber.Ctx) error {
	var latitude *float64
	var longitude *float64

	if latitudeQuery := c.Query("latitude"); latitudeQuery != "" {
		parsed, err := strconv.ParseFloat(latitudeQuery, 64)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter latitude should be a number",
			})
		}
		latitude = &parsed
	}

	if longitudeQuery := c.Query("longitude"); longitudeQuery != "" {
		parsed, err := strconv.ParseFloat(longitudeQuery, 64)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter longitude should be a number",
			})
		}
		longitude = &parsed
	}

	radiusKm, err := strconv.ParseFloat(c.Query("radius", "5"), 64)
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter radius should be a number",
		})
	}

	snapshots, err := tracker.FindNearby(c.Context(), trackerConfig, latitude, longitude, radiusKm)
	if err != nil {
		return renderTrackerError(c, err)
	}

	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, snapshots)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce VehicleSnapshots",
		})
	}

	return c.JSON(reduced)
}

func getLocation(c *fiber.Ctx) error {
	snapshot, err := tracker.GetVehicleSnapshot(c.Context(), trackerConfig, c.Params("identifier"))
	if err != nil {
		return renderTrackerError(c, err)
	}

	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, snapshot)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce VehicleSnapshot",
		})
	}

	return c.JSON(reduced)
}

func getLocationHistory(c *fiber.Ctx) error {
	hours, err := strconv.ParseFloat(c.Query("hours", "1"), 64)
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter hours should be a number",
		})
	}

	reports, err := tracker.VehicleHistory(c.Context(), c.Params("identifier"), hours)
	if err != nil {
		return renderTrackerError(c, err)
	}

	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, reports)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce PositionReports",
		})
	}

	return c.JSON(reduced)
}

func renderTrackerError(c *fiber.Ctx, err error) error {
	if tracker.IsValidationError(err) {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if errors.Is(err, tracker.ErrVehicleNotFound) {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Vehicle not found or not assigned to you",
		})
	}

	log.Error().Err(err).Msg("Location request failed")

	c.SendStatus(fiber.StatusInternalServerError)
	return c.JSON(fiber.Map{
		"error": "Server error",
	})
}
