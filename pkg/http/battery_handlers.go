package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"liyu1981.xyz/battlogger/pkg/models"
)

// listingQuery maps the /api/data query string onto a BatteryQuery. The model
// filter is called "name" on the wire.
func listingQuery(c *gin.Context) models.BatteryQuery {
	return models.BatteryQuery{
		ModelID:      c.Query("name"),
		FormFactorID: c.Query("formfactor"),
		ChemistryID:  c.Query("chemistry"),
		SortBy:       c.Query("sortBy"),
		Order:        c.Query("order"),
	}
}

func (rs *RestfulServer) GetData(c *gin.Context) {
	rows, err := rs.Battlog.Battery.ListBatteries(c.Request.Context(), listingQuery(c))
	if err != nil {
		rs.respondError(c, err, "Failed to fetch battery data.")
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (rs *RestfulServer) GetBattery(c *gin.Context) {
	battery, err := rs.Battlog.Battery.GetBattery(c.Request.Context(), c.Param("batteryId"))
	if err != nil {
		rs.respondError(c, err, "Failed to fetch battery.")
		return
	}
	c.JSON(http.StatusOK, battery)
}

func (rs *RestfulServer) GetBatteryDetails(c *gin.Context) {
	details, err := rs.Battlog.Battery.GetBatteryDetails(c.Request.Context(), c.Param("batteryId"))
	if err != nil {
		rs.respondError(c, err, "Failed to fetch battery details.")
		return
	}
	c.JSON(http.StatusOK, details)
}

func (rs *RestfulServer) CreateBattery(c *gin.Context) {
	body := readBody(c)

	batteryID, okBattery := body.NonEmptyString("batteryId")
	modelID, okModel := body.NonEmptyString("modelIdentifier")
	if !okBattery || !okModel {
		badRequest(c, "Missing required fields.")
		return
	}

	if err := rs.Battlog.Battery.CreateBattery(c.Request.Context(), batteryID, modelID); err != nil {
		rs.respondError(c, err, "Failed to create battery.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Battery created successfully", "id": batteryID})
}

func (rs *RestfulServer) UpdateBattery(c *gin.Context) {
	body := readBody(c)

	modelID, ok := body.NonEmptyString("modelIdentifier")
	if !ok {
		badRequest(c, "Missing required fields.")
		return
	}

	if err := rs.Battlog.Battery.UpdateBattery(c.Request.Context(), c.Param("batteryId"), modelID); err != nil {
		rs.respondError(c, err, "Failed to update battery.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Battery updated successfully"})
}

func (rs *RestfulServer) DeleteBattery(c *gin.Context) {
	if err := rs.Battlog.Battery.DeleteBattery(c.Request.Context(), c.Param("batteryId")); err != nil {
		rs.respondError(c, err, "Failed to delete battery.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Battery deleted successfully"})
}
