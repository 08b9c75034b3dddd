package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"liyu1981.xyz/battlogger/pkg/battlog"
	"liyu1981.xyz/battlogger/pkg/models"
)

func (rs *RestfulServer) GetBatteryTests(c *gin.Context) {
	tests, err := rs.Battlog.TestRun.GetBatteryTests(c.Request.Context(), c.Param("batteryId"))
	if err != nil {
		rs.respondError(c, err, "Failed to fetch battery tests.")
		return
	}
	c.JSON(http.StatusOK, tests)
}

func (rs *RestfulServer) CreateTestRun(c *gin.Context) {
	input, err := battlog.TestRunFromFields(readBody(c))
	if err != nil {
		rs.respondError(c, err, "Failed to add battery test.")
		return
	}

	id, err := rs.Battlog.TestRun.CreateTestRun(c.Request.Context(), input)
	if err != nil {
		rs.respondError(c, err, "Failed to add battery test.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Battery test added successfully.", "id": id})
}

func (rs *RestfulServer) GetTestRunProcesses(c *gin.Context) {
	processes, err := rs.Battlog.TestRun.GetTestRunProcesses(c.Request.Context())
	if err != nil {
		rs.respondError(c, err, "Failed to fetch test run processes.")
		return
	}
	c.JSON(http.StatusOK, processes)
}

func (rs *RestfulServer) CreateTestRunProcess(c *gin.Context) {
	body := readBody(c)

	name, ok := body.NonEmptyString("name")
	if !ok {
		badRequest(c, "Missing required field: name.")
		return
	}
	description, ok := body.NonEmptyString("description")
	if !ok {
		badRequest(c, "Missing required field: description.")
		return
	}

	id, err := rs.Battlog.TestRun.CreateTestRunProcess(c.Request.Context(), &models.TestRunProcess{
		Name:        name,
		Description: description,
	})
	if err != nil {
		rs.respondError(c, err, "Failed to create test run process.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Test run process created successfully", "id": id})
}
