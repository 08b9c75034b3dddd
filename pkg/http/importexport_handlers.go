package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"liyu1981.xyz/battlogger/pkg/models"
	"liyu1981.xyz/battlogger/pkg/report"
)

const xlsxKind = "xlsx"

var importedMessages = map[models.EntityType]string{
	models.EntityAll:              "All data imported successfully",
	models.EntityChemistries:      "Chemistries imported successfully",
	models.EntityFormFactors:      "Form factors imported successfully",
	models.EntityModels:           "Models imported successfully",
	models.EntityBatteries:        "Batteries imported successfully",
	models.EntityTestRuns:         "Test runs imported successfully",
	models.EntityTestRunProcesses: "Test run processes imported successfully",
}

// entityKind reads the :kind parameter. A bare /api/export or /api/import
// addresses the whole dataset.
func entityKind(c *gin.Context) (models.EntityType, bool) {
	raw := c.Param("kind")
	if raw == "" {
		return models.EntityAll, true
	}
	return models.ParseEntityType(raw)
}

func attachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

func (rs *RestfulServer) Export(c *gin.Context) {
	if c.Param("kind") == xlsxKind {
		rs.ExportXLSX(c)
		return
	}

	kind, ok := entityKind(c)
	if !ok {
		badRequest(c, "Invalid data type.")
		return
	}

	data, err := rs.Battlog.ImportExport.ExportEntityType(c.Request.Context(), kind)
	if err != nil {
		rs.respondError(c, err, fmt.Sprintf("Failed to export %s.", kind))
		return
	}
	attachment(c, kind.Filename(), "application/json", data)
}

// ExportXLSX renders the battery listing, filtered like /api/data, as a
// spreadsheet download.
func (rs *RestfulServer) ExportXLSX(c *gin.Context) {
	rows, err := rs.Battlog.Battery.ListBatteries(c.Request.Context(), listingQuery(c))
	if err != nil {
		rs.respondError(c, err, "Failed to fetch battery data.")
		return
	}

	data, err := report.BatteryListingWorkbook(rows)
	if err != nil {
		rs.respondError(c, err, "Failed to build spreadsheet.")
		return
	}
	attachment(c, report.Filename, report.ContentType, data)
}

func (rs *RestfulServer) Import(c *gin.Context) {
	kind, ok := entityKind(c)
	if !ok {
		badRequest(c, "Invalid data type.")
		return
	}

	data, err := c.GetRawData()
	if err != nil {
		badRequest(c, "Invalid JSON payload.")
		return
	}

	if err := rs.Battlog.ImportExport.ImportEntityType(c.Request.Context(), kind, data); err != nil {
		rs.respondError(c, err, fmt.Sprintf("Failed to import %s.", kind))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": importedMessages[kind]})
}
