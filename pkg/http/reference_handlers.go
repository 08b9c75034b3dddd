package http

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"liyu1981.xyz/battlogger/pkg/models"
)

func (rs *RestfulServer) GetModelMap(c *gin.Context) {
	modelMap, err := rs.Battlog.Model.GetModelMap(c.Request.Context())
	if err != nil {
		rs.respondError(c, err, "Failed to fetch model map.")
		return
	}
	c.JSON(http.StatusOK, modelMap)
}

func (rs *RestfulServer) GetModelDetails(c *gin.Context) {
	details, err := rs.Battlog.Model.GetModelDetails(c.Request.Context())
	if err != nil {
		rs.respondError(c, err, "Failed to fetch model details.")
		return
	}
	c.JSON(http.StatusOK, details)
}

func (rs *RestfulServer) GetModelDetailsForID(c *gin.Context) {
	model, err := rs.Battlog.Model.GetModel(c.Request.Context(), c.Param("guid"))
	if err != nil {
		rs.respondError(c, err, "Failed to retrieve model details.")
		return
	}
	c.JSON(http.StatusOK, model)
}

func (rs *RestfulServer) CreateModel(c *gin.Context) {
	body := readBody(c)

	name, okName := body.NonEmptyString("name")
	formFactorID, okFormFactor := body.NonEmptyString("formFactorId")
	chemistryID, okChemistry := body.NonEmptyString("chemistryId")
	if !okName || !okFormFactor || !okChemistry {
		badRequest(c, "Missing required fields: name, formFactorId, and chemistryId are required.")
		return
	}

	input := &models.Model{
		Name:         name,
		FormFactorID: formFactorID,
		ChemistryID:  chemistryID,
		Manufacturer: body.OptionalString("manufacturer"),
	}
	if body.Present("designCapacity") {
		if _, ok := body.Number("designCapacity"); !ok {
			badRequest(c, "Design capacity must be a number if provided.")
			return
		}
		capacity, ok := body.Positive("designCapacity")
		if !ok {
			badRequest(c, "Design capacity must be a positive number.")
			return
		}
		rounded := int(math.Round(capacity))
		input.DesignCapacity = &rounded
	}

	id, err := rs.Battlog.Model.CreateModel(c.Request.Context(), input)
	if err != nil {
		rs.respondError(c, err, "Failed to create model.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Model created successfully", "id": id})
}

func (rs *RestfulServer) GetChemistryDetails(c *gin.Context) {
	details, err := rs.Battlog.Chemistry.GetChemistriesMap(c.Request.Context())
	if err != nil {
		rs.respondError(c, err, "Failed to fetch chemistry details.")
		return
	}
	c.JSON(http.StatusOK, details)
}

func (rs *RestfulServer) CreateChemistry(c *gin.Context) {
	body := readBody(c)

	name, okName := body.NonEmptyString("name")
	shortName, okShortName := body.NonEmptyString("shortName")
	voltage, okVoltage := body.Number("nominalVoltage")
	if !okName || !okShortName || !okVoltage {
		badRequest(c, "Missing required fields.")
		return
	}

	id, err := rs.Battlog.Chemistry.CreateChemistry(c.Request.Context(), &models.Chemistry{
		Name:           name,
		ShortName:      shortName,
		NominalVoltage: voltage,
	})
	if err != nil {
		rs.respondError(c, err, "Failed to save chemistry.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Chemistry created successfully", "id": id})
}

func (rs *RestfulServer) GetFormFactorDetails(c *gin.Context) {
	details, err := rs.Battlog.FormFactor.GetFormFactorsMap(c.Request.Context())
	if err != nil {
		rs.respondError(c, err, "Failed to fetch form factor details.")
		return
	}
	c.JSON(http.StatusOK, details)
}

func (rs *RestfulServer) CreateFormFactor(c *gin.Context) {
	body := readBody(c)

	name, ok := body.NonEmptyString("name")
	if !ok {
		badRequest(c, "Missing required fields.")
		return
	}

	id, err := rs.Battlog.FormFactor.CreateFormFactor(c.Request.Context(), &models.FormFactor{Name: name})
	if err != nil {
		rs.respondError(c, err, "Failed to save form factor.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Form Factor created successfully", "id": id})
}
