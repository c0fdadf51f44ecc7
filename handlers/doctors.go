package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"medibook/database"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// ListDoctorsHandler serves GET /api/v1/doctors?page=&size=.
func (h *APIHandler) ListDoctorsHandler(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid page parameter", "")
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size <= 0 || size > 100 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid size parameter", "")
		return
	}

	c.JSON(http.StatusOK, h.Store.ListDoctors(page, size))
}

// GetDoctorHandler serves GET /api/v1/doctors/:id.
func (h *APIHandler) GetDoctorHandler(c *gin.Context) {
	doctor, err := h.Store.GetDoctor(c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrDoctorNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Doctor not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load doctor", err.Error())
		return
	}
	c.JSON(http.StatusOK, doctor)
}
