package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vit0-9/dns_lookup_api/models"
	"github.com/vit0-9/dns_lookup_api/pkg/utils"
)

// IPInfoHandlers groups the IP intelligence endpoints.
type IPInfoHandlers struct {
	// Dependencies can be injected here if needed
}

func NewIPInfoHandlers() *IPInfoHandlers {
	return &IPInfoHandlers{}
}

// IPInfoHandler godoc
// @Summary      Get detailed information about an IP address
// @Description  Provides validation, type classification, reverse DNS, and GeoIP/ASN information for an IP.
// @Tags         IP Intelligence
// @Produce      json
// @Param        ip query string true "IP address to get info for"
// @Success      200 {object} models.IPInfoResponse "Successfully retrieved IP information"
// @Failure      400 {object} models.APIErrorResponse "Missing IP address"
// @Router       /ip-info [get]
func (h *IPInfoHandlers) IPInfoHandler(c *gin.Context) {
	ipAddress := c.Query("ip")
	if ipAddress == "" {
		c.JSON(http.StatusBadRequest, models.APIErrorResponse{Success: false, Error: "ip query parameter is required"})
		return
	}

	utilData := utils.GetBasicIPInfo(c.Request.Context(), ipAddress)

	response := models.IPInfoResponse{
		IPAddress:          utilData.IPAddress,
		IsValid:            utilData.IsValid,
		Version:            utilData.Version,
		IsLoopback:         utilData.IsLoopback,
		IsPrivate:          utilData.IsPrivate,
		IsMulticast:        utilData.IsMulticast,
		IsLinkLocalUnicast: utilData.IsLinkLocalUnicast,
		IsGlobalUnicast:    utilData.IsGlobalUnicast,
		ReverseDNSNames:    utilData.ReverseDNSNames,
		Error:              utilData.Error,
		CountryCode:        utilData.CountryCode,
		CountryName:        utilData.CountryName,
		CityName:           utilData.CityName,
		PostalCode:         utilData.PostalCode,
		Latitude:           utilData.Latitude,
		Longitude:          utilData.Longitude,
		TimeZone:           utilData.TimeZone,
		ASN:                utilData.ASN,
		ASOrganization:     utilData.ASOrganization,
		GeoError:           utilData.GeoError,
	}
	c.JSON(http.StatusOK, response)
}
