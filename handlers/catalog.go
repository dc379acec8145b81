package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"panditseva/catalog"
)

// ListPujasHandler returns the supported puja catalog.
func ListPujasHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"pujas": catalog.PujaCatalog})
}

// canonicalPuja resolves a path parameter to the catalog's exact casing.
func canonicalPuja(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, p := range catalog.PujaCatalog {
		if strings.EqualFold(p, trimmed) {
			return p, true
		}
	}
	return "", false
}

// SamagriHandler returns the samagri checklist for a puja.
func SamagriHandler(c *gin.Context) {
	name, ok := canonicalPuja(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown puja", "details": c.Param("name")})
		return
	}
	items, ok := catalog.SamagriFor(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no samagri listed", "details": name})
		return
	}
	c.JSON(http.StatusOK, gin.H{"puja": name, "samagri": items})
}

// GuideHandler returns sequencing instructions for a puja.
func GuideHandler(c *gin.Context) {
	name, ok := canonicalPuja(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown puja", "details": c.Param("name")})
		return
	}
	guide, ok := catalog.InstructionsFor(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no guide listed", "details": name})
		return
	}
	c.JSON(http.StatusOK, gin.H{"puja": name, "guide": guide})
}
