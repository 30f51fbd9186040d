package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Activities serves the recent activity feed, newest first.
func (a *API) Activities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"activities": a.Ledger.Activities()})
}
