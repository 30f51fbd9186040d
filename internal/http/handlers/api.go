package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"yatra/internal/ledger"
)

// API bundles the handlers around one booking ledger. All state lives
// in the ledger; handlers only translate HTTP to ledger commands.
type API struct {
	Ledger *ledger.Ledger
}

func NewAPI(l *ledger.Ledger) *API {
	return &API{Ledger: l}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return 0, false
	}
	return id, true
}
