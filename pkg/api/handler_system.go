package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// systemWarningsHandler handles GET /api/v1/system/warnings.
// Surfaces startup and runtime warnings (provider config problems, budget
// anomalies) collected by the warnings service.
func (s *Server) systemWarningsHandler(c *gin.Context) {
	response := SystemWarningsResponse{
		Warnings: []SystemWarningItem{},
	}

	if s.warningService != nil {
		for _, w := range s.warningService.GetWarnings() {
			response.Warnings = append(response.Warnings, SystemWarningItem{
				ID:         w.ID,
				Category:   w.Category,
				Message:    w.Message,
				Details:    w.Details,
				ProviderID: w.ProviderID,
				CreatedAt:  w.CreatedAt.Format(time.RFC3339),
			})
		}
	}

	c.JSON(http.StatusOK, response)
}
