package handler

import (
	"net/http"

	"smartwarehouse/internal/infra"

	"github.com/gin-gonic/gin"
)

// TestSMSHandler probes the Twilio setup synchronously so operators can see
// the exact gateway error in the browser instead of digging through worker
// logs. Not wired through the circuit breaker on purpose - a probe should
// always reach the gateway.
type TestSMSHandler struct{ sms *infra.TwilioClient }

func NewTestSMSHandler(sms *infra.TwilioClient) *TestSMSHandler {
	return &TestSMSHandler{sms: sms}
}

// Send godoc
// @Summary Send a test SMS and report the gateway's verbatim response
// @Tags Analytics
// @Produce json
// @Router /test-sms/ [get]
func (h *TestSMSHandler) Send(c *gin.Context) {
	if !h.sms.Configured() {
		c.JSON(http.StatusOK, gin.H{
			"Status": "Failed",
			"Reason": "Twilio environment variables are empty. Check configuration!",
		})
		return
	}

	sid, err := h.sms.SendSMS(c.Request.Context(), "Testing direct Twilio connection!")
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"Status": "Failed", "Twilio_Error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"Status": "Success!", "Message_SID": sid})
}
