package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// identityKey is where the gate stores the authorized username in the Gin
// context.
const identityKey = "identity"

// sessionGate guards every data operation: the session must exist, carry a
// bound identity, and that identity must still resolve to a live user row.
// The user check hits the store on every request, so deleting an account
// locks it out immediately even with a valid cookie.
func (h *Handler) sessionGate(c *gin.Context) {
	token, _ := c.Cookie(h.cfg.CookieName)

	identity, err := h.services.Gate.Authorize(c.Request.Context(), token)
	if err != nil {
		if h.log != nil {
			h.log.Infow("gate_rejected", "err", err, "path", c.FullPath())
		}
		c.AbortWithStatusJSON(http.StatusOK, failBody(err))
		return
	}

	c.Set(identityKey, identity)
	c.Next()
}

// identityFrom returns the username the gate stored for this request.
func identityFrom(c *gin.Context) string {
	v, _ := c.Get(identityKey)
	name, _ := v.(string)
	return name
}
