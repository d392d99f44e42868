package handlers

import (
	"net/http"

	"family_expenses/internal/models"
	"family_expenses/internal/service"

	"github.com/gin-gonic/gin"
)

// authRequest carries a login attempt. The direct protocol sends user +
// password; the deprecated challenge-response client sends user + hash.
type authRequest struct {
	User     string `json:"user"`
	Password string `json:"password"`
	Hash     string `json:"hash"`
}

// setSessionCookie installs the opaque session token on the client.
// HttpOnly and SameSite=Strict: the cookie is the only thing the client
// ever holds, the session itself lives server-side.
func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}

// ensureSession resolves the cookie to a live session, starting a fresh
// anonymous one (and setting the cookie) on first contact.
func (h *Handler) ensureSession(c *gin.Context) (*models.Session, error) {
	ctx := c.Request.Context()

	if token, err := c.Cookie(h.cfg.CookieName); err == nil && token != "" {
		sess, err := h.services.Sessions.Get(ctx, token)
		if err != nil {
			return nil, err
		}
		if sess != nil {
			return sess, nil
		}
		// Unknown or expired token: fall through and start over.
	}

	sess, err := h.services.Sessions.Begin(ctx)
	if err != nil {
		return nil, err
	}
	h.setSessionCookie(c, sess.ID)
	return &sess, nil
}

// @Summary      Issue a legacy auth challenge
// @Description  Only available when auth.protocol=challenge; the direct protocol answers res:false.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "res, token"
// @Router       /authtoken [get]
func (h *Handler) getAuthToken(c *gin.Context) {
	sess, err := h.ensureSession(c)
	if err != nil {
		h.fail(c, "authtoken_session_failed", err)
		return
	}
	token, err := h.services.Authenticator.IssueChallenge(c.Request.Context(), sess)
	if err != nil {
		h.fail(c, "authtoken_rejected", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"res": true, "token": token})
}

// @Summary      Authenticate and bind the session
// @Description  Direct protocol: {user, password}. Legacy: {user, hash}. Failures are uniform.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  authRequest  true  "credentials"
// @Success      200  {object}  map[string]interface{}  "res, name"
// @Router       /auth [post]
func (h *Handler) postAuth(c *gin.Context) {
	var input authRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		if h.log != nil {
			h.log.Infow("auth_bad_request_body", "err", err)
		}
		c.JSON(http.StatusOK, failBody(service.ErrInvalidCredentials))
		return
	}

	sess, err := h.ensureSession(c)
	if err != nil {
		h.fail(c, "auth_session_failed", err)
		return
	}

	name, err := h.services.Authenticator.Authenticate(c.Request.Context(), sess, service.Credentials{
		User:     input.User,
		Password: input.Password,
		Hash:     input.Hash,
	})
	if err != nil {
		// Whatever went wrong, the client sees the same answer: never
		// reveal whether the username exists.
		if h.log != nil {
			h.log.Infow("auth_failed", "user", input.User, "err", err)
		}
		c.JSON(http.StatusOK, failBody(service.ErrInvalidCredentials))
		return
	}

	c.JSON(http.StatusOK, gin.H{"res": true, "name": name})
}

// @Summary      Destroy the session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "res"
// @Router       /logout [get]
func (h *Handler) logout(c *gin.Context) {
	ctx := c.Request.Context()

	token, err := c.Cookie(h.cfg.CookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusOK, gin.H{"res": true, "text": "no user logged before"})
		return
	}

	sess, err := h.services.Sessions.Get(ctx, token)
	if err != nil {
		h.fail(c, "logout_lookup_failed", err)
		return
	}

	if err := h.services.Sessions.Destroy(ctx, token); err != nil {
		h.fail(c, "logout_destroy_failed", err)
		return
	}
	h.clearSessionCookie(c)

	if !sess.Bound() {
		c.JSON(http.StatusOK, gin.H{"res": true, "text": "no user logged before"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"res": true})
}

// @Summary      Current session identity
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "res, name"
// @Router       /user [get]
func (h *Handler) getUser(c *gin.Context) {
	token, err := c.Cookie(h.cfg.CookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusOK, gin.H{"res": false, "text": "no session name"})
		return
	}
	sess, err := h.services.Sessions.Get(c.Request.Context(), token)
	if err != nil {
		h.fail(c, "user_lookup_failed", err)
		return
	}
	if !sess.Bound() {
		c.JSON(http.StatusOK, gin.H{"res": false, "text": "no session name"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"res": true, "name": sess.Name})
}
