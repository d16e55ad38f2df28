package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/skillwaves/skillwaves-server/config"
	"github.com/skillwaves/skillwaves-server/internal/model/request"
	"github.com/skillwaves/skillwaves-server/internal/model/response"
	"github.com/skillwaves/skillwaves-server/internal/token"
	"github.com/skillwaves/skillwaves-server/internal/validation"
)

// UserHandler issues and clears the identity token cookie.
type UserHandler struct {
	codec *token.Codec
	auth  config.AuthConfig
}

func NewUserHandler(codec *token.Codec, auth config.AuthConfig) *UserHandler {
	return &UserHandler{codec: codec, auth: auth}
}

// AccessToken godoc
//
//	@Summary		Issue an identity token cookie for the given email
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			user	body		request.AccessTokenRequest	true	"identity"
//	@Success		200	{object}	response.TokenStatus
//	@Router			/v1/user/access-token [post]
func (h *UserHandler) AccessToken(c *gin.Context) {
	body := validation.Body[request.AccessTokenRequest](c)

	signed, err := h.codec.Issue(body.Email)
	if err != nil {
		upstreamFailure(c, err)
		return
	}

	zap.L().Info("Access token issued", zap.String("email", body.Email))

	// Cross-site cookie: the web client lives on another origin, so SameSite
	// must be None and the cookie Secure. Note the cookie outlives the token
	// claim (24h vs 1h); expiry is enforced by token verification, not by the
	// cookie.
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(h.auth.CookieName, signed, h.auth.CookieMaxAge, "/", h.auth.CookieDomain, true, true)
	c.JSON(http.StatusOK, response.TokenStatus{Status: true})
}

// DeleteToken godoc
//
//	@Summary		Clear the identity token cookie
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	response.TokenStatus
//	@Router			/v1/user/delete-token [post]
func (h *UserHandler) DeleteToken(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(h.auth.CookieName, "", -1, "/", h.auth.CookieDomain, true, true)
	c.JSON(http.StatusOK, response.TokenStatus{Status: true})
}
