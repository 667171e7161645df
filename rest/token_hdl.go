package rest

import (
	"errors"
	"net/http"

	"github.com/Gthulhu/priosim/pkg/logger"
)

// TokenRequest represents the request structure for JWT token generation
type TokenRequest struct {
	ClientID  string `json:"client_id"`
	PublicKey string `json:"public_key"` // PEM encoded public key
}

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiredAt int64  `json:"expired_at"` // unix seconds
}

// GenToken godoc
// @Summary Issue an access token
// @Description Exchange the server's public key for a signed JWT. Returns 404 when token authentication is disabled.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Client identity and PEM public key"
// @Success 200 {object} SuccessResponse[TokenResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/auth/token [post]
func (h *Handler) GenToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req TokenRequest
	err := h.JSONBind(r, &req)
	if err != nil {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.ClientID == "" || req.PublicKey == "" {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "client_id and public_key are required", errors.New("missing token request fields"))
		return
	}

	token, expiredAt, err := h.Svc.VerifyAndGenerateToken(ctx, req.ClientID, req.PublicKey)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	logger.Logger(ctx).Debug().Str("client_id", req.ClientID).Msg("issued access token")
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&TokenResponse{Token: token, ExpiredAt: expiredAt}))
}
