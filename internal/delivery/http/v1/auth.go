package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-todo-stories/internal/models"
	"github.com/adanyl0v/go-todo-stories/internal/stories"
)

// credentialsRequest leaves emptiness checks to the stories so that register
// and login report their own error codes.
type credentialsRequest struct {
	Username string `json:"username" form:"username" binding:"max=255"`
	Password string `json:"password" form:"password" binding:"max=255"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (h *handlerImpl) HandleRegister(c *gin.Context) {
	var req credentialsRequest
	err := c.ShouldBind(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}
	h.logger.Info().
		Str("username", req.Username).
		Msg("register request")

	res := h.stories.RegisterUser.Execute(c, &stories.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if res.IsErr() {
		abort(c, newModelError(res.UnwrapErr()))
		return
	}

	c.JSON(http.StatusCreated, res.Unwrap())
}

func (h *handlerImpl) HandleLogin(c *gin.Context) {
	var req credentialsRequest
	err := c.ShouldBind(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	res := h.stories.LoginUser.Execute(c, &stories.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if res.IsErr() {
		abort(c, newModelError(res.UnwrapErr()))
		return
	}

	out := res.Unwrap()
	c.JSON(http.StatusOK, loginResponse{Token: out.Token, User: out.User})
}

func (h *handlerImpl) HandleMe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		h.logger.Error().Msg("no user found in context")
		abort(c, newModelError(models.NewError(models.CodeUserUnauthenticated)))
		return
	}

	c.JSON(http.StatusOK, user)
}
