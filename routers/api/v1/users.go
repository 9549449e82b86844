package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/innovcell/ic_events/config/role"
	"github.com/innovcell/ic_events/environment"
	"github.com/innovcell/ic_events/routers/api/models"
	"github.com/innovcell/ic_events/services"
	"github.com/innovcell/ic_events/utils/auth"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// POST: /api/v1/users
// x-www-form-urlencoded
// Request:  name string
//           email string
//           password string
//           role string (optional, defaults to student; non-student roles require a superadmin token)
//           department string (optional)
//           year int (optional)
// Response: user entities.User
func (r *apiV1Router) Register(ctx *gin.Context) {
	name := ctx.PostForm("name")
	email := ctx.PostForm("email")
	password := ctx.PostForm("password")
	if len(name) == 0 || len(email) == 0 || len(password) == 0 {
		r.logger.Debug("one of name, email or password not specified",
			zap.String("name", name), zap.String("email", email))
		models.SendAPIError(ctx, http.StatusBadRequest, "request must include the user's name, email and password")
		return
	}

	userRole := role.UserRole(ctx.DefaultPostForm("role", string(role.Student)))
	if !userRole.IsValid() {
		r.logger.Debug("unknown role", zap.String("role", string(userRole)))
		models.SendAPIError(ctx, http.StatusBadRequest, "unknown role")
		return
	}
	if userRole != role.Student {
		claims := auth.GetJWTClaims(ctx.GetHeader(authHeaderName), []byte(r.env.Get(environment.JWTSecret)))
		if claims == nil || claims.Role != role.SuperAdmin {
			r.logger.Debug("privileged registration without superadmin token")
			models.SendAPIError(ctx, http.StatusUnauthorized, "only the superadmin can create privileged accounts")
			return
		}
	}

	year, _ := strconv.Atoi(ctx.PostForm("year"))

	user, err := r.userService.CreateUser(ctx, name, email, password, userRole, ctx.PostForm("department"), year)
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrEmailTaken:
			r.logger.Debug("email taken", zap.String("email", email))
			models.SendAPIError(ctx, http.StatusBadRequest, "user with given email already exists")
		case services.ErrInvalidID:
			r.logger.Debug("invalid department id", zap.Error(err))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid department id")
		default:
			r.logger.Error("could not create user", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	ctx.JSON(http.StatusOK, registerRes{
		Response: models.Response{Status: http.StatusOK},
		User:     *user,
	})
}

// POST: /api/v1/users/login
// x-www-form-urlencoded
// Request:  email string
//           password string
// Response: token string
func (r *apiV1Router) Login(ctx *gin.Context) {
	email := ctx.PostForm("email")
	password := ctx.PostForm("password")
	if len(email) == 0 || len(password) == 0 {
		r.logger.Debug("email or password not specified", zap.String("email", email))
		models.SendAPIError(ctx, http.StatusBadRequest, "request must include the user's email and password")
		return
	}

	user, err := r.userService.GetUserWithEmailAndPassword(ctx, email, password)
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrNotFound:
			r.logger.Debug("user not found", zap.String("email", email))
			models.SendAPIError(ctx, http.StatusUnauthorized, "invalid email or password")
		default:
			r.logger.Error("could not fetch user", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	token, err := auth.NewJWT(*user, r.timeProvider.Now().Unix(), r.cfg.AuthTokenLifetime, []byte(r.env.Get(environment.JWTSecret)))
	if err != nil {
		r.logger.Error("could not create auth token", zap.Error(err))
		models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		return
	}

	ctx.JSON(http.StatusOK, loginRes{
		Response: models.Response{Status: http.StatusOK},
		Token:    token,
	})
}

// GET: /api/v1/users
// Response: users []entities.User
// Headers:  Authorization -> token
func (r *apiV1Router) GetUsers(ctx *gin.Context) {
	users, err := r.userService.GetUsers(ctx)
	if err != nil {
		r.logger.Error("could not fetch users", zap.Error(err))
		models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		return
	}

	ctx.JSON(http.StatusOK, getUsersRes{
		Response: models.Response{Status: http.StatusOK},
		Users:    users,
	})
}

// GET: /api/v1/users/(:id|me)
// Response: user entities.User
// Headers:  Authorization -> token
func (r *apiV1Router) GetUser(ctx *gin.Context) {
	userID := ctx.Param("id")
	if userID == "me" {
		claims := extractClaimsFromCtx(ctx)
		if claims == nil {
			r.HandleUnauthorized(ctx)
			return
		}
		userID = claims.Id
	}

	user, err := r.userService.GetUserWithID(ctx, userID)
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid user id", zap.String("id", userID))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid user id")
		case services.ErrNotFound:
			r.logger.Debug("user not found", zap.String("id", userID))
			models.SendAPIError(ctx, http.StatusNotFound, "user not found")
		default:
			r.logger.Error("could not fetch user", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	ctx.JSON(http.StatusOK, getUserRes{
		Response: models.Response{Status: http.StatusOK},
		User:     *user,
	})
}

// HandleUnauthorized sends the standard unauthorized response
func (r *apiV1Router) HandleUnauthorized(ctx *gin.Context) {
	models.SendAPIError(ctx, http.StatusUnauthorized, "you are not authorized to use this operation")
}
