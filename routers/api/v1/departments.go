package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innovcell/ic_events/entities"
	"github.com/innovcell/ic_events/routers/api/models"
	"github.com/innovcell/ic_events/services"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// POST: /api/v1/departments
// x-www-form-urlencoded
// Request:  name string
//           code string
//           hod string (user id, optional)
// Response: department entities.Department
// Headers:  Authorization -> token
func (r *apiV1Router) CreateDepartment(ctx *gin.Context) {
	name := ctx.PostForm("name")
	code := ctx.PostForm("code")
	if len(name) == 0 || len(code) == 0 {
		r.logger.Debug("department name or code not provided")
		models.SendAPIError(ctx, http.StatusBadRequest, "both name and code must be provided")
		return
	}

	department, err := r.departmentService.CreateDepartment(ctx, name, code, ctx.PostForm("hod"))
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid hod id", zap.String("hod", ctx.PostForm("hod")))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid hod id")
		case services.ErrNameTaken:
			r.logger.Debug("department name taken", zap.String("name", name))
			models.SendAPIError(ctx, http.StatusBadRequest, "department name is already taken")
		default:
			r.logger.Error("could not create department", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	ctx.JSON(http.StatusOK, createDepartmentRes{
		Response:   models.Response{Status: http.StatusOK},
		Department: *department,
	})
}

// GET: /api/v1/departments
// Response: departments []entities.Department
// Headers:  Authorization -> token
func (r *apiV1Router) GetDepartments(ctx *gin.Context) {
	departments, err := r.departmentService.GetDepartments(ctx)
	if err != nil {
		r.logger.Error("could not fetch departments", zap.Error(err))
		models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		return
	}

	ctx.JSON(http.StatusOK, getDepartmentsRes{
		Response:    models.Response{Status: http.StatusOK},
		Departments: departments,
	})
}

// GET: /api/v1/departments/:id
// Response: department entities.Department
// Headers:  Authorization -> token
func (r *apiV1Router) GetDepartment(ctx *gin.Context) {
	department, err := r.departmentService.GetDepartmentWithID(ctx, ctx.Param("id"))
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid department id", zap.String("id", ctx.Param("id")))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid department id")
		case services.ErrNotFound:
			r.logger.Debug("department not found", zap.String("id", ctx.Param("id")))
			models.SendAPIError(ctx, http.StatusNotFound, "department not found")
		default:
			r.logger.Error("could not fetch department", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	ctx.JSON(http.StatusOK, getDepartmentRes{
		Response:   models.Response{Status: http.StatusOK},
		Department: *department,
	})
}

// PUT: /api/v1/departments/:id
// x-www-form-urlencoded
// Request:  name string (optional)
//           code string (optional)
//           hod string (user id, optional)
// Response: status int
// Headers:  Authorization -> token
func (r *apiV1Router) UpdateDepartment(ctx *gin.Context) {
	params := services.DepartmentUpdateParams{}
	if name := ctx.PostForm("name"); len(name) > 0 {
		params[entities.DepartmentName] = name
	}
	if code := ctx.PostForm("code"); len(code) > 0 {
		params[entities.DepartmentCode] = code
	}
	if hod := ctx.PostForm("hod"); len(hod) > 0 {
		hodID, err := primitive.ObjectIDFromHex(hod)
		if err != nil {
			r.logger.Debug("invalid hod id", zap.String("hod", hod))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid hod id")
			return
		}
		params[entities.DepartmentHod] = hodID
	}
	if len(params) == 0 {
		r.logger.Debug("nothing to update")
		models.SendAPIError(ctx, http.StatusBadRequest, "at least one of name, code or hod must be provided")
		return
	}

	err := r.departmentService.UpdateDepartmentWithID(ctx, ctx.Param("id"), params)
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid department id", zap.String("id", ctx.Param("id")))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid department id")
		case services.ErrNotFound:
			r.logger.Debug("department not found", zap.String("id", ctx.Param("id")))
			models.SendAPIError(ctx, http.StatusNotFound, "department not found")
		default:
			r.logger.Error("could not update department", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	ctx.JSON(http.StatusOK, models.Response{Status: http.StatusOK})
}

// DELETE: /api/v1/departments/:id
// Response: status int
// Headers:  Authorization -> token
func (r *apiV1Router) DeleteDepartment(ctx *gin.Context) {
	err := r.departmentService.DeleteDepartmentWithID(ctx, ctx.Param("id"))
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid department id", zap.String("id", ctx.Param("id")))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid department id")
		case services.ErrNotFound:
			r.logger.Debug("department not found", zap.String("id", ctx.Param("id")))
			models.SendAPIError(ctx, http.StatusNotFound, "department not found")
		default:
			r.logger.Error("could not delete department", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	ctx.JSON(http.StatusOK, models.Response{Status: http.StatusOK})
}
