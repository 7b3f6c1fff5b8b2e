package resp

import (
	"net/http"

	"prauts/be/biz/model/dto"
	"prauts/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
)

func respWithErr(c *app.RequestContext, data any, err error) {
	if err == nil {
		c.JSON(http.StatusOK, &dto.CommonResp{
			Success: true,
			Code:    int(errs.Success.Code()),
			Message: errs.Success.Msg(),
			Data:    data,
		})
		return
	}

	if bizErr, ok := err.(errs.Error); ok {
		c.JSON(httpStatus(bizErr), &dto.CommonResp{
			Success: false,
			Code:    int(bizErr.Code()),
			Message: bizErr.Msg(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, &dto.CommonResp{
		Success: false,
		Code:    int(errs.ServerError.Code()),
		Message: errs.ServerError.Msg(),
	})
}

// httpStatus maps business outcomes onto transport status codes.
func httpStatus(bizErr errs.Error) int {
	switch bizErr.Code() {
	case errs.ParamError.Code():
		return http.StatusBadRequest
	case errs.AccountNotFound.Code():
		return http.StatusNotFound
	case errs.EmailAlreadyTaken.Code():
		return http.StatusConflict
	case errs.InvalidPassword.Code(),
		errs.InvalidOldPassword.Code(),
		errs.InvalidConfirmPassword.Code():
		return http.StatusForbidden
	case errs.Unprocessable.Code():
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}

func SuccessResp(c *app.RequestContext, data any) {
	respWithErr(c, data, nil)
}

func FailResp(c *app.RequestContext, bizErr errs.Error) {
	respWithErr(c, nil, bizErr)
}

func AbortWithErr(c *app.RequestContext, bizErr errs.Error, httpCode int) {
	c.AbortWithStatusJSON(httpCode, &dto.CommonResp{
		Success: false,
		Code:    int(bizErr.Code()),
		Message: bizErr.Msg(),
	})
}
