package handler

import (
	"context"
	"net/http"

	"prauts/be/biz/model/dto"
	"prauts/be/biz/model/errs"
	"prauts/be/biz/service/account"
	"prauts/be/biz/util/resp"
	"prauts/be/biz/util/validate"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func bindAndValidate(c *app.RequestContext, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return validate.Struct(req)
}

// ListAccounts 账户列表接口
//
//	@Tags			account
//	@Summary		账户列表接口
//	@Description	账户列表接口
//	@Produce		json
//	@Success		200	{object}	dto.CommonResp{data=dto.ListAccountsResp}
//	@Router			/api/v1/accounts [GET]
func ListAccounts(ctx context.Context, c *app.RequestContext) {
	as, bizErr := account.NewDefault().List(ctx)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	views := make([]dto.AccountView, 0, len(as))
	for _, a := range as {
		views = append(views, dto.AccountView{
			ID:    a.AccountID,
			Name:  a.Name,
			Email: a.Email,
		})
	}

	resp.SuccessResp(c, dto.ListAccountsResp{Accounts: views})
}

// GetAccount 账户详情接口
//
//	@Tags			account
//	@Summary		账户详情接口
//	@Description	账户详情接口
//	@Produce		json
//	@Param			id	path		string	true	"account id"
//	@Success		200	{object}	dto.CommonResp{data=dto.GetAccountResp}
//	@Router			/api/v1/accounts/{id} [GET]
func GetAccount(ctx context.Context, c *app.RequestContext) {
	a, bizErr := account.NewDefault().Get(ctx, c.Param("id"))
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, dto.GetAccountResp{
		ID:        a.AccountID,
		Name:      a.Name,
		Email:     a.Email,
		CreatedAt: a.CreatedAt.Unix(),
		UpdatedAt: a.UpdatedAt.Unix(),
	})
}

// CreateAccount 创建账户接口
//
//	@Tags			account
//	@Summary		创建账户接口
//	@Description	创建账户接口
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.CreateAccountReq	true	"create account request body"
//	@Success		200	{object}	dto.CommonResp{data=dto.CreateAccountResp}
//	@Router			/api/v1/accounts [POST]
func CreateAccount(ctx context.Context, c *app.RequestContext) {
	var req dto.CreateAccountReq
	if err := bindAndValidate(c, &req); err != nil {
		hlog.CtxNoticef(ctx, "bindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()), http.StatusBadRequest)
		return
	}

	a, bizErr := account.NewDefault().Create(ctx, req.Name, req.Email, req.Password, req.PasswordConfirm)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, dto.CreateAccountResp{
		ID:    a.AccountID,
		Name:  a.Name,
		Email: a.Email,
	})
}

// UpdateAccount 更新账户接口
//
//	@Tags			account
//	@Summary		更新账户接口
//	@Description	更新账户接口
//	@Accept			json
//	@Produce		json
//	@Param			id	path		string				true	"account id"
//	@Param			req	body		dto.UpdateAccountReq	true	"update account request body"
//	@Success		200	{object}	dto.CommonResp{data=dto.UpdateAccountResp}
//	@Router			/api/v1/accounts/{id} [PUT]
func UpdateAccount(ctx context.Context, c *app.RequestContext) {
	var req dto.UpdateAccountReq
	if err := bindAndValidate(c, &req); err != nil {
		hlog.CtxNoticef(ctx, "bindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()), http.StatusBadRequest)
		return
	}

	id := c.Param("id")
	if bizErr := account.NewDefault().Update(ctx, id, req.Name, req.Email); bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, dto.UpdateAccountResp{ID: id})
}

// DeleteAccount 删除账户接口
//
//	@Tags			account
//	@Summary		删除账户接口
//	@Description	删除账户接口
//	@Produce		json
//	@Param			id	path		string	true	"account id"
//	@Success		200	{object}	dto.CommonResp{data=dto.DeleteAccountResp}
//	@Router			/api/v1/accounts/{id} [DELETE]
func DeleteAccount(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	if bizErr := account.NewDefault().Delete(ctx, id); bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, dto.DeleteAccountResp{ID: id})
}

// ChangePassword 修改密码接口
//
//	@Tags			account
//	@Summary		修改密码接口
//	@Description	修改密码接口
//	@Accept			json
//	@Produce		json
//	@Param			id	path		string				true	"account id"
//	@Param			req	body		dto.ChangePasswordReq	true	"change password request body"
//	@Success		200	{object}	dto.CommonResp{data=dto.ChangePasswordResp}
//	@Router			/api/v1/accounts/{id}/password [POST]
func ChangePassword(ctx context.Context, c *app.RequestContext) {
	var req dto.ChangePasswordReq
	if err := bindAndValidate(c, &req); err != nil {
		hlog.CtxNoticef(ctx, "bindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()), http.StatusBadRequest)
		return
	}

	id := c.Param("id")
	if bizErr := account.NewDefault().ChangePassword(ctx, id, req.OldPassword, req.NewPassword, req.PasswordConfirm); bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, dto.ChangePasswordResp{ID: id})
}
