package dto

type AccountView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ListAccountsReq struct{}

type ListAccountsResp struct {
	Accounts []AccountView `json:"accounts"`
}

type GetAccountResp struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

type CreateAccountReq struct {
	Name            string `json:"name" validate:"required,min=1,max=100"`
	Email           string `json:"email" validate:"required,email,max=255"`
	Password        string `json:"password" validate:"required,min=6,max=32"`
	PasswordConfirm string `json:"password_confirm" validate:"required,min=6,max=32"`
}

type CreateAccountResp struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UpdateAccountReq struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email,max=255"`
}

type UpdateAccountResp struct {
	ID string `json:"id"`
}

type DeleteAccountResp struct {
	ID string `json:"id"`
}

type ChangePasswordReq struct {
	OldPassword     string `json:"old_password" validate:"required,min=6,max=32"`
	NewPassword     string `json:"new_password" validate:"required,min=6,max=32"`
	PasswordConfirm string `json:"password_confirm" validate:"required,min=6,max=32"`
}

type ChangePasswordResp struct {
	ID string `json:"id"`
}
