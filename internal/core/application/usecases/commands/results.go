package commands

import "haul/internal/core/domain/model/kernel"

type CreateOrderResultType int

const (
	CreateOrderSucceeded CreateOrderResultType = iota + 1
	CreateOrderRestaurantNotFound
)

type CreateOrderResult struct {
	Type    CreateOrderResultType
	OrderID kernel.UUID
	Errors  []string
}

type UpdateOrderStatusResultType int

const (
	UpdateOrderStatusSucceeded UpdateOrderStatusResultType = iota + 1
	UpdateOrderStatusOrderNotFound
	UpdateOrderStatusForbidden
	UpdateOrderStatusWrongOrderStatus
)

type UpdateOrderStatusResult struct {
	Type   UpdateOrderStatusResultType
	Errors []string
}

type CreateRestaurantResultType int

const (
	CreateRestaurantSucceeded CreateRestaurantResultType = iota + 1
	CreateRestaurantManagersNotFound
)

type CreateRestaurantResult struct {
	Type         CreateRestaurantResultType
	RestaurantID kernel.UUID
	Errors       []string
}

type RegisterUserResultType int

const (
	RegisterUserSucceeded RegisterUserResultType = iota + 1
	RegisterUserFailed
)

type RegisterUserResult struct {
	Type   RegisterUserResultType
	UserID kernel.UUID
	Errors []string
}

type AuthenticateUserResultType int

const (
	AuthenticateUserSucceeded AuthenticateUserResultType = iota + 1
	AuthenticateUserInvalidCredentials
)

type AuthenticateUserResult struct {
	Type   AuthenticateUserResultType
	Token  string
	Errors []string
}

type AdminUpdateUserResultType int

const (
	AdminUpdateUserSucceeded AdminUpdateUserResultType = iota + 1
	AdminUpdateUserUserNotFound
)

type AdminUpdateUserResult struct {
	Type   AdminUpdateUserResultType
	Errors []string
}
