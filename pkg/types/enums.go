package types

// User roles.
const (
	RoleCustomer       = "customer"
	RoleAdmin          = "admin"
	RoleManager        = "manager"
	RoleSalesRep       = "sales_rep"
	RoleWarehouseStaff = "warehouse_staff"
)

// UserRoles lists the recognized roles in weight-table order.
var UserRoles = []string{
	RoleCustomer,
	RoleAdmin,
	RoleManager,
	RoleSalesRep,
	RoleWarehouseStaff,
}

// UserRoleWeights is the role distribution; most users are customers.
var UserRoleWeights = []int{85, 5, 3, 4, 3}

// Payment methods.
const (
	MethodCreditCard     = "CREDIT_CARD"
	MethodBankTransfer   = "BANK_TRANSFER"
	MethodCashOnDelivery = "CASH_ON_DELIVERY"
	MethodBuyNowPayLater = "BUY_NOW_PAY_LATER"
)

// PaymentMethods lists the recognized methods in weight-table order.
var PaymentMethods = []string{
	MethodCreditCard,
	MethodBankTransfer,
	MethodCashOnDelivery,
	MethodBuyNowPayLater,
}

// PaymentMethodWeights is the method distribution.
var PaymentMethodWeights = []int{60, 25, 10, 5}

// Payment statuses.
const (
	StatusPending = "PENDING"
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

// PaymentStatuses lists the recognized statuses in weight-table order.
var PaymentStatuses = []string{
	StatusSuccess,
	StatusPending,
	StatusFailed,
}

// PaymentStatusWeights is the status distribution.
var PaymentStatusWeights = []int{85, 10, 5}

// SocialProviders are the accepted social-login providers for users.
var SocialProviders = []string{"google", "facebook", "github", "microsoft"}
