package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Route surface
	RouteRoot      = "/"
	RouteLogin     = "/login"
	RouteDashboard = "/dashboard"
	RouteNewGame   = "/dashboard/games/new"

	// Query parameter carrying the origin path through a login redirect
	QueryParamFrom = "from"

	// Context keys
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
	ContextKeyUserName = "user_name"

	// Row lifecycle statuses (row_status lookup)
	RowStatusActive   = "active"
	RowStatusInactive = "inactive"
	RowStatusDeleted  = "deleted"

	// Database table names
	TableUser                    = "user"
	TableRol                     = "rol"
	TableRowStatus               = "row_status"
	TableResetPassword           = "reset_password"
	TableUserPws                 = "user_pws"
	TableGame                    = "game"
	TableGameConfiguration       = "game_configuration"
	TableProduct                 = "product"
	TableNodeType                = "node_type"
	TableOwner                   = "owner"
	TableCostsPriceConfig        = "costs_price_config"
	TableDeliveryTimesConfig     = "delivery_times_config"
	TableEventsMessageConfig     = "events_message_config"
	TableInitialClaimConfig      = "initial_claim_config"
	TableInitialStockConfig      = "initial_stock_config"
	TableOrderRestrictionConfig  = "order_restriction_config"
	TableStockNotificationConfig = "stock_notification_config"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgValidationFailed    = "Validation failed"
	// Same message for unknown email and wrong password on purpose.
	ErrMsgInvalidCredentials = "invalid email or password"
)
