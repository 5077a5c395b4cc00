// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"

	// Products
	KeyProductDeleted  = "product.deleted"
	KeyProductNotFound = "product.not_found"

	// Categories
	KeyCategoryNotFound = "category.not_found"

	// Sellers
	KeySellerNotFound = "seller.not_found"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// Rate limiting
	KeyRateLimitExceeded = "rate_limit.exceeded"
)
