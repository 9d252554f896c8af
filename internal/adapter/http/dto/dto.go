package dto

// CreateUserRequest is the request body for POST /api/v1/users.
type CreateUserRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,max=20"`
	DOB       string `json:"dob" binding:"required"`
	Gender    string `json:"gender" binding:"required,oneof=MALE FEMALE OTHER UNSPECIFIED"`
}

// UpdateUserRequest is the request body for PATCH /api/v1/users/:id. Nil
// fields are left unchanged.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone     *string `json:"phone,omitempty"`
	DOB       *string `json:"dob,omitempty"`
	Gender    *string `json:"gender,omitempty" binding:"omitempty,oneof=MALE FEMALE OTHER UNSPECIFIED"`
}

// UserResponse is the PII-bearing user representation returned to callers
// authorized to read it. Gone entirely (not merely redacted) once the user
// is anonymized.
type UserResponse struct {
	ID          string  `json:"id"`
	ReferenceID string  `json:"reference_id"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	DOB         *string `json:"dob,omitempty"`
	Gender      string  `json:"gender"`
	Active      bool    `json:"active"`
	Anonymized  bool    `json:"anonymized"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// AddressRequest is the request body for address create/update.
type AddressRequest struct {
	Type    string `json:"type" binding:"required,oneof=HOME WORK OTHER"`
	Line1   string `json:"line1" binding:"required"`
	Line2   string `json:"line2"`
	City    string `json:"city" binding:"required"`
	Postal  string `json:"postal" binding:"required"`
	Country string `json:"country" binding:"required"`
	Primary bool   `json:"primary"`
}

// AddressResponse is the decrypted address representation.
type AddressResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Type      string `json:"type"`
	Line1     string `json:"line1"`
	Line2     string `json:"line2,omitempty"`
	City      string `json:"city"`
	Postal    string `json:"postal"`
	Country   string `json:"country"`
	Primary   bool   `json:"primary"`
	CreatedAt string `json:"created_at"`
}

// ConsentRequest is the request body for granting a consent.
type ConsentRequest struct {
	Version    string `json:"version" binding:"required"`
	LegalBasis string `json:"legal_basis" binding:"required,oneof=CONSENT CONTRACT LEGITIMATE_INTEREST LEGAL_OBLIGATION"`
	Source     string `json:"source" binding:"required,oneof=WEB MOBILE API IMPORT"`
}

// ConsentResponse is one row of a user's consent ledger.
type ConsentResponse struct {
	ID          string  `json:"id"`
	ConsentKey  string  `json:"consent_key"`
	Granted     bool    `json:"granted"`
	Version     string  `json:"version"`
	GrantedAt   *string `json:"granted_at,omitempty"`
	WithdrawnAt *string `json:"withdrawn_at,omitempty"`
	Source      string  `json:"source"`
	LegalBasis  string  `json:"legal_basis"`
}

// CreateInvoiceRequest is the request body for POST /api/v1/invoices.
type CreateInvoiceRequest struct {
	InvoiceNumber  string  `json:"invoice_number" binding:"required"`
	EnrollmentID   string  `json:"enrollment_id" binding:"required"`
	RegistrationID string  `json:"registration_id" binding:"required"`
	PlanID         string  `json:"plan_id" binding:"required"`
	UserID         string  `json:"user_id" binding:"required"`
	EnrollmentType string  `json:"enrollment_type" binding:"required,oneof=INDIVIDUAL TEAM"`
	BaseAmount     string  `json:"base_amount" binding:"required"`
	DiscountAmount string  `json:"discount_amount"`
	TaxAmount      string  `json:"tax_amount"`
	ConvenienceFee string  `json:"convenience_fee"`
	PlatformFee    string  `json:"platform_fee"`
	Currency       string  `json:"currency" binding:"required,len=3"`
	BillingName    string  `json:"billing_name" binding:"required"`
	BillingEmail   string  `json:"billing_email" binding:"required,email"`
	BillingPhone   string  `json:"billing_phone" binding:"required"`
	BillingAddress string  `json:"billing_address" binding:"required"`
	VendorID       *string `json:"vendor_id,omitempty"`
}

// InvoiceResponse reports an invoice's current state.
type InvoiceResponse struct {
	InvoiceNumber  string `json:"invoice_number"`
	EnrollmentID   string `json:"enrollment_id"`
	TotalAmount    string `json:"total_amount"`
	Currency       string `json:"currency"`
	PaymentStatus  string `json:"payment_status"`
	GatewayOrderID string `json:"gateway_order_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

// PaymentTransactionResponse reports a gateway order's tracked state.
type PaymentTransactionResponse struct {
	ID               uint64 `json:"id"`
	InvoiceID        uint64 `json:"invoice_id"`
	Amount           string `json:"amount"`
	Currency         string `json:"currency"`
	Status           string `json:"status"`
	GatewayOrderID   string `json:"gateway_order_id,omitempty"`
	GatewayPaymentID string `json:"gateway_payment_id,omitempty"`
}

// PayoutTransactionResponse reports a vendor payout's tracked state.
type PayoutTransactionResponse struct {
	ID                   uint64 `json:"id"`
	PaymentTransactionID uint64 `json:"payment_transaction_id"`
	VendorID             string `json:"vendor_id"`
	Gross                string `json:"gross"`
	Commission           string `json:"commission"`
	Net                  string `json:"net"`
	Currency             string `json:"currency"`
	Status               string `json:"status"`
	GatewayPayoutID      string `json:"gateway_payout_id,omitempty"`
}

// RazorpayWebhookEnvelope is the outer shape Razorpay wraps every webhook
// delivery in; Event selects which nested payload field is populated.
type RazorpayWebhookEnvelope struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID              string `json:"id"`
				OrderID         string `json:"order_id"`
				ErrorCode       string `json:"error_code"`
				ErrorDescription string `json:"error_description"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// RazorpayXPayoutWebhookEnvelope is the outer shape RazorpayX wraps every
// payout webhook delivery in. CreatedAt is the gateway's unix timestamp for
// when the underlying payout event occurred, used to resolve conflicting
// terminal-state deliveries by recency rather than arrival order.
type RazorpayXPayoutWebhookEnvelope struct {
	Event     string `json:"event"`
	CreatedAt int64  `json:"created_at"`
	Payload   struct {
		Payout struct {
			Entity struct {
				ID            string `json:"id"`
				FailureReason string `json:"failure_reason"`
			} `json:"entity"`
		} `json:"payout"`
	} `json:"payload"`
}
