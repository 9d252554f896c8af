package eventenvelope

// PaymentOrderCreated is the Data payload for domain.EventPaymentOrderCreated.
type PaymentOrderCreated struct {
	InvoiceNumber  string `json:"invoice_number"`
	GatewayOrderID string `json:"gateway_order_id"`
	AmountMinor    int64  `json:"amount_minor_units"`
	Currency       string `json:"currency"`
}

// PaymentSucceeded is the Data payload for domain.EventPaymentSucceeded.
type PaymentSucceeded struct {
	InvoiceNumber    string `json:"invoice_number"`
	GatewayOrderID   string `json:"gateway_order_id"`
	GatewayPaymentID string `json:"gateway_payment_id"`
}

// PaymentFailed is the Data payload for domain.EventPaymentFailed.
type PaymentFailed struct {
	InvoiceNumber  string `json:"invoice_number"`
	GatewayOrderID string `json:"gateway_order_id"`
	ErrorCode      string `json:"error_code"`
	ErrorMessage   string `json:"error_message"`
}

// VendorPayoutInitiated is the Data payload for domain.EventVendorPayoutInitiated.
type VendorPayoutInitiated struct {
	PayoutTransactionID uint64 `json:"payout_transaction_id"`
	VendorID            string `json:"vendor_id"`
	NetMinor            int64  `json:"net_minor_units"`
	Currency            string `json:"currency"`
}

// VendorPayoutSucceeded is the Data payload for domain.EventVendorPayoutSucceeded.
type VendorPayoutSucceeded struct {
	PayoutTransactionID uint64 `json:"payout_transaction_id"`
	GatewayPayoutID     string `json:"gateway_payout_id"`
}

// VendorPayoutFailed is the Data payload for domain.EventVendorPayoutFailed.
type VendorPayoutFailed struct {
	PayoutTransactionID uint64 `json:"payout_transaction_id"`
	ErrorCode           string `json:"error_code"`
	ErrorMessage        string `json:"error_message"`
}

// PayoutSubmitRequested is the Data payload for domain.EventPayoutSubmitRequested,
// the internal command event driving the async payout submitter worker pool.
type PayoutSubmitRequested struct {
	PayoutTransactionID uint64 `json:"payout_transaction_id"`
}

// EnrollmentCreated is the Data payload for the inbound
// domain.EventEnrollmentCreated delivery (spec.md §6), the trigger for the
// whole Payment Orchestrator flow. Amounts are decimal strings, never
// floats, matching every other money-carrying payload on the bus.
type EnrollmentCreated struct {
	EnrollmentID   string `json:"enrollmentId"`
	RegistrationID string `json:"registrationId"`
	UserID         string `json:"userId"`
	PlanID         string `json:"planId"`
	PlanTitle      string `json:"planTitle"`
	EnrollmentType string `json:"enrollmentType"` // INDIVIDUAL or TEAM
	TeamName       string `json:"teamName,omitempty"`
	TeamSize       int    `json:"teamSize,omitempty"`
	BaseAmount     string `json:"baseAmount"`
	DiscountAmount string `json:"discountAmount"`
	TaxAmount      string `json:"taxAmount"`
	ConvenienceFee string `json:"convenienceFee"`
	PlatformFee    string `json:"platformFee"`
	TotalAmount    string `json:"totalAmount"`
	Currency       string `json:"currency"`
	PromoCode      string `json:"promoCode,omitempty"`
	PromotionName  string `json:"promotionName,omitempty"`
	BillingName    string `json:"billingName"`
	BillingEmail   string `json:"billingEmail"`
	BillingPhone   string `json:"billingPhone"`
	BillingAddress string `json:"billingAddress"`
	VendorID       string `json:"vendorId,omitempty"`
}

// UserLifecycleEvent is the shared Data payload for user.created/updated/
// archived/reactivated/deleted — all carry only the reference id, never PII.
type UserLifecycleEvent struct {
	ReferenceID string `json:"reference_id"`
}

// ConsentEvent is the Data payload for consent.granted/withdrawn.
type ConsentEvent struct {
	ReferenceID string `json:"reference_id"`
	ConsentKey  string `json:"consent_key"`
	Version     string `json:"version,omitempty"`
}

// AddressEvent is the Data payload for user.address.added/updated/deleted.
type AddressEvent struct {
	ReferenceID string `json:"reference_id"`
	AddressID   string `json:"address_id"`
}
