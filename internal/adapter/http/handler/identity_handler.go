package handler

import (
	"context"
	"strings"

	"github.com/treasurehunt/payment-orchestrator/internal/adapter/http/dto"
	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"
	"github.com/treasurehunt/payment-orchestrator/internal/core/ports"
	"github.com/treasurehunt/payment-orchestrator/pkg/apperror"
	"github.com/treasurehunt/payment-orchestrator/pkg/response"

	"github.com/gin-gonic/gin"
)

// IdentityHandler exposes the PII vault's user/address/consent lifecycle.
// PII is decrypted here, at the presentation boundary, only after the
// underlying service has already authorized the calling actor.
type IdentityHandler struct {
	svc ports.IdentityService
	enc ports.EncryptionService
}

// NewIdentityHandler creates a new IdentityHandler.
func NewIdentityHandler(svc ports.IdentityService, enc ports.EncryptionService) *IdentityHandler {
	return &IdentityHandler{svc: svc, enc: enc}
}

// CreateUser handles POST /api/v1/users.
func (h *IdentityHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	user, err := h.svc.CreateUser(c.Request.Context(), ports.CreateUserRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		DOB:       req.DOB,
		Gender:    domain.Gender(req.Gender),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	resp, err := h.toUserResponse(c, user)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resp)
}

// GetUser handles GET /api/v1/users/:id.
func (h *IdentityHandler) GetUser(c *gin.Context) {
	user, err := h.svc.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	resp, err := h.toUserResponse(c, user)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}

// LookupUser handles GET /api/v1/users/lookup, resolving by email or phone
// via the deterministic HMAC index without a full PII read.
func (h *IdentityHandler) LookupUser(c *gin.Context) {
	var user *domain.User
	var err error
	if email := c.Query("email"); email != "" {
		user, err = h.svc.LookupByEmail(c.Request.Context(), email)
	} else if phone := c.Query("phone"); phone != "" {
		user, err = h.svc.LookupByPhone(c.Request.Context(), phone)
	} else {
		response.Error(c, apperror.Validation("email or phone query parameter required"))
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"id": user.ID.String(), "reference_id": user.ReferenceID})
}

// UpdateUser handles PATCH /api/v1/users/:id.
func (h *IdentityHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	var gender *domain.Gender
	if req.Gender != nil {
		g := domain.Gender(*req.Gender)
		gender = &g
	}

	user, err := h.svc.UpdateUser(c.Request.Context(), c.Param("id"), ports.UpdateUserRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		DOB:       req.DOB,
		Gender:    gender,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	resp, err := h.toUserResponse(c, user)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}

// ArchiveUser handles POST /api/v1/users/:id/archive.
func (h *IdentityHandler) ArchiveUser(c *gin.Context) {
	if err := h.svc.ArchiveUser(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"status": "archived"})
}

// ReactivateUser handles POST /api/v1/users/:id/reactivate.
func (h *IdentityHandler) ReactivateUser(c *gin.Context) {
	if err := h.svc.ReactivateUser(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"status": "active"})
}

// AnonymizeUser handles DELETE /api/v1/users/:id, a GDPR erasure request.
func (h *IdentityHandler) AnonymizeUser(c *gin.Context) {
	if err := h.svc.AnonymizeUser(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"status": "anonymized"})
}

// AddAddress handles POST /api/v1/users/:id/addresses.
func (h *IdentityHandler) AddAddress(c *gin.Context) {
	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	addr, err := h.svc.AddAddress(c.Request.Context(), c.Param("id"), ports.AddressInput{
		Type: domain.AddressType(req.Type), Line1: req.Line1, Line2: req.Line2,
		City: req.City, Postal: req.Postal, Country: req.Country, Primary: req.Primary,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	resp, err := h.toAddressResponse(c, addr)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resp)
}

// ListAddresses handles GET /api/v1/users/:id/addresses.
func (h *IdentityHandler) ListAddresses(c *gin.Context) {
	addrs, err := h.svc.ListAddresses(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	out := make([]dto.AddressResponse, 0, len(addrs))
	for i := range addrs {
		resp, err := h.toAddressResponse(c, &addrs[i])
		if err != nil {
			response.Error(c, err)
			return
		}
		out = append(out, resp)
	}
	response.OK(c, out)
}

// UpdateAddress handles PUT /api/v1/addresses/:addressID.
func (h *IdentityHandler) UpdateAddress(c *gin.Context) {
	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	addr, err := h.svc.UpdateAddress(c.Request.Context(), c.Param("addressID"), ports.AddressInput{
		Type: domain.AddressType(req.Type), Line1: req.Line1, Line2: req.Line2,
		City: req.City, Postal: req.Postal, Country: req.Country, Primary: req.Primary,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	resp, err := h.toAddressResponse(c, addr)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}

// DeleteAddress handles DELETE /api/v1/addresses/:addressID.
func (h *IdentityHandler) DeleteAddress(c *gin.Context) {
	if err := h.svc.DeleteAddress(c.Request.Context(), c.Param("addressID")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"status": "deleted"})
}

// SetPrimaryAddress handles POST /api/v1/addresses/:addressID/primary.
func (h *IdentityHandler) SetPrimaryAddress(c *gin.Context) {
	addr, err := h.svc.SetPrimaryAddress(c.Request.Context(), c.Param("addressID"))
	if err != nil {
		response.Error(c, err)
		return
	}
	resp, err := h.toAddressResponse(c, addr)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}

// GrantConsent handles POST /api/v1/users/:id/consents/:key.
func (h *IdentityHandler) GrantConsent(c *gin.Context) {
	var req dto.ConsentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	err := h.svc.GrantConsent(c.Request.Context(), c.Param("id"), c.Param("key"), req.Version, ports.ConsentInput{
		LegalBasis: domain.LegalBasis(req.LegalBasis),
		Source:     domain.ConsentSource(req.Source),
		IPAddress:  c.ClientIP(),
		UserAgent:  c.GetHeader("User-Agent"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"status": "granted"})
}

// WithdrawConsent handles DELETE /api/v1/users/:id/consents/:key.
func (h *IdentityHandler) WithdrawConsent(c *gin.Context) {
	if err := h.svc.WithdrawConsent(c.Request.Context(), c.Param("id"), c.Param("key")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"status": "withdrawn"})
}

// ListConsents handles GET /api/v1/users/:id/consents.
func (h *IdentityHandler) ListConsents(c *gin.Context) {
	consents, err := h.svc.ListConsents(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	out := make([]dto.ConsentResponse, 0, len(consents))
	for i := range consents {
		out = append(out, toConsentResponse(&consents[i]))
	}
	response.OK(c, out)
}

func (h *IdentityHandler) toUserResponse(c *gin.Context, u *domain.User) (dto.UserResponse, error) {
	resp := dto.UserResponse{
		ID:          u.ID.String(),
		ReferenceID: u.ReferenceID,
		Gender:      string(u.Gender),
		Active:      u.Active,
		Anonymized:  u.Anonymized,
		CreatedAt:   u.CreatedAt.Format(timeLayout),
		UpdatedAt:   u.UpdatedAt.Format(timeLayout),
	}
	if u.Anonymized {
		return resp, nil
	}
	ctx := c.Request.Context()
	fields := []struct {
		enc string
		out **string
	}{
		{u.FirstNameEnc, &resp.FirstName},
		{u.LastNameEnc, &resp.LastName},
		{u.EmailEnc, &resp.Email},
		{u.PhoneEnc, &resp.Phone},
		{u.DOBEnc, &resp.DOB},
	}
	for _, f := range fields {
		if f.enc == "" {
			continue
		}
		plain, err := h.enc.Decrypt(ctx, f.enc)
		if err != nil {
			return dto.UserResponse{}, apperror.InternalError(err)
		}
		*f.out = &plain
	}

	// Non-ADMIN reads never see full contact PII: the local-part of the
	// email and the last four digits of the phone are masked.
	if actorFromRequest(ctx).Role != ports.RoleAdmin {
		if resp.Email != nil {
			masked := maskEmailLocalPart(*resp.Email)
			resp.Email = &masked
		}
		if resp.Phone != nil {
			masked := maskPhoneLastFour(*resp.Phone)
			resp.Phone = &masked
		}
	}
	return resp, nil
}

// actorFromRequest mirrors the service layer's actorFrom: an absent actor is
// treated as the least-privileged internal caller, never as ADMIN.
func actorFromRequest(ctx context.Context) ports.Actor {
	if actor, ok := ports.ActorFromContext(ctx); ok {
		return actor
	}
	return ports.Actor{Role: ports.RoleInternalConsumer}
}

// maskEmailLocalPart replaces the local part of an email with asterisks,
// leaving the domain visible: "asha@example.com" -> "****@example.com".
func maskEmailLocalPart(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return strings.Repeat("*", len(email))
	}
	return strings.Repeat("*", at) + email[at:]
}

// maskPhoneLastFour replaces the last four characters of a phone number with
// asterisks, leaving the leading digits/country code visible.
func maskPhoneLastFour(phone string) string {
	if len(phone) <= 4 {
		return strings.Repeat("*", len(phone))
	}
	return phone[:len(phone)-4] + strings.Repeat("*", 4)
}

func (h *IdentityHandler) toAddressResponse(c *gin.Context, a *domain.Address) (dto.AddressResponse, error) {
	ctx := c.Request.Context()
	line1, err := h.enc.Decrypt(ctx, a.Line1Enc)
	if err != nil {
		return dto.AddressResponse{}, apperror.InternalError(err)
	}
	var line2 string
	if a.Line2Enc != "" {
		line2, err = h.enc.Decrypt(ctx, a.Line2Enc)
		if err != nil {
			return dto.AddressResponse{}, apperror.InternalError(err)
		}
	}
	city, err := h.enc.Decrypt(ctx, a.CityEnc)
	if err != nil {
		return dto.AddressResponse{}, apperror.InternalError(err)
	}
	postal, err := h.enc.Decrypt(ctx, a.PostalEnc)
	if err != nil {
		return dto.AddressResponse{}, apperror.InternalError(err)
	}
	country, err := h.enc.Decrypt(ctx, a.CountryEnc)
	if err != nil {
		return dto.AddressResponse{}, apperror.InternalError(err)
	}
	return dto.AddressResponse{
		ID: a.ID.String(), UserID: a.UserID.String(), Type: string(a.Type),
		Line1: line1, Line2: line2, City: city, Postal: postal, Country: country,
		Primary: a.Primary, CreatedAt: a.CreatedAt.Format(timeLayout),
	}, nil
}

func toConsentResponse(cs *domain.Consent) dto.ConsentResponse {
	resp := dto.ConsentResponse{
		ID: cs.ID.String(), ConsentKey: cs.ConsentKey, Granted: cs.Granted,
		Version: cs.ConsentVersion, Source: string(cs.Source), LegalBasis: string(cs.LegalBasis),
	}
	if cs.GrantedAt != nil {
		s := cs.GrantedAt.Format(timeLayout)
		resp.GrantedAt = &s
	}
	if cs.WithdrawnAt != nil {
		s := cs.WithdrawnAt.Format(timeLayout)
		resp.WithdrawnAt = &s
	}
	return resp
}
