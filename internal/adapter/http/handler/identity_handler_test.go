package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/treasurehunt/payment-orchestrator/internal/adapter/http/dto"
	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"
	"github.com/treasurehunt/payment-orchestrator/internal/core/ports"
	"github.com/treasurehunt/payment-orchestrator/internal/core/ports/mocks"
	"github.com/treasurehunt/payment-orchestrator/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestIdentityHandler_CreateUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mocks.NewMockIdentityService(ctrl)
	mockEnc := mocks.NewMockEncryptionService(ctrl)
	h := NewIdentityHandler(mockIdentity, mockEnc)

	userID := uuid.New()
	now := time.Now()
	mockIdentity.EXPECT().CreateUser(gomock.Any(), ports.CreateUserRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@example.com",
		Phone:     "+15551234567",
		DOB:       "1990-01-01",
		Gender:    domain.GenderFemale,
	}).Return(&domain.User{
		ID:          userID,
		ReferenceID: "ref-001",
		Gender:      domain.GenderFemale,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil)

	body, _ := json.Marshal(dto.CreateUserRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@example.com",
		Phone:     "+15551234567",
		DOB:       "1990-01-01",
		Gender:    "FEMALE",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/users", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CreateUser(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, userID.String(), data["id"])
	assert.Equal(t, "ref-001", data["reference_id"])
}

func TestIdentityHandler_CreateUser_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewIdentityHandler(mocks.NewMockIdentityService(ctrl), mocks.NewMockEncryptionService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/users", bytes.NewReader([]byte("not json")))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CreateUser(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIdentityHandler_CreateUser_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mocks.NewMockIdentityService(ctrl)
	h := NewIdentityHandler(mockIdentity, mocks.NewMockEncryptionService(ctrl))

	mockIdentity.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, apperror.Duplicate("user"))

	body, _ := json.Marshal(dto.CreateUserRequest{
		FirstName: "Jane", LastName: "Doe", Email: "jane.doe@example.com",
		Phone: "+15551234567", DOB: "1990-01-01", Gender: "FEMALE",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/users", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CreateUser(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestIdentityHandler_GetUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mocks.NewMockIdentityService(ctrl)
	mockEnc := mocks.NewMockEncryptionService(ctrl)
	h := NewIdentityHandler(mockIdentity, mockEnc)

	userID := uuid.New()
	now := time.Now()
	mockIdentity.EXPECT().GetUser(gomock.Any(), userID.String()).Return(&domain.User{
		ID: userID, ReferenceID: "ref-001", Gender: domain.GenderFemale,
		EmailEnc: "cipher:email", Active: true, CreatedAt: now, UpdatedAt: now,
	}, nil)
	mockEnc.EXPECT().Decrypt(gomock.Any(), "cipher:email").Return("jane.doe@example.com", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+userID.String(), nil)
	c.Request = req.WithContext(ports.WithActor(req.Context(), ports.Actor{ID: "admin-1", Role: ports.RoleAdmin}))
	c.Params = gin.Params{{Key: "id", Value: userID.String()}}

	h.GetUser(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "jane.doe@example.com", data["email"], "ADMIN reads the full, unredacted email")
}

func TestIdentityHandler_GetUser_NonAdminRedactsContactPII(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mocks.NewMockIdentityService(ctrl)
	mockEnc := mocks.NewMockEncryptionService(ctrl)
	h := NewIdentityHandler(mockIdentity, mockEnc)

	userID := uuid.New()
	mockIdentity.EXPECT().GetUser(gomock.Any(), userID.String()).Return(&domain.User{
		ID: userID, ReferenceID: "ref-001", Gender: domain.GenderFemale,
		EmailEnc: "cipher:email", PhoneEnc: "cipher:phone", Active: true,
	}, nil)
	mockEnc.EXPECT().Decrypt(gomock.Any(), "cipher:email").Return("jane.doe@example.com", nil)
	mockEnc.EXPECT().Decrypt(gomock.Any(), "cipher:phone").Return("+15551234567", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+userID.String(), nil)
	c.Request = req.WithContext(ports.WithActor(req.Context(), ports.Actor{ID: "support-1", Role: ports.RoleSupport}))
	c.Params = gin.Params{{Key: "id", Value: userID.String()}}

	h.GetUser(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "********@example.com", data["email"])
	assert.Equal(t, "+1555123****", data["phone"])
}

func TestIdentityHandler_GetUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mocks.NewMockIdentityService(ctrl)
	h := NewIdentityHandler(mockIdentity, mocks.NewMockEncryptionService(ctrl))

	mockIdentity.EXPECT().GetUser(gomock.Any(), "missing-id").Return(nil, apperror.NotFound("user"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/users/missing-id", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing-id"}}

	h.GetUser(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIdentityHandler_GetUser_AnonymizedOmitsPII(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mocks.NewMockIdentityService(ctrl)
	mockEnc := mocks.NewMockEncryptionService(ctrl)
	h := NewIdentityHandler(mockIdentity, mockEnc)

	userID := uuid.New()
	mockIdentity.EXPECT().GetUser(gomock.Any(), userID.String()).Return(&domain.User{
		ID: userID, ReferenceID: "ref-001", Anonymized: true, EmailEnc: "DELETED",
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/users/"+userID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: userID.String()}}

	h.GetUser(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Nil(t, data["email"], "anonymized users never decrypt PII, even at the handler boundary")
}

func TestIdentityHandler_LookupUser_ByEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mocks.NewMockIdentityService(ctrl)
	h := NewIdentityHandler(mockIdentity, mocks.NewMockEncryptionService(ctrl))

	userID := uuid.New()
	mockIdentity.EXPECT().LookupByEmail(gomock.Any(), "jane.doe@example.com").Return(&domain.User{
		ID: userID, ReferenceID: "ref-001",
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/users/lookup?email=jane.doe@example.com", nil)

	h.LookupUser(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIdentityHandler_LookupUser_MissingQueryParam(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewIdentityHandler(mocks.NewMockIdentityService(ctrl), mocks.NewMockEncryptionService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/users/lookup", nil)

	h.LookupUser(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIdentityHandler_ArchiveUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mocks.NewMockIdentityService(ctrl)
	h := NewIdentityHandler(mockIdentity, mocks.NewMockEncryptionService(ctrl))

	mockIdentity.EXPECT().ArchiveUser(gomock.Any(), "user-1").Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/users/user-1/archive", nil)
	c.Params = gin.Params{{Key: "id", Value: "user-1"}}

	h.ArchiveUser(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIdentityHandler_AnonymizeUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mocks.NewMockIdentityService(ctrl)
	h := NewIdentityHandler(mockIdentity, mocks.NewMockEncryptionService(ctrl))

	mockIdentity.EXPECT().AnonymizeUser(gomock.Any(), "user-1").Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/api/v1/users/user-1", nil)
	c.Params = gin.Params{{Key: "id", Value: "user-1"}}

	h.AnonymizeUser(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "anonymized", data["status"])
}

func TestIdentityHandler_AddAddress_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mocks.NewMockIdentityService(ctrl)
	mockEnc := mocks.NewMockEncryptionService(ctrl)
	h := NewIdentityHandler(mockIdentity, mockEnc)

	userID := uuid.New()
	addrID := uuid.New()
	mockIdentity.EXPECT().AddAddress(gomock.Any(), userID.String(), ports.AddressInput{
		Type: domain.AddressTypeHome, Line1: "221B Baker St", City: "London",
		Postal: "NW1", Country: "UK", Primary: true,
	}).Return(&domain.Address{
		ID: addrID, UserID: userID, Type: domain.AddressTypeHome,
		Line1Enc: "c:l1", CityEnc: "c:city", PostalEnc: "c:postal", CountryEnc: "c:country",
		Primary: true,
	}, nil)
	mockEnc.EXPECT().Decrypt(gomock.Any(), "c:l1").Return("221B Baker St", nil)
	mockEnc.EXPECT().Decrypt(gomock.Any(), "c:city").Return("London", nil)
	mockEnc.EXPECT().Decrypt(gomock.Any(), "c:postal").Return("NW1", nil)
	mockEnc.EXPECT().Decrypt(gomock.Any(), "c:country").Return("UK", nil)

	body, _ := json.Marshal(dto.AddressRequest{
		Type: "HOME", Line1: "221B Baker St", City: "London", Postal: "NW1", Country: "UK", Primary: true,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/users/"+userID.String()+"/addresses", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: userID.String()}}

	h.AddAddress(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestIdentityHandler_DeleteAddress_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mocks.NewMockIdentityService(ctrl)
	h := NewIdentityHandler(mockIdentity, mocks.NewMockEncryptionService(ctrl))

	mockIdentity.EXPECT().DeleteAddress(gomock.Any(), "addr-1").Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/api/v1/addresses/addr-1", nil)
	c.Params = gin.Params{{Key: "addressID", Value: "addr-1"}}

	h.DeleteAddress(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIdentityHandler_GrantConsent_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mocks.NewMockIdentityService(ctrl)
	h := NewIdentityHandler(mockIdentity, mocks.NewMockEncryptionService(ctrl))

	mockIdentity.EXPECT().GrantConsent(gomock.Any(), "user-1", "marketing_emails", "v1", gomock.Any()).Return(nil)

	body, _ := json.Marshal(dto.ConsentRequest{Version: "v1", LegalBasis: "CONSENT", Source: "WEB"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/users/user-1/consents/marketing_emails", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "user-1"}, {Key: "key", Value: "marketing_emails"}}

	h.GrantConsent(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestIdentityHandler_WithdrawConsent_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mocks.NewMockIdentityService(ctrl)
	h := NewIdentityHandler(mockIdentity, mocks.NewMockEncryptionService(ctrl))

	mockIdentity.EXPECT().WithdrawConsent(gomock.Any(), "user-1", "marketing_emails").Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/api/v1/users/user-1/consents/marketing_emails", nil)
	c.Params = gin.Params{{Key: "id", Value: "user-1"}, {Key: "key", Value: "marketing_emails"}}

	h.WithdrawConsent(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIdentityHandler_ListConsents_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mocks.NewMockIdentityService(ctrl)
	h := NewIdentityHandler(mockIdentity, mocks.NewMockEncryptionService(ctrl))

	granted := time.Now()
	mockIdentity.EXPECT().ListConsents(gomock.Any(), "user-1").Return([]domain.Consent{
		{ConsentKey: "marketing_emails", Granted: true, ConsentVersion: "v1", GrantedAt: &granted,
			Source: domain.ConsentSourceWeb, LegalBasis: domain.LegalBasisConsent},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/users/user-1/consents", nil)
	c.Params = gin.Params{{Key: "id", Value: "user-1"}}

	h.ListConsents(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "marketing_emails", data[0].(map[string]interface{})["consent_key"])
}

func TestIdentityHandler_UpdateUser_DecryptFailureIsInternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mocks.NewMockIdentityService(ctrl)
	mockEnc := mocks.NewMockEncryptionService(ctrl)
	h := NewIdentityHandler(mockIdentity, mockEnc)

	userID := uuid.New()
	mockIdentity.EXPECT().UpdateUser(gomock.Any(), userID.String(), gomock.Any()).Return(&domain.User{
		ID: userID, EmailEnc: "cipher:email",
	}, nil)
	mockEnc.EXPECT().Decrypt(gomock.Any(), "cipher:email").Return("", errors.New("kms unreachable"))

	body, _ := json.Marshal(dto.UpdateUserRequest{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPatch, "/api/v1/users/"+userID.String(), bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: userID.String()}}

	h.UpdateUser(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
