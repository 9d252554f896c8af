package service

import (
	"context"
	"time"

	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"
	"github.com/treasurehunt/payment-orchestrator/internal/core/ports"
	"github.com/treasurehunt/payment-orchestrator/pkg/apperror"
	"github.com/treasurehunt/payment-orchestrator/pkg/eventenvelope"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// IdentityServiceImpl implements ports.IdentityService: the PII vault's
// create/read/update/archive/anonymize lifecycle plus address and consent
// management. Every mutation is audited and staged to the outbox within
// the same transaction as the mutation it describes.
type IdentityServiceImpl struct {
	users     ports.UserRepository
	addresses ports.AddressRepository
	consents  ports.ConsentRepository
	audits    ports.UserAuditRepository
	outbox    ports.OutboxRepository
	tx        ports.DBTransactor
	enc       ports.EncryptionService
	indexer   ports.HMACIndexer
	log       zerolog.Logger
}

// NewIdentityService wires an IdentityServiceImpl from its ports.
func NewIdentityService(
	users ports.UserRepository,
	addresses ports.AddressRepository,
	consents ports.ConsentRepository,
	audits ports.UserAuditRepository,
	outbox ports.OutboxRepository,
	tx ports.DBTransactor,
	enc ports.EncryptionService,
	indexer ports.HMACIndexer,
	log zerolog.Logger,
) *IdentityServiceImpl {
	return &IdentityServiceImpl{
		users: users, addresses: addresses, consents: consents, audits: audits,
		outbox: outbox, tx: tx, enc: enc, indexer: indexer, log: log,
	}
}

func actorFrom(ctx context.Context) ports.Actor {
	if actor, ok := ports.ActorFromContext(ctx); ok {
		return actor
	}
	return ports.Actor{ID: "system", Role: ports.RoleInternalConsumer}
}

// CreateUser encrypts the supplied PII, derives the email/phone search
// indexes, and persists the new user with its creation audit row in one
// transaction along with a staged user.created outbox event.
func (s *IdentityServiceImpl) CreateUser(ctx context.Context, req ports.CreateUserRequest) (*domain.User, error) {
	if existing, _ := s.users.GetByEmailHMAC(ctx, s.indexer.Index(normalizeEmail(req.Email))); existing != nil {
		return nil, apperror.Duplicate("user with this email")
	}

	firstNameEnc, err := s.enc.Encrypt(ctx, req.FirstName)
	if err != nil {
		return nil, err
	}
	lastNameEnc, err := s.enc.Encrypt(ctx, req.LastName)
	if err != nil {
		return nil, err
	}
	emailEnc, err := s.enc.Encrypt(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	phoneEnc, err := s.enc.Encrypt(ctx, req.Phone)
	if err != nil {
		return nil, err
	}
	dobEnc, err := s.enc.Encrypt(ctx, req.DOB)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New(),
		ReferenceID:  uuid.NewString(),
		FirstNameEnc: firstNameEnc,
		LastNameEnc:  lastNameEnc,
		EmailEnc:     emailEnc,
		EmailHMAC:    s.indexer.Index(normalizeEmail(req.Email)),
		PhoneEnc:     phoneEnc,
		PhoneHMAC:    s.indexer.Index(normalizePhone(req.Phone)),
		DOBEnc:       dobEnc,
		Gender:       req.Gender,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	tx, err := s.tx.Begin(ctx)
	if err != nil {
		return nil, apperror.DatabaseError(err)
	}
	defer tx.Rollback(ctx)

	if err := s.users.Create(ctx, tx, user); err != nil {
		return nil, apperror.DatabaseError(err)
	}
	if err := s.stageAudit(ctx, tx, user.ID, domain.AuditUserCreated, nil); err != nil {
		return nil, err
	}
	if err := s.stageEvent(ctx, tx, user.ID.String(), domain.EventUserCreated, eventenvelope.UserLifecycleEvent{ReferenceID: user.ReferenceID}); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.DatabaseError(err)
	}
	return user, nil
}

// GetUser returns a user by internal id, recording a PII_READ audit entry.
func (s *IdentityServiceImpl) GetUser(ctx context.Context, id string) (*domain.User, error) {
	actor := actorFrom(ctx)
	if !actor.CanReadPII() {
		return nil, apperror.PermissionDenied("read user PII")
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.DatabaseError(err)
	}
	if user == nil {
		return nil, apperror.NotFound("user")
	}

	tx, err := s.tx.Begin(ctx)
	if err != nil {
		return nil, apperror.DatabaseError(err)
	}
	defer tx.Rollback(ctx)
	if err := s.stageAudit(ctx, tx, user.ID, domain.AuditPIIRead, nil); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.DatabaseError(err)
	}
	return user, nil
}

// LookupByEmail resolves a user via the deterministic HMAC index without
// decrypting PII, for roles authorized to do equality lookups only.
func (s *IdentityServiceImpl) LookupByEmail(ctx context.Context, email string) (*domain.User, error) {
	if !actorFrom(ctx).CanLookupByHash() {
		return nil, apperror.PermissionDenied("lookup user by email")
	}
	user, err := s.users.GetByEmailHMAC(ctx, s.indexer.Index(normalizeEmail(email)))
	if err != nil {
		return nil, apperror.DatabaseError(err)
	}
	if user == nil {
		return nil, apperror.NotFound("user")
	}
	return user, nil
}

// LookupByPhone mirrors LookupByEmail for the phone index.
func (s *IdentityServiceImpl) LookupByPhone(ctx context.Context, phone string) (*domain.User, error) {
	if !actorFrom(ctx).CanLookupByHash() {
		return nil, apperror.PermissionDenied("lookup user by phone")
	}
	user, err := s.users.GetByPhoneHMAC(ctx, s.indexer.Index(normalizePhone(phone)))
	if err != nil {
		return nil, apperror.DatabaseError(err)
	}
	if user == nil {
		return nil, apperror.NotFound("user")
	}
	return user, nil
}

// UpdateUser re-encrypts any changed PII fields and re-derives search
// indexes where the indexed plaintext changed.
func (s *IdentityServiceImpl) UpdateUser(ctx context.Context, id string, req ports.UpdateUserRequest) (*domain.User, error) {
	if !actorFrom(ctx).CanMutate() {
		return nil, apperror.PermissionDenied("update user")
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.DatabaseError(err)
	}
	if user == nil {
		return nil, apperror.NotFound("user")
	}
	if user.IsArchived() {
		return nil, apperror.InconsistentState("User", "ARCHIVED", "ACTIVE")
	}

	if req.FirstName != nil {
		enc, err := s.enc.Encrypt(ctx, *req.FirstName)
		if err != nil {
			return nil, err
		}
		user.FirstNameEnc = enc
	}
	if req.LastName != nil {
		enc, err := s.enc.Encrypt(ctx, *req.LastName)
		if err != nil {
			return nil, err
		}
		user.LastNameEnc = enc
	}
	if req.Email != nil {
		enc, err := s.enc.Encrypt(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		user.EmailEnc = enc
		user.EmailHMAC = s.indexer.Index(normalizeEmail(*req.Email))
	}
	if req.Phone != nil {
		enc, err := s.enc.Encrypt(ctx, *req.Phone)
		if err != nil {
			return nil, err
		}
		user.PhoneEnc = enc
		user.PhoneHMAC = s.indexer.Index(normalizePhone(*req.Phone))
	}
	if req.DOB != nil {
		enc, err := s.enc.Encrypt(ctx, *req.DOB)
		if err != nil {
			return nil, err
		}
		user.DOBEnc = enc
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	user.UpdatedAt = time.Now().UTC()

	tx, err := s.tx.Begin(ctx)
	if err != nil {
		return nil, apperror.DatabaseError(err)
	}
	defer tx.Rollback(ctx)

	if err := s.users.Update(ctx, tx, user); err != nil {
		return nil, apperror.DatabaseError(err)
	}
	if err := s.stageAudit(ctx, tx, user.ID, domain.AuditUserUpdated, nil); err != nil {
		return nil, err
	}
	if err := s.stageEvent(ctx, tx, user.ID.String(), domain.EventUserUpdated, eventenvelope.UserLifecycleEvent{ReferenceID: user.ReferenceID}); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.DatabaseError(err)
	}
	return user, nil
}

// ArchiveUser soft-deletes a user: retained for legal/financial retention
// but excluded from active lookups.
func (s *IdentityServiceImpl) ArchiveUser(ctx context.Context, id string) error {
	return s.transitionUser(ctx, id, domain.AuditUserArchived, domain.EventUserArchived, func(u *domain.User) error {
		if u.IsArchived() {
			return apperror.InconsistentState("User", "ARCHIVED", "ARCHIVED")
		}
		u.Archive(time.Now().UTC())
		return nil
	})
}

// ReactivateUser restores an archived (but not anonymized) user to active.
func (s *IdentityServiceImpl) ReactivateUser(ctx context.Context, id string) error {
	return s.transitionUser(ctx, id, domain.AuditUserReactivated, domain.EventUserReactivated, func(u *domain.User) error {
		if !u.CanReactivate() {
			return apperror.InconsistentState("User", "ANONYMIZED_OR_ACTIVE", "ACTIVE")
		}
		u.Reactivate(time.Now().UTC())
		return nil
	})
}

// AnonymizeUser irreversibly scrubs PII ciphertext and search indexes in
// compliance with a data-subject erasure request, retaining only the row
// shell for referential integrity with invoices/payments.
func (s *IdentityServiceImpl) AnonymizeUser(ctx context.Context, id string) error {
	return s.transitionUser(ctx, id, domain.AuditUserAnonymized, domain.EventUserDeleted, func(u *domain.User) error {
		u.Anonymize(time.Now().UTC())
		return nil
	})
}

func (s *IdentityServiceImpl) transitionUser(ctx context.Context, id string, auditEvt domain.UserAuditEventType, outboxEvt string, mutate func(*domain.User) error) error {
	if !actorFrom(ctx).CanMutate() {
		return apperror.PermissionDenied("mutate user lifecycle state")
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return apperror.DatabaseError(err)
	}
	if user == nil {
		return apperror.NotFound("user")
	}
	if err := mutate(user); err != nil {
		return err
	}

	tx, err := s.tx.Begin(ctx)
	if err != nil {
		return apperror.DatabaseError(err)
	}
	defer tx.Rollback(ctx)

	if err := s.users.Update(ctx, tx, user); err != nil {
		return apperror.DatabaseError(err)
	}
	if err := s.stageAudit(ctx, tx, user.ID, auditEvt, nil); err != nil {
		return err
	}
	if err := s.stageEvent(ctx, tx, user.ID.String(), outboxEvt, eventenvelope.UserLifecycleEvent{ReferenceID: user.ReferenceID}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.DatabaseError(err)
	}
	return nil
}

// AddAddress encrypts and persists a new postal address, unsetting any
// prior primary address when the new one is marked primary, and promoting
// it to primary regardless of req.Primary when the user has no primary
// address yet (first address, or every prior address non-primary).
func (s *IdentityServiceImpl) AddAddress(ctx context.Context, userID string, req ports.AddressInput) (*domain.Address, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperror.Validation("invalid user id")
	}

	existing, err := s.addresses.ListByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.DatabaseError(err)
	}
	hasPrimary := false
	for i := range existing {
		if existing[i].Primary {
			hasPrimary = true
			break
		}
	}

	line1Enc, err := s.enc.Encrypt(ctx, req.Line1)
	if err != nil {
		return nil, err
	}
	line2Enc, err := s.enc.Encrypt(ctx, req.Line2)
	if err != nil {
		return nil, err
	}
	cityEnc, err := s.enc.Encrypt(ctx, req.City)
	if err != nil {
		return nil, err
	}
	postalEnc, err := s.enc.Encrypt(ctx, req.Postal)
	if err != nil {
		return nil, err
	}
	countryEnc, err := s.enc.Encrypt(ctx, req.Country)
	if err != nil {
		return nil, err
	}

	addr := &domain.Address{
		ID:         uuid.New(),
		UserID:     uid,
		Type:       req.Type,
		Line1Enc:   line1Enc,
		Line2Enc:   line2Enc,
		CityEnc:    cityEnc,
		PostalEnc:  postalEnc,
		CountryEnc: countryEnc,
		Primary:    req.Primary || !hasPrimary,
		CreatedAt:  time.Now().UTC(),
	}

	tx, err := s.tx.Begin(ctx)
	if err != nil {
		return nil, apperror.DatabaseError(err)
	}
	defer tx.Rollback(ctx)

	if addr.Primary {
		if err := s.addresses.UnsetPrimary(ctx, tx, userID, ""); err != nil {
			return nil, apperror.DatabaseError(err)
		}
	}
	if err := s.addresses.Create(ctx, tx, addr); err != nil {
		return nil, apperror.DatabaseError(err)
	}
	if err := s.stageAudit(ctx, tx, uid, domain.AuditAddressChanged, nil); err != nil {
		return nil, err
	}
	if err := s.stageEvent(ctx, tx, userID, domain.EventUserAddressAdded, eventenvelope.AddressEvent{ReferenceID: userID, AddressID: addr.ID.String()}); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.DatabaseError(err)
	}
	return addr, nil
}

// ListAddresses returns a user's addresses.
func (s *IdentityServiceImpl) ListAddresses(ctx context.Context, userID string) ([]domain.Address, error) {
	addrs, err := s.addresses.ListByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.DatabaseError(err)
	}
	return addrs, nil
}

// UpdateAddress re-encrypts the supplied fields of an existing address.
func (s *IdentityServiceImpl) UpdateAddress(ctx context.Context, addressID string, req ports.AddressInput) (*domain.Address, error) {
	addr, err := s.addresses.GetByID(ctx, addressID)
	if err != nil {
		return nil, apperror.DatabaseError(err)
	}
	if addr == nil {
		return nil, apperror.NotFound("address")
	}

	line1Enc, err := s.enc.Encrypt(ctx, req.Line1)
	if err != nil {
		return nil, err
	}
	line2Enc, err := s.enc.Encrypt(ctx, req.Line2)
	if err != nil {
		return nil, err
	}
	cityEnc, err := s.enc.Encrypt(ctx, req.City)
	if err != nil {
		return nil, err
	}
	postalEnc, err := s.enc.Encrypt(ctx, req.Postal)
	if err != nil {
		return nil, err
	}
	countryEnc, err := s.enc.Encrypt(ctx, req.Country)
	if err != nil {
		return nil, err
	}
	addr.Type = req.Type
	addr.Line1Enc, addr.Line2Enc, addr.CityEnc, addr.PostalEnc, addr.CountryEnc = line1Enc, line2Enc, cityEnc, postalEnc, countryEnc
	addr.Primary = req.Primary

	tx, err := s.tx.Begin(ctx)
	if err != nil {
		return nil, apperror.DatabaseError(err)
	}
	defer tx.Rollback(ctx)

	userID := addr.UserID.String()
	if addr.Primary {
		if err := s.addresses.UnsetPrimary(ctx, tx, userID, addr.ID.String()); err != nil {
			return nil, apperror.DatabaseError(err)
		}
	}
	if err := s.addresses.Update(ctx, tx, addr); err != nil {
		return nil, apperror.DatabaseError(err)
	}
	if err := s.stageAudit(ctx, tx, addr.UserID, domain.AuditAddressChanged, nil); err != nil {
		return nil, err
	}
	if err := s.stageEvent(ctx, tx, userID, domain.EventUserAddressUpdated, eventenvelope.AddressEvent{ReferenceID: userID, AddressID: addr.ID.String()}); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.DatabaseError(err)
	}
	return addr, nil
}

// DeleteAddress removes an address, promoting the user's most-recently
// created remaining address to primary if the deleted address was primary.
func (s *IdentityServiceImpl) DeleteAddress(ctx context.Context, addressID string) error {
	addr, err := s.addresses.GetByID(ctx, addressID)
	if err != nil {
		return apperror.DatabaseError(err)
	}
	if addr == nil {
		return apperror.NotFound("address")
	}

	tx, err := s.tx.Begin(ctx)
	if err != nil {
		return apperror.DatabaseError(err)
	}
	defer tx.Rollback(ctx)

	if err := s.addresses.Delete(ctx, tx, addressID); err != nil {
		return apperror.DatabaseError(err)
	}
	if addr.Primary {
		if err := s.addresses.PromoteMostRecent(ctx, tx, addr.UserID.String()); err != nil {
			return apperror.DatabaseError(err)
		}
	}
	if err := s.stageAudit(ctx, tx, addr.UserID, domain.AuditAddressChanged, nil); err != nil {
		return err
	}
	if err := s.stageEvent(ctx, tx, addr.UserID.String(), domain.EventUserAddressDeleted, eventenvelope.AddressEvent{ReferenceID: addr.UserID.String(), AddressID: addr.ID.String()}); err != nil {
		return err
	}
	return commitTx(ctx, tx)
}

// SetPrimaryAddress promotes addressID to primary, unsetting any other
// address of the same user that currently holds it. A no-op if addressID is
// already primary.
func (s *IdentityServiceImpl) SetPrimaryAddress(ctx context.Context, addressID string) (*domain.Address, error) {
	addr, err := s.addresses.GetByID(ctx, addressID)
	if err != nil {
		return nil, apperror.DatabaseError(err)
	}
	if addr == nil {
		return nil, apperror.NotFound("address")
	}
	if addr.Primary {
		return addr, nil
	}

	tx, err := s.tx.Begin(ctx)
	if err != nil {
		return nil, apperror.DatabaseError(err)
	}
	defer tx.Rollback(ctx)

	userID := addr.UserID.String()
	if err := s.addresses.UnsetPrimary(ctx, tx, userID, addr.ID.String()); err != nil {
		return nil, apperror.DatabaseError(err)
	}
	addr.Primary = true
	if err := s.addresses.Update(ctx, tx, addr); err != nil {
		return nil, apperror.DatabaseError(err)
	}
	if err := s.stageAudit(ctx, tx, addr.UserID, domain.AuditAddressChanged, nil); err != nil {
		return nil, err
	}
	if err := s.stageEvent(ctx, tx, userID, domain.EventUserAddressUpdated, eventenvelope.AddressEvent{ReferenceID: userID, AddressID: addr.ID.String()}); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.DatabaseError(err)
	}
	return addr, nil
}

// GrantConsent records a new consent grant row.
func (s *IdentityServiceImpl) GrantConsent(ctx context.Context, userID string, key string, version string, req ports.ConsentInput) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return apperror.Validation("invalid user id")
	}

	now := time.Now().UTC()
	consent := &domain.Consent{
		ID:             uuid.New(),
		UserID:         uid,
		ConsentKey:     key,
		Granted:        true,
		ConsentVersion: version,
		GrantedAt:      &now,
		Source:         req.Source,
		LegalBasis:     req.LegalBasis,
		IPAddress:      req.IPAddress,
		UserAgent:      req.UserAgent,
	}

	tx, err := s.tx.Begin(ctx)
	if err != nil {
		return apperror.DatabaseError(err)
	}
	defer tx.Rollback(ctx)

	if err := s.consents.Create(ctx, tx, consent); err != nil {
		return apperror.DatabaseError(err)
	}
	if err := s.stageAudit(ctx, tx, uid, domain.AuditConsentGranted, map[string]any{"key": key}); err != nil {
		return err
	}
	if err := s.stageEvent(ctx, tx, userID, domain.EventConsentGranted, eventenvelope.ConsentEvent{ReferenceID: userID, ConsentKey: key, Version: version}); err != nil {
		return err
	}
	return commitTx(ctx, tx)
}

// WithdrawConsent appends a withdrawal row to the consent ledger rather
// than mutating the grant row, so the full history survives.
func (s *IdentityServiceImpl) WithdrawConsent(ctx context.Context, userID string, key string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return apperror.Validation("invalid user id")
	}

	latest, err := s.consents.GetLatest(ctx, userID, key)
	if err != nil {
		return apperror.DatabaseError(err)
	}
	if latest == nil || !latest.Granted {
		return apperror.InconsistentState("Consent", "WITHDRAWN_OR_ABSENT", "GRANTED")
	}

	now := time.Now().UTC()
	consent := &domain.Consent{
		ID:             uuid.New(),
		UserID:         uid,
		ConsentKey:     key,
		Granted:        false,
		ConsentVersion: latest.ConsentVersion,
		GrantedAt:      latest.GrantedAt,
		WithdrawnAt:    &now,
		Source:         latest.Source,
		LegalBasis:     latest.LegalBasis,
	}

	tx, err := s.tx.Begin(ctx)
	if err != nil {
		return apperror.DatabaseError(err)
	}
	defer tx.Rollback(ctx)

	if err := s.consents.Create(ctx, tx, consent); err != nil {
		return apperror.DatabaseError(err)
	}
	if err := s.stageAudit(ctx, tx, uid, domain.AuditConsentWithdrawn, map[string]any{"key": key}); err != nil {
		return err
	}
	if err := s.stageEvent(ctx, tx, userID, domain.EventConsentWithdrawn, eventenvelope.ConsentEvent{ReferenceID: userID, ConsentKey: key, Version: latest.ConsentVersion}); err != nil {
		return err
	}
	return commitTx(ctx, tx)
}

// ListConsents returns the full consent ledger for a user.
func (s *IdentityServiceImpl) ListConsents(ctx context.Context, userID string) ([]domain.Consent, error) {
	consents, err := s.consents.ListByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.DatabaseError(err)
	}
	return consents, nil
}

// stageAudit writes an append-only audit row inside tx, tagged with the
// calling actor and correlation id pulled from the request context.
func (s *IdentityServiceImpl) stageAudit(ctx context.Context, tx pgx.Tx, userID uuid.UUID, evt domain.UserAuditEventType, detail map[string]any) error {
	actor := actorFrom(ctx)
	audit := &domain.UserAudit{
		ID:            uuid.New(),
		UserID:        userID,
		EventType:     evt,
		Detail:        detail,
		ActorID:       actor.ID,
		CorrelationID: actor.CorrelationID,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.audits.Create(ctx, tx, audit); err != nil {
		return apperror.DatabaseError(err)
	}
	return nil
}

// stageEvent marshals payload and stages a transactional-outbox row inside
// tx, to be published by the Dispatcher after commit.
func (s *IdentityServiceImpl) stageEvent(ctx context.Context, tx pgx.Tx, aggregateID, eventType string, payload any) error {
	return stageOutboxEvent(ctx, s.outbox, tx, "user", aggregateID, eventType, payload)
}
