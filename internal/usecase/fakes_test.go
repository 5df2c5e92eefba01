package usecase

import (
	"context"
	"sync"
	"time"

	"tuition_billing/internal/domain/entities"
	"tuition_billing/internal/usecase/interfaces"
)

// memoryStore backs every repository port with maps so saga tests can run end to end.
type memoryStore struct {
	mu            sync.Mutex
	claims        map[string]entities.PaymentClaim
	profiles      map[string]entities.FeeStatusProfile
	applications  map[string]entities.ApplicationRecord
	notifications map[string]entities.NotificationEntry
	scholarships  map[string]entities.Scholarship
	universities  map[string]entities.University
	emails        []interfaces.EmailNotification
	dispatched    []interfaces.ValidationRequest
	events        []interfaces.FeeReconciledEvent
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		claims:        map[string]entities.PaymentClaim{},
		profiles:      map[string]entities.FeeStatusProfile{},
		applications:  map[string]entities.ApplicationRecord{},
		notifications: map[string]entities.NotificationEntry{},
		scholarships:  map[string]entities.Scholarship{},
		universities:  map[string]entities.University{},
	}
}

type memoryClaims struct{ s *memoryStore }

func (r memoryClaims) Create(_ context.Context, c entities.PaymentClaim) (entities.PaymentClaim, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.claims[c.ID] = c
	return c, nil
}

func (r memoryClaims) AttachProof(_ context.Context, id string, p entities.ClaimProof) (entities.PaymentClaim, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.claims[id]
	if !ok || c.Status != entities.ClaimStatusCreated {
		return entities.PaymentClaim{}, nil
	}
	c.ProofURL, c.ConfirmationCode, c.PaymentDate = p.ProofURL, p.ConfirmationCode, p.PaymentDate
	c.Status = entities.ClaimStatusPendingVerification
	r.s.claims[id] = c
	return c, nil
}

func (r memoryClaims) GetByID(_ context.Context, id string) (entities.PaymentClaim, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.claims[id], nil
}

func (r memoryClaims) ListByUserID(_ context.Context, userID string) ([]entities.PaymentClaim, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.PaymentClaim
	for _, c := range r.s.claims {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r memoryClaims) ListByUserAndFeeType(ctx context.Context, userID string, f entities.FeeType) ([]entities.PaymentClaim, error) {
	all, _ := r.ListByUserID(ctx, userID)
	var out []entities.PaymentClaim
	for _, c := range all {
		if c.FeeType == f {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r memoryClaims) RecordVerdict(_ context.Context, id string, v entities.ClaimVerdict) (entities.PaymentClaim, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.claims[id]
	if !ok {
		return entities.PaymentClaim{}, false, nil
	}
	if c.Status.Terminal() {
		return c, false, nil
	}
	c.Status, c.Notes = v.Status, v.Notes
	if len(v.Details) > 0 {
		c.VerdictDetails = v.Details
	}
	c.UpdatedAt = time.Now().UTC()
	r.s.claims[id] = c
	return c, true, nil
}

type memoryProfiles struct{ s *memoryStore }

func (r memoryProfiles) GetByUserID(_ context.Context, userID string) (entities.FeeStatusProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.profiles[userID], nil
}

func (r memoryProfiles) MarkPaid(_ context.Context, userID string, f entities.FeeType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p := r.s.profiles[userID]
	p.UserID = userID
	switch f {
	case entities.FeeTypeSelectionProcess:
		p.SelectionProcessFeePaid = true
	case entities.FeeTypeApplication:
		p.ApplicationFeePaid = true
	case entities.FeeTypeScholarship:
		p.ScholarshipFeePaid = true
	case entities.FeeTypeEnrollment:
		p.EnrollmentFeePaid = true
	case entities.FeeTypeI20Control:
		p.I20ControlFeePaid = true
	}
	r.s.profiles[userID] = p
	return nil
}

type memoryApplications struct{ s *memoryStore }

func (r memoryApplications) Get(_ context.Context, studentID, scholarshipID string) (entities.ApplicationRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.applications[entities.ApplicationID(studentID, scholarshipID)], nil
}

func (r memoryApplications) ListByStudentID(_ context.Context, studentID string) ([]entities.ApplicationRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.ApplicationRecord
	for _, a := range r.s.applications {
		if a.StudentID == studentID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r memoryApplications) MarkApplicationFeePaid(_ context.Context, studentID, scholarshipID string) (entities.ApplicationRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id := entities.ApplicationID(studentID, scholarshipID)
	a, ok := r.s.applications[id]
	if !ok {
		a = entities.ApplicationRecord{
			ID:            id,
			StudentID:     studentID,
			ScholarshipID: scholarshipID,
			Status:        entities.ApplicationStatusUnderReview,
			CreatedAt:     time.Now().UTC(),
		}
	}
	a.ApplicationFeePaid = true
	a.UpdatedAt = time.Now().UTC()
	r.s.applications[id] = a
	return a, nil
}

func (r memoryApplications) MarkScholarshipFeePaid(_ context.Context, studentID, scholarshipID string) (entities.ApplicationRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id := entities.ApplicationID(studentID, scholarshipID)
	a, ok := r.s.applications[id]
	if !ok {
		return entities.ApplicationRecord{}, nil
	}
	a.ScholarshipFeePaid = true
	a.UpdatedAt = time.Now().UTC()
	r.s.applications[id] = a
	return a, nil
}

type memoryNotifications struct{ s *memoryStore }

func (r memoryNotifications) Insert(_ context.Context, n entities.NotificationEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.notifications[n.IdempotencyKey]; ok {
		return interfaces.ErrNotificationDuplicate
	}
	r.s.notifications[n.IdempotencyKey] = n
	return nil
}

type memoryDirectory struct{ s *memoryStore }

func (r memoryDirectory) GetScholarship(_ context.Context, id string) (entities.Scholarship, error) {
	return r.s.scholarships[id], nil
}

func (r memoryDirectory) GetUniversity(_ context.Context, id string) (entities.University, error) {
	return r.s.universities[id], nil
}

type memorySideChannels struct{ s *memoryStore }

func (r memorySideChannels) Dispatch(_ context.Context, req interfaces.ValidationRequest) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.dispatched = append(r.s.dispatched, req)
}

func (r memorySideChannels) Forward(_ context.Context, n interfaces.EmailNotification) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.emails = append(r.s.emails, n)
}

func (r memorySideChannels) PublishFeeReconciled(_ context.Context, e interfaces.FeeReconciledEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.events = append(r.s.events, e)
	return nil
}

// saga wires the real use cases over one memoryStore.
type saga struct {
	store    *memoryStore
	claims   *PaymentClaimUseCase
	verdicts *VerdictUseCase
}

func newSaga() *saga {
	s := newMemoryStore()
	side := memorySideChannels{s}
	notifier := NewNotificationUseCase(memoryProfiles{s}, memoryApplications{s}, memoryDirectory{s}, memoryNotifications{s}, side)
	reconciler := NewReconciliationUseCase(memoryProfiles{s}, memoryApplications{s}, notifier, side)
	return &saga{
		store:    s,
		claims:   NewPaymentClaimUseCase(memoryClaims{s}, side, "http://billing.test/v1/verdicts/claims"),
		verdicts: NewVerdictUseCase(memoryClaims{s}, reconciler),
	}
}

func (g *saga) seedDirectory() {
	g.store.profiles["stu-1"] = entities.FeeStatusProfile{UserID: "stu-1", FullName: "Ana Souza", Email: "ana@example.com"}
	g.store.scholarships["sch-1"] = entities.Scholarship{ID: "sch-1", Title: "STEM Excellence", UniversityID: "uni-1"}
	g.store.scholarships["sch-2"] = entities.Scholarship{ID: "sch-2", Title: "Arts Merit", UniversityID: "uni-1"}
	g.store.universities["uni-1"] = entities.University{ID: "uni-1", Name: "Lakeside University", ContactEmail: "admissions@lakeside.edu"}
}
