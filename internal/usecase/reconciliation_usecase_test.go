package usecase

import (
	"context"
	"errors"
	"testing"

	"tuition_billing/internal/domain/entities"
	"tuition_billing/internal/usecase/interfaces"
	mock_interfaces "tuition_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type recordingNotifier struct {
	notices []FeePaidNotice
	err     error
}

func (r *recordingNotifier) NotifyFeePaid(_ context.Context, n FeePaidNotice) (NotificationState, error) {
	r.notices = append(r.notices, n)
	if r.err != nil {
		return NotificationStateSkip, r.err
	}
	return NotificationStateAwaitingApproval, nil
}

func TestReconciliationUseCase_Validation(t *testing.T) {
	uc := NewReconciliationUseCase(nil, nil, nil, nil)

	if _, err := uc.Reconcile(context.Background(), ReconcileCommand{UserID: " ", FeeType: entities.FeeTypeEnrollment}); !errors.Is(err, ErrInvalidReconcileUserID) {
		t.Fatalf("expected ErrInvalidReconcileUserID, got %v", err)
	}
	if _, err := uc.Reconcile(context.Background(), ReconcileCommand{UserID: "stu-1", FeeType: "tuition_fee"}); !errors.Is(err, ErrUnsupportedFeeType) {
		t.Fatalf("expected ErrUnsupportedFeeType, got %v", err)
	}
}

func TestReconciliationUseCase_ProfileOnlyFees(t *testing.T) {
	for _, f := range []entities.FeeType{entities.FeeTypeSelectionProcess, entities.FeeTypeEnrollment, entities.FeeTypeI20Control} {
		t.Run(string(f), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			profiles := mock_interfaces.NewMockIFeeStatusRepository(ctrl)
			events := mock_interfaces.NewMockIEventPublisher(ctrl)
			notifier := &recordingNotifier{}
			uc := NewReconciliationUseCase(profiles, nil, notifier, events)

			profiles.EXPECT().MarkPaid(gomock.Any(), "stu-1", f).Return(nil)
			events.EXPECT().PublishFeeReconciled(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, e interfaces.FeeReconciledEvent) error {
					if e.FeeType != string(f) || e.UserID != "stu-1" {
						t.Fatalf("unexpected event: %+v", e)
					}
					return errors.New("broker down")
				},
			)

			res, err := uc.Reconcile(context.Background(), ReconcileCommand{UserID: "stu-1", FeeType: f})
			if err != nil {
				t.Fatalf("publish failure must not fail reconciliation: %v", err)
			}
			if !res.ProfileUpdated || len(notifier.notices) != 0 {
				t.Fatalf("unexpected result %+v notices=%d", res, len(notifier.notices))
			}
		})
	}

	t.Run("profile write error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIFeeStatusRepository(ctrl)
		events := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewReconciliationUseCase(profiles, nil, nil, events)

		profiles.EXPECT().MarkPaid(gomock.Any(), "stu-1", entities.FeeTypeEnrollment).Return(errors.New("db"))

		_, err := uc.Reconcile(context.Background(), ReconcileCommand{UserID: "stu-1", FeeType: entities.FeeTypeEnrollment})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestReconciliationUseCase_ApplicationFee(t *testing.T) {
	t.Run("missing scholarship ids still marks the profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIFeeStatusRepository(ctrl)
		apps := mock_interfaces.NewMockIApplicationRepository(ctrl)
		notifier := &recordingNotifier{}
		uc := NewReconciliationUseCase(profiles, apps, notifier, nil)

		profiles.EXPECT().MarkPaid(gomock.Any(), "stu-1", entities.FeeTypeApplication).Return(nil)

		res, err := uc.Reconcile(context.Background(), ReconcileCommand{UserID: "stu-1", FeeType: entities.FeeTypeApplication})
		if !errors.Is(err, ErrMissingScholarshipID) {
			t.Fatalf("expected ErrMissingScholarshipID, got %v", err)
		}
		if !res.ProfileUpdated || len(res.Applications) != 0 || len(notifier.notices) != 0 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("missing scholarship ids and profile failure are both reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIFeeStatusRepository(ctrl)
		uc := NewReconciliationUseCase(profiles, nil, nil, nil)

		dbErr := errors.New("db")
		profiles.EXPECT().MarkPaid(gomock.Any(), "stu-1", entities.FeeTypeApplication).Return(dbErr)

		res, err := uc.Reconcile(context.Background(), ReconcileCommand{UserID: "stu-1", FeeType: entities.FeeTypeApplication})
		if !errors.Is(err, ErrMissingScholarshipID) || !errors.Is(err, dbErr) {
			t.Fatalf("expected both errors, got %v", err)
		}
		if res.ProfileUpdated {
			t.Fatalf("profile must not be reported as updated")
		}
	})

	t.Run("partial upsert failure still marks profile and notifies the rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIFeeStatusRepository(ctrl)
		apps := mock_interfaces.NewMockIApplicationRepository(ctrl)
		notifier := &recordingNotifier{}
		uc := NewReconciliationUseCase(profiles, apps, notifier, nil)

		apps.EXPECT().MarkApplicationFeePaid(gomock.Any(), "stu-1", "sch-1").Return(entities.ApplicationRecord{}, errors.New("throttled"))
		apps.EXPECT().MarkApplicationFeePaid(gomock.Any(), "stu-1", "sch-2").Return(entities.ApplicationRecord{ID: "stu-1#sch-2", StudentID: "stu-1", ScholarshipID: "sch-2"}, nil)
		profiles.EXPECT().MarkPaid(gomock.Any(), "stu-1", entities.FeeTypeApplication).Return(nil)

		res, err := uc.Reconcile(context.Background(), ReconcileCommand{
			UserID:   "stu-1",
			FeeType:  entities.FeeTypeApplication,
			Metadata: map[string]any{"scholarship_ids": "sch-1,sch-2"},
		})
		if err == nil || err.Error() != "throttled" {
			t.Fatalf("expected throttled error, got %v", err)
		}
		if !res.ProfileUpdated || len(res.Applications) != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
		if len(notifier.notices) != 1 || notifier.notices[0].Application.ScholarshipID != "sch-2" {
			t.Fatalf("unexpected notices: %+v", notifier.notices)
		}
	})

	t.Run("notification failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIFeeStatusRepository(ctrl)
		apps := mock_interfaces.NewMockIApplicationRepository(ctrl)
		notifier := &recordingNotifier{err: errors.New("directory down")}
		uc := NewReconciliationUseCase(profiles, apps, notifier, nil)

		apps.EXPECT().MarkApplicationFeePaid(gomock.Any(), "stu-1", "sch-1").Return(entities.ApplicationRecord{ID: "stu-1#sch-1"}, nil)
		profiles.EXPECT().MarkPaid(gomock.Any(), "stu-1", entities.FeeTypeApplication).Return(nil)

		res, err := uc.Reconcile(context.Background(), ReconcileCommand{
			UserID:    "stu-1",
			FeeType:   entities.FeeTypeApplication,
			Metadata:  map[string]any{"scholarship_id": "sch-1"},
			PaymentID: "p-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Notifications) != 1 || res.Notifications[0] != NotificationStateSkip {
			t.Fatalf("unexpected notifications: %+v", res.Notifications)
		}
		if notifier.notices[0].PaymentID != "p-1" {
			t.Fatalf("expected payment id on notice")
		}
	})
}

func TestReconciliationUseCase_ScholarshipFee(t *testing.T) {
	t.Run("all applications of the student", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIFeeStatusRepository(ctrl)
		apps := mock_interfaces.NewMockIApplicationRepository(ctrl)
		notifier := &recordingNotifier{}
		uc := NewReconciliationUseCase(profiles, apps, notifier, nil)

		profiles.EXPECT().MarkPaid(gomock.Any(), "stu-1", entities.FeeTypeScholarship).Return(nil)
		apps.EXPECT().ListByStudentID(gomock.Any(), "stu-1").Return([]entities.ApplicationRecord{
			{ID: "stu-1#a", StudentID: "stu-1", ScholarshipID: "a"},
			{ID: "stu-1#b", StudentID: "stu-1", ScholarshipID: "b"},
		}, nil)
		apps.EXPECT().MarkScholarshipFeePaid(gomock.Any(), "stu-1", "a").Return(entities.ApplicationRecord{ID: "stu-1#a", ScholarshipID: "a", ScholarshipFeePaid: true}, nil)
		apps.EXPECT().MarkScholarshipFeePaid(gomock.Any(), "stu-1", "b").Return(entities.ApplicationRecord{ID: "stu-1#b", ScholarshipID: "b", ScholarshipFeePaid: true}, nil)

		res, err := uc.Reconcile(context.Background(), ReconcileCommand{UserID: "stu-1", FeeType: entities.FeeTypeScholarship, Amount: 400})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Applications) != 2 || len(notifier.notices) != 2 || notifier.notices[0].Amount != 400 {
			t.Fatalf("unexpected result %+v", res)
		}
		for _, app := range res.Applications {
			if !app.ScholarshipFeePaid {
				t.Fatalf("expected scholarship fee marker on %s", app.ID)
			}
		}
	})

	t.Run("metadata scholarships skip unknown applications", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIFeeStatusRepository(ctrl)
		apps := mock_interfaces.NewMockIApplicationRepository(ctrl)
		notifier := &recordingNotifier{}
		uc := NewReconciliationUseCase(profiles, apps, notifier, nil)

		profiles.EXPECT().MarkPaid(gomock.Any(), "stu-1", entities.FeeTypeScholarship).Return(nil)
		apps.EXPECT().Get(gomock.Any(), "stu-1", "sch-1").Return(entities.ApplicationRecord{ID: "stu-1#sch-1", StudentID: "stu-1", ScholarshipID: "sch-1"}, nil)
		apps.EXPECT().Get(gomock.Any(), "stu-1", "sch-9").Return(entities.ApplicationRecord{}, nil)
		apps.EXPECT().MarkScholarshipFeePaid(gomock.Any(), "stu-1", "sch-1").Return(entities.ApplicationRecord{ID: "stu-1#sch-1", ScholarshipFeePaid: true}, nil)

		res, err := uc.Reconcile(context.Background(), ReconcileCommand{
			UserID:   "stu-1",
			FeeType:  entities.FeeTypeScholarship,
			Metadata: map[string]any{"scholarship_ids": []any{"sch-1", "sch-9"}},
		})
		if err != nil || len(res.Applications) != 1 || len(notifier.notices) != 1 {
			t.Fatalf("unexpected result %+v %v", res, err)
		}
	})

	t.Run("marker failure still notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIFeeStatusRepository(ctrl)
		apps := mock_interfaces.NewMockIApplicationRepository(ctrl)
		notifier := &recordingNotifier{}
		uc := NewReconciliationUseCase(profiles, apps, notifier, nil)

		profiles.EXPECT().MarkPaid(gomock.Any(), "stu-1", entities.FeeTypeScholarship).Return(nil)
		apps.EXPECT().ListByStudentID(gomock.Any(), "stu-1").Return([]entities.ApplicationRecord{{ID: "stu-1#a", StudentID: "stu-1", ScholarshipID: "a"}}, nil)
		apps.EXPECT().MarkScholarshipFeePaid(gomock.Any(), "stu-1", "a").Return(entities.ApplicationRecord{}, errors.New("throttled"))

		res, err := uc.Reconcile(context.Background(), ReconcileCommand{UserID: "stu-1", FeeType: entities.FeeTypeScholarship})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Applications) != 1 || !res.Applications[0].ScholarshipFeePaid || len(notifier.notices) != 1 {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("application lookup error keeps the flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIFeeStatusRepository(ctrl)
		apps := mock_interfaces.NewMockIApplicationRepository(ctrl)
		notifier := &recordingNotifier{}
		uc := NewReconciliationUseCase(profiles, apps, notifier, nil)

		profiles.EXPECT().MarkPaid(gomock.Any(), "stu-1", entities.FeeTypeScholarship).Return(nil)
		apps.EXPECT().ListByStudentID(gomock.Any(), "stu-1").Return(nil, errors.New("db"))

		res, err := uc.Reconcile(context.Background(), ReconcileCommand{UserID: "stu-1", FeeType: entities.FeeTypeScholarship})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.ProfileUpdated || len(notifier.notices) != 0 {
			t.Fatalf("unexpected result %+v", res)
		}
	})
}
