package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"nexuscare_backend/internal/feature/accounts/domain/entity"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
type mockUserRepository struct {
	// CreateFunc is called when the Create method is invoked.
	CreateFunc func(ctx context.Context, user *entity.User) error
	// FindByEmailFunc is called when the FindByEmail method is invoked.
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
}

// Create is the mock implementation of the Create method.
func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil // Default: success
}

// FindByEmail is the mock implementation of the FindByEmail method.
func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound // Default: not found
}

// mockNotifier records published events.
type mockNotifier struct {
	subjects []string
}

func (m *mockNotifier) Notify(ctx context.Context, subject, body string) {
	m.subjects = append(m.subjects, subject)
}

func TestAccountsUsecase_Signup(t *testing.T) {
	t.Run("normalizes fields and generates a prefixed id", func(t *testing.T) {
		var created *entity.User
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				created = user
				return nil
			},
		}
		notifier := &mockNotifier{}

		uc := NewAccountsUsecase(mockRepo, notifier)
		user, err := uc.Signup(context.Background(), SignupInput{
			Name:             "A",
			Email:            "A@B.com",
			Password:         "p",
			SecurityQuestion: "q",
			SecurityAnswer:   "  Rex  ",
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created == nil {
			t.Fatal("repository was not called")
		}
		if !regexp.MustCompile(`^USR-[0-9A-F]{6}$`).MatchString(user.ID) {
			t.Errorf("unexpected id format: %s", user.ID)
		}
		if user.Email != "a@b.com" {
			t.Errorf("email not lowercased: %s", user.Email)
		}
		if user.Role != entity.RolePatient {
			t.Errorf("role not defaulted to PATIENT: %s", user.Role)
		}
		if user.SecurityAnswer != "rex" {
			t.Errorf("security answer not normalized: %q", user.SecurityAnswer)
		}
		if user.Password != "p" {
			t.Errorf("password must be stored verbatim: %q", user.Password)
		}
		if len(notifier.subjects) != 1 {
			t.Errorf("expected one notification, got %d", len(notifier.subjects))
		}
	})

	t.Run("uppercases an explicit role", func(t *testing.T) {
		uc := NewAccountsUsecase(&mockUserRepository{}, nil)
		user, err := uc.Signup(context.Background(), SignupInput{
			Name: "D", Email: "d@x.com", Password: "p", Role: "doctor",
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Role != entity.RoleDoctor {
			t.Errorf("expected DOCTOR, got %s", user.Role)
		}
	})

	t.Run("conflict from repository is passed through", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return ErrEmailTaken
			},
		}
		notifier := &mockNotifier{}

		uc := NewAccountsUsecase(mockRepo, notifier)
		_, err := uc.Signup(context.Background(), SignupInput{
			Name: "A", Email: "a@b.com", Password: "p",
		})

		if !errors.Is(err, ErrEmailTaken) {
			t.Errorf("expected ErrEmailTaken, got: %v", err)
		}
		if len(notifier.subjects) != 0 {
			t.Error("notification must not fire on failed signup")
		}
	})
}

func TestAccountsUsecase_Login(t *testing.T) {
	testUser := &entity.User{
		ID:       "USR-0AB12C",
		Username: "A",
		Email:    "test@example.com",
		Password: "password123",
		Role:     entity.RolePatient,
	}

	findTestUser := func(ctx context.Context, email string) (*entity.User, error) {
		if email == testUser.Email {
			return testUser, nil
		}
		return nil, ErrUserNotFound
	}

	t.Run("successful login returns the stored user", func(t *testing.T) {
		uc := NewAccountsUsecase(&mockUserRepository{FindByEmailFunc: findTestUser}, nil)

		user, err := uc.Login(context.Background(), "Test@Example.com", "password123")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != testUser.ID || user.Role != testUser.Role {
			t.Errorf("returned user does not match signup record: %+v", user)
		}
	})

	t.Run("wrong password and unknown email yield the same error", func(t *testing.T) {
		uc := NewAccountsUsecase(&mockUserRepository{FindByEmailFunc: findTestUser}, nil)

		_, wrongPass := uc.Login(context.Background(), "test@example.com", "nope")
		_, unknown := uc.Login(context.Background(), "ghost@example.com", "password123")

		if !errors.Is(wrongPass, ErrInvalidCredentials) {
			t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
		}
		if !errors.Is(unknown, ErrInvalidCredentials) {
			t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", unknown)
		}
	})

	t.Run("storage failure is not masked as bad credentials", func(t *testing.T) {
		storageErr := errors.New("connection refused")
		uc := NewAccountsUsecase(&mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return nil, storageErr
			},
		}, nil)

		_, err := uc.Login(context.Background(), "test@example.com", "password123")

		if !errors.Is(err, storageErr) {
			t.Errorf("expected storage error, got: %v", err)
		}
	})
}
