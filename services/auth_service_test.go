package services

import (
	"errors"
	"testing"

	"potholetrack/dto"
	"potholetrack/repositories"
)

func TestSignupAndLoginUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	store := newTestStore(t)
	svc := NewAuthService(store)

	user, err := svc.SignupUser(dto.SignupRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "5551234",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("SignupUser: %v", err)
	}
	if user.ID != 2 { // demo user holds id 1
		t.Errorf("id = %d, want 2", user.ID)
	}
	if user.Password == "hunter22" {
		t.Error("password stored in plaintext")
	}

	loggedIn, token, err := svc.LoginUser(dto.LoginRequest{Email: "jane@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Errorf("logged in id = %d, want %d", loggedIn.ID, user.ID)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.AccountID != user.ID || claims.Role != RoleUser {
		t.Errorf("claims = %+v, want account %d role user", claims, user.ID)
	}
}

func TestLoginUserBadCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewAuthService(newTestStore(t))

	cases := []dto.LoginRequest{
		{Email: "user@demo.com", Password: "wrong"},
		{Email: "nobody@demo.com", Password: "user123"},
	}
	for _, req := range cases {
		if _, _, err := svc.LoginUser(req); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("LoginUser(%s) err = %v, want ErrInvalidCredentials", req.Email, err)
		}
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newTestStore(t))

	_, err := svc.SignupUser(dto.SignupRequest{
		Name:     "Copycat",
		Email:    "user@demo.com",
		Password: "password",
	})
	if !errors.Is(err, repositories.ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestAdminSignupDomainCheck(t *testing.T) {
	t.Setenv("ADMIN_EMAIL_DOMAIN", "@city.gov")
	svc := NewAuthService(newTestStore(t))

	_, err := svc.SignupAdmin(dto.AdminSignupRequest{
		Username:   "roadworks",
		Email:      "roadworks@gmail.com",
		Department: "Road Maintenance",
		Password:   "secret99",
	})
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("err = %v, want ValidationError for outside domain", err)
	}

	admin, err := svc.SignupAdmin(dto.AdminSignupRequest{
		Username:   "roadworks",
		Email:      "roadworks@city.gov",
		Department: "Road Maintenance",
		Password:   "secret99",
	})
	if err != nil {
		t.Fatalf("SignupAdmin: %v", err)
	}
	if admin.ID != 2 { // seeded admin holds id 1
		t.Errorf("id = %d, want 2", admin.ID)
	}

	// Email is optional entirely
	if _, err := svc.SignupAdmin(dto.AdminSignupRequest{
		Username: "inspections",
		Password: "secret99",
	}); err != nil {
		t.Fatalf("SignupAdmin without email: %v", err)
	}
}

func TestAdminSignupDuplicateUsername(t *testing.T) {
	svc := NewAuthService(newTestStore(t))

	_, err := svc.SignupAdmin(dto.AdminSignupRequest{
		Username: "admin", // seeded
		Password: "secret99",
	})
	if !errors.Is(err, repositories.ErrUsernameTaken) {
		t.Fatalf("err = %v, want ErrUsernameTaken", err)
	}
}

func TestAdminLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewAuthService(newTestStore(t))

	admin, token, err := svc.LoginAdmin(dto.AdminLoginRequest{Username: "admin", Password: "admin123"})
	if err != nil {
		t.Fatalf("LoginAdmin: %v", err)
	}
	if admin.Username != "admin" {
		t.Errorf("username = %q, want admin", admin.Username)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Role != RoleAdmin {
		t.Errorf("role = %q, want admin", claims.Role)
	}

	if _, _, err := svc.LoginAdmin(dto.AdminLoginRequest{Username: "admin", Password: "nope"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("bad password err = %v, want ErrInvalidCredentials", err)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}
