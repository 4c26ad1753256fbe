package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"techtomorrow/internal/models"
	"techtomorrow/internal/repository"
	"techtomorrow/internal/utils"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func newAuthFixture(t *testing.T) (*AuthService, *mockLoginRepo, *mockUserRepo) {
	t.Helper()
	logins := &mockLoginRepo{logins: make(map[string]*models.Login)}
	users := &mockUserRepo{users: make(map[string]*models.User)}

	if err := SeedLogins(context.Background(), logins); err != nil {
		t.Fatal(err)
	}
	return NewAuthService(logins, users), logins, users
}

func TestSeedLoginsOnlyIntoEmptyCollection(t *testing.T) {
	logins := &mockLoginRepo{logins: make(map[string]*models.Login)}
	ctx := context.Background()

	if err := SeedLogins(ctx, logins); err != nil {
		t.Fatal(err)
	}
	if len(logins.logins) != 2 {
		t.Fatalf("ожидалось 2 стартовые учётки, получено %d", len(logins.logins))
	}
	// Хеш, не открытый текст
	if logins.logins["admin@example.com"].PasswordHash == "admin456" {
		t.Fatal("пароль хранится открытым текстом")
	}

	// Повторный сид непустой коллекции ничего не меняет
	before := logins.logins["admin@example.com"].PasswordHash
	if err := SeedLogins(ctx, logins); err != nil {
		t.Fatal(err)
	}
	if logins.logins["admin@example.com"].PasswordHash != before {
		t.Error("повторный сид перезаписал учётки")
	}
}

func TestLoginAdminSeedData(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	result, err := svc.Login(context.Background(),
		"admin@example.com", "admin456", models.RoleAuthor, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("вход с сид-данными не удался: %v", err)
	}
	if result.Role != models.RoleAdmin {
		t.Errorf("ожидалась роль admin, получена %q", result.Role)
	}

	// В токене — email и роль
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(result.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}); err != nil {
		t.Fatalf("токен не разбирается: %v", err)
	}
	if claims["email"] != "admin@example.com" || claims["role"] != models.RoleAdmin {
		t.Error("некорректный payload токена")
	}
}

func TestLoginEmailCaseInsensitivePasswordExact(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	if _, err := svc.Login(ctx, "User@Example.COM", "password123", "", testSecret, time.Hour); err != nil {
		t.Errorf("email в другом регистре должен приниматься: %v", err)
	}

	if _, err := svc.Login(ctx, "user@example.com", "PASSWORD123", "", testSecret, time.Hour); !errors.Is(err, ErrInvalidCredentials) {
		t.Error("пароль в другом регистре должен отклоняться")
	}
}

func TestLoginUnknownEmailAndWrongPasswordSameError(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, errUnknown := svc.Login(ctx, "nobody@example.com", "x", "", testSecret, time.Hour)
	_, errWrong := svc.Login(ctx, "user@example.com", "wrong", "", testSecret, time.Hour)

	if !errors.Is(errUnknown, ErrInvalidCredentials) || !errors.Is(errWrong, ErrInvalidCredentials) {
		t.Error("несуществующий email и неверный пароль должны давать одну и ту же ошибку")
	}
}

func TestLoginUserTypeChecksUserCollection(t *testing.T) {
	svc, _, users := newAuthFixture(t)
	ctx := context.Background()

	hash, err := utils.HashPassword("reader-pass")
	if err != nil {
		t.Fatal(err)
	}
	users.users["reader@example.com"] = &models.User{
		UserName: "Reader", Email: "reader@example.com", PasswordHash: hash,
	}

	result, err := svc.Login(ctx, "reader@example.com", "reader-pass", models.RoleUser, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("вход подписчика не удался: %v", err)
	}
	if result.Role != models.RoleUser || result.Name != "Reader" {
		t.Error("роль или имя подписчика потеряны")
	}

	// Подписчик не входит через таблицу редакции
	if _, err := svc.Login(ctx, "reader@example.com", "reader-pass", "", testSecret, time.Hour); !errors.Is(err, ErrInvalidCredentials) {
		t.Error("подписчик вошёл через таблицу редакции")
	}
}

func validSignup() *models.SignupRequest {
	return &models.SignupRequest{
		UserName:     "Jane",
		Age:          30,
		Email:        "jane@example.com",
		Address:      "123 Main Street",
		PhoneNumber:  "0123456789",
		Subscription: "premium",
	}
}

func TestSignupCreatesUserOnce(t *testing.T) {
	svc, _, users := newAuthFixture(t)
	ctx := context.Background()

	u, err := svc.Signup(ctx, validSignup())
	if err != nil {
		t.Fatal(err)
	}
	if u.Email != "jane@example.com" || u.Subscription != "premium" {
		t.Error("поля подписчика искажены")
	}
	if u.Timestamp.IsZero() {
		t.Error("timestamp не выставлен")
	}

	// Повторная регистрация того же email — конфликт, коллекция не растёт
	if _, err := svc.Signup(ctx, validSignup()); !errors.Is(err, repository.ErrEmailTaken) {
		t.Errorf("ожидался ErrEmailTaken, получено %v", err)
	}
	if len(users.users) != 1 {
		t.Error("коллекция изменилась после отклонённой регистрации")
	}
}

func TestSignupValidation(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*models.SignupRequest)
	}{
		{"короткое имя", func(r *models.SignupRequest) { r.UserName = "ab" }},
		{"возраст 0", func(r *models.SignupRequest) { r.Age = 0 }},
		{"возраст 121", func(r *models.SignupRequest) { r.Age = 121 }},
		{"email без @", func(r *models.SignupRequest) { r.Email = "not-an-email" }},
		{"короткий адрес", func(r *models.SignupRequest) { r.Address = "abc" }},
		{"телефон из 9 цифр", func(r *models.SignupRequest) { r.PhoneNumber = "012345678" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validSignup()
			tc.mutate(req)
			if _, err := svc.Signup(ctx, req); !errors.Is(err, ErrValidation) {
				t.Errorf("ожидался ErrValidation, получено %v", err)
			}
		})
	}

	// Телефон — опциональное поле
	req := validSignup()
	req.PhoneNumber = ""
	if _, err := svc.Signup(ctx, req); err != nil {
		t.Errorf("пустой телефон должен приниматься: %v", err)
	}
}

func TestSignupDefaultPlanIsFree(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	req := validSignup()
	req.Subscription = ""
	u, err := svc.Signup(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if u.Subscription != "free" {
		t.Errorf("ожидался план free, получен %q", u.Subscription)
	}
}
