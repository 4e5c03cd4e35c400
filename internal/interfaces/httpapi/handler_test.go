package httpapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"golang.org/x/crypto/bcrypt"

	"github.com/zdenekh/club-fines/internal/domain/user"
	"github.com/zdenekh/club-fines/internal/infrastructure/repository/memory"
	"github.com/zdenekh/club-fines/internal/platform/id"
	"github.com/zdenekh/club-fines/internal/platform/logging"
	"github.com/zdenekh/club-fines/internal/usecase"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("generate hash: %v", err)
	}

	categoryRepo := memory.NewCategoryRepository(memory.SeedCategories())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	fineTypeRepo := memory.NewFineTypeRepository(memory.SeedFineTypes())
	fineRepo := memory.NewFineRepository(nil)
	paymentRepo := memory.NewPaymentRepository(nil)
	cashBoxRepo := memory.NewCashBoxRepository(nil)
	expenseRepo := memory.NewExpenseRepository(nil)
	userRepo := memory.NewUserRepository([]user.User{
		{ID: "usr-main", Username: "admin", PasswordHash: string(hash), Role: user.RoleMainAdmin, Active: true},
		{ID: "usr-men", Username: "men-admin", PasswordHash: string(hash), Role: user.RoleCategoryAdmin, CategoryID: memory.CategoryIDMen, Active: true},
	})
	sessionRepo := memory.NewSessionRepository()

	idGen := id.NewRandomGenerator()
	logger := logging.NewNop()

	ledgerService := usecase.NewLedgerService(categoryRepo, playerRepo, fineRepo, paymentRepo, cashBoxRepo, expenseRepo)
	authService := usecase.NewAuthService(userRepo, sessionRepo, logger)

	handler := NewHandler(
		usecase.NewCategoryService(categoryRepo, idGen, logger),
		usecase.NewPlayerService(categoryRepo, playerRepo, idGen, logger),
		usecase.NewFineTypeService(categoryRepo, fineTypeRepo, idGen, logger),
		usecase.NewFineService(playerRepo, fineTypeRepo, fineRepo, idGen, logger),
		usecase.NewPaymentService(playerRepo, paymentRepo, ledgerService, idGen, logger),
		usecase.NewTreasuryService(categoryRepo, cashBoxRepo, expenseRepo, idGen, logger),
		ledgerService,
		authService,
		logger,
	)

	return NewRouter(handler, authService, logger, []string{"*"})
}

func doJSON(t *testing.T, router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func loginAs(t *testing.T, router http.Handler, username string) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/login", "",
		fmt.Sprintf(`{"username":%q,"password":"correct-horse"}`, username))
	if rec.Code != http.StatusOK {
		t.Fatalf("login as %s: status %d body %s", username, rec.Code, rec.Body.String())
	}

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal login response: %v", err)
	}
	if body.Data.Token == "" {
		t.Fatal("expected a session token")
	}

	return body.Data.Token
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_PublicCategories(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/categories", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Data []categoryDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal categories: %v", err)
	}
	if len(body.Data) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(body.Data))
	}
	if body.Data[0].Slug != "men-a" {
		t.Fatalf("expected men-a first by order, got %s", body.Data[0].Slug)
	}
}

func TestRouter_FinePaymentLedgerFlow(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "men-admin")

	// Charge two players with one fine each.
	rec := doJSON(t, router, http.MethodPost, "/v1/categories/"+memory.CategoryIDMen+"/fines", token,
		`{"playerIds":["pl-men-01","pl-men-02"],"selections":[{"fineTypeId":"ft-men-late"}]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("record fines: status %d body %s", rec.Code, rec.Body.String())
	}

	// Overpayment is rejected before anything is written.
	rec = doJSON(t, router, http.MethodPost, "/v1/categories/"+memory.CategoryIDMen+"/payments", token,
		`{"playerId":"pl-men-01","amount":60}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("overpayment: status %d body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/v1/categories/"+memory.CategoryIDMen+"/payments", token,
		`{"playerId":"pl-men-01","amount":30}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("payment: status %d body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/categories/men-a/ledger", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("ledger: status %d body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data categoryLedgerDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal ledger: %v", err)
	}
	if body.Data.Summary.TotalFines != 100 {
		t.Fatalf("expected total fines 100, got %d", body.Data.Summary.TotalFines)
	}
	if body.Data.Summary.TotalPaid != 30 {
		t.Fatalf("expected total paid 30, got %d", body.Data.Summary.TotalPaid)
	}
	if body.Data.Summary.TotalRemaining != 70 {
		t.Fatalf("expected total remaining 70, got %d", body.Data.Summary.TotalRemaining)
	}
}

func TestRouter_CategoryAdminScope(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "men-admin")

	// Category admins cannot touch the category list.
	rec := doJSON(t, router, http.MethodPost, "/v1/categories", token,
		`{"name":"Veterans","slug":"veterans","order":4}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("create category as scoped admin: status %d", rec.Code)
	}

	// Nor another category's players.
	rec = doJSON(t, router, http.MethodGet, "/v1/categories/"+memory.CategoryIDWomen+"/players", token, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("cross-category list: status %d", rec.Code)
	}

	// Their own category works.
	rec = doJSON(t, router, http.MethodGet, "/v1/categories/"+memory.CategoryIDMen+"/players", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("own category list: status %d", rec.Code)
	}
}

func TestRouter_MainAdminManagesCategories(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "admin")

	rec := doJSON(t, router, http.MethodPost, "/v1/categories", token,
		`{"name":"Veterans","slug":"veterans","order":4}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create category: status %d body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/admin/categories", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("admin category list: status %d", rec.Code)
	}

	var body struct {
		Data []categoryDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal categories: %v", err)
	}
	if len(body.Data) != 4 {
		t.Fatalf("expected 4 categories after create, got %d", len(body.Data))
	}
}

func TestRouter_LogoutRevokesSession(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "admin")

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/logout", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("logout: status %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/admin/categories", token, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", rec.Code)
	}
}
