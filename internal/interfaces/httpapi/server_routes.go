package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/categories", handler.ListCategories)
	mux.HandleFunc("GET /v1/categories/{slug}/ledger", handler.GetCategoryLedger)
}

func registerAuthRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.HandleFunc("POST /v1/auth/login", handler.Login)
	mux.Handle("POST /v1/auth/logout", RequireAuth(verifier, http.HandlerFunc(handler.Logout)))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerCategoryAdminRoutes(mux, handler, verifier)
	registerPlayerAdminRoutes(mux, handler, verifier)
	registerFineAdminRoutes(mux, handler, verifier)
	registerTreasuryAdminRoutes(mux, handler, verifier)
}

func registerCategoryAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/admin/categories", RequireAuth(verifier, http.HandlerFunc(handler.ListAllCategories)))
	mux.Handle("POST /v1/categories", RequireAuth(verifier, http.HandlerFunc(handler.CreateCategory)))
	mux.Handle("PUT /v1/categories/{categoryID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateCategory)))
	mux.Handle("DELETE /v1/categories/{categoryID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteCategory)))
}

func registerPlayerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/categories/{categoryID}/players", RequireAuth(verifier, http.HandlerFunc(handler.ListPlayers)))
	mux.Handle("POST /v1/categories/{categoryID}/players", RequireAuth(verifier, http.HandlerFunc(handler.CreatePlayer)))
	mux.Handle("PUT /v1/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdatePlayer)))
	mux.Handle("DELETE /v1/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.DeletePlayer)))
}

func registerFineAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/categories/{categoryID}/fine-types", RequireAuth(verifier, http.HandlerFunc(handler.ListFineTypes)))
	mux.Handle("POST /v1/categories/{categoryID}/fine-types", RequireAuth(verifier, http.HandlerFunc(handler.CreateFineType)))
	mux.Handle("PUT /v1/fine-types/{fineTypeID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateFineType)))
	mux.Handle("DELETE /v1/fine-types/{fineTypeID}", RequireAuth(verifier, http.HandlerFunc(handler.DeactivateFineType)))

	mux.Handle("POST /v1/categories/{categoryID}/fines", RequireAuth(verifier, http.HandlerFunc(handler.RecordFines)))
	mux.Handle("DELETE /v1/fines/{fineID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteFine)))

	mux.Handle("POST /v1/categories/{categoryID}/payments", RequireAuth(verifier, http.HandlerFunc(handler.RecordPayment)))
}

func registerTreasuryAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/categories/{categoryID}/cashbox", RequireAuth(verifier, http.HandlerFunc(handler.GetCashBox)))
	mux.Handle("POST /v1/categories/{categoryID}/cashbox", RequireAuth(verifier, http.HandlerFunc(handler.UpsertCashBox)))

	mux.Handle("GET /v1/categories/{categoryID}/expenses", RequireAuth(verifier, http.HandlerFunc(handler.ListExpenses)))
	mux.Handle("POST /v1/categories/{categoryID}/expenses", RequireAuth(verifier, http.HandlerFunc(handler.AddExpense)))
	mux.Handle("DELETE /v1/expenses/{expenseID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteExpense)))
}
