//go:build e2e

package admin_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/handler/dto/request"
	"parkspace-booking/internal/handler/dto/response"
	"parkspace-booking/internal/usecase/queries"
	"parkspace-booking/tests/common/authtest"
	"parkspace-booking/tests/common/builder"
	"parkspace-booking/tests/common/dbtest"
	"parkspace-booking/tests/common/httptest"
	"parkspace-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL     = "/api/admin/login"
	companiesURL = "/api/admin/companies"
	locationsURL = "/api/admin/locations"
	discountsURL = "/api/admin/discounts"
	templatesURL = "/api/admin/templates"
)

type AdminSuite struct {
	e2e.SharedSuite
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AdminSuite))
}

// =============================================================================
// TestLogin - admin session
// =============================================================================

func (s *AdminSuite) TestLogin() {
	s.Run("Normal case: valid admin token opens a session", func() {
		t := s.T()

		token := authtest.LoginAdmin(t, s.Router)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/dashboard", nil, token)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "audit_log", "action = 'admin_login'"))
	})

	s.Run("Error case: wrong admin token", func() {
		t := s.T()

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, request.LoginRequest{Token: "not-the-admin-token"}, "")

		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "")
		require.Nil(t, httptest.ExtractCookie(rec, "admin_token"))
	})

	s.Run("Error case: expired session token", func() {
		t := s.T()
		expired := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(t)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/dashboard", nil, expired)

		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("Normal case: logout expires the cookie", func() {
		t := s.T()
		token := authtest.LoginAdmin(t, s.Router)

		authtest.LogoutAdmin(t, s.Router, []*http.Cookie{{Name: "admin_token", Value: token}})
	})
}

// =============================================================================
// TestCompanies - company and location administration
// =============================================================================

func (s *AdminSuite) TestCompanies() {
	s.Run("Normal case: create and read back a company", func() {
		t := s.T()
		token := authtest.LoginAdmin(t, s.Router)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, companiesURL, builder.NewCompanyBuilder().BuildCreateRequest(), token)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var created response.IDResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rec.Body, &created))

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, companiesURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, dw.Code)
		var actual queries.CompanyView
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &actual))

		city, email := "Hamburg", "info@stellplatz-nord.de"
		expected := queries.CompanyView{ID: created.ID, Name: "Stellplatz Nord GmbH", City: &city, Email: &email}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(queries.CompanyView{}, "Street", "HouseNumber", "PostalCode", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, actual, opts...); diff != "" {
			t.Errorf("Company mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: duplicate company name", func() {
		t := s.T()
		token := authtest.LoginAdmin(t, s.Router)
		dbtest.CreateTestCompany(t, s.DB, "Stellplatz Nord GmbH")

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, companiesURL, builder.NewCompanyBuilder().BuildCreateRequest(), token)

		require.Equal(t, http.StatusConflict, rec.Code)
		require.Equal(t, "duplicate", httptest.DecodeErrorBody(t, rec).Error.Kind)
	})

	s.Run("Error case: company with locations needs force", func() {
		t := s.T()
		token := authtest.LoginAdmin(t, s.Router)
		companyID := dbtest.CreateTestCompany(t, s.DB, "Stellplatz Süd GmbH")
		dbtest.CreateTestLocation(t, s.DB, &companyID, "Halle Süd", string(catalog.CategoryCovered))
		url := companiesURL + "/" + companyID.String()

		refused := httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, token)
		require.Equal(t, http.StatusConflict, refused.Code)
		require.Equal(t, "has_dependents", httptest.DecodeErrorBody(t, refused).Error.Kind)

		forced := httptest.PerformRequest(t, s.Router, http.MethodDelete, url+"?force=true", nil, token)
		require.Equal(t, http.StatusNoContent, forced.Code)
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "companies", "id = $1", companyID))
	})

	s.Run("Normal case: location under a company", func() {
		t := s.T()
		token := authtest.LoginAdmin(t, s.Router)
		companyID := dbtest.CreateTestCompany(t, s.DB, "Stellplatz West GmbH")

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, locationsURL,
			builder.NewLocationBuilder().WithCompany(companyID).BuildCreateRequest(), token)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "locations", "company_id = $1", companyID))
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, companiesURL, builder.NewCompanyBuilder().BuildCreateRequest(), "")

		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})
}

// =============================================================================
// TestDiscounts - discount code administration
// =============================================================================

func (s *AdminSuite) TestDiscounts() {
	s.Run("Normal case: code is stored upper case and toggles", func() {
		t := s.T()
		token := authtest.LoginAdmin(t, s.Router)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, discountsURL, builder.NewDiscountBuilder().WithUsageLimit(3).BuildCreateRequest(), token)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var created response.IDResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rec.Body, &created))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "discounts", "code = 'WELCOME10' AND usage_limit = 3"))

		tw := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf("%s/%s/toggle", discountsURL, created.ID), nil, token)
		require.Equal(t, http.StatusOK, tw.Code)
		var toggled response.ToggleResponse
		require.NoError(t, httptest.DecodeResponseBody(t, tw.Body, &toggled))
		require.False(t, toggled.IsActive)
	})

	s.Run("Error case: duplicate code ignores case", func() {
		t := s.T()
		token := authtest.LoginAdmin(t, s.Router)
		dbtest.CreateTestDiscount(t, s.DB, "WELCOME10", "percent", "10", nil)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, discountsURL, builder.NewDiscountBuilder().BuildCreateRequest(), token)

		require.Equal(t, http.StatusConflict, rec.Code)
	})

	s.Run("Error case: percent above 100", func() {
		t := s.T()
		token := authtest.LoginAdmin(t, s.Router)
		req := builder.NewDiscountBuilder().With(func(b *builder.DiscountBuilder) { b.Value = decimal.NewFromInt(150) }).BuildCreateRequest()

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, discountsURL, req, token)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

// =============================================================================
// TestTemplates - versioned contract templates
// =============================================================================

func (s *AdminSuite) TestTemplates() {
	s.Run("Normal case: new version of the global template takes over after activation", func() {
		t := s.T()
		token := authtest.LoginAdmin(t, s.Router)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, templatesURL, request.CreateTemplateRequest{
			Name:      "Standard Stellplatzmietvertrag",
			ScopeType: "global",
			BodyMD:    "# Vertrag\n\nMieter: {{customer_first_name}} {{customer_last_name}}",
		}, token)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var created response.TemplateCreatedResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rec.Body, &created))
		require.Equal(t, 2, created.Version)

		aw := httptest.PerformRequest(t, s.Router, http.MethodPost, templatesURL+"/"+created.ID.String()+"/activate", nil, token)
		require.Equal(t, http.StatusNoContent, aw.Code, aw.Body.String())
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "contract_templates", "scope_type = 'global' AND is_active"))

		locationID := dbtest.CreateTestLocation(t, s.DB, nil, "Freifläche Ost", string(catalog.CategoryOutside))
		booking := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.LocationID = locationID
			b.VehicleTypeID = dbtest.VehicleTypeID(t, s.DB, "5.00")
			b.Category = catalog.CategoryOutside
			b.StartDate = time.Date(2030, time.May, 1, 0, 0, 0, 0, time.UTC)
			b.EndDate = time.Date(2030, time.October, 31, 0, 0, 0, 0, time.UTC)
		}).BuildRequest()
		bw := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings", booking, "")
		require.Equal(t, http.StatusCreated, bw.Code, bw.Body.String())
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "bookings", "template_id = $1 AND template_version = 2", created.ID))
	})

	s.Run("Error case: global template with a scope id", func() {
		t := s.T()
		token := authtest.LoginAdmin(t, s.Router)
		scopeID := uuid.New()

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, templatesURL, request.CreateTemplateRequest{
			Name:      "Falsch",
			ScopeType: "global",
			ScopeID:   &scopeID,
			BodyMD:    "# Vertrag mit Scope",
		}, token)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
