package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5/pgconn"
	mockdb "github.com/katatrina/procurement-BE/internal/db/mock"
	db "github.com/katatrina/procurement-BE/internal/db/sqlc"
	"github.com/katatrina/procurement-BE/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "Secr3t!pass"

func TestCreateUserAPI(t *testing.T) {
	validSupplier := map[string]any{
		"email":        "sales@acme.test",
		"password":     testPassword,
		"full_name":    "Jane Roe",
		"company_name": "Acme Supply",
		"role":         "supplier",
	}

	testCases := []struct {
		name          string
		body          map[string]any
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: validSupplier,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(1).
					DoAndReturn(func(_ any, arg db.CreateUserParams) (db.User, error) {
						assert.NotEmpty(t, arg.ID)
						assert.NoError(t, util.CheckPassword(testPassword, arg.HashedPassword))
						return db.User{ID: arg.ID, Email: arg.Email, HashedPassword: arg.HashedPassword, Role: arg.Role}, nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)
				assert.NotContains(t, recorder.Body.String(), "hashed_password")
			},
		},
		{
			name: "SupplierWithoutCompany",
			body: map[string]any{
				"email":     "sales@acme.test",
				"password":  testPassword,
				"full_name": "Jane Roe",
				"role":      "supplier",
			},
			buildStubs: func(store *mockdb.MockStore) {},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
				assert.Contains(t, recorder.Body.String(), "company_name")
			},
		},
		{
			name: "UnknownRole",
			body: map[string]any{
				"email":     "sales@acme.test",
				"password":  testPassword,
				"full_name": "Jane Roe",
				"role":      "admin",
			},
			buildStubs: func(store *mockdb.MockStore) {},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
			},
		},
		{
			name: "DuplicateEmail",
			body: validSupplier,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(1).Return(db.User{}, &pgconn.PgError{
					Code:           db.UniqueViolationCode,
					ConstraintName: db.UniqueEmailConstraint,
				})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := server.do(t, http.MethodPost, "/v1/users", tc.body, "")
			tc.checkResponse(t, recorder)
		})
	}
}

func TestLoginUserAPI(t *testing.T) {
	hashedPassword, err := util.HashPassword(testPassword)
	require.NoError(t, err)
	user := db.User{ID: "supplier-1", Email: "sales@acme.test", HashedPassword: hashedPassword, Role: db.UserRoleSupplier}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Times(2).Return(user, nil)
	store.EXPECT().GetUserByID(gomock.Any(), user.ID).Times(1).Return(user, nil)

	server := newTestServer(t, store)

	recorder := server.do(t, http.MethodPost, "/v1/auth/login", map[string]any{"email": user.Email, "password": "wrong"}, "")
	require.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = server.do(t, http.MethodPost, "/v1/auth/login", map[string]any{"email": user.Email, "password": testPassword}, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	accessToken, ok := decodeBody(t, recorder)["access_token"].(string)
	require.True(t, ok)

	payload, err := server.tokenMaker.VerifyToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, payload.Subject)
	assert.Equal(t, string(db.UserRoleSupplier), payload.Role)

	recorder = server.do(t, http.MethodGet, "/v1/users/me", nil, authorizationTypeBearer+" "+accessToken)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, user.ID, decodeBody(t, recorder)["id"])
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := newTestServer(t, mockdb.NewMockStore(ctrl))

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer not-a-token"} {
		recorder := server.do(t, http.MethodGet, "/v1/users/me", nil, header)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code, "header %q", header)
	}
}
