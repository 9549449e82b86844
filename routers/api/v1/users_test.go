package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/innovcell/ic_events/config"
	"github.com/innovcell/ic_events/config/role"
	"github.com/innovcell/ic_events/entities"
	"github.com/innovcell/ic_events/environment"
	mock_services "github.com/innovcell/ic_events/mocks/services"
	mock_utils "github.com/innovcell/ic_events/mocks/utils"
	"github.com/innovcell/ic_events/services"
	"github.com/innovcell/ic_events/testutils"
	"github.com/innovcell/ic_events/utils/auth"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type userTestSetup struct {
	mockUService     *mock_services.MockUserService
	mockTimeProvider *mock_utils.MockTimeProvider
	env              *environment.Env
	router           APIV1Router
	w                *httptest.ResponseRecorder
	testCtx          *gin.Context
	testServer       *gin.Engine
}

func setupUserTest(t *testing.T, envVars map[string]string) *userTestSetup {
	ctrl := gomock.NewController(t)
	mockUService := mock_services.NewMockUserService(ctrl)
	mockTimeProvider := mock_utils.NewMockTimeProvider(ctrl)

	restore := testutils.SetEnvVars(envVars)
	env := environment.NewEnv(zap.NewNop())
	restore()

	router := NewAPIV1Router(zap.NewNop(), &config.AppConfig{
		AuthTokenLifetime: 10000,
	}, env, mockUService, nil, nil, nil, nil, mockTimeProvider)

	w := httptest.NewRecorder()
	testCtx, testServer := gin.CreateTestContext(w)

	return &userTestSetup{
		mockUService:     mockUService,
		mockTimeProvider: mockTimeProvider,
		env:              env,
		router:           router,
		w:                w,
		testCtx:          testCtx,
		testServer:       testServer,
	}
}

func Test_Register(t *testing.T) {
	tests := []struct {
		name        string
		form        map[string][]string
		prep        func(*userTestSetup)
		wantResCode int
	}{
		{
			name: "should return 400 when name is not provided",
			form: map[string][]string{
				"email":    {"john@college.edu"},
				"password": {"password123"},
			},
			wantResCode: http.StatusBadRequest,
		},
		{
			name: "should return 400 when role is unknown",
			form: map[string][]string{
				"name":     {"John Doe"},
				"email":    {"john@college.edu"},
				"password": {"password123"},
				"role":     {"dean"},
			},
			wantResCode: http.StatusBadRequest,
		},
		{
			name: "should return 401 when registering a privileged role without a superadmin token",
			form: map[string][]string{
				"name":     {"John Doe"},
				"email":    {"john@college.edu"},
				"password": {"password123"},
				"role":     {string(role.Staff)},
			},
			wantResCode: http.StatusUnauthorized,
		},
		{
			name: "should return 400 when email is taken",
			form: map[string][]string{
				"name":     {"John Doe"},
				"email":    {"john@college.edu"},
				"password": {"password123"},
			},
			prep: func(setup *userTestSetup) {
				setup.mockUService.EXPECT().CreateUser(gomock.Any(), "John Doe", "john@college.edu", "password123", role.Student, "", 0).
					Return(nil, services.ErrEmailTaken).Times(1)
			},
			wantResCode: http.StatusBadRequest,
		},
		{
			name: "should return 500 when creating user fails",
			form: map[string][]string{
				"name":     {"John Doe"},
				"email":    {"john@college.edu"},
				"password": {"password123"},
			},
			prep: func(setup *userTestSetup) {
				setup.mockUService.EXPECT().CreateUser(gomock.Any(), "John Doe", "john@college.edu", "password123", role.Student, "", 0).
					Return(nil, errors.New("service err")).Times(1)
			},
			wantResCode: http.StatusInternalServerError,
		},
		{
			name: "should return 200 and the new user",
			form: map[string][]string{
				"name":     {"John Doe"},
				"email":    {"john@college.edu"},
				"password": {"password123"},
				"year":     {"2"},
			},
			prep: func(setup *userTestSetup) {
				setup.mockUService.EXPECT().CreateUser(gomock.Any(), "John Doe", "john@college.edu", "password123", role.Student, "", 2).
					Return(&entities.User{Name: "John Doe", Role: role.Student}, nil).Times(1)
			},
			wantResCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupUserTest(t, map[string]string{environment.JWTSecret: "testsecret"})
			if tt.prep != nil {
				tt.prep(setup)
			}

			testutils.AddRequestWithFormParamsToCtx(setup.testCtx, http.MethodPost, tt.form)

			setup.router.Register(setup.testCtx)

			assert.Equal(t, tt.wantResCode, setup.w.Code)
		})
	}
}

func Test_Register__should_allow_privileged_role_with_superadmin_token(t *testing.T) {
	setup := setupUserTest(t, map[string]string{environment.JWTSecret: "testsecret"})

	superadmin := entities.User{ID: primitive.NewObjectID(), Role: role.SuperAdmin}
	token, err := auth.NewJWT(superadmin, time.Now().Unix(), 10000, []byte("testsecret"))
	assert.NoError(t, err)

	setup.mockUService.EXPECT().CreateUser(gomock.Any(), "Jane Doe", "jane@college.edu", "password123", role.Hod, "", 0).
		Return(&entities.User{Name: "Jane Doe", Role: role.Hod}, nil).Times(1)

	testutils.AddRequestWithFormParamsToCtx(setup.testCtx, http.MethodPost, map[string][]string{
		"name":     {"Jane Doe"},
		"email":    {"jane@college.edu"},
		"password": {"password123"},
		"role":     {string(role.Hod)},
	})
	setup.testCtx.Request.Header.Set(authHeaderName, token)

	setup.router.Register(setup.testCtx)

	assert.Equal(t, http.StatusOK, setup.w.Code)
}

func Test_Login(t *testing.T) {
	tests := []struct {
		name        string
		form        map[string][]string
		prep        func(*userTestSetup)
		wantResCode int
	}{
		{
			name: "should return 400 when email is not provided",
			form: map[string][]string{
				"password": {"password123"},
			},
			wantResCode: http.StatusBadRequest,
		},
		{
			name: "should return 401 when email and password don't match a user",
			form: map[string][]string{
				"email":    {"john@college.edu"},
				"password": {"password123"},
			},
			prep: func(setup *userTestSetup) {
				setup.mockUService.EXPECT().GetUserWithEmailAndPassword(gomock.Any(), "john@college.edu", "password123").
					Return(nil, services.ErrNotFound).Times(1)
			},
			wantResCode: http.StatusUnauthorized,
		},
		{
			name: "should return 500 when fetching user fails",
			form: map[string][]string{
				"email":    {"john@college.edu"},
				"password": {"password123"},
			},
			prep: func(setup *userTestSetup) {
				setup.mockUService.EXPECT().GetUserWithEmailAndPassword(gomock.Any(), "john@college.edu", "password123").
					Return(nil, errors.New("service err")).Times(1)
			},
			wantResCode: http.StatusInternalServerError,
		},
		{
			name: "should return 200 and an auth token",
			form: map[string][]string{
				"email":    {"john@college.edu"},
				"password": {"password123"},
			},
			prep: func(setup *userTestSetup) {
				user := entities.User{ID: primitive.NewObjectID(), Role: role.Student}
				setup.mockUService.EXPECT().GetUserWithEmailAndPassword(gomock.Any(), "john@college.edu", "password123").
					Return(&user, nil).Times(1)
				setup.mockTimeProvider.EXPECT().Now().Return(time.Now()).Times(1)
			},
			wantResCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupUserTest(t, map[string]string{environment.JWTSecret: "testsecret"})
			if tt.prep != nil {
				tt.prep(setup)
			}

			testutils.AddRequestWithFormParamsToCtx(setup.testCtx, http.MethodPost, tt.form)

			setup.router.Login(setup.testCtx)

			assert.Equal(t, tt.wantResCode, setup.w.Code)

			if tt.wantResCode == http.StatusOK {
				var actualRes loginRes
				err := json.Unmarshal(setup.w.Body.Bytes(), &actualRes)
				assert.NoError(t, err)
				assert.NotEmpty(t, actualRes.Token)

				claims := auth.GetJWTClaims(actualRes.Token, []byte("testsecret"))
				assert.NotNil(t, claims)
			}
		})
	}
}

func Test_GetUser(t *testing.T) {
	testID := primitive.NewObjectID()

	tests := []struct {
		name        string
		userID      string
		prep        func(*userTestSetup)
		wantResCode int
	}{
		{
			name:        "should return 401 when id is me and there are no auth claims",
			userID:      "me",
			wantResCode: http.StatusUnauthorized,
		},
		{
			name:   "should return 404 when user doesn't exist",
			userID: testID.Hex(),
			prep: func(setup *userTestSetup) {
				setup.mockUService.EXPECT().GetUserWithID(gomock.Any(), testID.Hex()).
					Return(nil, services.ErrNotFound).Times(1)
			},
			wantResCode: http.StatusNotFound,
		},
		{
			name:   "should return 200 and the user",
			userID: testID.Hex(),
			prep: func(setup *userTestSetup) {
				setup.mockUService.EXPECT().GetUserWithID(gomock.Any(), testID.Hex()).
					Return(&entities.User{ID: testID, Name: "John Doe"}, nil).Times(1)
			},
			wantResCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupUserTest(t, nil)
			if tt.prep != nil {
				tt.prep(setup)
			}

			testutils.AddUrlParamsToCtx(setup.testCtx, map[string]string{"id": tt.userID})

			setup.router.GetUser(setup.testCtx)

			assert.Equal(t, tt.wantResCode, setup.w.Code)
		})
	}
}
