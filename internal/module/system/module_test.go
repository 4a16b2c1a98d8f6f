package system

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-admin-gateway/internal/config"
	"github.com/MKhiriev/go-admin-gateway/internal/logger"
	"github.com/MKhiriev/go-admin-gateway/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuth struct {
	resp models.AuthLoginResponse
	err  error
}

func (s stubAuth) Login(context.Context) (models.AuthLoginResponse, error) {
	return s.resp, s.err
}

type fixedIDs struct{}

func (fixedIDs) Generate() string { return "fixed-id" }

func newTestModule(t *testing.T) *Module {
	t.Helper()
	return New(config.Default().Auth, logger.Nop())
}

func serve(t *testing.T, m *Module, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	f, err := m.Router()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	f.Handler().ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestModule_Router(t *testing.T) {
	m := newTestModule(t)
	assert.Equal(t, "daoyi-module-system", m.Name())

	f, err := m.Router()
	require.NoError(t, err)
	assert.Equal(t, len(Routes)+6, f.Len())
	assert.Zero(t, f.Overrides())
	assert.Empty(t, f.Skipped())
}

func TestModule_TableRowsAnswerWithMock(t *testing.T) {
	m := newTestModule(t)
	f, err := m.Router()
	require.NoError(t, err)
	h := f.Handler()

	for _, e := range Routes {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(e.Method, e.Path, nil))
		require.Equal(t, http.StatusOK, rec.Code, "%s %s", e.Method, e.Path)

		body := decode[models.CommonResult[models.MockPayload]](t, rec)
		assert.Equal(t, models.MockPayload{Mock: true, Path: e.Path, Method: e.Method}, body.Data)
	}
}

func TestModule_Login(t *testing.T) {
	m := newTestModule(t)
	before := time.Now()

	for _, path := range []string{"/system/auth/login", "/system/auth/refresh-token"} {
		t.Run(path, func(t *testing.T) {
			rec := serve(t, m, http.MethodPost, path)
			require.Equal(t, http.StatusOK, rec.Code)

			body := decode[models.CommonResult[models.AuthLoginResponse]](t, rec)
			require.True(t, body.IsSuccess())
			assert.Equal(t, int64(1), body.Data.UserID)
			assert.WithinDuration(t, before.Add(4*time.Hour), body.Data.ExpiresTime, time.Minute)

			claims := &models.TokenClaims{}
			_, err := jwt.ParseWithClaims(body.Data.AccessToken, claims, func(*jwt.Token) (any, error) {
				return []byte("daoyi-mock-sign-key"), nil
			})
			require.NoError(t, err)
			assert.Equal(t, models.AccessToken, claims.Kind)
			assert.Equal(t, "daoyi-gateway", claims.Issuer)
			assert.Equal(t, "1", claims.Subject)

			refresh := &models.TokenClaims{}
			_, err = jwt.ParseWithClaims(body.Data.RefreshToken, refresh, func(*jwt.Token) (any, error) {
				return []byte("daoyi-mock-sign-key"), nil
			})
			require.NoError(t, err)
			assert.Equal(t, models.RefreshToken, refresh.Kind)
		})
	}
}

func TestModule_LoginFailure(t *testing.T) {
	m := newTestModule(t)
	m.auth = stubAuth{err: errors.New("signing failed")}

	rec := serve(t, m, http.MethodPost, "/system/auth/login")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decode[models.CommonResult[any]](t, rec)
	assert.Equal(t, int32(http.StatusInternalServerError), body.Code)
	assert.Equal(t, "signing failed", body.Msg)
}

func TestModule_Logout(t *testing.T) {
	rec := serve(t, newTestModule(t), http.MethodPost, "/system/auth/logout")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"code":0,"msg":"","data":true}`, rec.Body.String())
}

func TestModule_PermissionInfo(t *testing.T) {
	rec := serve(t, newTestModule(t), http.MethodGet, "/system/auth/get-permission-info")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[models.CommonResult[models.PermissionInfo]](t, rec)
	info := body.Data
	assert.Equal(t, "admin", info.User.Username)
	assert.Equal(t, "Admin", info.User.Nickname)
	assert.Equal(t, []string{"super_admin"}, info.Roles)
	assert.Equal(t, []string{"*:*:*"}, info.Permissions)

	require.Len(t, info.Menus, 2)
	assert.Equal(t, "Dashboard", info.Menus[0].Name)
	assert.Empty(t, info.Menus[0].Children)
	require.Len(t, info.Menus[1].Children, 1)
	child := info.Menus[1].Children[0]
	assert.Equal(t, int64(2), child.ParentID)
	assert.Equal(t, "User Management", child.Name)
	assert.False(t, child.AlwaysShow)

	// empty children are serialized as [] rather than null
	assert.Contains(t, rec.Body.String(), `"children":[]`)
}

func TestModule_Captcha(t *testing.T) {
	m := newTestModule(t)
	m.ids = fixedIDs{}

	rec := serve(t, m, http.MethodPost, "/system/captcha/get")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"repCode": "0000",
		"repMsg": "mock success",
		"repData": {
			"captchaType": "blockPuzzle",
			"token": "fixed-id",
			"captchaId": "fixed-id",
			"originalImageBase64": "",
			"jigsawImageBase64": "",
			"point": [15, 8]
		}
	}`, rec.Body.String())

	rec = serve(t, m, http.MethodPost, "/system/captcha/check")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[models.CaptchaResult[models.CaptchaCheckResult]](t, rec)
	assert.True(t, body.IsSuccess())
	assert.True(t, body.RepData.Result)
}

func TestModule_CaptchaIDsAreUnique(t *testing.T) {
	m := newTestModule(t)

	first := decode[models.CaptchaResult[models.CaptchaPayload]](t, serve(t, m, http.MethodPost, "/system/captcha/get"))
	second := decode[models.CaptchaResult[models.CaptchaPayload]](t, serve(t, m, http.MethodPost, "/system/captcha/get"))

	assert.NotEmpty(t, first.RepData.Token)
	assert.NotEqual(t, first.RepData.Token, second.RepData.Token)
}
