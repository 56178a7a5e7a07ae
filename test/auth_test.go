package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"hrm_backend/config"
	"hrm_backend/types"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func doLogin(t *testing.T, loginID, password string) (int, map[string]interface{}) {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"login_id": loginID,
		"password": password,
	})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := testApp.Test(req)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	err = json.NewDecoder(resp.Body).Decode(&decoded)
	assert.NoError(t, err)

	return resp.StatusCode, decoded
}

func TestLoginIssuesToken(t *testing.T) {
	_, db := SetupTest(t)

	emp := createTestEmployee(t, "EMP1234", "Sarah Williams")

	before := time.Now()
	status, decoded := doLogin(t, "EMP1234", config.AppConfig.DefaultPassword)
	after := time.Now()

	assert.Equal(t, 200, status)
	assert.NotEmpty(t, decoded["token"])

	// Token must verify against the configured secret
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(decoded["token"].(string), claims, func(tk *jwt.Token) (interface{}, error) {
		return []byte(config.AppConfig.JWTSecret), nil
	})
	assert.NoError(t, err)
	assert.Equal(t, float64(emp.ID), claims["id"])

	// Expiry is creation time plus the configured TTL (10h by default)
	exp := int64(claims["exp"].(float64))
	assert.GreaterOrEqual(t, exp, before.Add(config.AppConfig.TokenTTL).Unix())
	assert.LessOrEqual(t, exp, after.Add(config.AppConfig.TokenTTL).Unix())

	user := decoded["user"].(map[string]interface{})
	assert.Equal(t, emp.LoginID, user["login_id"])
	assert.Equal(t, emp.Name, user["name"])
	assert.Equal(t, emp.Email, user["email"])
	assert.Equal(t, emp.Department, user["department"])
	assert.Equal(t, emp.Position, user["position"])
	assert.Equal(t, "employee", user["role"])

	// Password never leaks through the summary
	_, exposed := user["password"]
	assert.False(t, exposed)

	var count int64
	db.Table("employees").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	SetupTest(t)

	createTestEmployee(t, "EMP1234", "Sarah Williams")

	// Wrong password and unknown login id must be indistinguishable
	wrongPassStatus, wrongPassBody := doLogin(t, "EMP1234", "not-the-password")
	unknownStatus, unknownBody := doLogin(t, "EMP9998", config.AppConfig.DefaultPassword)

	assert.Equal(t, 401, wrongPassStatus)
	assert.Equal(t, 401, unknownStatus)
	assert.Equal(t, types.ErrInvalidCredentials, wrongPassBody["error"])
	assert.Equal(t, wrongPassBody, unknownBody)
}

func TestLoginRequiresFields(t *testing.T) {
	SetupTest(t)

	status, decoded := doLogin(t, "EMP1234", "")
	assert.Equal(t, 400, status)
	assert.Equal(t, types.ErrInvalidInput, decoded["error"])

	status, _ = doLogin(t, "", "welcome123")
	assert.Equal(t, 400, status)
}

func TestMeReturnsCurrentEmployee(t *testing.T) {
	app, _ := SetupTest(t)

	emp := createTestEmployee(t, "EMP4321", "Michael Chen")
	token := createTestToken(t, emp.ID, time.Hour)

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var decoded map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	user := decoded["user"].(map[string]interface{})
	assert.Equal(t, "EMP4321", user["login_id"])
	assert.Equal(t, "Michael Chen", user["name"])
}

func TestMeRejectsMissingAndExpiredTokens(t *testing.T) {
	app, db := SetupTest(t)

	emp := createTestEmployee(t, "EMP4321", "Michael Chen")

	// No token at all
	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	// Expired token
	expired := createTestToken(t, emp.ID, -time.Hour)
	req = httptest.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	// Valid token whose employee no longer exists
	token := createTestToken(t, emp.ID, time.Hour)
	db.Delete(&emp)
	req = httptest.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "error")
}
