package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"aircond-backend/config"
	"aircond-backend/models"
	"aircond-backend/routes"
	"aircond-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupRouter wires the full router against a fresh in-memory database
// named after the test, so tests cannot see each other's rows.
func setupRouter(t *testing.T) (*gin.Engine, *utils.SessionStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	store := utils.NewSessionStore(time.Hour)
	return routes.SetupRouter(store, zap.NewNop()), store
}

func createUser(t *testing.T, username, password string) models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Password: password,
		FullName: "Test Staff",
		Role:     "staff",
	}
	require.NoError(t, config.DB.Create(&user).Error)
	return user
}

func createCustomer(t *testing.T, name, phone string) models.Customer {
	t.Helper()
	customer := models.Customer{Name: name, Phone: phone}
	require.NoError(t, config.DB.Create(&customer).Error)
	return customer
}

// authCookie logs a user in directly against the session store.
func authCookie(t *testing.T, store *utils.SessionStore, userID uint) *http.Cookie {
	t.Helper()
	sess := store.Create(userID)
	return &http.Cookie{Name: utils.SessionCookie, Value: sess.ID}
}

func doRequest(t *testing.T, r http.Handler, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// configDB returns the handle setupRouter installed for this test.
func configDB(t *testing.T) *gorm.DB {
	t.Helper()
	require.NotNil(t, config.DB)
	return config.DB
}
