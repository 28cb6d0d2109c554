package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adhilX/Stock-Image-Platform/global"
	"github.com/adhilX/Stock-Image-Platform/models"
	"github.com/adhilX/Stock-Image-Platform/repositories"
	"github.com/adhilX/Stock-Image-Platform/services"
	"github.com/adhilX/Stock-Image-Platform/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp wires the real router against an in-memory SQLite database.
// No Redis: the user cache is disabled and tests mint access tokens
// directly instead of going through login.
func newTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	// One pooled connection: every :memory: connection is its own
	// database, and a single writer sidesteps SQLITE_BUSY during the
	// concurrent reorder fan-out.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Image{}))

	userRepo := repositories.NewUserRepository(db)
	imageRepo := repositories.NewImageRepository(db)
	authSvc := services.NewAuthService(userRepo, nil, nil, nil, "scenario-secret", time.Minute, time.Hour)
	imageSvc := services.NewImageService(imageRepo, nil)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	Setup(r, authSvc, imageSvc, nil, Options{JWTSecret: "scenario-secret", RefreshTTL: time.Hour})
	return r, db
}

func request(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(global.AccessTokenHeader, token)
	}
	r.ServeHTTP(w, req)
	return w
}

func tokenFor(t *testing.T, db *gorm.DB, email string) string {
	t.Helper()
	var u models.User
	require.NoError(t, db.Where("email = ?", email).First(&u).Error)
	tok, err := utils.IssueAccessToken("scenario-secret", u.ID, u.Email, time.Minute)
	require.NoError(t, err)
	return tok
}

func TestScenario_RegisterUploadList(t *testing.T) {
	r, db := newTestApp(t)

	// register alice
	w := request(r, http.MethodPost, "/api/register", "", models.RegisterRequest{
		Name: "alice", Email: "alice@example.com", Phone: "0400000000", Password: "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	token := tokenFor(t, db, "alice@example.com")

	// save two images with orders 0 and 1
	w = request(r, http.MethodPost, "/api/images", token, gin.H{
		"images": []gin.H{
			{"image": "bucket/one.jpg", "title": "One", "order": 0},
			{"image": "bucket/two.jpg", "title": "Two", "order": 1},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// page 1, limit 20 returns both in order, hasMore=false, total=2
	w = request(r, http.MethodGet, "/api/images?page=1&limit=20", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data    []models.Image `json:"data"`
		Total   int64          `json:"total"`
		HasMore bool           `json:"hasMore"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, int64(2), resp.Total)
	assert.False(t, resp.HasMore)
	assert.Equal(t, "One", resp.Data[0].Title)
	assert.Equal(t, "bucket/one.jpg", resp.Data[0].Image)
	assert.Equal(t, "Two", resp.Data[1].Title)
}

func TestScenario_ReorderMovesImages(t *testing.T) {
	r, db := newTestApp(t)

	w := request(r, http.MethodPost, "/api/register", "", models.RegisterRequest{
		Name: "bob", Email: "bob@example.com", Phone: "1", Password: "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	token := tokenFor(t, db, "bob@example.com")

	// a, b, c with orders 0, 1, 2
	w = request(r, http.MethodPost, "/api/images", token, gin.H{
		"images": []gin.H{
			{"image": "a.jpg", "title": "a", "order": 0},
			{"image": "b.jpg", "title": "b", "order": 1},
			{"image": "c.jpg", "title": "c", "order": 2},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Images []models.Image `json:"images"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Len(t, created.Images, 3)
	idA, idB := created.Images[0].ID, created.Images[1].ID

	// swap a and b
	w = request(r, http.MethodPut, "/api/images/order/update", token, gin.H{
		"images": []gin.H{
			{"id": idB, "order": 0},
			{"id": idA, "order": 1},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = request(r, http.MethodGet, "/api/images", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.Image `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 3)
	assert.Equal(t, "b", resp.Data[0].Title)
	assert.Equal(t, "a", resp.Data[1].Title)
	assert.Equal(t, "c", resp.Data[2].Title)
}

func TestScenario_CrossUserAccessForbidden(t *testing.T) {
	r, db := newTestApp(t)

	for _, u := range []string{"eve", "mallory"} {
		w := request(r, http.MethodPost, "/api/register", "", models.RegisterRequest{
			Name: u, Email: u + "@example.com", Phone: "1", Password: "secret1",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}
	eveTok := tokenFor(t, db, "eve@example.com")
	malloryTok := tokenFor(t, db, "mallory@example.com")

	w := request(r, http.MethodPost, "/api/images", eveTok, gin.H{
		"images": []gin.H{{"image": "eve.jpg", "title": "Eve's", "order": 0}},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Images []models.Image `json:"images"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created.Images[0].ID

	// mallory cannot update or delete eve's image
	w = request(r, http.MethodPut, "/api/images/"+uitoa(id), malloryTok, gin.H{"title": "stolen"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = request(r, http.MethodDelete, "/api/images/"+uitoa(id), malloryTok, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// mallory's reorder attempt against eve's id is skipped silently...
	w = request(r, http.MethodPut, "/api/images/order/update", malloryTok, gin.H{
		"images": []gin.H{{"id": id, "order": 99}},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// ...and eve's record is unchanged.
	var img models.Image
	require.NoError(t, db.First(&img, id).Error)
	assert.Equal(t, "Eve's", img.Title)
	assert.Equal(t, 0, img.Order)
}

func uitoa(v uint) string {
	b, _ := json.Marshal(v)
	return string(b)
}
