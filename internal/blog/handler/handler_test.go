package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/meeraai/site-backend/internal/blog"
	"github.com/meeraai/site-backend/internal/blog/repository"
	"github.com/meeraai/site-backend/internal/blog/service"
)

func newTestRouter() *gin.Engine {
	g := gin.New()
	svc := service.NewService(repository.NewMemoryRepo())
	NewHandler(svc).Register(g)
	return g
}

func doJSON(g *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	return w
}

func TestBlogCreateStampsDate(t *testing.T) {
	g := newTestRouter()

	w := doJSON(g, http.MethodPost, "/api/blogs", `{"title":"Hello","slug":"hello","date":"bogus caller date"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created blog.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.False(t, created.ID.IsZero())
	require.Equal(t, time.Now().Format("January 2, 2006"), created.Date)
}

func TestBlogDuplicateSlugRejected(t *testing.T) {
	g := newTestRouter()

	w := doJSON(g, http.MethodPost, "/api/blogs", `{"title":"First","slug":"shared"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(g, http.MethodPost, "/api/blogs", `{"title":"Second","slug":"shared"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "error")

	// only the first record exists
	w = doJSON(g, http.MethodGet, "/api/blogs", "")
	require.Equal(t, http.StatusOK, w.Code)
	var posts []blog.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	require.Equal(t, "First", posts[0].Title)
}

func TestBlogGetBySlug(t *testing.T) {
	g := newTestRouter()

	w := doJSON(g, http.MethodPost, "/api/blogs", `{"title":"Post","slug":"my-post","tags":["go","web"]}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(g, http.MethodGet, "/api/blogs/my-post", "")
	require.Equal(t, http.StatusOK, w.Code)
	var got blog.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "Post", got.Title)
	require.Equal(t, []string{"go", "web"}, got.Tags)

	w = doJSON(g, http.MethodGet, "/api/blogs/no-such-slug", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}

func TestBlogUpdatePartial(t *testing.T) {
	g := newTestRouter()

	w := doJSON(g, http.MethodPost, "/api/blogs", `{"title":"Old","content":"body","slug":"p"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created blog.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(g, http.MethodPut, "/api/blogs/"+created.ID.Hex(), `{"title":"New"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated blog.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "New", updated.Title)
	require.Equal(t, "body", updated.Content)
	require.Equal(t, "p", updated.Slug)
}

func TestBlogUpdateUnknownID(t *testing.T) {
	g := newTestRouter()

	w := doJSON(g, http.MethodPut, "/api/blogs/"+primitive.NewObjectID().Hex(), `{"title":"x"}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(g, http.MethodPut, "/api/blogs/not-a-hex-id", `{"title":"x"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBlogDeleteIsUnconditional(t *testing.T) {
	g := newTestRouter()

	// deleting an id that never existed still reports success
	w := doJSON(g, http.MethodDelete, "/api/blogs/"+primitive.NewObjectID().Hex(), "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"success":true}`, w.Body.String())

	w = doJSON(g, http.MethodPost, "/api/blogs", `{"title":"Gone","slug":"gone"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created blog.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(g, http.MethodDelete, "/api/blogs/"+created.ID.Hex(), "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(g, http.MethodGet, "/api/blogs/gone", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestBlogListEmpty(t *testing.T) {
	g := newTestRouter()

	w := doJSON(g, http.MethodGet, "/api/blogs", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())
}
