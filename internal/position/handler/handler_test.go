package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/meeraai/site-backend/internal/position"
	"github.com/meeraai/site-backend/internal/position/repository"
	"github.com/meeraai/site-backend/internal/position/service"
)

const validPosition = `{
	"title": "Backend Engineer",
	"department": "Engineering",
	"location": "Remote",
	"type": "Full-time",
	"description": "Build APIs",
	"detailedDescription": "Build and operate the careers backend"
}`

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

func createPosition(t *testing.T, g *gin.Engine, body string) position.Position {
	t.Helper()
	w := doJSON(g, http.MethodPost, "/api/positions", body)
	require.Equal(t, http.StatusCreated, w.Code)
	var p position.Position
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	return p
}

func TestPositionCreateDefaultsRequirements(t *testing.T) {
	g := newTestRouter()

	p := createPosition(t, g, validPosition)
	require.False(t, p.ID.IsZero())
	require.NotNil(t, p.Requirements)
	require.Empty(t, p.Requirements)
	require.False(t, p.CreatedAt.IsZero())
}

func TestPositionCreateRejectsUnknownType(t *testing.T) {
	g := newTestRouter()

	for _, typ := range []string{"Freelance", "full-time", "", "Temp"} {
		body := strings.Replace(validPosition, "Full-time", typ, 1)
		w := doJSON(g, http.MethodPost, "/api/positions", body)
		require.Equal(t, http.StatusBadRequest, w.Code, "type %q should be rejected", typ)
		require.Contains(t, w.Body.String(), "message")
	}
}

func TestPositionCreateRequiresFields(t *testing.T) {
	g := newTestRouter()

	w := doJSON(g, http.MethodPost, "/api/positions", `{"title":"X","type":"Contract"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// whitespace-only required fields are trimmed, then rejected
	body := strings.Replace(validPosition, "Remote", "   ", 1)
	w = doJSON(g, http.MethodPost, "/api/positions", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPositionUpdateMergesRequirements(t *testing.T) {
	g := newTestRouter()

	p := createPosition(t, g, strings.Replace(validPosition,
		`"description"`, `"requirements": ["Go", "MongoDB"], "description"`, 1))
	require.Equal(t, []string{"Go", "MongoDB"}, p.Requirements)

	// requirements omitted: existing value kept
	w := doJSON(g, http.MethodPut, "/api/positions/"+p.ID.Hex(), `{"title":"Senior Backend Engineer"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated position.Position
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "Senior Backend Engineer", updated.Title)
	require.Equal(t, []string{"Go", "MongoDB"}, updated.Requirements)
	require.Equal(t, "Remote", updated.Location)

	// requirements supplied: replaced, including with an empty list
	w = doJSON(g, http.MethodPut, "/api/positions/"+p.ID.Hex(), `{"requirements":["Kubernetes"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, []string{"Kubernetes"}, updated.Requirements)

	w = doJSON(g, http.MethodPut, "/api/positions/"+p.ID.Hex(), `{"requirements":[]}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Empty(t, updated.Requirements)
}

func TestPositionUpdateValidatesType(t *testing.T) {
	g := newTestRouter()

	p := createPosition(t, g, validPosition)

	w := doJSON(g, http.MethodPut, "/api/positions/"+p.ID.Hex(), `{"type":"Gig"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(g, http.MethodPut, "/api/positions/"+p.ID.Hex(), `{"type":"Internship"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated position.Position
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, position.TypeInternship, updated.Type)
}

func TestPositionUpdateUnknownID(t *testing.T) {
	g := newTestRouter()

	w := doJSON(g, http.MethodPut, "/api/positions/"+primitive.NewObjectID().Hex(), `{"title":"x"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"message":"Position not found"}`, w.Body.String())
}

func TestPositionDeleteChecksExistence(t *testing.T) {
	g := newTestRouter()

	// unlike blog delete, an unknown id is a 404
	w := doJSON(g, http.MethodDelete, "/api/positions/"+primitive.NewObjectID().Hex(), "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"message":"Position not found"}`, w.Body.String())

	p := createPosition(t, g, validPosition)
	w = doJSON(g, http.MethodDelete, "/api/positions/"+p.ID.Hex(), "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"Position deleted"}`, w.Body.String())

	w = doJSON(g, http.MethodDelete, "/api/positions/"+p.ID.Hex(), "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPositionListNewestFirst(t *testing.T) {
	g := newTestRouter()

	first := createPosition(t, g, validPosition)
	second := createPosition(t, g, strings.Replace(validPosition, "Backend Engineer", "Data Engineer", 1))

	w := doJSON(g, http.MethodGet, "/api/positions", "")
	require.Equal(t, http.StatusOK, w.Code)
	var out []position.Position
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 2)
	require.Equal(t, second.ID, out[0].ID)
	require.Equal(t, first.ID, out[1].ID)
}
