package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/nihatdadaloglu/oda/internal/constants"
	"github.com/nihatdadaloglu/oda/internal/middleware"
	"github.com/nihatdadaloglu/oda/internal/model"
	"github.com/nihatdadaloglu/oda/internal/repository"
	"github.com/nihatdadaloglu/oda/internal/service"
	"github.com/nihatdadaloglu/oda/internal/testutil"
	"github.com/nihatdadaloglu/oda/pkg/logger"
)

type adminEnvelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func newAdminEngine(t *testing.T) (*gin.Engine, *observer.ObservedLogs) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)
	log := &logger.Logger{Logger: zap.New(core)}

	db := testutil.OpenTestDB(t)
	visits := service.NewResourceService(repository.NewStore[model.Visit](db, repository.VisitSchema), nil, constants.ErrVisitNotFound, log)
	sections := service.NewSectionService(repository.NewPageSectionRepository(db), nil, log)

	engine := gin.New()
	group := engine.Group("/api")
	group.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserKey, &model.User{Email: "admin@example.com", Role: constants.RoleAdmin})
		c.Next()
	})

	visitHandler := NewResourceAdminHandler[model.Visit, *model.Visit, VisitRequest, VisitPatch](visits, BuildVisit, log)
	group.POST("/visits", visitHandler.Create)
	group.PUT("/visits/:id", visitHandler.Update)
	group.DELETE("/visits/:id", visitHandler.Delete)

	sectionHandler := NewSectionAdminHandler(sections, log)
	group.POST("/page-sections", sectionHandler.Upsert)
	group.PUT("/page-sections/:id", sectionHandler.Update)
	group.DELETE("/page-sections/:id", sectionHandler.Delete)
	return engine, logs
}

func send(t *testing.T, engine *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, adminEnvelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var env adminEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestResourceAdminHandler_UpdateAndAudit(t *testing.T) {
	engine, logs := newAdminEngine(t)

	w, env := send(t, engine, http.MethodPost, "/api/visits", `{"title":"Valilik","date":"2024-05-01"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var created model.Visit
	require.NoError(t, json.Unmarshal(env.Data, &created))

	w, env = send(t, engine, http.MethodPut, "/api/visits/"+created.ID, `{"description":"Açıklama"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, constants.SuccessUpdate, env.Msg)
	var updated model.Visit
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Valilik", updated.Title)
	assert.Equal(t, "Açıklama", updated.Description)

	w, env = send(t, engine, http.MethodDelete, "/api/visits/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, constants.SuccessDelete, env.Msg)

	for _, action := range []string{"创建记录", "更新记录", "删除记录"} {
		entries := logs.FilterMessage(action).All()
		require.Len(t, entries, 1, action)
		fields := entries[0].ContextMap()
		assert.Equal(t, "admin@example.com", fields["operator"])
		assert.Equal(t, "visits", fields["table"])
		assert.Equal(t, created.ID, fields["id"])
	}
}

func TestSectionAdminHandler_UpsertThenUpdate(t *testing.T) {
	engine, logs := newAdminEngine(t)

	w, env := send(t, engine, http.MethodPost, "/api/page-sections", `{"page":"home","key":"hero","content":"Merhaba"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, constants.SuccessSection, env.Msg)
	var section model.PageSection
	require.NoError(t, json.Unmarshal(env.Data, &section))

	w, env = send(t, engine, http.MethodPut, "/api/page-sections/"+section.ID, `{"content":"Hoş geldiniz"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, constants.SuccessUpdate, env.Msg)
	require.NoError(t, json.Unmarshal(env.Data, &section))
	assert.Equal(t, "Hoş geldiniz", section.Content)
	assert.Equal(t, "hero", section.Key)

	w, _ = send(t, engine, http.MethodPut, "/api/page-sections/6f1c2a3e-0000-4000-8000-000000000000", `{"content":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.Len(t, logs.FilterMessage("写入页面内容").All(), 1)
}
