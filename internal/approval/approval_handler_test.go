package approval_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/approval"
	approvalerrors "github.com/Chayapol0073-141266/HRM-SDcon/internal/approval/errors"
	approvalMock "github.com/Chayapol0073-141266/HRM-SDcon/internal/approval/mock"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/leave"
	leaveerrors "github.com/Chayapol0073-141266/HRM-SDcon/internal/leave/errors"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/registry"
	registryMock "github.com/Chayapol0073-141266/HRM-SDcon/internal/registry/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

type handlerDeps struct {
	handler   *approval.Handler
	service   *approvalMock.MockService
	directory *registryMock.MockDirectory
}

func newHandlerDeps(t *testing.T) handlerDeps {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := approvalMock.NewMockService(ctrl)
	dir := registryMock.NewMockDirectory(ctrl)
	return handlerDeps{
		handler:   approval.NewHandler(svc, dir, zap.NewNop()),
		service:   svc,
		directory: dir,
	}
}

func newContext(method, path, body, id, actorID string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	if id != "" {
		c.Params = gin.Params{{Key: "id", Value: id}}
	}
	c.Set("user_id_validated", actorID)
	return c, w
}

func TestApprovalHandler_Submit(t *testing.T) {
	t.Run("department comes from the directory", func(t *testing.T) {
		deps := newHandlerDeps(t)
		deps.directory.EXPECT().Lookup(gomock.Any(), "emp").
			Return(registry.User{ID: "emp", DepartmentCode: "ACC"}, nil)
		deps.service.EXPECT().Submit(gomock.Any(), approval.SubmitInput{
			RequesterID:    "emp",
			DepartmentCode: "ACC",
			LeaveType:      "Sick Leave",
			StartDate:      date("2026-06-01"),
			EndDate:        date("2026-06-02"),
			Reason:         "fever",
		}).Return(leave.LeaveRequest{
			ID:                  "L1",
			RequesterID:         "emp",
			ApprovalChain:       registry.RoleList{registry.RoleOM},
			CurrentApproverRole: registry.RoleOM,
			Status:              leave.StatusPending,
		}, nil)

		c, w := newContext(http.MethodPost, "/leaves",
			`{"leave_type":" Sick Leave ","start_date":"2026-06-01","end_date":"2026-06-02","reason":"fever"}`, "", "emp")
		deps.handler.Submit(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var data leave.LeaveResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "L1", data.ID)
		assert.Equal(t, "OM", data.CurrentApproverRole)
		assert.Equal(t, []string{"OM"}, data.ApprovalChain)
	})

	t.Run("missing field", func(t *testing.T) {
		deps := newHandlerDeps(t)

		c, w := newContext(http.MethodPost, "/leaves", `{"start_date":"2026-06-01","end_date":"2026-06-02"}`, "", "emp")
		deps.handler.Submit(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_INPUT", decodeEnvelope(t, w.Body.Bytes()).Error.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		deps := newHandlerDeps(t)

		c, w := newContext(http.MethodPost, "/leaves",
			`{"leave_type":"Sick Leave","start_date":"01/06/2026","end_date":"2026-06-02"}`, "", "emp")
		deps.handler.Submit(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, leaveerrors.ErrInvalidDateFormat.Message, decodeEnvelope(t, w.Body.Bytes()).Error.Message)
	})

	t.Run("no chain configured", func(t *testing.T) {
		deps := newHandlerDeps(t)
		deps.directory.EXPECT().Lookup(gomock.Any(), "emp").Return(registry.User{ID: "emp"}, nil)
		deps.service.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(leave.LeaveRequest{}, approvalerrors.ErrNoApprovalChainConfigured)

		c, w := newContext(http.MethodPost, "/leaves",
			`{"leave_type":"Sick Leave","start_date":"2026-06-01","end_date":"2026-06-02"}`, "", "emp")
		deps.handler.Submit(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "INVALID_STATE", decodeEnvelope(t, w.Body.Bytes()).Error.Code)
	})
}

func TestApprovalHandler_Decide(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		deps := newHandlerDeps(t)
		deps.service.EXPECT().Decide(gomock.Any(), "L1", "om", true).Return(leave.LeaveRequest{
			ID: "L1", CurrentApproverRole: registry.RoleDM, Status: leave.StatusPending,
		}, nil)

		c, w := newContext(http.MethodPost, "/leaves/L1/approve", "", "L1", "om")
		deps.handler.Approve(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("reject", func(t *testing.T) {
		deps := newHandlerDeps(t)
		deps.service.EXPECT().Decide(gomock.Any(), "L1", "dm", false).Return(leave.LeaveRequest{
			ID: "L1", CurrentApproverRole: registry.RoleDone, Status: leave.StatusRejected,
		}, nil)

		c, w := newContext(http.MethodPost, "/leaves/L1/reject", "", "L1", "dm")
		deps.handler.Reject(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var data leave.LeaveResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, w.Body.Bytes()).Data, &data))
		assert.Equal(t, "REJECTED", data.Status)
		assert.Equal(t, "DONE", data.CurrentApproverRole)
	})

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", leaveerrors.ErrLeaveNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"finalized", approvalerrors.ErrAlreadyFinalized, http.StatusConflict, "INVALID_STATE"},
		{"not authorized", approvalerrors.ErrNotAuthorized, http.StatusForbidden, "FORBIDDEN"},
		{"concurrent", leaveerrors.ErrConcurrentModification, http.StatusConflict, "CONFLICT"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deps := newHandlerDeps(t)
			deps.service.EXPECT().Decide(gomock.Any(), "L1", "u", true).Return(leave.LeaveRequest{}, tc.err)

			c, w := newContext(http.MethodPost, "/leaves/L1/approve", "", "L1", "u")
			deps.handler.Approve(c)

			assert.Equal(t, tc.status, w.Code)
			env := decodeEnvelope(t, w.Body.Bytes())
			assert.False(t, env.Ok)
			assert.Equal(t, tc.code, env.Error.Code)
		})
	}

	t.Run("blank id", func(t *testing.T) {
		deps := newHandlerDeps(t)

		c, w := newContext(http.MethodPost, "/leaves//approve", "", " ", "u")
		deps.handler.Approve(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestApprovalHandler_Purge(t *testing.T) {
	deps := newHandlerDeps(t)
	deps.service.EXPECT().Purge(gomock.Any(), "L1", "root").Return(nil)
	deps.service.EXPECT().Purge(gomock.Any(), "L2", "root").Return(leaveerrors.ErrLeaveNotFound)

	c, w := newContext(http.MethodDelete, "/leaves/L1", "", "L1", "root")
	deps.handler.Purge(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newContext(http.MethodDelete, "/leaves/L2", "", "L2", "root")
	deps.handler.Purge(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
